package middleware

import (
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/techhive/user-management-api/pkg/response"
)

// ExceptionHandler is the outermost boundary of the pipeline. It converts
// any panic from inner stages into the fixed-shape 500 payload; the full
// failure detail stays in the server log and never reaches the caller.
func ExceptionHandler(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			logger.WithFields(logrus.Fields{
				"method":         c.Request.Method,
				"path":           c.Request.URL.Path,
				"correlation_id": CorrelationID(c),
				"panic":          rec,
				"stack":          string(debug.Stack()),
			}).Error("unhandled panic processing request")

			if c.Writer.Written() {
				// Response already started; nothing safe to write.
				c.Abort()
				return
			}

			defer func() {
				if writeRec := recover(); writeRec != nil {
					logger.WithFields(logrus.Fields{
						"correlation_id": CorrelationID(c),
						"panic":          writeRec,
					}).Error("failed to write error response")
				}
			}()
			response.InternalError(c)
		}()

		c.Next()
	}
}
