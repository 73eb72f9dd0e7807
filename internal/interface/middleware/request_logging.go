package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RequestLogging logs the start and end of every request, joined by the
// correlation id. The end line fires exactly once whether the response
// starts streaming, the handler returns normally, or a panic unwinds
// through this stage; panics are re-raised for the exception boundary
// after the bookkeeping.
func RequestLogging(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		pathWithQuery := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			pathWithQuery += "?" + raw
		}

		fields := logrus.Fields{
			"method":         c.Request.Method,
			"path":           pathWithQuery,
			"remote_ip":      CallerIP(c),
			"user":           Principal(c),
			"correlation_id": CorrelationID(c),
		}
		logger.WithFields(fields).Info("incoming request")

		// One-shot latch: the write hook and the deferred fall-through can
		// both fire, in either order.
		var once sync.Once
		logResponse := func(status int) {
			once.Do(func() {
				logger.WithFields(fields).WithFields(logrus.Fields{
					"status":     status,
					"elapsed_ms": time.Since(start).Milliseconds(),
				}).Info("outgoing response")
			})
		}

		c.Writer = &loggingResponseWriter{ResponseWriter: c.Writer, onStart: logResponse}

		defer func() {
			if rec := recover(); rec != nil {
				// The exception boundary always answers panics with a 500.
				logResponse(http.StatusInternalServerError)
				panic(rec)
			}
			logResponse(c.Writer.Status())
		}()

		c.Next()
	}
}

// loggingResponseWriter fires onStart as soon as the response begins.
type loggingResponseWriter struct {
	gin.ResponseWriter
	onStart func(status int)
}

func (w *loggingResponseWriter) WriteHeader(status int) {
	w.onStart(status)
	w.ResponseWriter.WriteHeader(status)
}

func (w *loggingResponseWriter) Write(b []byte) (int, error) {
	w.onStart(w.Status())
	return w.ResponseWriter.Write(b)
}

func (w *loggingResponseWriter) WriteString(s string) (int, error) {
	w.onStart(w.Status())
	return w.ResponseWriter.WriteString(s)
}
