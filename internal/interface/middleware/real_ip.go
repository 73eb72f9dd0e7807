package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

const realIPKey = "real_ip"

// RealIP resolves the caller address into the Gin context for the request
// logger. Priority:
// 1) X-Forwarded-For (left-most)
// 2) fallback to c.ClientIP()
func RealIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
			first := strings.TrimSpace(strings.Split(xff, ",")[0])
			if ip := net.ParseIP(first); ip != nil {
				c.Set(realIPKey, ip.String())
				c.Next()
				return
			}
		}
		c.Set(realIPKey, c.ClientIP())
		c.Next()
	}
}

// CallerIP returns the resolved caller address for the request.
func CallerIP(c *gin.Context) string {
	if ip := c.GetString(realIPKey); ip != "" {
		return ip
	}
	return c.ClientIP()
}
