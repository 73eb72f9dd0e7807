package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/techhive/user-management-api/pkg/response"
)

// ProtectedPrefix is the path namespace that requires authentication.
const ProtectedPrefix = "/api"

// APIClientPrincipal is the synthetic identity attached to every
// authenticated request. Credentials are shared-secret, not per-caller.
const APIClientPrincipal = "api-client"

const principalKey = "principal"

const bearerScheme = "Bearer "

// CredentialValidator decides whether a presented token is acceptable.
// The default is the static shared-secret comparison; richer strategies
// (e.g. signed tokens) plug in without changing the pipeline contract.
type CredentialValidator interface {
	Validate(token string) bool
}

// StaticTokenValidator accepts exactly one shared secret, compared
// case-sensitively.
type StaticTokenValidator struct {
	Secret string
}

func (v StaticTokenValidator) Validate(token string) bool {
	return token != "" && token == v.Secret
}

// TokenAuth guards every path under ProtectedPrefix. A nil validator
// disables the gate; the caller is expected to surface that as a
// deployment warning at startup.
func TokenAuth(validator CredentialValidator, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !underProtectedPrefix(c.Request.URL.Path) {
			c.Next()
			return
		}
		if validator == nil {
			// No secret configured: local/dev mode, requests pass unauthenticated.
			c.Next()
			return
		}

		token := extractToken(c)
		if token == "" || !validator.Validate(token) {
			logger.WithFields(logrus.Fields{
				"path":           c.Request.URL.Path,
				"correlation_id": CorrelationID(c),
			}).Warn("unauthorized request")
			response.Unauthorized(c)
			return
		}

		c.Set(principalKey, APIClientPrincipal)
		c.Next()
	}
}

// Principal returns the authenticated identity for the request, or
// "anonymous" when the gate passed the request through or never ran.
func Principal(c *gin.Context) string {
	if p := c.GetString(principalKey); p != "" {
		return p
	}
	return "anonymous"
}

// underProtectedPrefix matches on segment boundaries, ignoring case:
// /api and /API/users are protected, /apify is not.
func underProtectedPrefix(path string) bool {
	lower := strings.ToLower(path)
	return lower == ProtectedPrefix || strings.HasPrefix(lower, ProtectedPrefix+"/")
}

// extractToken checks the bearer authorization header first, then the
// dedicated API key header.
func extractToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if len(auth) >= len(bearerScheme) && strings.EqualFold(auth[:len(bearerScheme)], bearerScheme) {
		return strings.TrimSpace(auth[len(bearerScheme):])
	}
	return c.GetHeader("X-Api-Key")
}
