package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Payload shapes below are part of the public API contract; clients match
// on them, so they must stay stable across error paths.

// InternalErrorMessage is the only detail a caller ever sees for an
// unexpected failure.
const InternalErrorMessage = "Internal server error."

const problemContentType = "application/problem+json"

// ProblemDetail is the RFC 7807 subset used by this API.
type ProblemDetail struct {
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// ValidationProblem carries per-field validation messages.
type ValidationProblem struct {
	Title  string              `json:"title"`
	Status int                 `json:"status"`
	Errors map[string][]string `json:"errors"`
}

// ErrorMessage is the short-form error body used for conflicts and
// internal failures.
type ErrorMessage struct {
	Error string `json:"error"`
}

// Unauthorized writes the fixed 401 payload and aborts the request.
func Unauthorized(c *gin.Context) {
	c.Header("Content-Type", problemContentType)
	c.AbortWithStatusJSON(http.StatusUnauthorized, ProblemDetail{
		Title:  "Unauthorized",
		Status: http.StatusUnauthorized,
		Detail: "Missing or invalid authentication token.",
	})
}

// ValidationFailed writes a 400 with per-field messages and aborts.
func ValidationFailed(c *gin.Context, details map[string][]string) {
	c.Header("Content-Type", problemContentType)
	c.AbortWithStatusJSON(http.StatusBadRequest, ValidationProblem{
		Title:  "One or more validation errors occurred.",
		Status: http.StatusBadRequest,
		Errors: details,
	})
}

// Conflict writes a 409 with a short reason and aborts.
func Conflict(c *gin.Context, reason string) {
	c.AbortWithStatusJSON(http.StatusConflict, ErrorMessage{Error: reason})
}

// NotFound writes an empty 404 and aborts.
func NotFound(c *gin.Context) {
	c.AbortWithStatus(http.StatusNotFound)
}

// InternalError writes the generic 500 payload and aborts. Internal detail
// never leaks here; it belongs in the server log.
func InternalError(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorMessage{Error: InternalErrorMessage})
}
