package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	FirstName string `json:"firstName" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,email"`
	Role      string `json:"role" binding:"required,userrole"`
}

func bindSample(t *testing.T, body string) error {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	var dst sampleRequest
	return binding.JSON.Bind(req, &dst)
}

func TestToDetails(t *testing.T) {
	Init()

	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, ToDetails(nil))
	})

	t.Run("valid payload", func(t *testing.T) {
		err := bindSample(t, `{"firstName":"Ann","email":"ann@x.com","role":"HR"}`)
		assert.NoError(t, err)
	})

	t.Run("field names come from json tags", func(t *testing.T) {
		err := bindSample(t, `{"email":"ann@x.com","role":"HR"}`)
		require.Error(t, err)
		details := ToDetails(err)
		require.Contains(t, details, "firstName")
		assert.Equal(t, []string{"is required"}, details["firstName"])
	})

	t.Run("email format", func(t *testing.T) {
		err := bindSample(t, `{"firstName":"Ann","email":"nope","role":"HR"}`)
		require.Error(t, err)
		assert.Equal(t, []string{"must be a valid email"}, ToDetails(err)["email"])
	})

	t.Run("role allow-list message names the roles", func(t *testing.T) {
		err := bindSample(t, `{"firstName":"Ann","email":"ann@x.com","role":"Sales"}`)
		require.Error(t, err)
		assert.Equal(t, []string{"must be one of: HR, IT, Admin"}, ToDetails(err)["role"])
	})

	t.Run("case-insensitive role accepted", func(t *testing.T) {
		err := bindSample(t, `{"firstName":"Ann","email":"ann@x.com","role":"hr"}`)
		assert.NoError(t, err)
	})

	t.Run("multiple failures reported per field", func(t *testing.T) {
		err := bindSample(t, `{}`)
		require.Error(t, err)
		details := ToDetails(err)
		assert.Len(t, details, 3)
	})

	t.Run("broken json maps to a payload message", func(t *testing.T) {
		err := bindSample(t, `{"firstName":`)
		require.Error(t, err)
		assert.Equal(t, map[string][]string{"payload": {"invalid json"}}, ToDetails(err))
	})

	t.Run("wrong field type maps to a payload message", func(t *testing.T) {
		err := bindSample(t, `{"firstName":42,"email":"ann@x.com","role":"HR"}`)
		require.Error(t, err)
		assert.Equal(t, map[string][]string{"payload": {"invalid json"}}, ToDetails(err))
	})
}
