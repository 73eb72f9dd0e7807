package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techhive/user-management-api/internal/interface/middleware"
)

type gateProbe struct {
	engine        *gin.Engine
	handlerCalled bool
	principal     string
}

func newGateProbe(v middleware.CredentialValidator) *gateProbe {
	gin.SetMode(gin.TestMode)
	logger, _ := test.NewNullLogger()

	p := &gateProbe{}
	h := func(c *gin.Context) {
		p.handlerCalled = true
		p.principal = middleware.Principal(c)
		c.String(http.StatusOK, "ok")
	}

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.TokenAuth(v, logger))
	r.GET("/api/users", h)
	r.GET("/public/ping", h)
	p.engine = r
	return p
}

func (p *gateProbe) do(method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	p.engine.ServeHTTP(w, req)
	return w
}

func TestTokenAuthGate(t *testing.T) {
	const secret = "s3cret"

	tests := []struct {
		name           string
		path           string
		headers        map[string]string
		wantStatus     int
		wantHandlerRun bool
	}{
		{
			name:           "bearer token accepted",
			path:           "/api/users",
			headers:        map[string]string{"Authorization": "Bearer s3cret"},
			wantStatus:     http.StatusOK,
			wantHandlerRun: true,
		},
		{
			name:           "bearer scheme is case-insensitive",
			path:           "/api/users",
			headers:        map[string]string{"Authorization": "bearer s3cret"},
			wantStatus:     http.StatusOK,
			wantHandlerRun: true,
		},
		{
			name:           "api key header accepted",
			path:           "/api/users",
			headers:        map[string]string{"X-Api-Key": "s3cret"},
			wantStatus:     http.StatusOK,
			wantHandlerRun: true,
		},
		{
			name:           "non-bearer authorization falls back to api key",
			path:           "/api/users",
			headers:        map[string]string{"Authorization": "Basic dXNlcg==", "X-Api-Key": "s3cret"},
			wantStatus:     http.StatusOK,
			wantHandlerRun: true,
		},
		{
			name:       "missing credentials rejected",
			path:       "/api/users",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong bearer token rejected",
			path:       "/api/users",
			headers:    map[string]string{"Authorization": "Bearer nope"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "token comparison is case-sensitive",
			path:       "/api/users",
			headers:    map[string]string{"X-Api-Key": "S3CRET"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "prefix match ignores path case",
			path:       "/API/users",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:           "paths outside the prefix bypass the gate",
			path:           "/public/ping",
			wantStatus:     http.StatusOK,
			wantHandlerRun: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newGateProbe(middleware.StaticTokenValidator{Secret: secret})
			w := p.do(http.MethodGet, tt.path, tt.headers)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantHandlerRun, p.handlerCalled)
			assert.NotEmpty(t, w.Header().Get(middleware.CorrelationIDHeader),
				"every response must carry the correlation header")

			if tt.wantStatus == http.StatusUnauthorized {
				assert.Contains(t, w.Header().Get("Content-Type"), "application/problem+json")
				var body struct {
					Title  string `json:"title"`
					Status int    `json:"status"`
					Detail string `json:"detail"`
				}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, "Unauthorized", body.Title)
				assert.Equal(t, http.StatusUnauthorized, body.Status)
				assert.Equal(t, "Missing or invalid authentication token.", body.Detail)
			}
		})
	}
}

func TestTokenAuthAttachesSyntheticPrincipal(t *testing.T) {
	p := newGateProbe(middleware.StaticTokenValidator{Secret: "s3cret"})
	w := p.do(http.MethodGet, "/api/users", map[string]string{"X-Api-Key": "s3cret"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, middleware.APIClientPrincipal, p.principal)
}

func TestTokenAuthNoValidatorPassesThrough(t *testing.T) {
	p := newGateProbe(nil)
	w := p.do(http.MethodGet, "/api/users", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, p.handlerCalled)
	assert.Equal(t, "anonymous", p.principal)
}

func TestStaticTokenValidatorRejectsEmptyToken(t *testing.T) {
	v := middleware.StaticTokenValidator{Secret: ""}
	assert.False(t, v.Validate(""), "empty secret must never match an empty token")
}
