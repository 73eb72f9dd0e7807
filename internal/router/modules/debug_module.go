package modules

import (
	"github.com/gin-gonic/gin"
)

// DebugModule exposes development-only endpoints. It must never be
// registered outside development.
type DebugModule struct{}

func NewDebugModule() *DebugModule { return &DebugModule{} }

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	// Simulates an unhandled failure so the exception boundary can be
	// exercised end to end.
	rg.GET("/debug/throw", func(c *gin.Context) {
		panic("simulated failure for tests")
	})
}
