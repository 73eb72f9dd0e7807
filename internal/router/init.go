package router

import (
	userapp "github.com/techhive/user-management-api/internal/application"
	"github.com/techhive/user-management-api/internal/container"
	handlers "github.com/techhive/user-management-api/internal/interface/http"
	"github.com/techhive/user-management-api/internal/router/modules"
)

// InitModules initializes all application modules and registers them with
// the router registry. Called once during application startup.
func InitModules(r *Registry) {
	svc := userapp.NewService(container.GetUserRepository(), container.GetLogger())
	handler := handlers.NewUserHandler(svc, container.GetLogger())
	r.Add(modules.NewUserModule(handler))

	if container.GetConfig().Env == "development" {
		r.Add(modules.NewDebugModule())
	}
}
