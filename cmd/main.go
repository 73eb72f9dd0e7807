package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/techhive/user-management-api/config"
	"github.com/techhive/user-management-api/internal/container"
	"github.com/techhive/user-management-api/internal/domain/entity"
	"github.com/techhive/user-management-api/internal/infrastructure/memory"
	"github.com/techhive/user-management-api/internal/interface/middleware"
	"github.com/techhive/user-management-api/internal/router"
	"github.com/techhive/user-management-api/pkg/helpers"
	"github.com/techhive/user-management-api/pkg/validation"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)

	validation.Init()

	repo := memory.NewUserRepository()
	if cfg.SeedDemoUsers {
		seedDemoUsers(repo)
	}

	tokenValidator := buildCredentialValidator(cfg, logger)

	container.SetConfig(cfg)
	container.SetLogger(logger)
	container.SetUserRepository(repo)

	// Pipeline order matters: the exception boundary wraps the gate, the
	// gate wraps the request logger, the logger wraps the handlers.
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.RealIP())
	if origins := cfg.CORSOrigins(); len(origins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Api-Key"},
			ExposeHeaders:    []string{middleware.CorrelationIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}
	r.Use(middleware.ExceptionHandler(logger))
	r.Use(middleware.TokenAuth(tokenValidator, logger))
	r.Use(middleware.RequestLogging(logger))
	if cfg.HTTPLogEnabled {
		r.Use(gin.Logger())
	}

	// Liveness probe, outside the protected prefix.
	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	// Registry: auto-register modules using container
	reg := router.NewRegistry(r)
	router.InitModules(reg)
	reg.RegisterAll()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Infof("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Info("server exited properly")
}

// buildCredentialValidator picks the auth strategy. A nil return disables
// the gate, which is valid for local use and worth a loud warning anywhere
// else.
func buildCredentialValidator(cfg *config.Config, logger *logrus.Logger) middleware.CredentialValidator {
	switch cfg.AuthMode {
	case "jwt":
		if cfg.AuthJWTSecret == "" {
			logger.Warn("AUTH_MODE=jwt but no AUTH_JWT_SECRET configured; API endpoints are unprotected")
			return nil
		}
		return helpers.NewJWTManager(cfg.AuthJWTSecret)
	default:
		if cfg.AuthAPIKey == "" {
			logger.Warn("no API key configured (AUTH_API_KEY); in production this should be set to protect endpoints")
			return nil
		}
		return middleware.StaticTokenValidator{Secret: cfg.AuthAPIKey}
	}
}

func seedDemoUsers(repo *memory.UserRepository) {
	now := time.Now().UTC()
	repo.Seed(
		entity.User{ID: uuid.NewString(), FirstName: "Alice", LastName: "Rogers", Email: "alice.rogers@techhive.local", Role: "HR", CreatedAt: now},
		entity.User{ID: uuid.NewString(), FirstName: "Bob", LastName: "Nguyen", Email: "bob.nguyen@techhive.local", Role: "IT", CreatedAt: now},
	)
}
