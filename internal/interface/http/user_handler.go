package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	userapp "github.com/techhive/user-management-api/internal/application"
	"github.com/techhive/user-management-api/internal/domain/repository"
	"github.com/techhive/user-management-api/internal/interface/middleware"
	"github.com/techhive/user-management-api/pkg/response"
	"github.com/techhive/user-management-api/pkg/validation"
)

type UserHandler struct {
	Svc    *userapp.Service
	Logger *logrus.Logger
}

func NewUserHandler(svc *userapp.Service, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type userRequest struct {
	FirstName string `json:"firstName" binding:"required,max=100"`
	LastName  string `json:"lastName" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,email"`
	Role      string `json:"role" binding:"required,max=50,userrole"`
}

func (r userRequest) toInput() userapp.UserInput {
	return userapp.UserInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Role:      r.Role,
	}
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, h.Svc.List())
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	u, found := h.Svc.Get(id)
	if !found {
		response.NotFound(c)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, validation.ToDetails(err))
		return
	}
	u, err := h.Svc.Create(req.toInput())
	if err != nil {
		h.mapRepositoryError(c, err)
		return
	}
	c.Header("Location", "/api/users/"+u.ID)
	c.JSON(http.StatusCreated, u)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, validation.ToDetails(err))
		return
	}
	u, err := h.Svc.Update(id, req.toInput())
	if err != nil {
		h.mapRepositoryError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if !h.Svc.Delete(id) {
		response.NotFound(c)
		return
	}
	c.Status(http.StatusNoContent)
}

// parseID enforces uuid-shaped ids; anything else behaves as an unknown
// resource.
func parseID(c *gin.Context) (string, bool) {
	raw := c.Param("id")
	if _, err := uuid.Parse(raw); err != nil {
		response.NotFound(c)
		return "", false
	}
	return raw, true
}

func (h *UserHandler) mapRepositoryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		response.NotFound(c)
	case errors.Is(err, repository.ErrEmailInUse):
		response.Conflict(c, "Email already in use")
	default:
		h.Logger.WithFields(logrus.Fields{
			"correlation_id": middleware.CorrelationID(c),
			"error":          err.Error(),
		}).Error("unexpected repository failure")
		response.InternalError(c)
	}
}
