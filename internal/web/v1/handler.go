package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/ecilanotrub/users-microservice/internal/core/domain"
	"github.com/ecilanotrub/users-microservice/middleware"
)

// UserService is the logic-layer contract the handlers depend on.
type UserService interface {
	CreateUser(ctx context.Context, username string) (domain.ServiceResponse, error)
	GetAllUsers(ctx context.Context) ([]domain.UserResponse, error)
	UpdateUser(ctx context.Context, id int, username string) (domain.ServiceResponse, error)
	DeleteUser(ctx context.Context, id int) (bool, error)
}

// UserHandler handles HTTP requests for user operations. It translates
// tagged service outcomes into status codes; unexpected failures become a
// bare 500 with no internal detail in the body.
type UserHandler struct {
	service UserService
}

// NewUserHandler creates a new user handler with direct ownership of the
// given service.
func NewUserHandler(service UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Register mounts the user routes on the given router group.
func (h *UserHandler) Register(r gin.IRouter) {
	r.POST("/users", h.CreateUser)
	r.GET("/users", h.GetAllUsers)
	r.PUT("/users/:id", h.UpdateUser)
	r.DELETE("/users/:id", h.DeleteUser)
}

// CreateUser handles POST /users.
// 201 with the created id, 400 on a missing username, 409 on a duplicate.
func (h *UserHandler) CreateUser(c *gin.Context) {
	ctx, span := middleware.StartSpan(c.Request.Context(), "http.request", trace.WithAttributes(
		attribute.String("layer", "web"),
		attribute.String("method", c.Request.Method),
		attribute.String("path", c.Request.URL.Path),
	))
	defer span.End()

	logger := middleware.GetLoggerFromGinContext(c)

	var req domain.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.SetAttributes(attribute.Bool("request.valid", false))
		logger.Info("CreateUser was called with an invalid body", zap.Error(err))
		c.String(http.StatusBadRequest, sanitizeValidationError(err))
		return
	}

	result, err := h.service.CreateUser(ctx, req.Username)
	if err != nil {
		span.RecordError(err)
		logger.Error("CreateUser failed", zap.Error(err))
		c.Status(http.StatusInternalServerError)
		return
	}

	if result.IsError {
		switch result.Type {
		case domain.ResponseConflict:
			logger.Info("CreateUser returned a Conflict response",
				zap.String("message", result.ErrorMessage))
			c.String(http.StatusConflict, result.ErrorMessage)
			return
		}
	}

	logger.Info("User created", zap.String("created_id", result.CreatedID))
	c.Header("Location", "/users")
	c.JSON(http.StatusCreated, gin.H{"createdId": result.CreatedID})
}

// GetAllUsers handles GET /users. Always returns a JSON array, possibly empty.
func (h *UserHandler) GetAllUsers(c *gin.Context) {
	ctx, span := middleware.StartSpan(c.Request.Context(), "http.request", trace.WithAttributes(
		attribute.String("layer", "web"),
		attribute.String("method", c.Request.Method),
		attribute.String("path", c.Request.URL.Path),
	))
	defer span.End()

	logger := middleware.GetLoggerFromGinContext(c)

	users, err := h.service.GetAllUsers(ctx)
	if err != nil {
		span.RecordError(err)
		logger.Error("GetAllUsers failed", zap.Error(err))
		c.Status(http.StatusInternalServerError)
		return
	}

	logger.Info("Users listed", zap.Int("count", len(users)))
	c.JSON(http.StatusOK, users)
}

// UpdateUser handles PUT /users/:id.
// 204 on success, 400 on a malformed id, 409 on a duplicate username,
// 404 when the id does not exist.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	ctx, span := middleware.StartSpan(c.Request.Context(), "http.request", trace.WithAttributes(
		attribute.String("layer", "web"),
		attribute.String("method", c.Request.Method),
		attribute.String("path", c.Request.URL.Path),
	))
	defer span.End()

	logger := middleware.GetLoggerFromGinContext(c)

	id, ok := parseUserID(c.Param("id"))
	if !ok {
		logger.Info("UpdateUser was called with an invalid user ID",
			zap.String("id", c.Param("id")))
		c.String(http.StatusBadRequest, invalidUserIDMessage)
		return
	}

	var req domain.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.SetAttributes(attribute.Bool("request.valid", false))
		logger.Info("UpdateUser was called with an invalid body", zap.Error(err))
		c.String(http.StatusBadRequest, sanitizeValidationError(err))
		return
	}

	result, err := h.service.UpdateUser(ctx, id, req.Username)
	if err != nil {
		span.RecordError(err)
		logger.Error("UpdateUser failed", zap.Error(err))
		c.Status(http.StatusInternalServerError)
		return
	}

	if result.IsError {
		switch result.Type {
		case domain.ResponseConflict:
			logger.Info("UpdateUser returned a Conflict response",
				zap.String("message", result.ErrorMessage))
			c.String(http.StatusConflict, result.ErrorMessage)
			return
		case domain.ResponseNotFound:
			logger.Info("UpdateUser returned a NotFound response",
				zap.String("message", result.ErrorMessage))
			c.String(http.StatusNotFound, result.ErrorMessage)
			return
		}
	}

	logger.Info("User updated", zap.Int("user_id", id))
	c.Status(http.StatusNoContent)
}

// DeleteUser handles DELETE /users/:id.
// 204 on success, 400 on a malformed id, 404 when the id does not exist.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	ctx, span := middleware.StartSpan(c.Request.Context(), "http.request", trace.WithAttributes(
		attribute.String("layer", "web"),
		attribute.String("method", c.Request.Method),
		attribute.String("path", c.Request.URL.Path),
	))
	defer span.End()

	logger := middleware.GetLoggerFromGinContext(c)

	id, ok := parseUserID(c.Param("id"))
	if !ok {
		logger.Info("DeleteUser was called with an invalid user ID",
			zap.String("id", c.Param("id")))
		c.String(http.StatusBadRequest, invalidUserIDMessage)
		return
	}

	deleted, err := h.service.DeleteUser(ctx, id)
	if err != nil {
		span.RecordError(err)
		logger.Error("DeleteUser failed", zap.Error(err))
		c.Status(http.StatusInternalServerError)
		return
	}

	if !deleted {
		logger.Info("DeleteUser returned a NotFound response", zap.Int("user_id", id))
		c.String(http.StatusNotFound, "User ID %d not found", id)
		return
	}

	logger.Info("User deleted", zap.Int("user_id", id))
	c.Status(http.StatusNoContent)
}
