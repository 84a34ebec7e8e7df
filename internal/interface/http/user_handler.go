package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/thriftly-app/thriftly-api/internal/application"
	"github.com/thriftly-app/thriftly-api/internal/interface/middleware"
	"github.com/thriftly-app/thriftly-api/pkg/response"
	"github.com/thriftly-app/thriftly-api/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Auth   *application.Authorizer
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, auth *application.Authorizer, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Auth: auth, Logger: logger}
}

type createUserRequest struct {
	Name string `json:"name" binding:"required,min=1,max=64"`
}

type updateUserRequest struct {
	Name string `json:"name" binding:"required,min=1,max=64"`
}

// Create registers an account and returns the row including the freshly
// issued token.
func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Register(c.Request.Context(), req.Name)
	if err != nil {
		if errors.Is(err, application.ErrNameTaken) {
			response.BadRequest(c, "name already taken", nil)
			return
		}
		h.Logger.WithError(err).WithField("name", req.Name).Error("register failed")
		response.Internal(c)
		return
	}
	c.JSON(http.StatusOK, u)
}

// Get is a public lookup; no token required.
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	u, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			response.NotFound(c)
			return
		}
		h.Logger.WithError(err).WithField("user_id", id).Error("get user failed")
		response.Internal(c)
		return
	}
	c.JSON(http.StatusOK, u)
}

// Update renames an account. The path id is the claimed owner; the bearer
// token must be the one on file for exactly that id.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", validation.ToDetails(err))
		return
	}

	token := c.GetString(middleware.CtxBearerToken)
	if _, err := h.Auth.Authorize(c.Request.Context(), token, id); err != nil {
		if errors.Is(err, application.ErrUnauthorized) {
			response.Unauthorized(c)
			return
		}
		h.Logger.WithError(err).WithField("user_id", id).Error("authorize failed")
		response.Internal(c)
		return
	}

	u, err := h.Svc.Rename(c.Request.Context(), id, req.Name)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			response.NotFound(c)
			return
		}
		h.Logger.WithError(err).WithField("user_id", id).Error("rename failed")
		response.Internal(c)
		return
	}
	c.JSON(http.StatusOK, u)
}
