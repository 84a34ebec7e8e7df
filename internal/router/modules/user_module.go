package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/thriftly-app/thriftly-api/internal/interface/http"
	"github.com/thriftly-app/thriftly-api/internal/interface/middleware"
)

// UserModule wires the account routes.
// Public: POST /users, GET /users/:id
// Bearer: PUT /users/:id
type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	rg.POST("/users", m.Handler.Create)
	rg.GET("/users/:id", m.Handler.Get)
	rg.PUT("/users/:id", middleware.BearerToken(), m.Handler.Update)
}
