package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/thriftly-app/thriftly-api/internal/interface/http"
	"github.com/thriftly-app/thriftly-api/internal/interface/middleware"
)

// ArticleModule wires the listing routes.
// Public: GET /articles/:id
// Bearer: POST /articles
type ArticleModule struct {
	Handler *handlers.ArticleHandler
}

func NewArticleModule(h *handlers.ArticleHandler) *ArticleModule {
	return &ArticleModule{Handler: h}
}

func (m *ArticleModule) Register(rg *gin.RouterGroup) {
	rg.POST("/articles", middleware.BearerToken(), m.Handler.Create)
	rg.GET("/articles/:id", m.Handler.Get)
}
