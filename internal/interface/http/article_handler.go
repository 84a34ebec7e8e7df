package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/thriftly-app/thriftly-api/internal/application"
	"github.com/thriftly-app/thriftly-api/internal/domain/entity"
	"github.com/thriftly-app/thriftly-api/internal/interface/middleware"
	"github.com/thriftly-app/thriftly-api/pkg/response"
	"github.com/thriftly-app/thriftly-api/pkg/validation"
)

type ArticleHandler struct {
	Svc    *application.ArticleService
	Auth   *application.Authorizer
	Logger *logrus.Logger
}

func NewArticleHandler(svc *application.ArticleService, auth *application.Authorizer, logger *logrus.Logger) *ArticleHandler {
	return &ArticleHandler{Svc: svc, Auth: auth, Logger: logger}
}

type createArticleRequest struct {
	Title         string `json:"title" binding:"required,min=1,max=128"`
	Description   string `json:"description" binding:"required"`
	OwnerID       int64  `json:"owner_id" binding:"required,gte=0"`
	Size          string `json:"size" binding:"required,oneof=xs s m l xl"`
	Gender        string `json:"gender" binding:"required,oneof=mens womens unisex"`
	Price         int64  `json:"price" binding:"gte=0"`
	Status        string `json:"status" binding:"required,oneof=available reserved sold"`
	ArticleType   string `json:"article_type" binding:"required,oneof=top bottom dress outerwear footwear accessory"`
	ImageFilename string `json:"image_filename" binding:"required"`
	ImageData     []byte `json:"image_data" binding:"required"` // base64 in the JSON body
}

// Create inserts an article owned by owner_id. The bearer token must verify
// AND be the token stored for owner_id; a valid token for some other account
// is rejected the same way as a forged one.
func (h *ArticleHandler) Create(c *gin.Context) {
	var req createArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", validation.ToDetails(err))
		return
	}

	token := c.GetString(middleware.CtxBearerToken)
	if _, err := h.Auth.Authorize(c.Request.Context(), token, req.OwnerID); err != nil {
		if errors.Is(err, application.ErrUnauthorized) {
			response.Unauthorized(c)
			return
		}
		h.Logger.WithError(err).WithField("owner_id", req.OwnerID).Error("authorize failed")
		response.Internal(c)
		return
	}

	a := &entity.Article{
		Title:       req.Title,
		Description: req.Description,
		OwnerID:     req.OwnerID,
		Size:        entity.Size(req.Size),
		Gender:      entity.Gender(req.Gender),
		Price:       req.Price,
		Status:      entity.Status(req.Status),
		ArticleType: entity.ArticleType(req.ArticleType),
	}
	img := &entity.Image{
		Filename: req.ImageFilename,
		Data:     req.ImageData,
	}

	if err := h.Svc.Create(c.Request.Context(), a, img); err != nil {
		h.Logger.WithError(err).WithField("owner_id", req.OwnerID).Error("create article failed")
		response.Internal(c)
		return
	}
	c.JSON(http.StatusOK, a)
}

// Get is a public lookup returning the row with image_url resolved.
func (h *ArticleHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	view, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			response.NotFound(c)
			return
		}
		h.Logger.WithError(err).WithField("article_id", id).Error("get article failed")
		response.Internal(c)
		return
	}
	c.JSON(http.StatusOK, view)
}
