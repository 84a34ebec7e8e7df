package repository

import (
	"context"

	"github.com/thriftly-app/thriftly-api/internal/domain/entity"
)

// ArticleRepository defines the database operations for articles and their
// images.
type ArticleRepository interface {
	// GetByID returns the article or ErrNotFound.
	GetByID(ctx context.Context, id int64) (*entity.Article, error)
	// Create inserts the article and its image in one transaction and links
	// the image back to the article, so a partial failure can never leave an
	// orphaned row on either side. Both structs get their server-assigned
	// fields filled in.
	Create(ctx context.Context, a *entity.Article, img *entity.Image) error
}
