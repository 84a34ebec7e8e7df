package application

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/storage"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/thriftly-app/thriftly-api/internal/domain/entity"
	"github.com/thriftly-app/thriftly-api/internal/domain/repository"
	"github.com/thriftly-app/thriftly-api/pkg/helpers"
)

const articleCacheTTL = 5 * time.Minute

// ArticleView is an article with the image reference expanded into a public
// URL.
type ArticleView struct {
	entity.Article
	ImageURL string `json:"image_url"`
}

// ArticleService covers article creation and lookup. Redis, GCS and the event
// publisher are optional: the core works without them, they are exercised
// best-effort when wired.
type ArticleService struct {
	Repo           repository.ArticleRepository
	StorageBaseURL string
	Redis          *redis.Client
	GCS            *storage.Client
	GCSBucket      string
	Events         *helpers.RabbitPublisher
	Logger         *logrus.Logger
}

func NewArticleService(repo repository.ArticleRepository, storageBaseURL string, rdb *redis.Client, gcs *storage.Client, gcsBucket string, events *helpers.RabbitPublisher, logger *logrus.Logger) *ArticleService {
	return &ArticleService{
		Repo:           repo,
		StorageBaseURL: storageBaseURL,
		Redis:          rdb,
		GCS:            gcs,
		GCSBucket:      gcsBucket,
		Events:         events,
		Logger:         logger,
	}
}

func articleCacheKey(id int64) string {
	return fmt.Sprintf("article:%d", id)
}

// ImageURL composes the public link for a stored image id.
func (s *ArticleService) ImageURL(imageID int64) string {
	return fmt.Sprintf("%s/%d.png", s.StorageBaseURL, imageID)
}

func (s *ArticleService) view(a *entity.Article) *ArticleView {
	return &ArticleView{Article: *a, ImageURL: s.ImageURL(a.ImageID)}
}

// Get returns the article with its image URL resolved. Articles are immutable
// after creation, so cached rows can never go stale.
func (s *ArticleService) Get(ctx context.Context, id int64) (*ArticleView, error) {
	if s.Redis != nil {
		var cached entity.Article
		hit, err := helpers.RedisGetJSON(ctx, s.Redis, articleCacheKey(id), &cached)
		if err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("article_id", id).Warn("article cache read failed")
		}
		if hit {
			return s.view(&cached), nil
		}
	}

	a, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, articleCacheKey(id), a, articleCacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("article_id", id).Warn("article cache write failed")
		}
	}

	return s.view(a), nil
}

// Create persists the article and its image in one transaction, then mirrors
// the image bytes to the public bucket and publishes an article.created event.
// The mirror and the event are best-effort; the row is the source of truth.
// The caller must have authorized the owner first.
func (s *ArticleService) Create(ctx context.Context, a *entity.Article, img *entity.Image) error {
	if err := s.Repo.Create(ctx, a, img); err != nil {
		return err
	}

	if s.GCS != nil && s.GCSBucket != "" && len(img.Data) > 0 {
		object := fmt.Sprintf("%d.png", img.ID)
		if err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, object, "image/png", bytes.NewReader(img.Data)); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("object", object).Warn("image upload failed")
		}
	}

	if s.Events != nil {
		event := map[string]any{
			"event":      "article.created",
			"article_id": a.ID,
			"owner_id":   a.OwnerID,
			"price":      a.Price,
		}
		if err := s.Events.PublishJSON(ctx, event); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("article_id", a.ID).Warn("event publish failed")
		}
	}

	return nil
}
