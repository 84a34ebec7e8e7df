package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/thriftly-app/thriftly-api/internal/domain/entity"
	"github.com/thriftly-app/thriftly-api/internal/domain/repository"
)

type ArticleRepository struct {
	pool *pgxpool.Pool
}

func NewArticleRepository(pool *pgxpool.Pool) *ArticleRepository {
	return &ArticleRepository{pool: pool}
}

func (r *ArticleRepository) GetByID(ctx context.Context, id int64) (*entity.Article, error) {
	a := &entity.Article{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, title, description, owner_id, image_id, size, gender, price, status, article_type, created_at, updated_at
		FROM articles
		WHERE id = $1
	`, id)

	if err := row.Scan(&a.ID, &a.Title, &a.Description, &a.OwnerID, &a.ImageID,
		&a.Size, &a.Gender, &a.Price, &a.Status, &a.ArticleType,
		&a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return a, nil
}

// Create inserts the article and its image in one transaction. The image row
// needs the article id and the article row needs the image id, so the link is
// set with an UPDATE before commit.
func (r *ArticleRepository) Create(ctx context.Context, a *entity.Article, img *entity.Image) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, `
		INSERT INTO articles (title, description, owner_id, size, gender, price, status, article_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`, a.Title, a.Description, a.OwnerID, a.Size, a.Gender, a.Price, a.Status, a.ArticleType)
	if err := row.Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return err
	}

	img.ArticleID = a.ID
	row = tx.QueryRow(ctx, `
		INSERT INTO images (article_id, filename, data)
		VALUES ($1, $2, $3)
		RETURNING id
	`, img.ArticleID, img.Filename, img.Data)
	if err := row.Scan(&img.ID); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `
		UPDATE articles SET image_id = $1 WHERE id = $2
	`, img.ID, a.ID); err != nil {
		return err
	}
	a.ImageID = img.ID

	return tx.Commit(ctx)
}

var _ repository.ArticleRepository = (*ArticleRepository)(nil)
