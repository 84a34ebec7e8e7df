package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/thriftly-app/thriftly-api/internal/domain/entity"
	"github.com/thriftly-app/thriftly-api/internal/domain/repository"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	u := &entity.User{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, name, token, balance
		FROM users
		WHERE id = $1
	`, id)

	if err := row.Scan(&u.ID, &u.Name, &u.Token, &u.Balance); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return u, nil
}

func (r *UserRepository) GetByName(ctx context.Context, name string) (*entity.User, error) {
	u := &entity.User{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, name, token, balance
		FROM users
		WHERE name = $1
	`, name)

	if err := row.Scan(&u.ID, &u.Name, &u.Token, &u.Balance); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return u, nil
}

// GetByIDAndToken matches on the stored token verbatim. A well-signed token
// that is not the one on file yields ErrNotFound, same as a wrong id.
func (r *UserRepository) GetByIDAndToken(ctx context.Context, id int64, token string) (*entity.User, error) {
	u := &entity.User{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, name, token, balance
		FROM users
		WHERE id = $1 AND token = $2
	`, id, token)

	if err := row.Scan(&u.ID, &u.Name, &u.Token, &u.Balance); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (name, token)
		VALUES ($1, $2)
		RETURNING id, balance
	`, u.Name, u.Token)

	return row.Scan(&u.ID, &u.Balance)
}

func (r *UserRepository) UpdateName(ctx context.Context, id int64, name string) (*entity.User, error) {
	u := &entity.User{}

	row := r.pool.QueryRow(ctx, `
		UPDATE users
		SET name = $1
		WHERE id = $2
		RETURNING id, name, token, balance
	`, name, id)

	if err := row.Scan(&u.ID, &u.Name, &u.Token, &u.Balance); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
