package repository

import (
	"context"
	"errors"

	"github.com/thriftly-app/thriftly-api/internal/domain/entity"
)

// ErrNotFound is returned when a row is absent. Storage failures are returned
// as distinct errors; callers must not treat the two alike.
var ErrNotFound = errors.New("not found")

// UserRepository defines the database operations for user accounts.
type UserRepository interface {
	// GetByID returns the user or ErrNotFound.
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	// GetByName returns the user or ErrNotFound; used for the registration
	// uniqueness pre-check.
	GetByName(ctx context.Context, name string) (*entity.User, error)
	// GetByIDAndToken returns the user only when both the id matches and the
	// stored token equals the presented one byte for byte. This is the single
	// primitive the authorization policy relies on.
	GetByIDAndToken(ctx context.Context, id int64, token string) (*entity.User, error)
	// Create inserts the user and fills in server-assigned fields.
	Create(ctx context.Context, u *entity.User) error
	// UpdateName renames the account and returns the updated row. Last writer
	// wins; there is no concurrency token.
	UpdateName(ctx context.Context, id int64, name string) (*entity.User, error)
}
