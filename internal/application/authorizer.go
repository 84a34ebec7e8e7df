package application

import (
	"context"
	"errors"

	"github.com/thriftly-app/thriftly-api/internal/domain/entity"
	"github.com/thriftly-app/thriftly-api/internal/domain/repository"
	"github.com/thriftly-app/thriftly-api/pkg/helpers"
)

// ErrUnauthorized is returned both when a token fails verification and when it
// verifies but is not the token on file for the claimed owner. Callers cannot
// tell which check failed.
var ErrUnauthorized = errors.New("unauthorized")

// Authorizer decides whether a presented bearer token may act as a claimed
// owner. The token's own subject claim is never consulted for this decision;
// only the stored binding counts.
type Authorizer struct {
	Tokens *helpers.TokenManager
	Users  repository.UserRepository
}

func NewAuthorizer(tokens *helpers.TokenManager, users repository.UserRepository) *Authorizer {
	return &Authorizer{Tokens: tokens, Users: users}
}

// Authorize verifies the token signature and expiry, then re-confirms against
// persisted state that the claimed owner's stored token equals the presented
// one. Returns the resolved account on success, ErrUnauthorized on either
// failed check, or the storage error as-is.
func (a *Authorizer) Authorize(ctx context.Context, token string, ownerID int64) (*entity.User, error) {
	if _, err := a.Tokens.Verify(token); err != nil {
		return nil, ErrUnauthorized
	}
	u, err := a.Users.GetByIDAndToken(ctx, ownerID, token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	return u, nil
}
