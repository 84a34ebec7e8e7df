package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/thriftly-app/thriftly-api/internal/domain/entity"
	"github.com/thriftly-app/thriftly-api/internal/domain/repository"
	"github.com/thriftly-app/thriftly-api/pkg/helpers"
)

var (
	ErrNameTaken = errors.New("name already taken")
	ErrNotFound  = errors.New("not found")
)

// UserService covers registration, lookup and rename of accounts.
type UserService struct {
	Repo   repository.UserRepository
	Tokens *helpers.TokenManager
	Logger *logrus.Logger
}

func NewUserService(repo repository.UserRepository, tokens *helpers.TokenManager, logger *logrus.Logger) *UserService {
	return &UserService{Repo: repo, Tokens: tokens, Logger: logger}
}

// Register creates an account. The ordering is fixed: uniqueness pre-check,
// then token issuance, then insert. The issued token is stored verbatim and
// becomes the sole credential for this account.
func (s *UserService) Register(ctx context.Context, name string) (*entity.User, error) {
	_, err := s.Repo.GetByName(ctx, name)
	if err == nil {
		return nil, ErrNameTaken
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	token, err := s.Tokens.Issue(name)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Error("token signing failed")
		}
		return nil, fmt.Errorf("issue token: %w", err)
	}

	u := &entity.User{Name: name, Token: token}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

// Rename updates the account name. Last writer wins under concurrent renames.
// The caller must have authorized the request first.
func (s *UserService) Rename(ctx context.Context, id int64, name string) (*entity.User, error) {
	u, err := s.Repo.UpdateName(ctx, id, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}
