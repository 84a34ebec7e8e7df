package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/thriftly-app/thriftly-api/internal/domain/entity"
	"github.com/thriftly-app/thriftly-api/internal/domain/repository"
	"github.com/thriftly-app/thriftly-api/pkg/helpers"
)

// fakeUserRepo keeps accounts in a map and can be forced to fail.
type fakeUserRepo struct {
	users  map[int64]*entity.User
	nextID int64
	err    error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*entity.User{}, nextID: 1}
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByName(_ context.Context, name string) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Name == name {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) GetByIDAndToken(_ context.Context, id int64, token string) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[id]
	if !ok || u.Token != token {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	if f.err != nil {
		return f.err
	}
	u.ID = f.nextID
	f.nextID++
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) UpdateName(_ context.Context, id int64, name string) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	u.Name = name
	cp := *u
	return &cp, nil
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func (f *fakeUserRepo) add(name, token string) *entity.User {
	u := &entity.User{Name: name, Token: token}
	_ = f.Create(context.Background(), u)
	return u
}

func TestAuthorize_Success(t *testing.T) {
	t.Parallel()

	tokens := helpers.NewTokenManager("secret", time.Hour)
	tok, err := tokens.Issue("alice")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	repo := newFakeUserRepo()
	alice := repo.add("alice", tok)

	a := NewAuthorizer(tokens, repo)
	u, err := a.Authorize(context.Background(), tok, alice.ID)
	if err != nil {
		t.Fatalf("Authorize error: %v", err)
	}
	if u.ID != alice.ID || u.Name != "alice" {
		t.Fatalf("wrong account resolved: %+v", u)
	}
}

func TestAuthorize_InvalidSignature(t *testing.T) {
	t.Parallel()

	tokens := helpers.NewTokenManager("secret", time.Hour)
	foreign, err := helpers.NewTokenManager("other-secret", time.Hour).Issue("alice")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	repo := newFakeUserRepo()
	alice := repo.add("alice", foreign) // even the stored token matching cannot save a bad signature

	a := NewAuthorizer(tokens, repo)
	if _, err := a.Authorize(context.Background(), foreign, alice.ID); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized, got %v", err)
	}
}

// A well-signed token that is not the one on file for the claimed owner must
// be rejected: signature validity alone is never enough.
func TestAuthorize_StoredTokenMismatch(t *testing.T) {
	t.Parallel()

	tokens := helpers.NewTokenManager("secret", time.Hour)
	aliceTok, _ := tokens.Issue("alice")
	bobTok, _ := tokens.Issue("bob")

	repo := newFakeUserRepo()
	alice := repo.add("alice", aliceTok)
	repo.add("bob", bobTok)

	a := NewAuthorizer(tokens, repo)
	if _, err := a.Authorize(context.Background(), bobTok, alice.ID); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized for foreign token, got %v", err)
	}
}

func TestAuthorize_StorageError(t *testing.T) {
	t.Parallel()

	tokens := helpers.NewTokenManager("secret", time.Hour)
	tok, _ := tokens.Issue("alice")

	boom := errors.New("connection reset")
	repo := newFakeUserRepo()
	repo.err = boom

	a := NewAuthorizer(tokens, repo)
	_, err := a.Authorize(context.Background(), tok, 1)
	if errors.Is(err, ErrUnauthorized) {
		t.Fatalf("storage error must not be folded into unauthorized")
	}
	if !errors.Is(err, boom) {
		t.Fatalf("want storage error, got %v", err)
	}
}
