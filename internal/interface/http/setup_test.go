package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/thriftly-app/thriftly-api/internal/application"
	"github.com/thriftly-app/thriftly-api/internal/domain/entity"
	"github.com/thriftly-app/thriftly-api/internal/domain/repository"
	handlers "github.com/thriftly-app/thriftly-api/internal/interface/http"
	"github.com/thriftly-app/thriftly-api/internal/router/modules"
	"github.com/thriftly-app/thriftly-api/pkg/helpers"
	"github.com/thriftly-app/thriftly-api/pkg/validation"
)

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

type fakeArticleRepo struct {
	articles map[int64]*entity.Article
	nextID   int64
	err      error
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{articles: map[int64]*entity.Article{}, nextID: 1}
}

func (f *fakeArticleRepo) GetByID(_ context.Context, id int64) (*entity.Article, error) {
	if f.err != nil {
		return nil, f.err
	}
	a, ok := f.articles[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeArticleRepo) Create(_ context.Context, a *entity.Article, img *entity.Image) error {
	if f.err != nil {
		return f.err
	}
	a.ID = f.nextID
	f.nextID++
	img.ID = a.ID + 100
	img.ArticleID = a.ID
	a.ImageID = img.ID
	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now
	cp := *a
	f.articles[a.ID] = &cp
	return nil
}

// env is a fully wired HTTP surface backed by fakes.
type env struct {
	users    *fakeUserRepo
	articles *fakeArticleRepo
	tokens   *helpers.TokenManager
	router   *gin.Engine
}

var initOnce sync.Once

func newEnv(t *testing.T) *env {
	t.Helper()
	initOnce.Do(func() {
		gin.SetMode(gin.TestMode)
		validation.Init()
	})

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	users := newFakeUserRepo()
	articles := newFakeArticleRepo()
	tokens := helpers.NewTokenManager("test-secret", time.Hour)

	auth := application.NewAuthorizer(tokens, users)
	userSvc := application.NewUserService(users, tokens, logger)
	articleSvc := application.NewArticleService(articles, "https://cdn.test/images", nil, nil, "", nil, logger)

	r := gin.New()
	root := r.Group("")
	modules.NewUserModule(handlers.NewUserHandler(userSvc, auth, logger)).Register(root)
	modules.NewArticleModule(handlers.NewArticleHandler(articleSvc, auth, logger)).Register(root)
	modules.NewHealthModule(handlers.NewHealthHandler()).Register(root)

	return &env{users: users, articles: articles, tokens: tokens, router: r}
}

// do performs a request; token, when non-empty, is sent as a bearer header.
func (e *env) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// register creates an account through the API and returns the decoded row.
func (e *env) register(t *testing.T, name string) *entity.User {
	t.Helper()
	w := e.do(t, http.MethodPost, "/users", "", map[string]any{"name": name})
	if w.Code != http.StatusOK {
		t.Fatalf("register %q: status %d, body %s", name, w.Code, w.Body.String())
	}
	u := &entity.User{}
	if err := json.Unmarshal(w.Body.Bytes(), u); err != nil {
		t.Fatalf("decode user: %v", err)
	}
	return u
}
