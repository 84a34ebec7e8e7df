package application

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thriftly-app/thriftly-api/internal/domain/entity"
	"github.com/thriftly-app/thriftly-api/internal/domain/repository"
)

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
	cp := *a
	f.articles[a.ID] = &cp
	return nil
}

var _ repository.ArticleRepository = (*fakeArticleRepo)(nil)

func newTestArticleService(repo *fakeArticleRepo) *ArticleService {
	return NewArticleService(repo, "https://img.example.com/listings", nil, nil, "", nil, nil)
}

func TestArticleCreate_FillsServerAssignedFields(t *testing.T) {
	t.Parallel()

	repo := newFakeArticleRepo()
	s := newTestArticleService(repo)

	a := &entity.Article{
		Title:       "Wool coat",
		Description: "Warm and barely worn",
		OwnerID:     7,
		Size:        entity.SizeM,
		Gender:      entity.GenderWomens,
		Price:       12000,
		Status:      entity.StatusAvailable,
		ArticleType: entity.TypeOuterwear,
	}
	img := &entity.Image{Filename: "coat.png", Data: []byte{0x89, 0x50}}

	require.NoError(t, s.Create(context.Background(), a, img))
	require.NotZero(t, a.ID)
	require.NotZero(t, img.ID)
	require.Equal(t, a.ID, img.ArticleID)
	require.Equal(t, img.ID, a.ImageID)
}

func TestArticleGet_ResolvesImageURL(t *testing.T) {
	t.Parallel()

	repo := newFakeArticleRepo()
	s := newTestArticleService(repo)

	a := &entity.Article{Title: "Sneakers", Description: "size never fit", OwnerID: 3,
		Size: entity.SizeL, Gender: entity.GenderUnisex, Price: 3000,
		Status: entity.StatusAvailable, ArticleType: entity.TypeFootwear}
	img := &entity.Image{Filename: "sneakers.png"}
	require.NoError(t, s.Create(context.Background(), a, img))

	view, err := s.Get(context.Background(), a.ID)
	require.NoError(t, err)
	require.Equal(t, a.Title, view.Title)

	// base URL + image id + fixed extension
	want := "https://img.example.com/listings/" + strconv.FormatInt(img.ID, 10) + ".png"
	require.Equal(t, want, view.ImageURL)
}

func TestArticleGet_NotFound(t *testing.T) {
	t.Parallel()

	s := newTestArticleService(newFakeArticleRepo())
	_, err := s.Get(context.Background(), 404)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestArticleGet_StorageError(t *testing.T) {
	t.Parallel()

	repo := newFakeArticleRepo()
	boom := errors.New("pool exhausted")
	repo.err = boom
	s := newTestArticleService(repo)

	_, err := s.Get(context.Background(), 1)
	require.ErrorIs(t, err, boom)
	require.NotErrorIs(t, err, ErrNotFound)
}
