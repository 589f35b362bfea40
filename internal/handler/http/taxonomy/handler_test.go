package taxonomy_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/domain/entity"
	htaxonomy "blog-backend/internal/handler/http/taxonomy"
	"blog-backend/internal/repository"
	taxUC "blog-backend/internal/usecase/taxonomy"
)

/* ───────── スタブ実装 ───────── */

type stubRepo struct {
	categories []repository.NameCount
	tagSets    [][]string
	err        error
}

func (s *stubRepo) ListPage(_ context.Context, _ repository.ListQuery, _, _ int) ([]*entity.Article, error) {
	return nil, s.err
}
func (s *stubRepo) CountMatching(_ context.Context, _ repository.ListQuery) (int64, error) {
	return 0, s.err
}
func (s *stubRepo) Get(_ context.Context, _ int64) (*entity.Article, error) { return nil, s.err }
func (s *stubRepo) Create(_ context.Context, _ *entity.Article) error       { return s.err }
func (s *stubRepo) Update(_ context.Context, _ *entity.Article) error       { return s.err }
func (s *stubRepo) Delete(_ context.Context, _ int64) error                 { return s.err }
func (s *stubRepo) CategoryCounts(_ context.Context) ([]repository.NameCount, error) {
	return s.categories, s.err
}
func (s *stubRepo) ListTagSets(_ context.Context) ([][]string, error) {
	return s.tagSets, s.err
}

func newMux(repo *stubRepo) *http.ServeMux {
	svc := &taxUC.Service{Repo: repo}
	mux := http.NewServeMux()
	htaxonomy.Register(mux, svc, slog.New(slog.DiscardHandler))
	return mux
}

/* ───────── /categories ───────── */

func TestCategoriesHandler(t *testing.T) {
	mux := newMux(&stubRepo{
		categories: []repository.NameCount{
			{Name: "Tech", Count: 3},
			{Name: "Design", Count: 1},
		},
	})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/categories", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var got []taxUC.NameCount
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, []taxUC.NameCount{
		{Name: "Tech", Count: 3},
		{Name: "Design", Count: 1},
	}, got)
}

func TestCategoriesHandler_EmptyIsArrayNotNull(t *testing.T) {
	mux := newMux(&stubRepo{})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/categories", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestCategoriesHandler_RepoError(t *testing.T) {
	mux := newMux(&stubRepo{err: errors.New("connection refused")})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/categories", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// 内部エラーの詳細は漏らさない
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

/* ───────── /tags ───────── */

func TestTagsHandler(t *testing.T) {
	mux := newMux(&stubRepo{
		tagSets: [][]string{{"a", "b"}, {"a"}},
	})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/tags", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var got []taxUC.NameCount
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, []taxUC.NameCount{
		{Name: "a", Count: 2},
		{Name: "b", Count: 1},
	}, got)
}

func TestTagsHandler_EmptyIsArrayNotNull(t *testing.T) {
	mux := newMux(&stubRepo{})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/tags", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}
