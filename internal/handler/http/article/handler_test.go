package article_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/common/pagination"
	"blog-backend/internal/domain/entity"
	harticle "blog-backend/internal/handler/http/article"
	"blog-backend/internal/repository"
	artUC "blog-backend/internal/usecase/article"
)

/* ───────── スタブ実装 ───────── */

type stubRepo struct {
	data   map[int64]*entity.Article
	nextID int64
	err    error
}

func newStub() *stubRepo {
	return &stubRepo{data: map[int64]*entity.Article{}, nextID: 1}
}

func (s *stubRepo) ListPage(_ context.Context, _ repository.ListQuery, offset, limit int) ([]*entity.Article, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*entity.Article
	for _, a := range s.data {
		out = append(out, a)
	}
	if offset >= len(out) {
		return []*entity.Article{}, nil
	}
	end := offset + limit
	if end > len(out) {
		end = len(out)
	}
	return out[offset:end], nil
}

func (s *stubRepo) CountMatching(_ context.Context, _ repository.ListQuery) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	return int64(len(s.data)), nil
}

func (s *stubRepo) Get(_ context.Context, id int64) (*entity.Article, error) {
	return s.data[id], s.err
}

func (s *stubRepo) Create(_ context.Context, a *entity.Article) error {
	if s.err != nil {
		return s.err
	}
	a.ID = s.nextID
	s.nextID++
	s.data[a.ID] = a
	return nil
}

func (s *stubRepo) Update(_ context.Context, a *entity.Article) error {
	if s.err != nil {
		return s.err
	}
	if _, ok := s.data[a.ID]; !ok {
		return entity.ErrNotFound
	}
	s.data[a.ID] = a
	return nil
}

func (s *stubRepo) Delete(_ context.Context, id int64) error {
	if s.err != nil {
		return s.err
	}
	if _, ok := s.data[id]; !ok {
		return entity.ErrNotFound
	}
	delete(s.data, id)
	return nil
}

func (s *stubRepo) CategoryCounts(_ context.Context) ([]repository.NameCount, error) {
	return nil, s.err
}
func (s *stubRepo) ListTagSets(_ context.Context) ([][]string, error) { return nil, s.err }

func newMux(repo *stubRepo) *http.ServeMux {
	svc := &artUC.Service{Repo: repo}
	logger := slog.New(slog.DiscardHandler)
	mux := http.NewServeMux()
	harticle.Register(mux, svc, logger, pagination.DefaultConfig())
	return mux
}

func seed(repo *stubRepo, title string) *entity.Article {
	a := &entity.Article{Title: title, Excerpt: "excerpt", Content: "content"}
	_ = repo.Create(context.Background(), a)
	return a
}

/* ───────── List ───────── */

func TestListHandler(t *testing.T) {
	repo := newStub()
	seed(repo, "first")
	seed(repo, "second")
	mux := newMux(repo)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/articles", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data        []json.RawMessage `json:"data"`
		Total       int64             `json:"total"`
		CurrentPage int               `json:"current_page"`
		PerPage     int               `json:"per_page"`
		LastPage    int               `json:"last_page"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Data, 2)
	assert.Equal(t, int64(2), body.Total)
	assert.Equal(t, 1, body.CurrentPage)
	assert.Equal(t, 15, body.PerPage)
	assert.Equal(t, 1, body.LastPage)
}

func TestListHandler_InvalidPage(t *testing.T) {
	mux := newMux(newStub())

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/articles?page=0", nil))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestListHandler_InvalidSortField(t *testing.T) {
	mux := newMux(newStub())

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/articles?sort_by=bogus", nil))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "sort_by")
}

/* ───────── Get ───────── */

func TestGetHandler(t *testing.T) {
	repo := newStub()
	seed(repo, "hello")
	mux := newMux(repo)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/articles/1", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "hello", got["title"])
	// タグ未設定でも null ではなく [] を返す
	assert.Equal(t, []interface{}{}, got["tags"])
}

func TestGetHandler_NotFound(t *testing.T) {
	mux := newMux(newStub())

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/articles/99", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetHandler_InvalidID(t *testing.T) {
	mux := newMux(newStub())

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/articles/abc", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

/* ───────── Create ───────── */

func TestCreateHandler(t *testing.T) {
	repo := newStub()
	mux := newMux(repo)

	body := `{"title":"new","excerpt":"e","content":"c","tags":["Go"],"read_time":4}`
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("POST", "/articles", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, float64(1), got["id"])
	assert.Equal(t, "new", got["title"])
}

func TestCreateHandler_ValidationError(t *testing.T) {
	mux := newMux(newStub())

	body := `{"excerpt":"e","content":"c"}`
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("POST", "/articles", strings.NewReader(body)))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "title")
}

func TestCreateHandler_MalformedBody(t *testing.T) {
	mux := newMux(newStub())

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("POST", "/articles", strings.NewReader("{not json")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

/* ───────── Update ───────── */

func TestUpdateHandler_PUTAndPATCH(t *testing.T) {
	for _, method := range []string{"PUT", "PATCH"} {
		t.Run(method, func(t *testing.T) {
			repo := newStub()
			seed(repo, "before")
			mux := newMux(repo)

			body := `{"title":"after"}`
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(method, "/articles/1", strings.NewReader(body)))

			require.Equal(t, http.StatusOK, rec.Code)

			var got map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, "after", got["title"])
			// 触っていないフィールドは維持
			assert.Equal(t, "excerpt", got["excerpt"])
		})
	}
}

func TestUpdateHandler_NotFound(t *testing.T) {
	mux := newMux(newStub())

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("PUT", "/articles/42", strings.NewReader(`{"title":"x"}`)))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

/* ───────── Delete ───────── */

func TestDeleteHandler(t *testing.T) {
	repo := newStub()
	seed(repo, "doomed")
	mux := newMux(repo)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("DELETE", "/articles/1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "article deleted")

	// 二度目は 404
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("DELETE", "/articles/1", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
