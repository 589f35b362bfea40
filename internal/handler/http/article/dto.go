// Package article provides HTTP handlers for the article CRUD and listing
// endpoints.
package article

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"blog-backend/internal/domain/entity"
	"blog-backend/internal/handler/http/respond"
	articleuc "blog-backend/internal/usecase/article"
)

// articleResponse is the JSON representation of an article.
type articleResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Excerpt   string    `json:"excerpt"`
	Content   string    `json:"content"`
	Thumbnail *string   `json:"thumbnail"`
	Category  *string   `json:"category"`
	Tags      []string  `json:"tags"`
	ReadTime  *int      `json:"read_time"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toResponse(a *entity.Article) articleResponse {
	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}
	return articleResponse{
		ID:        a.ID,
		Title:     a.Title,
		Excerpt:   a.Excerpt,
		Content:   a.Content,
		Thumbnail: a.Thumbnail,
		Category:  a.Category,
		Tags:      tags,
		ReadTime:  a.ReadTime,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func toResponseList(articles []*entity.Article) []articleResponse {
	out := make([]articleResponse, 0, len(articles))
	for _, a := range articles {
		out = append(out, toResponse(a))
	}
	return out
}

// createRequest is the request body for POST /articles.
type createRequest struct {
	Title     string   `json:"title"`
	Excerpt   string   `json:"excerpt"`
	Content   string   `json:"content"`
	Thumbnail *string  `json:"thumbnail"`
	Category  *string  `json:"category"`
	Tags      []string `json:"tags"`
	ReadTime  *int     `json:"read_time"`
}

// updateRequest is the request body for PUT/PATCH /articles/{id}.
// Every field is optional; absent fields keep their current value.
type updateRequest struct {
	Title     *string   `json:"title"`
	Excerpt   *string   `json:"excerpt"`
	Content   *string   `json:"content"`
	Thumbnail *string   `json:"thumbnail"`
	Category  *string   `json:"category"`
	Tags      *[]string `json:"tags"`
	ReadTime  *int      `json:"read_time"`
}

// writeServiceError maps usecase-layer errors to HTTP responses.
// Shared by every handler in this package.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var ve *entity.ValidationError
	switch {
	case errors.As(err, &ve):
		respond.FieldError(w, ve.Field, ve.Message)
	case errors.Is(err, articleuc.ErrArticleNotFound):
		respond.JSON(w, http.StatusNotFound, map[string]string{"error": "article not found"})
	case errors.Is(err, articleuc.ErrInvalidArticleID):
		respond.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid article id"})
	default:
		logger.Error("article handler error", slog.String("error", respond.SanitizeError(err)))
		respond.SafeError(w, http.StatusInternalServerError, err)
	}
}
