package article

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"blog-backend/internal/handler/http/respond"
	"blog-backend/internal/observability/logging"
	articleuc "blog-backend/internal/usecase/article"
)

// CreateHandler serves POST /articles.
type CreateHandler struct {
	Svc    *articleuc.Service
	Logger *slog.Logger
}

func NewCreateHandler(svc *articleuc.Service, logger *slog.Logger) *CreateHandler {
	return &CreateHandler{Svc: svc, Logger: logger}
}

func (h *CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := logging.WithRequestID(r.Context(), h.Logger)

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	a, err := h.Svc.Create(r.Context(), articleuc.CreateInput{
		Title:     req.Title,
		Excerpt:   req.Excerpt,
		Content:   req.Content,
		Thumbnail: req.Thumbnail,
		Category:  req.Category,
		Tags:      req.Tags,
		ReadTime:  req.ReadTime,
	})
	if err != nil {
		writeServiceError(w, logger, err)
		return
	}

	logger.Info("article created", slog.Int64("article_id", a.ID))
	respond.JSON(w, http.StatusCreated, toResponse(a))
}
