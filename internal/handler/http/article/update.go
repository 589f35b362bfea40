package article

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"blog-backend/internal/handler/http/pathutil"
	"blog-backend/internal/handler/http/respond"
	"blog-backend/internal/observability/logging"
	articleuc "blog-backend/internal/usecase/article"
)

// UpdateHandler serves PUT and PATCH /articles/{id}. Both verbs share the
// partial-update semantics: absent body fields keep their stored values.
type UpdateHandler struct {
	Svc    *articleuc.Service
	Logger *slog.Logger
}

func NewUpdateHandler(svc *articleuc.Service, logger *slog.Logger) *UpdateHandler {
	return &UpdateHandler{Svc: svc, Logger: logger}
}

func (h *UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := logging.WithRequestID(r.Context(), h.Logger)

	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid article id"})
		return
	}

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	a, err := h.Svc.Update(r.Context(), articleuc.UpdateInput{
		ID:        id,
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

	logger.Info("article updated", slog.Int64("article_id", a.ID))
	respond.JSON(w, http.StatusOK, toResponse(a))
}
