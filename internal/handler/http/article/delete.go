package article

import (
	"log/slog"
	"net/http"

	"blog-backend/internal/handler/http/pathutil"
	"blog-backend/internal/handler/http/respond"
	"blog-backend/internal/observability/logging"
	articleuc "blog-backend/internal/usecase/article"
)

// DeleteHandler serves DELETE /articles/{id}.
type DeleteHandler struct {
	Svc    *articleuc.Service
	Logger *slog.Logger
}

func NewDeleteHandler(svc *articleuc.Service, logger *slog.Logger) *DeleteHandler {
	return &DeleteHandler{Svc: svc, Logger: logger}
}

func (h *DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := logging.WithRequestID(r.Context(), h.Logger)

	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid article id"})
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		writeServiceError(w, logger, err)
		return
	}

	logger.Info("article deleted", slog.Int64("article_id", id))
	respond.Message(w, http.StatusOK, "article deleted")
}
