package article

import (
	"log/slog"
	"net/http"

	"blog-backend/internal/handler/http/pathutil"
	"blog-backend/internal/handler/http/respond"
	"blog-backend/internal/observability/logging"
	articleuc "blog-backend/internal/usecase/article"
)

// GetHandler serves GET /articles/{id}.
type GetHandler struct {
	Svc    *articleuc.Service
	Logger *slog.Logger
}

func NewGetHandler(svc *articleuc.Service, logger *slog.Logger) *GetHandler {
	return &GetHandler{Svc: svc, Logger: logger}
}

func (h *GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := logging.WithRequestID(r.Context(), h.Logger)

	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid article id"})
		return
	}

	a, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, logger, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(a))
}
