package taxonomy

import (
	"log/slog"
	"net/http"

	"blog-backend/internal/handler/http/respond"
	"blog-backend/internal/observability/logging"
	taxonomyuc "blog-backend/internal/usecase/taxonomy"
)

// TagsHandler serves GET /tags: distinct tags with their occurrence counts,
// most-used first.
type TagsHandler struct {
	Svc    *taxonomyuc.Service
	Logger *slog.Logger
}

func NewTagsHandler(svc *taxonomyuc.Service, logger *slog.Logger) *TagsHandler {
	return &TagsHandler{Svc: svc, Logger: logger}
}

func (h *TagsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := logging.WithRequestID(r.Context(), h.Logger)

	tags, err := h.Svc.Tags(r.Context())
	if err != nil {
		logger.Error("failed to aggregate tags", slog.String("error", respond.SanitizeError(err)))
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	if tags == nil {
		tags = []taxonomyuc.NameCount{}
	}
	respond.JSON(w, http.StatusOK, tags)
}
