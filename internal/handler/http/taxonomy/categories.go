// Package taxonomy provides HTTP handlers for the category and tag
// aggregation endpoints.
package taxonomy

import (
	"log/slog"
	"net/http"

	"blog-backend/internal/handler/http/respond"
	"blog-backend/internal/observability/logging"
	taxonomyuc "blog-backend/internal/usecase/taxonomy"
)

// CategoriesHandler serves GET /categories: distinct categories with their
// article counts, most-used first.
type CategoriesHandler struct {
	Svc    *taxonomyuc.Service
	Logger *slog.Logger
}

func NewCategoriesHandler(svc *taxonomyuc.Service, logger *slog.Logger) *CategoriesHandler {
	return &CategoriesHandler{Svc: svc, Logger: logger}
}

func (h *CategoriesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := logging.WithRequestID(r.Context(), h.Logger)

	categories, err := h.Svc.Categories(r.Context())
	if err != nil {
		logger.Error("failed to aggregate categories", slog.String("error", respond.SanitizeError(err)))
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	if categories == nil {
		categories = []taxonomyuc.NameCount{}
	}
	respond.JSON(w, http.StatusOK, categories)
}
