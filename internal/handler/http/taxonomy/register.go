package taxonomy

import (
	"log/slog"
	"net/http"

	taxonomyuc "blog-backend/internal/usecase/taxonomy"
)

// Register wires the taxonomy routes onto mux.
func Register(mux *http.ServeMux, svc *taxonomyuc.Service, logger *slog.Logger) {
	mux.Handle("GET /categories", NewCategoriesHandler(svc, logger))
	mux.Handle("GET /tags", NewTagsHandler(svc, logger))
}
