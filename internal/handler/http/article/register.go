package article

import (
	"log/slog"
	"net/http"

	"blog-backend/internal/common/pagination"
	articleuc "blog-backend/internal/usecase/article"
)

// Register wires all article routes onto mux. PUT and PATCH share the same
// handler since both perform a partial update.
func Register(mux *http.ServeMux, svc *articleuc.Service, logger *slog.Logger, cfg pagination.Config) {
	list := NewListHandler(svc, logger, cfg)
	create := NewCreateHandler(svc, logger)
	get := NewGetHandler(svc, logger)
	update := NewUpdateHandler(svc, logger)
	del := NewDeleteHandler(svc, logger)

	mux.Handle("GET /articles", list)
	mux.Handle("POST /articles", create)
	mux.Handle("GET /articles/{id}", get)
	mux.Handle("PUT /articles/{id}", update)
	mux.Handle("PATCH /articles/{id}", update)
	mux.Handle("DELETE /articles/{id}", del)
}
