package article

import (
	"log/slog"
	"net/http"
	"strings"

	"blog-backend/internal/common/pagination"
	"blog-backend/internal/handler/http/respond"
	"blog-backend/internal/observability/logging"
	articleuc "blog-backend/internal/usecase/article"
)

// ListHandler serves GET /articles: filtered, sorted and paginated listing.
type ListHandler struct {
	Svc        *articleuc.Service
	Logger     *slog.Logger
	Pagination pagination.Config
}

func NewListHandler(svc *articleuc.Service, logger *slog.Logger, cfg pagination.Config) *ListHandler {
	return &ListHandler{Svc: svc, Logger: logger, Pagination: cfg}
}

func (h *ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := logging.WithRequestID(r.Context(), h.Logger)

	params, err := pagination.ParseQueryParams(r, h.Pagination)
	if err != nil {
		respond.SafeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	in := articleuc.ListInput{
		Search:    strings.TrimSpace(r.URL.Query().Get("search")),
		SortBy:    r.URL.Query().Get("sort_by"),
		SortOrder: r.URL.Query().Get("sort_order"),
		Page:      params,
	}
	if c := strings.TrimSpace(r.URL.Query().Get("category")); c != "" {
		in.Category = &c
	}

	result, err := h.Svc.List(r.Context(), in)
	if err != nil {
		writeServiceError(w, logger, err)
		return
	}

	respond.JSON(w, http.StatusOK,
		pagination.NewResponse(toResponseList(result.Data), result.Pagination))
}
