package article

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"blog-backend/internal/common/pagination"
	"blog-backend/internal/domain/entity"
	"blog-backend/internal/repository"
)

// sortColumns is the allow-list of sortable fields, mapping the API-facing
// name to the database column. Unknown sort fields are rejected with a
// ValidationError instead of being passed through to the ordering mechanism.
var sortColumns = map[string]string{
	"created_at": "created_at",
	"updated_at": "updated_at",
	"title":      "title",
	"category":   "category",
	"read_time":  "read_time",
}

// ListInput represents the optional listing parameters, each independently
// omittable. A nil Category means "no category filter"; an empty Search means
// "no search term". SortBy defaults to created_at, SortOrder to desc.
type ListInput struct {
	Category  *string
	Search    string
	SortBy    string
	SortOrder string
	Page      pagination.Params
}

// CreateInput represents the input parameters for creating a new article.
type CreateInput struct {
	Title     string
	Excerpt   string
	Content   string
	Thumbnail *string
	Category  *string
	Tags      []string
	ReadTime  *int
}

// UpdateInput represents the input parameters for updating an existing article.
// Fields with nil values are left unchanged; only supplied fields are merged
// onto the stored record. Tags uses a pointer-to-slice so "absent" and
// "set to empty" can be told apart.
type UpdateInput struct {
	ID        int64
	Title     *string
	Excerpt   *string
	Content   *string
	Thumbnail *string
	Category  *string
	Tags      *[]string
	ReadTime  *int
}

// Service provides article management use cases.
// It handles business logic for article operations and delegates persistence to the repository.
type Service struct {
	Repo repository.ArticleRepository
}

// PaginatedResult represents the result of a paginated listing.
// It contains both the page of articles and pagination metadata.
type PaginatedResult struct {
	Data       []*entity.Article
	Pagination pagination.Metadata
}

// buildListQuery validates and normalizes the listing parameters into a
// repository query. Returns a ValidationError for an unknown sort field or
// sort order.
func buildListQuery(in ListInput) (repository.ListQuery, error) {
	q := repository.ListQuery{
		Category: in.Category,
		Search:   in.Search,
	}

	sortBy := in.SortBy
	if sortBy == "" {
		sortBy = "created_at"
	}
	column, ok := sortColumns[sortBy]
	if !ok {
		return q, &entity.ValidationError{
			Field:   "sort_by",
			Message: fmt.Sprintf("must be one of: %s", strings.Join(sortColumnNames(), ", ")),
		}
	}
	q.SortBy = column

	switch strings.ToLower(in.SortOrder) {
	case "", "desc":
		q.SortOrder = "DESC"
	case "asc":
		q.SortOrder = "ASC"
	default:
		return q, &entity.ValidationError{Field: "sort_order", Message: "must be asc or desc"}
	}

	return q, nil
}

func sortColumnNames() []string {
	names := make([]string, 0, len(sortColumns))
	for name := range sortColumns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List retrieves the filtered, sorted page of articles described by in.
// The total count is computed against the same filters before slicing, so
// the pagination metadata stays consistent with the returned page. A page
// past the end yields an empty slice, not an error.
func (s *Service) List(ctx context.Context, in ListInput) (*PaginatedResult, error) {
	q, err := buildListQuery(in)
	if err != nil {
		return nil, err
	}

	total, err := s.Repo.CountMatching(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("count articles: %w", err)
	}

	offset := pagination.CalculateOffset(in.Page.Page, in.Page.PerPage)
	articles, err := s.Repo.ListPage(ctx, q, offset, in.Page.PerPage)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	return &PaginatedResult{
		Data: articles,
		Pagination: pagination.Metadata{
			Total:       total,
			CurrentPage: in.Page.Page,
			PerPage:     in.Page.PerPage,
			LastPage:    pagination.CalculateLastPage(total, in.Page.PerPage),
		},
	}, nil
}

// Get retrieves a single article by its ID.
// Returns ErrInvalidArticleID if the ID is not positive.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Article, error) {
	if id <= 0 {
		return nil, ErrInvalidArticleID
	}

	article, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

// validateCreate checks all fields of a create request.
func validateCreate(in CreateInput) error {
	if err := entity.ValidateTitle(in.Title); err != nil {
		return err
	}
	if err := entity.ValidateExcerpt(in.Excerpt); err != nil {
		return err
	}
	if err := entity.ValidateContent(in.Content); err != nil {
		return err
	}
	if in.Thumbnail != nil {
		if err := entity.ValidateThumbnail(*in.Thumbnail); err != nil {
			return err
		}
	}
	if in.Category != nil {
		if err := entity.ValidateCategory(*in.Category); err != nil {
			return err
		}
	}
	if err := entity.ValidateTags(in.Tags); err != nil {
		return err
	}
	if in.ReadTime != nil {
		if err := entity.ValidateReadTime(*in.ReadTime); err != nil {
			return err
		}
	}
	return nil
}

// Create validates the input and persists a new article.
// Returns the created article with its store-assigned ID and timestamps.
// Returns a ValidationError if any input field is invalid.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Article, error) {
	if err := validateCreate(in); err != nil {
		return nil, err
	}

	now := time.Now()
	article := &entity.Article{
		Title:     in.Title,
		Excerpt:   in.Excerpt,
		Content:   in.Content,
		Thumbnail: in.Thumbnail,
		Category:  in.Category,
		Tags:      in.Tags,
		ReadTime:  in.ReadTime,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Repo.Create(ctx, article); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	return article, nil
}

// Update modifies an existing article with the provided input.
// Only non-nil fields in the input are merged onto the stored record; omitted
// fields keep their prior values. Supplied fields are validated with the same
// rules as on create.
// Returns ErrInvalidArticleID if the ID is not positive.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Article, error) {
	if in.ID <= 0 {
		return nil, ErrInvalidArticleID
	}

	article, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}

	if in.Title != nil {
		if err := entity.ValidateTitle(*in.Title); err != nil {
			return nil, err
		}
		article.Title = *in.Title
	}
	if in.Excerpt != nil {
		if err := entity.ValidateExcerpt(*in.Excerpt); err != nil {
			return nil, err
		}
		article.Excerpt = *in.Excerpt
	}
	if in.Content != nil {
		if err := entity.ValidateContent(*in.Content); err != nil {
			return nil, err
		}
		article.Content = *in.Content
	}
	if in.Thumbnail != nil {
		if err := entity.ValidateThumbnail(*in.Thumbnail); err != nil {
			return nil, err
		}
		article.Thumbnail = in.Thumbnail
	}
	if in.Category != nil {
		if err := entity.ValidateCategory(*in.Category); err != nil {
			return nil, err
		}
		article.Category = in.Category
	}
	if in.Tags != nil {
		if err := entity.ValidateTags(*in.Tags); err != nil {
			return nil, err
		}
		article.Tags = *in.Tags
	}
	if in.ReadTime != nil {
		if err := entity.ValidateReadTime(*in.ReadTime); err != nil {
			return nil, err
		}
		article.ReadTime = in.ReadTime
	}
	article.UpdatedAt = time.Now()

	if err := s.Repo.Update(ctx, article); err != nil {
		if isNotFound(err) {
			return nil, ErrArticleNotFound
		}
		return nil, fmt.Errorf("update article: %w", err)
	}
	return article, nil
}

// Delete removes an article by its ID. The delete is permanent; there is no
// soft-delete or tombstone.
// Returns ErrInvalidArticleID if the ID is not positive.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidArticleID
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return ErrArticleNotFound
		}
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}

// CountAll returns the total number of articles, ignoring filters.
// Used for the articles_total metrics gauge.
func (s *Service) CountAll(ctx context.Context) (int64, error) {
	total, err := s.Repo.CountMatching(ctx, repository.ListQuery{})
	if err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return total, nil
}
