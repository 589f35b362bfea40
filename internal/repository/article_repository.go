// Package repository defines the persistence contracts consumed by the use case layer.
package repository

import (
	"context"

	"blog-backend/internal/domain/entity"
)

// ListQuery carries the optional filters and ordering for an article listing.
// SortBy and SortOrder must already be validated and normalized by the caller:
// SortBy is used verbatim as an ORDER BY column, SortOrder is "ASC" or "DESC".
type ListQuery struct {
	Category  *string // Optional: exact match on category (case-sensitive)
	Search    string  // Optional: case-insensitive substring over title OR excerpt
	SortBy    string  // Column to order by; empty means created_at
	SortOrder string  // "ASC" or "DESC"; empty means DESC
}

// NameCount is a single row of a frequency aggregate, e.g. a category or tag
// with the number of articles carrying it.
type NameCount struct {
	Name  string
	Count int64
}

type ArticleRepository interface {
	// ListPage retrieves the articles matching q, ordered per q, skipping
	// offset rows and returning at most limit rows.
	ListPage(ctx context.Context, q ListQuery, offset, limit int) ([]*entity.Article, error)
	// CountMatching returns the number of articles matching q's filters,
	// ignoring ordering and pagination. Used for pagination metadata.
	CountMatching(ctx context.Context, q ListQuery) (int64, error)
	// Get returns (nil, nil) if the article is not found.
	Get(ctx context.Context, id int64) (*entity.Article, error)
	// Create persists a new article and assigns its ID.
	Create(ctx context.Context, article *entity.Article) error
	// Update writes all mutable columns of an existing article.
	// Returns entity.ErrNotFound if no row matches the article's ID.
	Update(ctx context.Context, article *entity.Article) error
	// Delete removes an article permanently.
	// Returns entity.ErrNotFound if no row matches the ID.
	Delete(ctx context.Context, id int64) error
	// CategoryCounts returns the distinct non-null category values with their
	// usage counts, ordered by count descending (name ascending on ties).
	// Recomputed from the live article set on every call.
	CategoryCounts(ctx context.Context) ([]NameCount, error)
	// ListTagSets returns the tag list of every article that has one.
	// Rows whose tags column cannot be decoded are skipped.
	ListTagSets(ctx context.Context) ([][]string, error)
}
