// Package postgres provides PostgreSQL implementations of repository interfaces.
package postgres

import (
	"fmt"
	"strings"

	"blog-backend/internal/repository"
)

// ArticleQueryBuilder builds WHERE and ORDER BY clauses for article listing.
// The builder is shared between COUNT and SELECT queries so the filter
// semantics cannot drift apart. PostgreSQL-specific: uses ILIKE for
// case-insensitive search and $N placeholders.
type ArticleQueryBuilder struct{}

// NewArticleQueryBuilder creates a new query builder instance.
func NewArticleQueryBuilder() *ArticleQueryBuilder {
	return &ArticleQueryBuilder{}
}

// BuildWhereClause builds the WHERE clause and arguments for an article listing.
// The category filter is a case-sensitive exact match; the search term matches
// as a case-insensitive substring of title OR excerpt. Both conditions are
// ANDed when present. Returns an empty clause when no filter applies.
func (qb *ArticleQueryBuilder) BuildWhereClause(q repository.ListQuery) (clause string, args []interface{}) {
	var conditions []string
	paramIndex := 1

	if q.Category != nil {
		conditions = append(conditions, fmt.Sprintf("category = $%d", paramIndex))
		args = append(args, *q.Category)
		paramIndex++
	}

	if q.Search != "" {
		pattern := "%" + escapeILIKE(q.Search) + "%"
		conditions = append(conditions,
			fmt.Sprintf("(title ILIKE $%d OR excerpt ILIKE $%d)", paramIndex, paramIndex))
		args = append(args, pattern)
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

// BuildOrderByClause builds the ORDER BY clause for an article listing.
// q.SortBy is restricted to an allow-list upstream and interpolated verbatim.
// A secondary id ASC key keeps pagination deterministic for equal sort keys.
func (qb *ArticleQueryBuilder) BuildOrderByClause(q repository.ListQuery) string {
	sortBy := q.SortBy
	if sortBy == "" {
		sortBy = "created_at"
	}
	order := strings.ToUpper(q.SortOrder)
	if order != "ASC" {
		order = "DESC"
	}
	return fmt.Sprintf("ORDER BY %s %s, id ASC", sortBy, order)
}

// escapeILIKE escapes LIKE wildcards so user input matches literally.
func escapeILIKE(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}
