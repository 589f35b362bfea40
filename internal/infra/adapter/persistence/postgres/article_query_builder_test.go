package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"blog-backend/internal/repository"
)

func TestBuildWhereClause(t *testing.T) {
	qb := NewArticleQueryBuilder()
	tech := "Tech"

	tests := []struct {
		name       string
		query      repository.ListQuery
		wantClause string
		wantArgs   []interface{}
	}{
		{
			name:       "no filters",
			query:      repository.ListQuery{},
			wantClause: "",
			wantArgs:   nil,
		},
		{
			name:       "category only",
			query:      repository.ListQuery{Category: &tech},
			wantClause: "WHERE category = $1",
			wantArgs:   []interface{}{"Tech"},
		},
		{
			name:       "search only",
			query:      repository.ListQuery{Search: "golang"},
			wantClause: "WHERE (title ILIKE $1 OR excerpt ILIKE $1)",
			wantArgs:   []interface{}{"%golang%"},
		},
		{
			name:       "category and search combined",
			query:      repository.ListQuery{Category: &tech, Search: "golang"},
			wantClause: "WHERE category = $1 AND (title ILIKE $2 OR excerpt ILIKE $2)",
			wantArgs:   []interface{}{"Tech", "%golang%"},
		},
		{
			name:       "wildcards in search are escaped",
			query:      repository.ListQuery{Search: "50%_off"},
			wantClause: "WHERE (title ILIKE $1 OR excerpt ILIKE $1)",
			wantArgs:   []interface{}{`%50\%\_off%`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause, args := qb.BuildWhereClause(tt.query)
			assert.Equal(t, tt.wantClause, clause)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestBuildOrderByClause(t *testing.T) {
	qb := NewArticleQueryBuilder()

	tests := []struct {
		name  string
		query repository.ListQuery
		want  string
	}{
		{
			name:  "defaults to created_at desc",
			query: repository.ListQuery{},
			want:  "ORDER BY created_at DESC, id ASC",
		},
		{
			name:  "explicit ascending",
			query: repository.ListQuery{SortBy: "title", SortOrder: "ASC"},
			want:  "ORDER BY title ASC, id ASC",
		},
		{
			name:  "explicit descending",
			query: repository.ListQuery{SortBy: "read_time", SortOrder: "DESC"},
			want:  "ORDER BY read_time DESC, id ASC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, qb.BuildOrderByClause(tt.query))
		})
	}
}
