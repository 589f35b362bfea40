package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"blog-backend/internal/common/pagination"
)

func TestCalculateOffset(t *testing.T) {
	assert.Equal(t, 0, pagination.CalculateOffset(1, 15))
	assert.Equal(t, 15, pagination.CalculateOffset(2, 15))
	assert.Equal(t, 40, pagination.CalculateOffset(5, 10))
}

func TestCalculateLastPage(t *testing.T) {
	tests := []struct {
		name    string
		total   int64
		perPage int
		want    int
	}{
		{name: "empty set still has one page", total: 0, perPage: 15, want: 1},
		{name: "exact fit", total: 30, perPage: 15, want: 2},
		{name: "one over boundary", total: 16, perPage: 15, want: 2},
		{name: "one under boundary", total: 14, perPage: 15, want: 1},
		{name: "single item", total: 1, perPage: 15, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pagination.CalculateLastPage(tt.total, tt.perPage))
		})
	}
}
