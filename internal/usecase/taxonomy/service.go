// Package taxonomy derives the category and tag vocabularies from the live
// article set. Neither vocabulary is stored separately: both aggregates are
// recomputed from scratch on every call, which keeps them exact at the cost
// of a full scan.
package taxonomy

import (
	"context"
	"fmt"
	"sort"

	"blog-backend/internal/repository"
)

// NameCount is one row of a frequency report: a category or tag name with
// the number of occurrences across all articles.
type NameCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// Service computes the category and tag frequency aggregates.
type Service struct {
	Repo repository.ArticleRepository
}

// Categories returns the distinct category values with their usage counts,
// ordered by count descending. Articles without a category are excluded.
func (s *Service) Categories(ctx context.Context) ([]NameCount, error) {
	counts, err := s.Repo.CategoryCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("category counts: %w", err)
	}

	out := make([]NameCount, 0, len(counts))
	for _, c := range counts {
		out = append(out, NameCount{Name: c.Name, Count: c.Count})
	}
	return out, nil
}

// Tags scans every article's tag list and counts each occurrence. An article
// contributing the same tag twice counts twice; articles without tags are
// skipped. The result is ordered by count descending, name ascending on ties
// so the output is deterministic.
func (s *Service) Tags(ctx context.Context) ([]NameCount, error) {
	sets, err := s.Repo.ListTagSets(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tag sets: %w", err)
	}

	counts := make(map[string]int64)
	for _, tags := range sets {
		for _, tag := range tags {
			counts[tag]++
		}
	}

	out := make([]NameCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, NameCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}
