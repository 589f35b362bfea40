// Package entity defines the core domain entities and validation logic for the application.
// It contains the Article entity along with its validation rules and domain-specific errors.
package entity

import "time"

// Article represents a blog article entity in the system.
// Optional attributes (thumbnail, category, read time) are modeled as pointers;
// a nil pointer means the attribute is absent. Tags is nil or empty when the
// article carries no tags. Category and tag vocabularies have no backing
// entity of their own: they exist only as the distinct values present across
// the live article set.
type Article struct {
	ID        int64
	Title     string
	Excerpt   string
	Content   string
	Thumbnail *string
	Category  *string
	Tags      []string
	ReadTime  *int
	CreatedAt time.Time
	UpdatedAt time.Time
}
