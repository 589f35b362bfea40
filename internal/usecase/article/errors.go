// Package article provides use cases for managing article entities.
// It implements business logic for creating, updating, deleting, and querying
// articles, including validation and interaction with the article repository.
package article

import (
	"errors"

	"blog-backend/internal/domain/entity"
)

// Sentinel errors for article use case operations.
var (
	// ErrArticleNotFound indicates that the requested article was not found.
	ErrArticleNotFound = errors.New("article not found")

	// ErrInvalidArticleID indicates that the provided article ID is invalid.
	// Article IDs must be positive integers.
	ErrInvalidArticleID = errors.New("invalid article ID")
)

// isNotFound reports whether a repository error means "no such row".
func isNotFound(err error) bool {
	return errors.Is(err, entity.ErrNotFound)
}
