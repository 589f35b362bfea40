// Package pathutil provides helpers for working with URL paths: parsing
// resource IDs and normalizing dynamic paths for metrics labels.
package pathutil

import (
	"errors"
	"strconv"
)

// ErrInvalidID is returned when an ID path segment is not a positive integer.
var ErrInvalidID = errors.New("invalid id")

// ParseID parses a path wildcard value (e.g. r.PathValue("id")) as an
// article ID. IDs must be positive int64 values.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
