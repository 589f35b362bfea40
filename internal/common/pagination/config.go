// Package pagination provides a reusable offset-based pagination framework:
// query parameter parsing, offset/last-page arithmetic, and the page envelope
// returned by list endpoints.
package pagination

import "blog-backend/pkg/config"

// Config holds pagination configuration settings.
// These values can be loaded from environment variables.
type Config struct {
	DefaultPage    int // Default page number (typically 1)
	DefaultPerPage int // Default items per page
	MaxPerPage     int // Maximum allowed items per page
}

// DefaultConfig returns the default pagination configuration.
// Default values: page=1, per_page=15, max=100
func DefaultConfig() Config {
	return Config{
		DefaultPage:    1,
		DefaultPerPage: 15,
		MaxPerPage:     100,
	}
}

// LoadFromEnv loads pagination config from environment variables.
// Supported environment variables:
//   - PAGINATION_DEFAULT_PAGE: Default page number
//   - PAGINATION_DEFAULT_PER_PAGE: Default items per page
//   - PAGINATION_MAX_PER_PAGE: Maximum items per page
//
// Falls back to DefaultConfig() values for variables that are not set.
func LoadFromEnv() Config {
	return Config{
		DefaultPage:    config.GetEnvInt("PAGINATION_DEFAULT_PAGE", 1),
		DefaultPerPage: config.GetEnvInt("PAGINATION_DEFAULT_PER_PAGE", 15),
		MaxPerPage:     config.GetEnvInt("PAGINATION_MAX_PER_PAGE", 100),
	}
}
