package middleware

import (
	"fmt"
	"strings"

	"blog-backend/pkg/config"
)

// Default CORS settings, overridable via environment variables.
var (
	defaultAllowedOrigins = []string{"http://localhost:3000"}
	defaultAllowedMethods = []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"}
	defaultAllowedHeaders = []string{"Content-Type", "X-Request-ID"}
)

const defaultMaxAge = 86400 // 24 hours

// LoadCORSConfig builds a CORSConfig from environment variables:
//
//   - CORS_ALLOWED_ORIGINS: comma-separated origin whitelist
//   - CORS_ALLOWED_METHODS: comma-separated method list
//   - CORS_ALLOWED_HEADERS: comma-separated header list
//   - CORS_MAX_AGE: preflight cache lifetime in seconds
//
// Origins must carry an explicit scheme; a bare wildcard is rejected to keep
// the whitelist semantics intact.
func LoadCORSConfig() (*CORSConfig, error) {
	origins := config.GetEnvStringList("CORS_ALLOWED_ORIGINS", defaultAllowedOrigins)
	for _, o := range origins {
		if o == "*" {
			return nil, fmt.Errorf("CORS_ALLOWED_ORIGINS: wildcard origin is not allowed")
		}
		if !strings.HasPrefix(o, "http://") && !strings.HasPrefix(o, "https://") {
			return nil, fmt.Errorf("CORS_ALLOWED_ORIGINS: origin %q must include http:// or https:// scheme", o)
		}
	}

	return &CORSConfig{
		AllowedOrigins: origins,
		AllowedMethods: config.GetEnvStringList("CORS_ALLOWED_METHODS", defaultAllowedMethods),
		AllowedHeaders: config.GetEnvStringList("CORS_ALLOWED_HEADERS", defaultAllowedHeaders),
		MaxAge:         config.GetEnvInt("CORS_MAX_AGE", defaultMaxAge),
	}, nil
}
