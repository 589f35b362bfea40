package pathutil

import (
	"regexp"
	"strings"
)

// pathPatterns maps dynamic routes to their normalized templates.
// Pre-compiled at initialization; evaluated in order.
var pathPatterns = []struct {
	pattern  *regexp.Regexp
	template string
}{
	{pattern: regexp.MustCompile(`^/articles/\d+$`), template: "/articles/:id"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label
// cardinality explosion. Paths with IDs (e.g. /articles/123) collapse to a
// template (/articles/:id); static paths are returned unchanged.
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	path = strings.TrimSuffix(path, "/")
	if path == "" {
		path = "/"
	}

	for _, p := range pathPatterns {
		if p.pattern.MatchString(path) {
			return p.template
		}
	}
	return path
}
