package entity

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

// Field length limits for article attributes.
const (
	maxTitleLength     = 255
	maxCategoryLength  = 100
	maxTagLength       = 50
	maxThumbnailLength = 2048
)

// ValidateTitle checks that a title is present and within the length limit.
// Whitespace-only values count as absent.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return &ValidationError{Field: "title", Message: "is required"}
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return &ValidationError{
			Field:   "title",
			Message: fmt.Sprintf("must not exceed %d characters", maxTitleLength),
		}
	}
	return nil
}

// ValidateExcerpt checks that an excerpt is present.
func ValidateExcerpt(excerpt string) error {
	if strings.TrimSpace(excerpt) == "" {
		return &ValidationError{Field: "excerpt", Message: "is required"}
	}
	return nil
}

// ValidateContent checks that a content body is present.
func ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return &ValidationError{Field: "content", Message: "is required"}
	}
	return nil
}

// ValidateThumbnail validates the format of a thumbnail URL.
// It checks that the URL is well-formed, uses HTTP/HTTPS scheme, and has a host.
// Callers skip validation when the attribute is absent from the request.
func ValidateThumbnail(rawURL string) error {
	if rawURL == "" {
		return &ValidationError{Field: "thumbnail", Message: "must not be empty when present"}
	}
	// DoS protection: enforce maximum URL length
	if len(rawURL) > maxThumbnailLength {
		return &ValidationError{
			Field:   "thumbnail",
			Message: fmt.Sprintf("must not exceed %d characters", maxThumbnailLength),
		}
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return &ValidationError{Field: "thumbnail", Message: "must be a valid URL"}
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return &ValidationError{Field: "thumbnail", Message: "must use http or https scheme"}
	}
	if parsedURL.Host == "" {
		return &ValidationError{Field: "thumbnail", Message: "must have a valid host"}
	}
	return nil
}

// ValidateCategory checks that a category label is within the length limit.
func ValidateCategory(category string) error {
	if category == "" {
		return &ValidationError{Field: "category", Message: "must not be empty when present"}
	}
	if utf8.RuneCountInString(category) > maxCategoryLength {
		return &ValidationError{
			Field:   "category",
			Message: fmt.Sprintf("must not exceed %d characters", maxCategoryLength),
		}
	}
	return nil
}

// ValidateTags checks every tag in a tag list.
// Duplicates are permitted; each occurrence counts separately in aggregates.
func ValidateTags(tags []string) error {
	for i, tag := range tags {
		if tag == "" {
			return &ValidationError{
				Field:   fmt.Sprintf("tags.%d", i),
				Message: "must not be empty",
			}
		}
		if utf8.RuneCountInString(tag) > maxTagLength {
			return &ValidationError{
				Field:   fmt.Sprintf("tags.%d", i),
				Message: fmt.Sprintf("must not exceed %d characters", maxTagLength),
			}
		}
	}
	return nil
}

// ValidateReadTime checks that an estimated read time is a positive number of minutes.
func ValidateReadTime(readTime int) error {
	if readTime < 1 {
		return &ValidationError{Field: "read_time", Message: "must be at least 1"}
	}
	return nil
}
