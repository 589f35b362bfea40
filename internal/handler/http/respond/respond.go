// Package respond provides utilities for sending HTTP responses in JSON format.
// It includes error handling with sanitization to prevent leaking sensitive information.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Headers are already sent; log only
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Message writes a JSON response carrying a single human-readable message.
func Message(w http.ResponseWriter, code int, msg string) {
	JSON(w, code, map[string]string{"message": msg})
}

// FieldError writes a validation error response with field-level detail,
// mirroring the usual 422 envelope: a summary message plus a per-field map.
func FieldError(w http.ResponseWriter, field, message string) {
	JSON(w, http.StatusUnprocessableEntity, map[string]any{
		"message": "the given data was invalid",
		"errors":  map[string][]string{field: {message}},
	})
}

// safeErrorSubstrings marks error messages that are safe to return verbatim:
// validation failures and caller-input problems, never internal detail.
var safeErrorSubstrings = []string{
	"required",
	"invalid",
	"not found",
	"must be",
	"must not",
	"must use",
	"must have",
	"cannot be",
}

// SafeError sanitizes error messages before returning them to users.
// Internal errors (e.g. database errors) are returned as "internal server
// error" with details logged for debugging. Caller-input errors (validation,
// not-found) are returned as-is.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	msg := err.Error()
	isSafe := false
	lowerMsg := strings.ToLower(msg)
	for _, safe := range safeErrorSubstrings {
		if strings.Contains(lowerMsg, safe) {
			isSafe = true
			break
		}
	}

	// 5xx is always treated as internal regardless of message content
	if code >= 500 {
		isSafe = false
	}

	if isSafe {
		JSON(w, code, map[string]string{"error": msg})
		return
	}

	slog.Default().Error("internal server error",
		slog.String("status", http.StatusText(code)),
		slog.Int("code", code),
		slog.String("error", SanitizeError(err)))
	JSON(w, code, map[string]string{"error": "internal server error"})
}
