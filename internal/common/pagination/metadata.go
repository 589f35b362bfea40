package pagination

// Metadata contains pagination metadata included in list responses.
// The field names mirror the envelope exposed by the API: total matching
// count, current 1-based page, page size, and the last page number.
type Metadata struct {
	Total       int64 `json:"total"`
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	LastPage    int   `json:"last_page"`
}
