package pagination

// Response is the generic page envelope returned by list endpoints.
// T is the type of data items (e.g. article.DTO). The embedded Metadata
// fields are flattened into the top level of the JSON object, yielding the
// standard offset-pagination envelope:
//
//	{"data": [...], "total": 16, "current_page": 2, "per_page": 15, "last_page": 2}
type Response[T any] struct {
	Data []T `json:"data"`
	Metadata
}

// NewResponse creates a new page envelope with data and metadata.
func NewResponse[T any](data []T, metadata Metadata) Response[T] {
	return Response[T]{
		Data:     data,
		Metadata: metadata,
	}
}
