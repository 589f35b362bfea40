package pagination

// CalculateOffset calculates the database OFFSET value based on page number and size.
// Page numbers are 1-based, so page 1 has offset 0.
//
// Formula: offset = (page - 1) * perPage
func CalculateOffset(page, perPage int) int {
	return (page - 1) * perPage
}

// CalculateLastPage calculates the last page number for a total item count.
// Uses ceiling division so the final partial page is included.
//
// Special cases:
//   - If total is 0, returns 1 (an empty collection is page 1 of 1)
//
// Examples:
//   - Total 0, PerPage 15 -> 1
//   - Total 15, PerPage 15 -> 1
//   - Total 16, PerPage 15 -> 2
func CalculateLastPage(total int64, perPage int) int {
	if total == 0 {
		return 1
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}
