package domain

// PageSize is the number of records on one page of a listing.
const PageSize = 10

// Paginate returns the 1-based page of items. Pages outside the sequence,
// including page numbers below 1, are empty rather than an error.
func Paginate[T any](items []T, page int) []T {
	if page < 1 {
		return []T{}
	}
	start := (page - 1) * PageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
