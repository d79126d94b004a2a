// Package pagination slices ordered collections into fixed-size pages
package pagination

// Page is a single page of a larger ordered collection
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Paginate returns the records that belong to the 1-based page of the given size.
//
// It never modifies records. A page outside the collection, a page below 1 or a size below 1
// yields an empty slice, so concatenating pages 1..TotalPages reproduces records exactly.
func Paginate[T any](records []T, page, size int) []T {
	if page < 1 || size < 1 {
		return []T{}
	}

	start := (page - 1) * size
	if start >= len(records) || start < 0 {
		return []T{}
	}
	end := start + size
	if end > len(records) || end < start {
		end = len(records)
	}

	out := make([]T, end-start)
	copy(out, records[start:end])
	return out
}

// TotalPages returns the number of pages needed to hold total records
func TotalPages(total, size int) int {
	if size < 1 || total <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// NewPage builds a Page from the full record list
func NewPage[T any](records []T, page, size int) Page[T] {
	return Page[T]{
		Items:      Paginate(records, page, size),
		Page:       page,
		PageSize:   size,
		Total:      len(records),
		TotalPages: TotalPages(len(records), size),
	}
}

// Normalize applies defaults to user supplied page and size values.
// Page defaults to 1, size to defaultSize, and size is capped at maxSize.
func Normalize(page, size, defaultSize, maxSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = defaultSize
	}
	if maxSize > 0 && size > maxSize {
		size = maxSize
	}
	return page, size
}
