package catalog

import (
	"slices"

	"github.com/dmitrymomot/salesdesk/pkg/sanitizer"
)

// DefaultPageSize is used when a request names no size or an unsupported one.
const DefaultPageSize = 10

// PageSizes lists the sizes offered in the page-size selector.
var PageSizes = []int{10, 25, 50, 100}

// Page is one window of rows.
type Page[T any] struct {
	Rows   []T
	Number int
	Size   int
	Count  int
	Total  int
}

// HasPrev reports whether a previous page exists.
func (p Page[T]) HasPrev() bool { return p.Number > 1 }

// HasNext reports whether a following page exists.
func (p Page[T]) HasNext() bool { return p.Number < p.Count }

// NormalizeSize maps size onto PageSizes, falling back to DefaultPageSize.
func NormalizeSize(size int) int {
	if slices.Contains(PageSizes, size) {
		return size
	}
	return DefaultPageSize
}

// PageCount is at least 1, even for zero rows.
func PageCount(total, size int) int {
	size = NormalizeSize(size)
	return max((total+size-1)/size, 1)
}

// Window normalises size, clamps number into [1, PageCount] and returns the
// row range [start, end) that page covers out of total rows.
func Window(total, number, size int) (page, pageSize, start, end int) {
	pageSize = NormalizeSize(size)
	page = sanitizer.Clamp(number, 1, PageCount(total, pageSize))
	start = min((page-1)*pageSize, total)
	end = min(start+pageSize, total)
	return page, pageSize, start, end
}

// Paginate slices rows into the requested page.
func Paginate[T any](rows []T, number, size int) Page[T] {
	number, size, start, end := Window(len(rows), number, size)
	return Page[T]{
		Rows:   rows[start:end],
		Number: number,
		Size:   size,
		Count:  PageCount(len(rows), size),
		Total:  len(rows),
	}
}
