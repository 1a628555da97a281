// Package pagination splits ordered slices into fixed-size pages.
//
// Bad input never fails: a page number that is not a positive integer
// falls back to the first page, and one past the end falls back to the
// last page.
package pagination

import "strconv"

// DefaultPageSize is the page size used by the public post list.
const DefaultPageSize = 3

// Page is one window over an ordered sequence.
type Page[T any] struct {
	Items      []T
	Number     int
	TotalPages int
}

// HasNext reports whether a page follows this one.
func (p Page[T]) HasNext() bool { return p.Number < p.TotalPages }

// HasPrev reports whether a page precedes this one.
func (p Page[T]) HasPrev() bool { return p.Number > 1 }

// NextPage returns the following page number.
func (p Page[T]) NextPage() int { return p.Number + 1 }

// PrevPage returns the preceding page number.
func (p Page[T]) PrevPage() int { return p.Number - 1 }

// Paginate returns the requested page of items. rawPage is taken as it
// arrived in the query string; anything that does not parse as a page
// number ≥ 1 yields page 1, and a number past the last page yields the
// last page. An empty sequence still produces a single empty page.
func Paginate[T any](items []T, pageSize int, rawPage string) Page[T] {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	total := (len(items) + pageSize - 1) / pageSize
	if total < 1 {
		total = 1
	}

	number, err := strconv.Atoi(rawPage)
	if err != nil || number < 1 {
		number = 1
	}
	if number > total {
		number = total
	}

	start := (number - 1) * pageSize
	end := start + pageSize
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	return Page[T]{
		Items:      items[start:end],
		Number:     number,
		TotalPages: total,
	}
}
