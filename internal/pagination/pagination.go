// Package pagination slices ordered listings into fixed-size pages.
package pagination

import "strconv"

// PageSize is the number of items on every listing page.
const PageSize = 10

// Page describes one page of an ordered listing.
type Page struct {
	Number  int
	Pages   int
	Total   int64
	HasNext bool
	HasPrev bool
}

// New computes the page for a total item count and a raw ?page= value.
// Semantics: missing or non-numeric values mean page 1, values below 1
// clamp to 1, values past the end clamp to the last page. An empty
// listing still has one (empty) page.
func New(total int64, raw string) Page {
	pages := int((total + PageSize - 1) / PageSize)
	if pages < 1 {
		pages = 1
	}

	number, err := strconv.Atoi(raw)
	if err != nil || number < 1 {
		number = 1
	}
	if number > pages {
		number = pages
	}

	return Page{
		Number:  number,
		Pages:   pages,
		Total:   total,
		HasNext: number < pages,
		HasPrev: number > 1,
	}
}

// Offset returns the query offset for this page.
func (p Page) Offset() int {
	return (p.Number - 1) * PageSize
}

// Next returns the following page number, valid only when HasNext.
func (p Page) Next() int { return p.Number + 1 }

// Prev returns the preceding page number, valid only when HasPrev.
func (p Page) Prev() int { return p.Number - 1 }
