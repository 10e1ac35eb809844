package page

import "fmt"

// DefaultSize is the rows-per-page default.
const DefaultSize = 25

// Request is a zero-based page selection.
type Request struct {
	number int
	size   int
}

// New validates and creates a page request. Size 0 takes the default.
func New(number, size int) (Request, error) {
	if size == 0 {
		size = DefaultSize
	}
	if size < 0 {
		return Request{}, fmt.Errorf("page size must be positive, got %d", size)
	}
	if number < 0 {
		return Request{}, fmt.Errorf("page number must not be negative, got %d", number)
	}
	return Request{number: number, size: size}, nil
}

// Number returns the zero-based page index.
func (r Request) Number() int { return r.number }

// Size returns the rows-per-page bound.
func (r Request) Size() int { return r.size }

// Offset returns the record offset implied by the page selection.
func (r Request) Offset() int { return r.number * r.size }
