package entity

import "strings"

// Page mirrors the backend's paginated envelope.
type Page[T any] struct {
	Content       []T   `json:"content" validate:"dive"`
	TotalElements int64 `json:"totalElements" validate:"gte=0"`
	TotalPages    int   `json:"totalPages" validate:"gte=0"`
	Number        int   `json:"number" validate:"gte=0"`
	Size          int   `json:"size" validate:"gte=0"`
}

func (p Page[T]) HasNext() bool { return p.Number+1 < p.TotalPages }
func (p Page[T]) HasPrev() bool { return p.Number > 0 }

// PageRequest carries paging and sort for list calls. Zero values leave the
// backend defaults in place.
type PageRequest struct {
	Page    int
	Size    int
	SortBy  string
	SortDir string
}

// Descending reports whether SortDir asks for reverse order.
func (r PageRequest) Descending() bool { return strings.EqualFold(r.SortDir, "desc") }
