package catalog

import (
	"net/url"
	"strconv"
)

// DefaultPageSize matches the card grid on the catalog pages.
const DefaultPageSize = 6

// MaxPageSize caps a client-requested page size.
const MaxPageSize = 50

// Page is one page of a filtered collection plus the counts the client
// needs to render pagination controls.
type Page[T any] struct {
	Items      []T  `json:"items"`
	Page       int  `json:"page"`
	PageSize   int  `json:"pageSize"`
	TotalItems int  `json:"totalItems"`
	TotalPages int  `json:"totalPages"`
	HasPrev    bool `json:"hasPrev"`
	HasNext    bool `json:"hasNext"`
}

// Paginate slices items into the requested 1-based page. Pages beyond the
// end return an empty item list; page and size are clamped to sane values.
func Paginate[T any](items []T, page, size int) Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	if page <= 0 {
		page = 1
	}

	total := len(items)
	totalPages := (total + size - 1) / size
	if totalPages == 0 {
		totalPages = 1
	}

	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	return Page[T]{
		Items:      items[start:end],
		Page:       page,
		PageSize:   size,
		TotalItems: total,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}
}

// PageFromQuery parses page and pageSize query parameters.
func PageFromQuery(q url.Values) (page, size int) {
	page = 1
	size = DefaultPageSize
	if v, err := strconv.Atoi(q.Get("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(q.Get("pageSize")); err == nil && v > 0 {
		size = v
	}
	return page, size
}
