// Package listing implements the shared list-screen machinery: pure
// pagination math, the client-side filter fallback, and a headless
// controller that owns one screen's collection state.
package listing

import (
	"github.com/koard/DukeFarm-Admin-sub000/internal/domain"
)

// Paginate slices items for one page. Page numbers are 1-based; a page
// past the end yields an empty slice with intact totals.
func Paginate[T any](items []T, page, size int) domain.Paginated[T] {
	if size <= 0 {
		size = 1
	}
	if page < 1 {
		page = 1
	}

	total := len(items)
	start := (page - 1) * size
	end := start + size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	out := make([]T, end-start)
	copy(out, items[start:end])

	return domain.Paginated[T]{
		Items:      out,
		Pagination: domain.NewPagination(page, size, total),
	}
}

// PaginateAndFilter applies pred to the full item set, re-derives totals
// from the filtered count, and slices the requested page. This is the one
// shared implementation of the client-side filter fallback every list
// screen uses when a filter the server does not support is active.
func PaginateAndFilter[T any](items []T, pred func(T) bool, page, size int) domain.Paginated[T] {
	if pred == nil {
		return Paginate(items, page, size)
	}
	filtered := make([]T, 0, len(items))
	for _, it := range items {
		if pred(it) {
			filtered = append(filtered, it)
		}
	}
	return Paginate(filtered, page, size)
}
