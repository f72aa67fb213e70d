package domain

import "math"

// Pagination carries paging metadata in the shape every list endpoint and
// every list screen agree on.
type Pagination struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalItems   int `json:"totalItems"`
	ItemsPerPage int `json:"itemsPerPage"`
}

// NewPagination computes totalPages as ceil(totalItems/itemsPerPage).
func NewPagination(page, perPage, totalItems int) Pagination {
	if perPage <= 0 {
		perPage = 1
	}
	if totalItems < 0 {
		totalItems = 0
	}
	return Pagination{
		CurrentPage:  page,
		TotalPages:   int(math.Ceil(float64(totalItems) / float64(perPage))),
		TotalItems:   totalItems,
		ItemsPerPage: perPage,
	}
}

// Paginated couples one page of items with its pagination metadata.
type Paginated[T any] struct {
	Items      []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// ListQuery is the transient query every list fetch is built from.
// Zero-valued fields are omitted from the query string, never sent empty.
type ListQuery struct {
	Page    int
	Limit   int
	Search  string
	Filters map[string]string
}

// RequestContext carries the authenticated admin on server-side requests.
type RequestContext struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
}
