package client

import (
	"net/url"
	"strconv"

	"github.com/koard/DukeFarm-Admin-sub000/internal/domain"
)

// listQueryString encodes a ListQuery. Zero-valued fields are omitted
// entirely, never sent as empty parameters.
func listQueryString(q domain.ListQuery) string {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	for key, val := range q.Filters {
		if key != "" && val != "" {
			v.Set(key, val)
		}
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}
