// Package repositories wraps all MySQL access. Each repository carries an
// optional DB handle that falls back to the shared connection, so tests can
// inject sqlmock without touching globals.
package repositories

import (
	"database/sql"
	"strings"

	"github.com/koard/DukeFarm-Admin-sub000/internal/config"
	"github.com/koard/DukeFarm-Admin-sub000/internal/domain"
)

func sharedDB(db *sql.DB) *sql.DB {
	if db != nil {
		return db
	}
	return config.DB
}

// limitOffset normalizes paging params: page >= 1, limit defaults to 10.
func limitOffset(q domain.ListQuery) (limit, offset int) {
	limit = q.Limit
	if limit <= 0 {
		limit = 10
	}
	page := q.Page
	if page < 1 {
		page = 1
	}
	return limit, (page - 1) * limit
}

// likePattern builds a contains-match pattern from trimmed user input.
func likePattern(s string) string {
	return "%" + strings.TrimSpace(s) + "%"
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
