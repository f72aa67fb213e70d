package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/koard/DukeFarm-Admin-sub000/internal/domain"
	"github.com/koard/DukeFarm-Admin-sub000/internal/http/middleware"
	"github.com/koard/DukeFarm-Admin-sub000/internal/utils"
)

// RespondError sends the standard error payload. "message" is the contract
// field the dashboard client unwraps; request_id rides along for tracing.
func RespondError(c *gin.Context, status int, message string, errs []string) {
	payload := gin.H{
		"message":    message,
		"request_id": middleware.GetRequestID(c),
	}
	if len(errs) > 0 {
		payload["errors"] = errs
	}
	c.JSON(status, payload)
}

// RespondData wraps a success body in the data envelope.
func RespondData(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"data": data})
}

// RespondPage emits one page of a paginated listing.
func RespondPage(c *gin.Context, items any, p domain.Pagination) {
	c.JSON(http.StatusOK, gin.H{"data": items, "pagination": p})
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "ไม่มีข้อมูลในคำขอ", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "รูปแบบข้อมูลไม่ถูกต้อง", []string{err.Error()})
		return false
	}
	return true
}

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// parseListQuery reads the standard paging params plus the named filter
// keys. Absent params stay zero-valued and are never forwarded as empty.
func parseListQuery(c *gin.Context, filterKeys ...string) domain.ListQuery {
	q := domain.ListQuery{Page: 1, Limit: defaultPageSize}

	if v, err := strconv.Atoi(c.Query("page")); err == nil && v >= 1 {
		q.Page = v
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v >= 1 {
		if v > maxPageSize {
			v = maxPageSize
		}
		q.Limit = v
	}
	q.Search = utils.NormalizeSpace(c.Query("search"))

	for _, key := range filterKeys {
		if v := strings.TrimSpace(c.Query(key)); v != "" {
			if q.Filters == nil {
				q.Filters = map[string]string{}
			}
			q.Filters[key] = v
		}
	}
	return q
}
