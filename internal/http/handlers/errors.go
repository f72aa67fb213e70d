package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/koard/DukeFarm-Admin-sub000/internal/domain"
	"github.com/koard/DukeFarm-Admin-sub000/internal/http/middleware"
)

// RespondDomainError maps domain errors to HTTP responses. Internal
// failures are logged server-side and never leak details to the client.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		RespondError(c, http.StatusBadRequest, err.Error(), nil)
	case domain.IsNotFound(err):
		RespondError(c, http.StatusNotFound, err.Error(), nil)
	case domain.IsConflict(err):
		RespondError(c, http.StatusConflict, err.Error(), nil)
	case domain.IsUnauthorized(err):
		RespondError(c, http.StatusUnauthorized, err.Error(), nil)
	default:
		log.Printf("[HTTP] request_id=%s internal error: %v", middleware.GetRequestID(c), err)
		RespondError(c, http.StatusInternalServerError, "เกิดข้อผิดพลาดภายในระบบ", nil)
	}
}
