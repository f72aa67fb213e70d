package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/koard/DukeFarm-Admin-sub000/internal/services"
)

// GET /api/dashboard/groups/:groupType?year=
func GetDashboardGroups(c *gin.Context) {
	year := 0
	if v, err := strconv.Atoi(c.Query("year")); err == nil && v > 0 {
		year = v
	}

	group, err := services.DashboardService{}.Groups(c.Param("groupType"), year)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondData(c, http.StatusOK, group)
}
