package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/koard/DukeFarm-Admin-sub000/internal/domain"
	"github.com/koard/DukeFarm-Admin-sub000/internal/domain/models"
	"github.com/koard/DukeFarm-Admin-sub000/internal/repositories"
	"github.com/koard/DukeFarm-Admin-sub000/internal/services"
)

// GET /api/ponds/:id/active-cycle
func GetActiveCycle(c *gin.Context) {
	cycle, err := repositories.CycleRepository{}.ActiveByPond(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondData(c, http.StatusOK, cycle)
}

// GET /api/ponds/:id/cycles returns the full history, newest first.
func GetCycles(c *gin.Context) {
	cycles, err := repositories.CycleRepository{}.ListByPond(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondData(c, http.StatusOK, cycles)
}

// GET /api/ponds/:id/cycle-count
func GetCycleCount(c *gin.Context) {
	pondID := c.Param("id")
	count, err := repositories.CycleRepository{}.CountByPond(pondID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondData(c, http.StatusOK, models.CycleCount{PondID: pondID, Count: count})
}

type startCycleRequest struct {
	Species    string `json:"species"`
	StockCount int    `json:"stockCount"`
}

// POST /api/ponds/:id/start-cycle
func StartCycle(c *gin.Context) {
	var req startCycleRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Species == "" {
		RespondDomainError(c, domain.ValidationError{Field: "species", Msg: "กรุณาระบุชนิดสัตว์น้ำ"})
		return
	}
	if req.StockCount <= 0 {
		RespondDomainError(c, domain.ValidationError{Field: "stockCount", Msg: "จำนวนปล่อยต้องมากกว่าศูนย์"})
		return
	}

	cycle, err := services.CycleService{}.Start(c.Param("id"), req.Species, req.StockCount)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondData(c, http.StatusCreated, cycle)
}

// POST /api/ponds/:id/end-cycle
func EndCycle(c *gin.Context) {
	cycle, err := services.CycleService{}.End(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondData(c, http.StatusOK, cycle)
}
