package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/koard/DukeFarm-Admin-sub000/internal/domain"
	"github.com/koard/DukeFarm-Admin-sub000/internal/domain/models"
	"github.com/koard/DukeFarm-Admin-sub000/internal/forms"
	"github.com/koard/DukeFarm-Admin-sub000/internal/http/middleware"
	"github.com/koard/DukeFarm-Admin-sub000/internal/repositories"
	"github.com/koard/DukeFarm-Admin-sub000/internal/utils"
)

// GET /api/farmers?page&limit&search&farmType
func GetFarmers(c *gin.Context) {
	q := parseListQuery(c, "farmType")
	farmers, total, err := repositories.FarmerRepository{}.List(q)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondPage(c, farmers, domain.NewPagination(q.Page, q.Limit, total))
}

// GET /api/farmers/:id
func GetFarmerByID(c *gin.Context) {
	farmer, err := repositories.FarmerRepository{}.GetByID(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondData(c, http.StatusOK, farmer)
}

// POST /api/farmers
func CreateFarmer(c *gin.Context) {
	var req forms.CreateFarmerRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		RespondDomainError(c, err)
		return
	}

	farmer, err := repositories.FarmerRepository{}.Create(models.Farmer{
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		FarmName:  req.FarmName,
		FarmType:  req.FarmType,
		Province:  req.Province,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		PondCount: req.PondCount,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "farmer", "create", "id="+farmer.ID)
	RespondData(c, http.StatusCreated, farmer)
}

// PUT /api/farmers/:id replaces the whole row.
func UpdateFarmer(c *gin.Context) {
	var req forms.CreateFarmerRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		RespondDomainError(c, err)
		return
	}

	farmer, err := repositories.FarmerRepository{}.Update(models.Farmer{
		ID:        c.Param("id"),
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		FarmName:  req.FarmName,
		FarmType:  req.FarmType,
		Province:  req.Province,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		PondCount: req.PondCount,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondData(c, http.StatusOK, farmer)
}

// DELETE /api/farmers/:id
func DeleteFarmer(c *gin.Context) {
	id := c.Param("id")
	if err := (repositories.FarmerRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "farmer", "delete", "id="+id)
	c.Status(http.StatusNoContent)
}
