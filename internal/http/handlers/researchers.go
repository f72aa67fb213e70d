package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/koard/DukeFarm-Admin-sub000/internal/domain"
	"github.com/koard/DukeFarm-Admin-sub000/internal/domain/models"
	"github.com/koard/DukeFarm-Admin-sub000/internal/forms"
	"github.com/koard/DukeFarm-Admin-sub000/internal/repositories"
)

// GET /api/researchers?page&limit&search
func GetResearchers(c *gin.Context) {
	q := parseListQuery(c)
	researchers, total, err := repositories.ResearcherRepository{}.List(q)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondPage(c, researchers, domain.NewPagination(q.Page, q.Limit, total))
}

// GET /api/researchers/:id
func GetResearcherByID(c *gin.Context) {
	researcher, err := repositories.ResearcherRepository{}.GetByID(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondData(c, http.StatusOK, researcher)
}

// POST /api/researchers
func CreateResearcher(c *gin.Context) {
	var req forms.CreateResearcherRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		RespondDomainError(c, err)
		return
	}

	researcher, err := repositories.ResearcherRepository{}.Create(models.Researcher{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Department: req.Department,
		Specialty:  req.Specialty,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondData(c, http.StatusCreated, researcher)
}

// PUT /api/researchers/:id replaces the whole row.
func UpdateResearcher(c *gin.Context) {
	var req forms.CreateResearcherRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		RespondDomainError(c, err)
		return
	}

	researcher, err := repositories.ResearcherRepository{}.Update(models.Researcher{
		ID:         c.Param("id"),
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Department: req.Department,
		Specialty:  req.Specialty,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondData(c, http.StatusOK, researcher)
}

// DELETE /api/researchers/:id
func DeleteResearcher(c *gin.Context) {
	if err := (repositories.ResearcherRepository{}).Delete(c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
