package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/koard/DukeFarm-Admin-sub000/internal/domain"
	"github.com/koard/DukeFarm-Admin-sub000/internal/domain/models"
	"github.com/koard/DukeFarm-Admin-sub000/internal/forms"
	"github.com/koard/DukeFarm-Admin-sub000/internal/http/middleware"
	"github.com/koard/DukeFarm-Admin-sub000/internal/repositories"
	"github.com/koard/DukeFarm-Admin-sub000/internal/services"
)

// GET /api/feed-formulas?page&limit&search&fishType
func GetFeedFormulas(c *gin.Context) {
	q := parseListQuery(c, "fishType")
	formulas, total, err := repositories.RecipeRepository{}.List(q)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondPage(c, formulas, domain.NewPagination(q.Page, q.Limit, total))
}

// GET /api/feed-formulas/:id
func GetFeedFormulaByID(c *gin.Context) {
	formula, err := repositories.RecipeRepository{}.GetByID(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondData(c, http.StatusOK, formula)
}

func formulaFromRequest(req forms.CreateRecipeRequest) models.FeedFormula {
	return models.FeedFormula{
		Name:            req.Name,
		FishType:        req.FishType,
		Description:     req.Description,
		Ingredients:     req.Ingredients,
		Protein:         req.Protein,
		Fat:             req.Fat,
		Fiber:           req.Fiber,
		Moisture:        req.Moisture,
		Recommendations: req.Recommendations,
	}
}

// POST /api/feed-formulas
func CreateFeedFormula(c *gin.Context) {
	var req forms.CreateRecipeRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		RespondDomainError(c, err)
		return
	}

	formula, err := repositories.RecipeRepository{}.Create(formulaFromRequest(req))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondData(c, http.StatusCreated, formula)
}

// PUT /api/feed-formulas/:id replaces the whole row.
func UpdateFeedFormula(c *gin.Context) {
	var req forms.CreateRecipeRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		RespondDomainError(c, err)
		return
	}

	formula := formulaFromRequest(req)
	formula.ID = c.Param("id")
	updated, err := repositories.RecipeRepository{}.Update(formula)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondData(c, http.StatusOK, updated)
}

// DELETE /api/feed-formulas/:id
func DeleteFeedFormula(c *gin.Context) {
	if err := (repositories.RecipeRepository{}).Delete(c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /api/feed-formulas/:id/sheet returns a printable PDF.
func GetFeedFormulaSheet(c *gin.Context) {
	svc := services.SheetService{RequestID: middleware.GetRequestID(c)}
	pdf, filename, err := svc.GenerateSheet(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
