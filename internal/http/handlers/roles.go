package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/koard/DukeFarm-Admin-sub000/internal/domain"
	"github.com/koard/DukeFarm-Admin-sub000/internal/domain/models"
	"github.com/koard/DukeFarm-Admin-sub000/internal/forms"
	"github.com/koard/DukeFarm-Admin-sub000/internal/repositories"
)

// GET /api/roles
func GetRoles(c *gin.Context) {
	roles, err := repositories.RoleRepository{}.ListAll()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondData(c, http.StatusOK, roles)
}

// POST /api/roles
func CreateRole(c *gin.Context) {
	var req forms.CreateRoleRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		RespondDomainError(c, err)
		return
	}

	repo := repositories.RoleRepository{}
	if n, err := repo.CountByName(req.Name, ""); err != nil {
		RespondDomainError(c, err)
		return
	} else if n > 0 {
		RespondDomainError(c, domain.ConflictError{Resource: "role", Msg: "มีชื่อบทบาทนี้อยู่แล้ว"})
		return
	}

	role, err := repo.Create(models.Role{
		Name:        req.Name,
		Description: req.Description,
		Permissions: req.Permissions,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondData(c, http.StatusCreated, role)
}

// PUT /api/roles/:id
func UpdateRole(c *gin.Context) {
	var req forms.UpdateRoleRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	repo := repositories.RoleRepository{}
	id := c.Param("id")

	snapshot, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	req.Snapshot = snapshot

	if err := req.Validate(); err != nil {
		if err == forms.ErrNoChanges {
			RespondError(c, http.StatusBadRequest, err.Error(), nil)
			return
		}
		RespondDomainError(c, err)
		return
	}

	if n, err := repo.CountByName(req.Name, id); err != nil {
		RespondDomainError(c, err)
		return
	} else if n > 0 {
		RespondDomainError(c, domain.ConflictError{Resource: "role", Msg: "มีชื่อบทบาทนี้อยู่แล้ว"})
		return
	}

	role, err := repo.Update(models.Role{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Permissions: req.Permissions,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondData(c, http.StatusOK, role)
}

// DELETE /api/roles/:id
func DeleteRole(c *gin.Context) {
	if err := (repositories.RoleRepository{}).Delete(c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
