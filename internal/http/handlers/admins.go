package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/koard/DukeFarm-Admin-sub000/internal/domain"
	"github.com/koard/DukeFarm-Admin-sub000/internal/domain/models"
	"github.com/koard/DukeFarm-Admin-sub000/internal/forms"
	"github.com/koard/DukeFarm-Admin-sub000/internal/repositories"
)

// GET /api/admins?page&limit&search&role
func GetAdmins(c *gin.Context) {
	q := parseListQuery(c, "role")
	admins, total, err := repositories.UserRepository{}.List(q)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondPage(c, admins, domain.NewPagination(q.Page, q.Limit, total))
}

// GET /api/admins/:id
func GetAdminByID(c *gin.Context) {
	admin, err := repositories.UserRepository{}.GetByID(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondData(c, http.StatusOK, admin)
}

// POST /api/admins
func CreateAdmin(c *gin.Context) {
	var req forms.CreateAdminRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	// PasswordConfirm is a client-side concern; the API treats the single
	// password field as already confirmed.
	req.PasswordConfirm = req.Password
	if err := req.Validate(); err != nil {
		RespondDomainError(c, err)
		return
	}

	repo := repositories.UserRepository{}
	if n, err := repo.CountByEmail(req.Email, ""); err != nil {
		RespondDomainError(c, err)
		return
	} else if n > 0 {
		RespondDomainError(c, domain.ConflictError{Resource: "admin", Msg: "มีอีเมลนี้ในระบบแล้ว"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		RespondDomainError(c, domain.InternalError{Err: err})
		return
	}

	admin, err := repo.Create(models.AdminUser{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	}, string(hash))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondData(c, http.StatusCreated, admin)
}

// PUT /api/admins/:id replaces the whole row; an empty password keeps the current one.
func UpdateAdmin(c *gin.Context) {
	var req forms.UpdateAdminRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	req.PasswordConfirm = req.Password

	repo := repositories.UserRepository{}
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

	if n, err := repo.CountByEmail(req.Email, id); err != nil {
		RespondDomainError(c, err)
		return
	} else if n > 0 {
		RespondDomainError(c, domain.ConflictError{Resource: "admin", Msg: "มีอีเมลนี้ในระบบแล้ว"})
		return
	}

	var hash string
	if req.Password != "" {
		raw, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			RespondDomainError(c, domain.InternalError{Err: err})
			return
		}
		hash = string(raw)
	}

	admin, err := repo.Update(models.AdminUser{
		UserID: id,
		Name:   req.Name,
		Email:  req.Email,
		Role:   req.Role,
		Status: req.Status,
	}, hash)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondData(c, http.StatusOK, admin)
}

// DELETE /api/admins/:id
func DeleteAdmin(c *gin.Context) {
	if err := (repositories.UserRepository{}).Delete(c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
