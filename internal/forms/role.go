package forms

import (
	"strings"

	"github.com/koard/DukeFarm-Admin-sub000/internal/domain"
	"github.com/koard/DukeFarm-Admin-sub000/internal/domain/models"
)

// CreateRoleRequest is the payload of the role create form. Existing is the
// in-memory role collection the screen already holds; the duplicate-name
// check runs against it before any network call.
type CreateRoleRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Permissions []string `json:"permissions"`

	Existing []models.Role `json:"-"`
}

func (r CreateRoleRequest) Validate() error {
	if err := required("name", r.Name, "กรุณากรอกชื่อบทบาท"); err != nil {
		return err
	}
	if len(r.Permissions) == 0 {
		return domain.ValidationError{Field: "permissions", Msg: "ต้องเลือกสิทธิ์อย่างน้อย 1 รายการ"}
	}
	if duplicateName(r.Existing, r.Name, "") {
		return domain.ValidationError{Field: "name", Msg: "มีชื่อบทบาทนี้อยู่แล้ว"}
	}
	return nil
}

// UpdateRoleRequest excludes the record under edit from the duplicate check.
type UpdateRoleRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Permissions []string `json:"permissions"`

	Existing []models.Role `json:"-"`
	Snapshot models.Role   `json:"-"`
}

func (r UpdateRoleRequest) Validate() error {
	if err := required("name", r.Name, "กรุณากรอกชื่อบทบาท"); err != nil {
		return err
	}
	if len(r.Permissions) == 0 {
		return domain.ValidationError{Field: "permissions", Msg: "ต้องเลือกสิทธิ์อย่างน้อย 1 รายการ"}
	}
	if duplicateName(r.Existing, r.Name, r.Snapshot.ID) {
		return domain.ValidationError{Field: "name", Msg: "มีชื่อบทบาทนี้อยู่แล้ว"}
	}
	if r.unchanged() {
		return ErrNoChanges
	}
	return nil
}

func (r UpdateRoleRequest) unchanged() bool {
	s := r.Snapshot
	if r.Name != s.Name || r.Description != s.Description || len(r.Permissions) != len(s.Permissions) {
		return false
	}
	for i, p := range r.Permissions {
		if p != s.Permissions[i] {
			return false
		}
	}
	return true
}

// duplicateName is case-insensitive and skips the record identified by
// excludeID (the one being edited).
func duplicateName(roles []models.Role, name, excludeID string) bool {
	needle := strings.ToLower(strings.TrimSpace(name))
	for _, role := range roles {
		if excludeID != "" && role.ID == excludeID {
			continue
		}
		if strings.ToLower(strings.TrimSpace(role.Name)) == needle {
			return true
		}
	}
	return false
}
