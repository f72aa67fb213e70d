package forms

import (
	"strings"

	"github.com/koard/DukeFarm-Admin-sub000/internal/domain"
	"github.com/koard/DukeFarm-Admin-sub000/internal/domain/models"
)

const minPasswordLen = 8

// CreateAdminRequest is the payload of the admin account create form.
type CreateAdminRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Role            string `json:"role"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"-"`
}

func (r CreateAdminRequest) Validate() error {
	if err := required("name", r.Name, "กรุณากรอกชื่อ"); err != nil {
		return err
	}
	if err := validEmail(r.Email); err != nil {
		return err
	}
	if err := required("role", r.Role, "กรุณาเลือกบทบาท"); err != nil {
		return err
	}
	return validPassword(r.Password, r.PasswordConfirm)
}

// UpdateAdminRequest carries the full replacement record. Password fields
// are optional; leaving them empty keeps the current password.
type UpdateAdminRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Role            string `json:"role"`
	Status          string `json:"status"`
	Password        string `json:"password,omitempty"`
	PasswordConfirm string `json:"-"`

	Snapshot models.AdminUser `json:"-"`
}

func (r UpdateAdminRequest) Validate() error {
	if err := required("name", r.Name, "กรุณากรอกชื่อ"); err != nil {
		return err
	}
	if err := validEmail(r.Email); err != nil {
		return err
	}
	if err := required("role", r.Role, "กรุณาเลือกบทบาท"); err != nil {
		return err
	}
	if r.Password != "" || r.PasswordConfirm != "" {
		if err := validPassword(r.Password, r.PasswordConfirm); err != nil {
			return err
		}
	} else if r.unchanged() {
		return ErrNoChanges
	}
	return nil
}

func (r UpdateAdminRequest) unchanged() bool {
	s := r.Snapshot
	return r.Name == s.Name && r.Email == s.Email && r.Role == s.Role && r.Status == s.Status
}

func validEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return domain.ValidationError{Field: "email", Msg: "กรุณากรอกอีเมล"}
	}
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 || !strings.Contains(email[at:], ".") {
		return domain.ValidationError{Field: "email", Msg: "รูปแบบอีเมลไม่ถูกต้อง"}
	}
	return nil
}

func validPassword(password, confirm string) error {
	if len(password) < minPasswordLen {
		return domain.ValidationError{Field: "password", Msg: "รหัสผ่านต้องมีอย่างน้อย 8 ตัวอักษร"}
	}
	if password != confirm {
		return domain.ValidationError{Field: "passwordConfirm", Msg: "รหัสผ่านไม่ตรงกัน"}
	}
	return nil
}
