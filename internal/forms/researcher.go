package forms

import (
	"github.com/koard/DukeFarm-Admin-sub000/internal/domain/models"
)

// CreateResearcherRequest is the payload of the researcher create form.
type CreateResearcherRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	Department string `json:"department"`
	Specialty  string `json:"specialty,omitempty"`
}

func (r CreateResearcherRequest) Validate() error {
	if err := required("name", r.Name, "กรุณากรอกชื่อนักวิจัย"); err != nil {
		return err
	}
	if err := validEmail(r.Email); err != nil {
		return err
	}
	if err := required("department", r.Department, "กรุณากรอกหน่วยงาน"); err != nil {
		return err
	}
	if r.Phone != "" {
		if err := numeric("phone", r.Phone); err != nil {
			return err
		}
	}
	return nil
}

type UpdateResearcherRequest struct {
	CreateResearcherRequest
	Snapshot models.Researcher `json:"-"`
}

func (r UpdateResearcherRequest) Validate() error {
	if err := r.CreateResearcherRequest.Validate(); err != nil {
		return err
	}
	if r.unchanged() {
		return ErrNoChanges
	}
	return nil
}

func (r UpdateResearcherRequest) unchanged() bool {
	s := r.Snapshot
	return r.Name == s.Name && r.Email == s.Email && r.Phone == s.Phone &&
		r.Department == s.Department && r.Specialty == s.Specialty
}
