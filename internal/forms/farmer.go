package forms

import (
	"github.com/koard/DukeFarm-Admin-sub000/internal/domain/models"
)

// CreateFarmerRequest is the payload of the farmer registration form.
type CreateFarmerRequest struct {
	Name      string   `json:"name"`
	Phone     string   `json:"phone"`
	Email     string   `json:"email,omitempty"`
	FarmName  string   `json:"farmName"`
	FarmType  string   `json:"farmType"`
	Province  string   `json:"province"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	PondCount int      `json:"pondCount"`
}

func (r CreateFarmerRequest) Validate() error {
	if err := required("name", r.Name, "กรุณากรอกชื่อเกษตรกร"); err != nil {
		return err
	}
	if err := required("phone", r.Phone, "กรุณากรอกเบอร์โทรศัพท์"); err != nil {
		return err
	}
	if err := numeric("phone", r.Phone); err != nil {
		return err
	}
	if err := required("farmName", r.FarmName, "กรุณากรอกชื่อฟาร์ม"); err != nil {
		return err
	}
	if err := required("farmType", r.FarmType, "กรุณาเลือกประเภทฟาร์ม"); err != nil {
		return err
	}
	if r.Email != "" {
		if err := validEmail(r.Email); err != nil {
			return err
		}
	}
	return nil
}

// UpdateFarmerRequest sends the complete updated record (full-replace).
type UpdateFarmerRequest struct {
	CreateFarmerRequest
	Snapshot models.Farmer `json:"-"`
}

func (r UpdateFarmerRequest) Validate() error {
	if err := r.CreateFarmerRequest.Validate(); err != nil {
		return err
	}
	if r.unchanged() {
		return ErrNoChanges
	}
	return nil
}

func (r UpdateFarmerRequest) unchanged() bool {
	s := r.Snapshot
	return r.Name == s.Name && r.Phone == s.Phone && r.Email == s.Email &&
		r.FarmName == s.FarmName && r.FarmType == s.FarmType &&
		r.Province == s.Province && r.PondCount == s.PondCount &&
		equalCoord(r.Latitude, s.Latitude) && equalCoord(r.Longitude, s.Longitude)
}

func equalCoord(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
