package forms

import (
	"github.com/koard/DukeFarm-Admin-sub000/internal/domain/models"
	"github.com/koard/DukeFarm-Admin-sub000/internal/utils"
)

// CreateRecordRequest is the payload of the farm activity record form.
type CreateRecordRequest struct {
	PondID     string `json:"pondId"`
	FarmerID   string `json:"farmerId"`
	RecordType string `json:"recordType"`
	Amount     string `json:"amount,omitempty"`
	Unit       string `json:"unit,omitempty"`
	Note       string `json:"note,omitempty"`
	RecordedAt string `json:"recordedAt"`
}

func (r CreateRecordRequest) Validate() error {
	if err := required("pondId", r.PondID, "กรุณาระบุบ่อ"); err != nil {
		return err
	}
	if err := required("farmerId", r.FarmerID, "กรุณาระบุเกษตรกร"); err != nil {
		return err
	}
	if err := required("recordType", r.RecordType, "กรุณาเลือกประเภทข้อมูล"); err != nil {
		return err
	}
	if err := numeric("amount", r.Amount); err != nil {
		return err
	}
	if err := required("recordedAt", r.RecordedAt, "กรุณาระบุวันที่บันทึก"); err != nil {
		return err
	}
	if _, err := utils.ParseISO(r.RecordedAt); err != nil {
		return domainDateError()
	}
	return nil
}

type UpdateRecordRequest struct {
	CreateRecordRequest
	Snapshot models.FarmRecord `json:"-"`
}

func (r UpdateRecordRequest) Validate() error {
	if err := r.CreateRecordRequest.Validate(); err != nil {
		return err
	}
	if r.unchanged() {
		return ErrNoChanges
	}
	return nil
}

func (r UpdateRecordRequest) unchanged() bool {
	s := r.Snapshot
	return r.PondID == s.PondID && r.FarmerID == s.FarmerID &&
		r.RecordType == s.RecordType && r.Amount == s.Amount &&
		r.Unit == s.Unit && r.Note == s.Note && r.RecordedAt == s.RecordedAt
}
