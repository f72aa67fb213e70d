package forms

import (
	"github.com/koard/DukeFarm-Admin-sub000/internal/domain"
)

// StartCycleRequest is the payload of the pond start-cycle form.
type StartCycleRequest struct {
	Species    string `json:"species"`
	StockCount int    `json:"stockCount"`
}

func (r StartCycleRequest) Validate() error {
	if err := required("species", r.Species, "กรุณาระบุชนิดสัตว์น้ำ"); err != nil {
		return err
	}
	if r.StockCount <= 0 {
		return domain.ValidationError{Field: "stockCount", Msg: "จำนวนปล่อยต้องมากกว่าศูนย์"}
	}
	return nil
}
