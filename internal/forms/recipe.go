package forms

import (
	"strings"

	"github.com/koard/DukeFarm-Admin-sub000/internal/domain"
	"github.com/koard/DukeFarm-Admin-sub000/internal/domain/models"
)

// CreateRecipeRequest is the payload of the feed formula create form.
type CreateRecipeRequest struct {
	Name            string              `json:"name"`
	FishType        string              `json:"fishType"`
	Description     string              `json:"description,omitempty"`
	Ingredients     []models.Ingredient `json:"ingredients"`
	Protein         string              `json:"protein"`
	Fat             string              `json:"fat"`
	Fiber           string              `json:"fiber"`
	Moisture        string              `json:"moisture"`
	Recommendations string              `json:"recommendations"`
}

func (r CreateRecipeRequest) Validate() error {
	if err := required("name", r.Name, "กรุณากรอกชื่อสูตรอาหาร"); err != nil {
		return err
	}
	if err := required("fishType", r.FishType, "กรุณาระบุชนิดปลา"); err != nil {
		return err
	}
	if err := required("recommendations", r.Recommendations, "กรุณากรอกคำแนะนำการใช้งาน"); err != nil {
		return err
	}
	if len(r.Ingredients) == 0 {
		return domain.ValidationError{Field: "ingredients", Msg: "ต้องมีส่วนผสมอย่างน้อย 1 รายการ"}
	}
	for _, ing := range r.Ingredients {
		if strings.TrimSpace(ing.Name) == "" {
			return domain.ValidationError{Field: "ingredients", Msg: "กรุณากรอกชื่อส่วนผสมให้ครบ"}
		}
		if err := numeric("ingredients", ing.Ratio); err != nil {
			return err
		}
	}
	if err := required("protein", r.Protein, "กรุณากรอกค่าโปรตีน"); err != nil {
		return err
	}
	for field, value := range map[string]string{
		"protein":  r.Protein,
		"fat":      r.Fat,
		"fiber":    r.Fiber,
		"moisture": r.Moisture,
	} {
		if err := numeric(field, value); err != nil {
			return err
		}
	}
	return nil
}

// UpdateRecipeRequest carries the full replacement record plus the
// snapshot it was edited from, for no-op detection.
type UpdateRecipeRequest struct {
	CreateRecipeRequest
	Snapshot models.FeedFormula `json:"-"`
}

func (r UpdateRecipeRequest) Validate() error {
	if err := r.CreateRecipeRequest.Validate(); err != nil {
		return err
	}
	if r.unchanged() {
		return ErrNoChanges
	}
	return nil
}

func (r UpdateRecipeRequest) unchanged() bool {
	s := r.Snapshot
	if r.Name != s.Name || r.FishType != s.FishType || r.Description != s.Description ||
		r.Protein != s.Protein || r.Fat != s.Fat || r.Fiber != s.Fiber ||
		r.Moisture != s.Moisture || r.Recommendations != s.Recommendations {
		return false
	}
	if len(r.Ingredients) != len(s.Ingredients) {
		return false
	}
	for i, ing := range r.Ingredients {
		if ing != s.Ingredients[i] {
			return false
		}
	}
	return true
}
