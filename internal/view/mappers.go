// Package view translates wire records into display-ready view models.
// Every mapper here is total and idempotent: malformed input maps to the
// "-" placeholder, and mapping a placeholder again yields the placeholder.
package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/koard/DukeFarm-Admin-sub000/internal/domain/models"
	"github.com/koard/DukeFarm-Admin-sub000/internal/utils"
)

// Placeholder stands in for any value that is missing or malformed.
const Placeholder = "-"

const displayLayout = "02/01/2006 - 15:04"

// farmTypeLabels maps stored farm type codes to Thai display labels.
var farmTypeLabels = map[string]string{
	models.FarmTypeEarthenPond:  "บ่อดิน",
	models.FarmTypeConcretePond: "บ่อปูน",
	models.FarmTypeCage:         "กระชัง",
	models.FarmTypeBiofloc:      "ไบโอฟลอค",
}

var recordTypeLabels = map[string]string{
	models.RecordTypeFeeding:      "ให้อาหาร",
	models.RecordTypeWaterQuality: "คุณภาพน้ำ",
	models.RecordTypeHarvest:      "จับผลผลิต",
	models.RecordTypeMortality:    "อัตราการตาย",
}

// FormatTimestamp renders an ISO-8601 timestamp as "DD/MM/YYYY - HH:mm".
// Input already in the display layout comes back unchanged, so re-mapping
// a mapped value is a no-op.
func FormatTimestamp(iso string) string {
	iso = strings.TrimSpace(iso)
	if iso == "" || iso == Placeholder {
		return Placeholder
	}
	if _, err := time.Parse(displayLayout, iso); err == nil {
		return iso
	}
	t, err := utils.ParseISO(iso)
	if err != nil {
		return Placeholder
	}
	return t.Format(displayLayout)
}

// FarmTypeLabel translates a farm type code. Unknown codes pass through
// unchanged rather than disappearing behind the placeholder.
func FarmTypeLabel(code string) string {
	if label, ok := farmTypeLabels[code]; ok {
		return label
	}
	return code
}

// RecordTypeLabel translates a record type code; unknown codes pass through.
func RecordTypeLabel(code string) string {
	if label, ok := recordTypeLabels[code]; ok {
		return label
	}
	return code
}

// FormatCoordinates renders a coordinate pair with five decimals, or the
// placeholder when either half is missing.
func FormatCoordinates(lat, lng *float64) string {
	if lat == nil || lng == nil {
		return Placeholder
	}
	return fmt.Sprintf("%.5f, %.5f", *lat, *lng)
}

// FarmerViewModel is a farmer row ready for display.
type FarmerViewModel struct {
	ID           string
	Name         string
	Phone        string
	FarmName     string
	FarmType     string
	Province     string
	Coordinates  string
	PondCount    int
	RegisteredAt string
}

func MapFarmer(f models.Farmer) FarmerViewModel {
	return FarmerViewModel{
		ID:           f.ID,
		Name:         orPlaceholder(f.Name),
		Phone:        orPlaceholder(f.Phone),
		FarmName:     orPlaceholder(f.FarmName),
		FarmType:     FarmTypeLabel(f.FarmType),
		Province:     orPlaceholder(f.Province),
		Coordinates:  FormatCoordinates(f.Latitude, f.Longitude),
		PondCount:    f.PondCount,
		RegisteredAt: FormatTimestamp(f.RegisteredAt),
	}
}

// RecipeViewModel is a feed formula row ready for display.
type RecipeViewModel struct {
	ID        string
	Name      string
	FishType  string
	Protein   string
	UpdatedAt string
}

func MapRecipe(r models.FeedFormula) RecipeViewModel {
	updated := r.UpdatedAt
	if strings.TrimSpace(updated) == "" {
		updated = r.CreatedAt
	}
	return RecipeViewModel{
		ID:        r.ID,
		Name:      orPlaceholder(r.Name),
		FishType:  orPlaceholder(r.FishType),
		Protein:   orPlaceholder(r.Protein),
		UpdatedAt: FormatTimestamp(updated),
	}
}

// AdminViewModel is an admin account row ready for display.
type AdminViewModel struct {
	UserID    string
	Name      string
	Email     string
	Role      string
	Status    string
	CreatedAt string
}

func MapAdmin(a models.AdminUser) AdminViewModel {
	return AdminViewModel{
		UserID:    a.UserID,
		Name:      orPlaceholder(a.Name),
		Email:     orPlaceholder(a.Email),
		Role:      orPlaceholder(a.Role),
		Status:    orPlaceholder(a.Status),
		CreatedAt: FormatTimestamp(a.CreatedAt),
	}
}

// ResearcherViewModel is a researcher row ready for display.
type ResearcherViewModel struct {
	ID         string
	Name       string
	Email      string
	Department string
	CreatedAt  string
}

func MapResearcher(r models.Researcher) ResearcherViewModel {
	return ResearcherViewModel{
		ID:         r.ID,
		Name:       orPlaceholder(r.Name),
		Email:      orPlaceholder(r.Email),
		Department: orPlaceholder(r.Department),
		CreatedAt:  FormatTimestamp(r.CreatedAt),
	}
}

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return Placeholder
	}
	return s
}
