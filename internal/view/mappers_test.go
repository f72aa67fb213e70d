package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/koard/DukeFarm-Admin-sub000/internal/domain/models"
)

func TestFormatTimestamp(t *testing.T) {
	cases := map[string]string{
		"2026-03-07T14:30:00Z":      "07/03/2026 - 14:30",
		"2026-03-07T14:30:00+07:00": "07/03/2026 - 14:30",
		"2026-03-07T14:30:00":       "07/03/2026 - 14:30",
		"":                          Placeholder,
		"   ":                       Placeholder,
		"not-a-date":                Placeholder,
		"07/03/2026":                Placeholder,
	}
	for input, want := range cases {
		assert.Equalf(t, want, FormatTimestamp(input), "input %q", input)
	}
}

func TestFormatTimestampIdempotent(t *testing.T) {
	// Re-mapping any mapper output must yield the same output.
	for _, input := range []string{"2026-03-07T14:30:00Z", "garbage", ""} {
		once := FormatTimestamp(input)
		assert.Equal(t, once, FormatTimestamp(once))
	}
	// A value already in the display layout passes through unchanged.
	assert.Equal(t, "07/03/2026 - 14:30", FormatTimestamp("07/03/2026 - 14:30"))
}

func TestFarmTypeLabelUnknownPassesThrough(t *testing.T) {
	assert.Equal(t, "บ่อดิน", FarmTypeLabel(models.FarmTypeEarthenPond))
	assert.Equal(t, "ไบโอฟลอค", FarmTypeLabel(models.FarmTypeBiofloc))
	assert.Equal(t, "raceway", FarmTypeLabel("raceway"))
	assert.Equal(t, "", FarmTypeLabel(""))
}

func TestFormatCoordinates(t *testing.T) {
	lat, lng := 13.75633, 100.50177
	assert.Equal(t, "13.75633, 100.50177", FormatCoordinates(&lat, &lng))
	assert.Equal(t, Placeholder, FormatCoordinates(&lat, nil))
	assert.Equal(t, Placeholder, FormatCoordinates(nil, &lng))
	assert.Equal(t, Placeholder, FormatCoordinates(nil, nil))
}

func TestMapFarmerTotalOnZeroValue(t *testing.T) {
	vm := MapFarmer(models.Farmer{ID: "farmer-1"})

	assert.Equal(t, "farmer-1", vm.ID)
	assert.Equal(t, Placeholder, vm.Name)
	assert.Equal(t, Placeholder, vm.Phone)
	assert.Equal(t, Placeholder, vm.FarmName)
	assert.Equal(t, Placeholder, vm.Province)
	assert.Equal(t, Placeholder, vm.Coordinates)
	assert.Equal(t, Placeholder, vm.RegisteredAt)
}

func TestMapRecipeFallsBackToCreatedAt(t *testing.T) {
	vm := MapRecipe(models.FeedFormula{
		ID:        "recipe-1",
		Name:      "สูตรปลานิลโต",
		CreatedAt: "2026-01-15T08:00:00Z",
	})
	assert.Equal(t, "15/01/2026 - 08:00", vm.UpdatedAt)

	vm = MapRecipe(models.FeedFormula{
		ID:        "recipe-1",
		CreatedAt: "2026-01-15T08:00:00Z",
		UpdatedAt: "2026-02-20T10:30:00Z",
	})
	assert.Equal(t, "20/02/2026 - 10:30", vm.UpdatedAt)
}

func TestMapAdminDisplay(t *testing.T) {
	vm := MapAdmin(models.AdminUser{
		UserID: "admin-1",
		Name:   "Admin",
		Role:   models.RoleSuperadmin,
	})
	assert.Equal(t, models.RoleSuperadmin, vm.Role)
	assert.Equal(t, Placeholder, vm.Email)
	assert.Equal(t, Placeholder, vm.Status)
}
