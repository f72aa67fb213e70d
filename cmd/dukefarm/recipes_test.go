package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koard/DukeFarm-Admin-sub000/internal/domain/models"
)

func TestParseIngredients(t *testing.T) {
	got, err := parseIngredients([]string{"ปลาป่น : 40", "รำข้าว:25.5"})
	require.NoError(t, err)
	assert.Equal(t, []models.Ingredient{
		{Name: "ปลาป่น", Ratio: "40"},
		{Name: "รำข้าว", Ratio: "25.5"},
	}, got)
}

func TestParseIngredientsRejectsMissingRatio(t *testing.T) {
	_, err := parseIngredients([]string{"ปลาป่น"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ชื่อ:อัตราส่วน")
}
