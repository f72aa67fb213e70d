package services

import (
	"bytes"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/koard/DukeFarm-Admin-sub000/internal/domain"
	"github.com/koard/DukeFarm-Admin-sub000/internal/repositories"
)

func recipeRow() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "fish_type", "description", "ingredients",
		"protein", "fat", "fiber", "moisture", "recommendations",
		"created_at", "updated_at",
	}).AddRow(
		"formula-1", "Tilapia Grower", "tilapia", "",
		`[{"name":"fishmeal","ratio":"2.5"},{"name":"rice bran","ratio":"1/2"}]`,
		"32", "5.5", "4", "10", "Feed twice daily",
		"2026-01-15T08:00:00Z", "",
	)
}

func TestSheetGenerate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM feed_formulas WHERE id").
		WithArgs("formula-1").
		WillReturnRows(recipeRow())

	svc := SheetService{RecipeRepo: repositories.RecipeRepository{DB: db}}
	pdf, filename, err := svc.GenerateSheet("formula-1")
	if err != nil {
		t.Fatalf("GenerateSheet returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("GenerateSheet returned empty data")
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output is not a PDF, starts with %q", pdf[:4])
	}
	if filename != "formula-formula-1.pdf" {
		t.Fatalf("unexpected filename %q", filename)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSheetGenerateMissingFormula(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM feed_formulas WHERE id").
		WithArgs("formula-missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	svc := SheetService{RecipeRepo: repositories.RecipeRepository{DB: db}}
	if _, _, err := svc.GenerateSheet("formula-missing"); !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestSafeFilenamePart(t *testing.T) {
	cases := []struct{ input, want string }{
		{"formula-1", "formula-1"},
		{"a b/c", "a_b_c"},
		{"สูตรไทย", "_______"},
		{"", "sheet"},
	}
	for _, tc := range cases {
		if got := safeFilenamePart(tc.input); got != tc.want {
			t.Fatalf("safeFilenamePart(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
