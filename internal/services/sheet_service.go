package services

import (
	"bytes"
	"database/sql"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"github.com/koard/DukeFarm-Admin-sub000/internal/repositories"
	"github.com/koard/DukeFarm-Admin-sub000/internal/utils"
)

// SheetService renders the printable PDF sheet for a feed formula.
type SheetService struct {
	RecipeRepo repositories.RecipeRepository
	DB         *sql.DB
	RequestID  string
}

func (s SheetService) repo() repositories.RecipeRepository {
	if s.RecipeRepo.DB != nil {
		return s.RecipeRepo
	}
	return repositories.RecipeRepository{DB: s.DB}
}

// GenerateSheet returns the PDF bytes and a download filename.
func (s SheetService) GenerateSheet(formulaID string) ([]byte, string, error) {
	formula, err := s.repo().GetByID(formulaID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "sheet", "generate", "formula_id="+formulaID)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Feed Formula Sheet", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "FEED FORMULA SHEET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Formula    : %s", safe(formula.Name)),
		fmt.Sprintf("Fish type  : %s", safe(formula.FishType)),
		fmt.Sprintf("Protein %%  : %s", safe(formula.Protein)),
		fmt.Sprintf("Fat %%      : %s", safe(formula.Fat)),
		fmt.Sprintf("Fiber %%    : %s", safe(formula.Fiber)),
		fmt.Sprintf("Moisture %% : %s", safe(formula.Moisture)),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Ingredients")
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 12)
	for _, ing := range formula.Ingredients {
		pdf.Cell(0, 7, fmt.Sprintf("- %s : %s", safe(ing.Name), safe(ing.Ratio)))
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Usage: "+safe(formula.Recommendations), "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("formula-%s.pdf", safeFilenamePart(formula.ID))
	return buf.Bytes(), filename, nil
}

func safe(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func safeFilenamePart(s string) string {
	out := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			return r
		default:
			return '_'
		}
	}, s)
	if out == "" {
		return "sheet"
	}
	return out
}
