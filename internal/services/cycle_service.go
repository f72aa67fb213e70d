package services

import (
	"database/sql"
	"strings"

	"github.com/koard/DukeFarm-Admin-sub000/internal/domain"
	"github.com/koard/DukeFarm-Admin-sub000/internal/domain/models"
	"github.com/koard/DukeFarm-Admin-sub000/internal/repositories"
	"github.com/koard/DukeFarm-Admin-sub000/internal/utils"
)

// CycleService enforces the production-cycle lifecycle: a pond has at most
// one active cycle, started and ended explicitly.
type CycleService struct {
	CycleRepo repositories.CycleRepository
	DB        *sql.DB
	RequestID string
}

func (s CycleService) repo() repositories.CycleRepository {
	if s.CycleRepo.DB != nil {
		return s.CycleRepo
	}
	return repositories.CycleRepository{DB: s.DB}
}

// Start opens a new cycle. Rejected with a conflict while one is active.
func (s CycleService) Start(pondID, species string, stockCount int) (models.PondCycle, error) {
	pondID = strings.TrimSpace(pondID)
	if pondID == "" {
		return models.PondCycle{}, domain.ValidationError{Field: "pondId", Msg: "กรุณาระบุบ่อ"}
	}
	if strings.TrimSpace(species) == "" {
		return models.PondCycle{}, domain.ValidationError{Field: "species", Msg: "กรุณาระบุชนิดสัตว์น้ำ"}
	}
	if stockCount <= 0 {
		return models.PondCycle{}, domain.ValidationError{Field: "stockCount", Msg: "จำนวนปล่อยต้องมากกว่า 0"}
	}

	if _, err := s.repo().ActiveByPond(pondID); err == nil {
		return models.PondCycle{}, domain.ConflictError{Resource: "cycle", Msg: "บ่อนี้มีรอบการเลี้ยงที่ยังไม่สิ้นสุด"}
	} else if !domain.IsNotFound(err) {
		return models.PondCycle{}, err
	}

	utils.LogEvent(s.RequestID, "cycle", "start", "pond_id="+pondID)
	return s.repo().Insert(models.PondCycle{
		PondID:     pondID,
		Species:    strings.TrimSpace(species),
		StockCount: stockCount,
	})
}

// End closes the pond's active cycle.
func (s CycleService) End(pondID string) (models.PondCycle, error) {
	active, err := s.repo().ActiveByPond(pondID)
	if err != nil {
		return models.PondCycle{}, err
	}
	utils.LogEvent(s.RequestID, "cycle", "end", "pond_id="+pondID+" cycle_id="+active.ID)
	return s.repo().End(active.ID)
}
