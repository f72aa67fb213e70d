package repositories

import (
	"database/sql"

	"github.com/google/uuid"

	"github.com/koard/DukeFarm-Admin-sub000/internal/domain"
	"github.com/koard/DukeFarm-Admin-sub000/internal/domain/models"
	"github.com/koard/DukeFarm-Admin-sub000/internal/utils"
)

type CycleRepository struct {
	DB *sql.DB
}

func (r CycleRepository) db() *sql.DB { return sharedDB(r.DB) }

const cycleColumns = `
	id,
	COALESCE(pond_id, ''),
	COALESCE(species, ''),
	COALESCE(stock_count, 0),
	COALESCE(status, ''),
	COALESCE(started_at, ''),
	COALESCE(ended_at, '')`

func scanCycle(row interface{ Scan(...any) error }) (models.PondCycle, error) {
	var m models.PondCycle
	err := row.Scan(&m.ID, &m.PondID, &m.Species, &m.StockCount, &m.Status, &m.StartedAt, &m.EndedAt)
	return m, err
}

// ActiveByPond returns the pond's running cycle, NotFoundError when none.
func (r CycleRepository) ActiveByPond(pondID string) (models.PondCycle, error) {
	m, err := scanCycle(r.db().QueryRow(
		"SELECT "+cycleColumns+" FROM pond_cycles WHERE pond_id = ? AND status = ? ORDER BY started_at DESC LIMIT 1",
		pondID, models.CycleStatusActive,
	))
	if err == sql.ErrNoRows {
		return models.PondCycle{}, domain.NotFoundError{Resource: "active cycle"}
	}
	return m, err
}

func (r CycleRepository) ListByPond(pondID string) ([]models.PondCycle, error) {
	rows, err := r.db().Query(
		"SELECT "+cycleColumns+" FROM pond_cycles WHERE pond_id = ? ORDER BY started_at DESC",
		pondID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.PondCycle{}
	for rows.Next() {
		m, err := scanCycle(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r CycleRepository) CountByPond(pondID string) (int, error) {
	var n int
	err := r.db().QueryRow("SELECT COUNT(*) FROM pond_cycles WHERE pond_id = ?", pondID).Scan(&n)
	return n, err
}

func (r CycleRepository) Insert(m models.PondCycle) (models.PondCycle, error) {
	if m.ID == "" {
		m.ID = "cycle-" + uuid.NewString()
	}
	if m.StartedAt == "" {
		m.StartedAt = utils.NowISO()
	}
	m.Status = models.CycleStatusActive
	_, err := r.db().Exec(`
		INSERT INTO pond_cycles (id, pond_id, species, stock_count, status, started_at, ended_at)
		VALUES (?, ?, ?, ?, ?, ?, '')`,
		m.ID, m.PondID, m.Species, m.StockCount, m.Status, m.StartedAt,
	)
	return m, err
}

// End closes a cycle; returns the updated row.
func (r CycleRepository) End(id string) (models.PondCycle, error) {
	endedAt := utils.NowISO()
	res, err := r.db().Exec(
		"UPDATE pond_cycles SET status = ?, ended_at = ? WHERE id = ? AND status = ?",
		models.CycleStatusEnded, endedAt, id, models.CycleStatusActive,
	)
	if err != nil {
		return models.PondCycle{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.PondCycle{}, domain.NotFoundError{Resource: "active cycle"}
	}
	m, err := scanCycle(r.db().QueryRow("SELECT "+cycleColumns+" FROM pond_cycles WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return models.PondCycle{}, domain.NotFoundError{Resource: "cycle"}
	}
	return m, err
}
