package repositories

import (
	"database/sql"

	"github.com/google/uuid"

	"github.com/koard/DukeFarm-Admin-sub000/internal/domain"
	"github.com/koard/DukeFarm-Admin-sub000/internal/domain/models"
	"github.com/koard/DukeFarm-Admin-sub000/internal/utils"
)

type RecordRepository struct {
	DB *sql.DB
}

func (r RecordRepository) db() *sql.DB { return sharedDB(r.DB) }

const recordColumns = `
	id,
	COALESCE(pond_id, ''),
	COALESCE(farmer_id, ''),
	COALESCE(record_type, ''),
	COALESCE(amount, ''),
	COALESCE(unit, ''),
	COALESCE(note, ''),
	COALESCE(recorded_at, ''),
	COALESCE(created_at, '')`

func scanRecord(row interface{ Scan(...any) error }) (models.FarmRecord, error) {
	var m models.FarmRecord
	err := row.Scan(
		&m.ID, &m.PondID, &m.FarmerID, &m.RecordType,
		&m.Amount, &m.Unit, &m.Note, &m.RecordedAt, &m.CreatedAt,
	)
	return m, err
}

// List filters: pondId, farmerId, recordType.
func (r RecordRepository) List(q domain.ListQuery) ([]models.FarmRecord, int, error) {
	where := "WHERE 1=1"
	args := []any{}
	if v := q.Filters["pondId"]; v != "" {
		where += " AND pond_id = ?"
		args = append(args, v)
	}
	if v := q.Filters["farmerId"]; v != "" {
		where += " AND farmer_id = ?"
		args = append(args, v)
	}
	if v := q.Filters["recordType"]; v != "" {
		where += " AND record_type = ?"
		args = append(args, v)
	}

	var total int
	if err := r.db().QueryRow("SELECT COUNT(*) FROM farm_records "+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit, offset := limitOffset(q)
	rows, err := r.db().Query(
		"SELECT "+recordColumns+" FROM farm_records "+where+" ORDER BY recorded_at DESC LIMIT ? OFFSET ?",
		append(args, limit, offset)...,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []models.FarmRecord{}
	for rows.Next() {
		m, err := scanRecord(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, m)
	}
	return out, total, rows.Err()
}

func (r RecordRepository) GetByID(id string) (models.FarmRecord, error) {
	m, err := scanRecord(r.db().QueryRow("SELECT "+recordColumns+" FROM farm_records WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return models.FarmRecord{}, domain.NotFoundError{Resource: "record"}
	}
	return m, err
}

func (r RecordRepository) Create(m models.FarmRecord) (models.FarmRecord, error) {
	if m.ID == "" {
		m.ID = "record-" + uuid.NewString()
	}
	if m.CreatedAt == "" {
		m.CreatedAt = utils.NowISO()
	}
	_, err := r.db().Exec(`
		INSERT INTO farm_records (id, pond_id, farmer_id, record_type, amount, unit, note, recorded_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.PondID, m.FarmerID, m.RecordType, m.Amount, m.Unit, m.Note, m.RecordedAt, m.CreatedAt,
	)
	return m, err
}

func (r RecordRepository) Update(m models.FarmRecord) (models.FarmRecord, error) {
	res, err := r.db().Exec(`
		UPDATE farm_records
		SET pond_id=?, farmer_id=?, record_type=?, amount=?, unit=?, note=?, recorded_at=?
		WHERE id=?`,
		m.PondID, m.FarmerID, m.RecordType, m.Amount, m.Unit, m.Note, m.RecordedAt, m.ID,
	)
	if err != nil {
		return models.FarmRecord{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.FarmRecord{}, domain.NotFoundError{Resource: "record"}
	}
	return r.GetByID(m.ID)
}

func (r RecordRepository) Delete(id string) error {
	res, err := r.db().Exec("DELETE FROM farm_records WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "record"}
	}
	return nil
}
