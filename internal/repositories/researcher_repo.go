package repositories

import (
	"database/sql"

	"github.com/google/uuid"

	"github.com/koard/DukeFarm-Admin-sub000/internal/domain"
	"github.com/koard/DukeFarm-Admin-sub000/internal/domain/models"
	"github.com/koard/DukeFarm-Admin-sub000/internal/utils"
)

type ResearcherRepository struct {
	DB *sql.DB
}

func (r ResearcherRepository) db() *sql.DB { return sharedDB(r.DB) }

const researcherColumns = `
	id,
	COALESCE(name, ''),
	COALESCE(email, ''),
	COALESCE(phone, ''),
	COALESCE(department, ''),
	COALESCE(specialty, ''),
	COALESCE(created_at, '')`

func scanResearcher(row interface{ Scan(...any) error }) (models.Researcher, error) {
	var m models.Researcher
	err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Department, &m.Specialty, &m.CreatedAt)
	return m, err
}

func (r ResearcherRepository) List(q domain.ListQuery) ([]models.Researcher, int, error) {
	where := "WHERE 1=1"
	args := []any{}
	if q.Search != "" {
		where += " AND (name LIKE ? OR email LIKE ? OR department LIKE ?)"
		p := likePattern(q.Search)
		args = append(args, p, p, p)
	}

	var total int
	if err := r.db().QueryRow("SELECT COUNT(*) FROM researchers "+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit, offset := limitOffset(q)
	rows, err := r.db().Query(
		"SELECT "+researcherColumns+" FROM researchers "+where+" ORDER BY created_at DESC LIMIT ? OFFSET ?",
		append(args, limit, offset)...,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []models.Researcher{}
	for rows.Next() {
		m, err := scanResearcher(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, m)
	}
	return out, total, rows.Err()
}

func (r ResearcherRepository) GetByID(id string) (models.Researcher, error) {
	m, err := scanResearcher(r.db().QueryRow("SELECT "+researcherColumns+" FROM researchers WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return models.Researcher{}, domain.NotFoundError{Resource: "researcher"}
	}
	return m, err
}

func (r ResearcherRepository) Create(m models.Researcher) (models.Researcher, error) {
	if m.ID == "" {
		m.ID = "researcher-" + uuid.NewString()
	}
	if m.CreatedAt == "" {
		m.CreatedAt = utils.NowISO()
	}
	_, err := r.db().Exec(`
		INSERT INTO researchers (id, name, email, phone, department, specialty, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.Name, m.Email, m.Phone, m.Department, m.Specialty, m.CreatedAt,
	)
	return m, err
}

func (r ResearcherRepository) Update(m models.Researcher) (models.Researcher, error) {
	res, err := r.db().Exec(`
		UPDATE researchers SET name=?, email=?, phone=?, department=?, specialty=? WHERE id=?`,
		m.Name, m.Email, m.Phone, m.Department, m.Specialty, m.ID,
	)
	if err != nil {
		return models.Researcher{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.Researcher{}, domain.NotFoundError{Resource: "researcher"}
	}
	return r.GetByID(m.ID)
}

func (r ResearcherRepository) Delete(id string) error {
	res, err := r.db().Exec("DELETE FROM researchers WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "researcher"}
	}
	return nil
}
