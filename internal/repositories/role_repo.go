package repositories

import (
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/koard/DukeFarm-Admin-sub000/internal/domain"
	"github.com/koard/DukeFarm-Admin-sub000/internal/domain/models"
	"github.com/koard/DukeFarm-Admin-sub000/internal/utils"
)

// RoleRepository stores roles with their permission list as a JSON column.
type RoleRepository struct {
	DB *sql.DB
}

func (r RoleRepository) db() *sql.DB { return sharedDB(r.DB) }

func scanRole(row interface{ Scan(...any) error }) (models.Role, error) {
	var m models.Role
	var perms string
	if err := row.Scan(&m.ID, &m.Name, &m.Description, &perms, &m.CreatedAt); err != nil {
		return models.Role{}, err
	}
	m.Permissions = []string{}
	if perms != "" {
		_ = json.Unmarshal([]byte(perms), &m.Permissions)
	}
	return m, nil
}

const roleColumns = `
	id,
	COALESCE(name, ''),
	COALESCE(description, ''),
	COALESCE(permissions, ''),
	COALESCE(created_at, '')`

// ListAll returns every role; the set is small and unpaginated.
func (r RoleRepository) ListAll() ([]models.Role, error) {
	rows, err := r.db().Query("SELECT " + roleColumns + " FROM roles ORDER BY name ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Role{}
	for rows.Next() {
		m, err := scanRole(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r RoleRepository) GetByID(id string) (models.Role, error) {
	m, err := scanRole(r.db().QueryRow("SELECT "+roleColumns+" FROM roles WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return models.Role{}, domain.NotFoundError{Resource: "role"}
	}
	return m, err
}

// CountByName backs the server-side duplicate check (case-insensitive via
// the column collation).
func (r RoleRepository) CountByName(name, excludeID string) (int, error) {
	var n int
	err := r.db().QueryRow(
		"SELECT COUNT(*) FROM roles WHERE LOWER(name) = LOWER(?) AND id <> ?",
		name, excludeID,
	).Scan(&n)
	return n, err
}

func (r RoleRepository) Create(m models.Role) (models.Role, error) {
	if m.ID == "" {
		m.ID = "role-" + uuid.NewString()
	}
	if m.CreatedAt == "" {
		m.CreatedAt = utils.NowISO()
	}
	perms, err := json.Marshal(m.Permissions)
	if err != nil {
		return models.Role{}, err
	}
	_, err = r.db().Exec(`
		INSERT INTO roles (id, name, description, permissions, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		m.ID, m.Name, m.Description, string(perms), m.CreatedAt,
	)
	return m, err
}

func (r RoleRepository) Update(m models.Role) (models.Role, error) {
	perms, err := json.Marshal(m.Permissions)
	if err != nil {
		return models.Role{}, err
	}
	res, err := r.db().Exec(
		"UPDATE roles SET name=?, description=?, permissions=? WHERE id=?",
		m.Name, m.Description, string(perms), m.ID,
	)
	if err != nil {
		return models.Role{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.Role{}, domain.NotFoundError{Resource: "role"}
	}
	return r.GetByID(m.ID)
}

func (r RoleRepository) Delete(id string) error {
	res, err := r.db().Exec("DELETE FROM roles WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "role"}
	}
	return nil
}
