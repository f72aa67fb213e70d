package repositories

import (
	"database/sql"

	"github.com/google/uuid"

	"github.com/koard/DukeFarm-Admin-sub000/internal/domain"
	"github.com/koard/DukeFarm-Admin-sub000/internal/domain/models"
	"github.com/koard/DukeFarm-Admin-sub000/internal/utils"
)

// UserRepository manages admin dashboard accounts.
type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB { return sharedDB(r.DB) }

const adminColumns = `
	user_id,
	COALESCE(name, ''),
	COALESCE(email, ''),
	COALESCE(role, ''),
	COALESCE(status, ''),
	COALESCE(created_at, ''),
	COALESCE(updated_at, '')`

func scanAdmin(row interface{ Scan(...any) error }) (models.AdminUser, error) {
	var a models.AdminUser
	err := row.Scan(&a.UserID, &a.Name, &a.Email, &a.Role, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

func (r UserRepository) List(q domain.ListQuery) ([]models.AdminUser, int, error) {
	where := "WHERE 1=1"
	args := []any{}
	if q.Search != "" {
		where += " AND (name LIKE ? OR email LIKE ?)"
		p := likePattern(q.Search)
		args = append(args, p, p)
	}
	if role := q.Filters["role"]; role != "" {
		where += " AND role = ?"
		args = append(args, role)
	}

	var total int
	if err := r.db().QueryRow("SELECT COUNT(*) FROM admin_users "+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit, offset := limitOffset(q)
	rows, err := r.db().Query(
		"SELECT "+adminColumns+" FROM admin_users "+where+" ORDER BY created_at DESC LIMIT ? OFFSET ?",
		append(args, limit, offset)...,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	admins := []models.AdminUser{}
	for rows.Next() {
		a, err := scanAdmin(rows)
		if err != nil {
			return nil, 0, err
		}
		admins = append(admins, a)
	}
	return admins, total, rows.Err()
}

func (r UserRepository) GetByID(id string) (models.AdminUser, error) {
	a, err := scanAdmin(r.db().QueryRow("SELECT "+adminColumns+" FROM admin_users WHERE user_id = ?", id))
	if err == sql.ErrNoRows {
		return models.AdminUser{}, domain.NotFoundError{Resource: "admin"}
	}
	return a, err
}

// GetByEmail also returns the stored password hash for login checks.
func (r UserRepository) GetByEmail(email string) (models.AdminUser, string, error) {
	var a models.AdminUser
	var hash string
	err := r.db().QueryRow(`
		SELECT `+adminColumns+`, COALESCE(password_hash, '')
		FROM admin_users WHERE email = ?`, email).Scan(
		&a.UserID, &a.Name, &a.Email, &a.Role, &a.Status, &a.CreatedAt, &a.UpdatedAt, &hash,
	)
	if err == sql.ErrNoRows {
		return models.AdminUser{}, "", domain.NotFoundError{Resource: "admin"}
	}
	return a, hash, err
}

func (r UserRepository) CountByEmail(email, excludeID string) (int, error) {
	var n int
	err := r.db().QueryRow(
		"SELECT COUNT(*) FROM admin_users WHERE email = ? AND user_id <> ?",
		email, excludeID,
	).Scan(&n)
	return n, err
}

func (r UserRepository) Create(a models.AdminUser, passwordHash string) (models.AdminUser, error) {
	if a.UserID == "" {
		a.UserID = "admin-" + uuid.NewString()
	}
	now := utils.NowISO()
	a.CreatedAt, a.UpdatedAt = now, now
	if a.Status == "" {
		a.Status = models.AdminStatusActive
	}
	_, err := r.db().Exec(`
		INSERT INTO admin_users (user_id, name, email, password_hash, role, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.UserID, a.Name, a.Email, passwordHash, a.Role, a.Status, a.CreatedAt, a.UpdatedAt,
	)
	return a, err
}

// Update replaces the account fields; passwordHash "" keeps the current one.
func (r UserRepository) Update(a models.AdminUser, passwordHash string) (models.AdminUser, error) {
	now := utils.NowISO()
	var (
		res sql.Result
		err error
	)
	if passwordHash == "" {
		res, err = r.db().Exec(`
			UPDATE admin_users SET name=?, email=?, role=?, status=?, updated_at=? WHERE user_id=?`,
			a.Name, a.Email, a.Role, a.Status, now, a.UserID,
		)
	} else {
		res, err = r.db().Exec(`
			UPDATE admin_users SET name=?, email=?, role=?, status=?, password_hash=?, updated_at=? WHERE user_id=?`,
			a.Name, a.Email, a.Role, a.Status, passwordHash, now, a.UserID,
		)
	}
	if err != nil {
		return models.AdminUser{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.AdminUser{}, domain.NotFoundError{Resource: "admin"}
	}
	return r.GetByID(a.UserID)
}

func (r UserRepository) Delete(id string) error {
	res, err := r.db().Exec("DELETE FROM admin_users WHERE user_id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "admin"}
	}
	return nil
}
