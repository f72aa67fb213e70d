package repositories

import (
	"database/sql"

	"github.com/google/uuid"

	"github.com/koard/DukeFarm-Admin-sub000/internal/domain"
	"github.com/koard/DukeFarm-Admin-sub000/internal/domain/models"
	"github.com/koard/DukeFarm-Admin-sub000/internal/utils"
)

type FarmerRepository struct {
	DB *sql.DB
}

func (r FarmerRepository) db() *sql.DB { return sharedDB(r.DB) }

const farmerColumns = `
	id,
	COALESCE(name, ''),
	COALESCE(phone, ''),
	COALESCE(email, ''),
	COALESCE(farm_name, ''),
	COALESCE(farm_type, ''),
	COALESCE(province, ''),
	latitude,
	longitude,
	COALESCE(pond_count, 0),
	COALESCE(registered_at, '')`

func scanFarmer(row interface{ Scan(...any) error }) (models.Farmer, error) {
	var f models.Farmer
	var lat, lng sql.NullFloat64
	err := row.Scan(
		&f.ID,
		&f.Name,
		&f.Phone,
		&f.Email,
		&f.FarmName,
		&f.FarmType,
		&f.Province,
		&lat,
		&lng,
		&f.PondCount,
		&f.RegisteredAt,
	)
	if err != nil {
		return models.Farmer{}, err
	}
	f.Latitude = floatPtr(lat)
	f.Longitude = floatPtr(lng)
	return f, nil
}

// List returns one page of farmers plus the unpaginated total. Search
// matches name, farm name, and province; farmType narrows by code.
func (r FarmerRepository) List(q domain.ListQuery) ([]models.Farmer, int, error) {
	where := "WHERE 1=1"
	args := []any{}
	if q.Search != "" {
		where += " AND (name LIKE ? OR farm_name LIKE ? OR province LIKE ?)"
		p := likePattern(q.Search)
		args = append(args, p, p, p)
	}
	if ft := q.Filters["farmType"]; ft != "" {
		where += " AND farm_type = ?"
		args = append(args, ft)
	}

	var total int
	if err := r.db().QueryRow("SELECT COUNT(*) FROM farmers "+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit, offset := limitOffset(q)
	rows, err := r.db().Query(
		"SELECT "+farmerColumns+" FROM farmers "+where+" ORDER BY registered_at DESC LIMIT ? OFFSET ?",
		append(args, limit, offset)...,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	farmers := []models.Farmer{}
	for rows.Next() {
		f, err := scanFarmer(rows)
		if err != nil {
			return nil, 0, err
		}
		farmers = append(farmers, f)
	}
	return farmers, total, rows.Err()
}

func (r FarmerRepository) GetByID(id string) (models.Farmer, error) {
	f, err := scanFarmer(r.db().QueryRow("SELECT "+farmerColumns+" FROM farmers WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return models.Farmer{}, domain.NotFoundError{Resource: "farmer"}
	}
	return f, err
}

// Create assigns the server-side id and registration timestamp.
func (r FarmerRepository) Create(f models.Farmer) (models.Farmer, error) {
	if f.ID == "" {
		f.ID = "farmer-" + uuid.NewString()
	}
	if f.RegisteredAt == "" {
		f.RegisteredAt = utils.NowISO()
	}
	_, err := r.db().Exec(`
		INSERT INTO farmers (id, name, phone, email, farm_name, farm_type, province, latitude, longitude, pond_count, registered_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		f.ID, f.Name, f.Phone, f.Email, f.FarmName, f.FarmType, f.Province,
		nullFloat(f.Latitude), nullFloat(f.Longitude), f.PondCount, f.RegisteredAt,
	)
	return f, err
}

// Update replaces every mutable field (full-replace semantics).
func (r FarmerRepository) Update(f models.Farmer) (models.Farmer, error) {
	res, err := r.db().Exec(`
		UPDATE farmers
		SET name=?, phone=?, email=?, farm_name=?, farm_type=?, province=?, latitude=?, longitude=?, pond_count=?
		WHERE id=?`,
		f.Name, f.Phone, f.Email, f.FarmName, f.FarmType, f.Province,
		nullFloat(f.Latitude), nullFloat(f.Longitude), f.PondCount, f.ID,
	)
	if err != nil {
		return models.Farmer{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.Farmer{}, domain.NotFoundError{Resource: "farmer"}
	}
	return r.GetByID(f.ID)
}

func (r FarmerRepository) Delete(id string) error {
	res, err := r.db().Exec("DELETE FROM farmers WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "farmer"}
	}
	return nil
}
