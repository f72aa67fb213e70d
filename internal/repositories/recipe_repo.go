package repositories

import (
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/koard/DukeFarm-Admin-sub000/internal/domain"
	"github.com/koard/DukeFarm-Admin-sub000/internal/domain/models"
	"github.com/koard/DukeFarm-Admin-sub000/internal/utils"
)

// RecipeRepository stores feed formulas; the ingredient list lives in a
// JSON column.
type RecipeRepository struct {
	DB *sql.DB
}

func (r RecipeRepository) db() *sql.DB { return sharedDB(r.DB) }

const recipeColumns = `
	id,
	COALESCE(name, ''),
	COALESCE(fish_type, ''),
	COALESCE(description, ''),
	COALESCE(ingredients, ''),
	COALESCE(protein, ''),
	COALESCE(fat, ''),
	COALESCE(fiber, ''),
	COALESCE(moisture, ''),
	COALESCE(recommendations, ''),
	COALESCE(created_at, ''),
	COALESCE(updated_at, '')`

func scanRecipe(row interface{ Scan(...any) error }) (models.FeedFormula, error) {
	var m models.FeedFormula
	var ingredients string
	err := row.Scan(
		&m.ID, &m.Name, &m.FishType, &m.Description, &ingredients,
		&m.Protein, &m.Fat, &m.Fiber, &m.Moisture, &m.Recommendations,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return models.FeedFormula{}, err
	}
	m.Ingredients = []models.Ingredient{}
	if ingredients != "" {
		_ = json.Unmarshal([]byte(ingredients), &m.Ingredients)
	}
	return m, nil
}

func (r RecipeRepository) List(q domain.ListQuery) ([]models.FeedFormula, int, error) {
	where := "WHERE 1=1"
	args := []any{}
	if q.Search != "" {
		where += " AND (name LIKE ? OR fish_type LIKE ?)"
		p := likePattern(q.Search)
		args = append(args, p, p)
	}
	if ft := q.Filters["fishType"]; ft != "" {
		where += " AND fish_type = ?"
		args = append(args, ft)
	}

	var total int
	if err := r.db().QueryRow("SELECT COUNT(*) FROM feed_formulas "+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit, offset := limitOffset(q)
	rows, err := r.db().Query(
		"SELECT "+recipeColumns+" FROM feed_formulas "+where+" ORDER BY created_at DESC LIMIT ? OFFSET ?",
		append(args, limit, offset)...,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []models.FeedFormula{}
	for rows.Next() {
		m, err := scanRecipe(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, m)
	}
	return out, total, rows.Err()
}

func (r RecipeRepository) GetByID(id string) (models.FeedFormula, error) {
	m, err := scanRecipe(r.db().QueryRow("SELECT "+recipeColumns+" FROM feed_formulas WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return models.FeedFormula{}, domain.NotFoundError{Resource: "feed formula"}
	}
	return m, err
}

func (r RecipeRepository) Create(m models.FeedFormula) (models.FeedFormula, error) {
	if m.ID == "" {
		m.ID = "formula-" + uuid.NewString()
	}
	now := utils.NowISO()
	m.CreatedAt, m.UpdatedAt = now, now
	ingredients, err := json.Marshal(m.Ingredients)
	if err != nil {
		return models.FeedFormula{}, err
	}
	_, err = r.db().Exec(`
		INSERT INTO feed_formulas (id, name, fish_type, description, ingredients, protein, fat, fiber, moisture, recommendations, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.Name, m.FishType, m.Description, string(ingredients),
		m.Protein, m.Fat, m.Fiber, m.Moisture, m.Recommendations,
		m.CreatedAt, m.UpdatedAt,
	)
	return m, err
}

func (r RecipeRepository) Update(m models.FeedFormula) (models.FeedFormula, error) {
	ingredients, err := json.Marshal(m.Ingredients)
	if err != nil {
		return models.FeedFormula{}, err
	}
	res, err := r.db().Exec(`
		UPDATE feed_formulas
		SET name=?, fish_type=?, description=?, ingredients=?, protein=?, fat=?, fiber=?, moisture=?, recommendations=?, updated_at=?
		WHERE id=?`,
		m.Name, m.FishType, m.Description, string(ingredients),
		m.Protein, m.Fat, m.Fiber, m.Moisture, m.Recommendations,
		utils.NowISO(), m.ID,
	)
	if err != nil {
		return models.FeedFormula{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.FeedFormula{}, domain.NotFoundError{Resource: "feed formula"}
	}
	return r.GetByID(m.ID)
}

func (r RecipeRepository) Delete(id string) error {
	res, err := r.db().Exec("DELETE FROM feed_formulas WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "feed formula"}
	}
	return nil
}
