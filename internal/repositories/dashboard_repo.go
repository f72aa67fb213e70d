package repositories

import (
	"database/sql"
	"fmt"

	"github.com/koard/DukeFarm-Admin-sub000/internal/domain/models"
)

// DashboardRepository runs the read-only aggregation queries behind the
// dashboard charts and ranking tables. Timestamps are stored as ISO-8601
// text, so year/month extraction works on the string prefix.
type DashboardRepository struct {
	DB *sql.DB
}

func (r DashboardRepository) db() *sql.DB { return sharedDB(r.DB) }

// MonthlyCounts groups rows of table by registration month within a year.
func (r DashboardRepository) monthlyCounts(table, tsColumn string, year int) ([]models.MonthlyCount, error) {
	rows, err := r.db().Query(`
		SELECT CAST(SUBSTRING(`+tsColumn+`, 6, 2) AS UNSIGNED) AS m, COUNT(*)
		FROM `+table+`
		WHERE SUBSTRING(`+tsColumn+`, 1, 4) = ?
		GROUP BY m ORDER BY m`, yearString(year))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byMonth := map[int]int{}
	for rows.Next() {
		var month, count int
		if err := rows.Scan(&month, &count); err != nil {
			return nil, err
		}
		byMonth[month] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]models.MonthlyCount, 0, 12)
	for m := 1; m <= 12; m++ {
		out = append(out, models.MonthlyCount{Month: m, Count: byMonth[m]})
	}
	return out, nil
}

func (r DashboardRepository) MonthlyFarmerCounts(year int) ([]models.MonthlyCount, error) {
	return r.monthlyCounts("farmers", "registered_at", year)
}

func (r DashboardRepository) MonthlyResearcherCounts(year int) ([]models.MonthlyCount, error) {
	return r.monthlyCounts("researchers", "created_at", year)
}

// MonthlyHarvest sums harvest record amounts per month. Amounts are stored
// as entered; non-numeric values coerce to 0 under CAST.
func (r DashboardRepository) MonthlyHarvest(year int) ([]models.MonthlyCount, error) {
	rows, err := r.db().Query(`
		SELECT CAST(SUBSTRING(recorded_at, 6, 2) AS UNSIGNED) AS m,
		       COUNT(*),
		       COALESCE(SUM(CAST(amount AS DECIMAL(14,2))), 0)
		FROM farm_records
		WHERE record_type = 'harvest' AND SUBSTRING(recorded_at, 1, 4) = ?
		GROUP BY m ORDER BY m`, yearString(year))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byMonth := map[int]models.MonthlyCount{}
	for rows.Next() {
		var mc models.MonthlyCount
		if err := rows.Scan(&mc.Month, &mc.Count, &mc.Total); err != nil {
			return nil, err
		}
		byMonth[mc.Month] = mc
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]models.MonthlyCount, 0, 12)
	for m := 1; m <= 12; m++ {
		mc := byMonth[m]
		mc.Month = m
		out = append(out, mc)
	}
	return out, nil
}

// TopProvinces ranks provinces by farmer count.
func (r DashboardRepository) TopProvinces(limit int) ([]models.RankEntry, error) {
	if limit <= 0 {
		limit = 5
	}
	rows, err := r.db().Query(`
		SELECT COALESCE(province, ''), COUNT(*)
		FROM farmers GROUP BY province ORDER BY COUNT(*) DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.RankEntry{}
	for rows.Next() {
		var e models.RankEntry
		var count int
		if err := rows.Scan(&e.Name, &count); err != nil {
			return nil, err
		}
		e.Value = float64(count)
		out = append(out, e)
	}
	return out, rows.Err()
}

// TopHarvesters ranks farmers by total harvest amount within a year.
func (r DashboardRepository) TopHarvesters(year, limit int) ([]models.RankEntry, error) {
	if limit <= 0 {
		limit = 5
	}
	rows, err := r.db().Query(`
		SELECT COALESCE(f.name, ''), COALESCE(SUM(CAST(rec.amount AS DECIMAL(14,2))), 0) AS total
		FROM farm_records rec
		JOIN farmers f ON f.id = rec.farmer_id
		WHERE rec.record_type = 'harvest' AND SUBSTRING(rec.recorded_at, 1, 4) = ?
		GROUP BY f.id, f.name ORDER BY total DESC LIMIT ?`, yearString(year), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.RankEntry{}
	for rows.Next() {
		var e models.RankEntry
		if err := rows.Scan(&e.Name, &e.Value); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// yearString zero-pads to the 4 digits of the ISO prefix.
func yearString(year int) string {
	return fmt.Sprintf("%04d", year)
}
