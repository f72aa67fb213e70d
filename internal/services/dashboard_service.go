package services

import (
	"database/sql"
	"time"

	"github.com/koard/DukeFarm-Admin-sub000/internal/domain"
	"github.com/koard/DukeFarm-Admin-sub000/internal/domain/models"
	"github.com/koard/DukeFarm-Admin-sub000/internal/repositories"
)

// DashboardService assembles the aggregated stats behind one dashboard
// group. Read-only.
type DashboardService struct {
	DashboardRepo repositories.DashboardRepository
	DB            *sql.DB
}

func (s DashboardService) repo() repositories.DashboardRepository {
	if s.DashboardRepo.DB != nil {
		return s.DashboardRepo
	}
	return repositories.DashboardRepository{DB: s.DB}
}

const rankingSize = 5

// Groups returns the monthly series and ranking table for one group type.
// Year 0 defaults to the current year.
func (s DashboardService) Groups(groupType string, year int) (models.DashboardGroup, error) {
	if year <= 0 {
		year = time.Now().Year()
	}

	out := models.DashboardGroup{GroupType: groupType, Year: year}
	var err error

	switch groupType {
	case models.DashboardGroupFarmer:
		out.Monthly, err = s.repo().MonthlyFarmerCounts(year)
		if err != nil {
			return models.DashboardGroup{}, err
		}
		out.Ranking, err = s.repo().TopProvinces(rankingSize)
	case models.DashboardGroupResearcher:
		out.Monthly, err = s.repo().MonthlyResearcherCounts(year)
	case models.DashboardGroupProduction:
		out.Monthly, err = s.repo().MonthlyHarvest(year)
		if err != nil {
			return models.DashboardGroup{}, err
		}
		out.Ranking, err = s.repo().TopHarvesters(year, rankingSize)
	default:
		return models.DashboardGroup{}, domain.ValidationError{Field: "groupType", Msg: "ไม่รู้จักประเภทกลุ่มข้อมูล"}
	}
	if err != nil {
		return models.DashboardGroup{}, err
	}
	return out, nil
}
