package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/koard/DukeFarm-Admin-sub000/internal/domain"
	"github.com/koard/DukeFarm-Admin-sub000/internal/domain/models"
)

func TestDashboardFarmerGroupZeroFillsMonths(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM farmers").
		WithArgs("2026").
		WillReturnRows(sqlmock.NewRows([]string{"m", "count"}).
			AddRow(3, 5).
			AddRow(7, 2))
	mock.ExpectQuery("SELECT (.+) FROM farmers").
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"province", "count"}).
			AddRow("สุราษฎร์ธานี", 12).
			AddRow("นครปฐม", 8))

	svc := DashboardService{DB: db}
	group, err := svc.Groups(models.DashboardGroupFarmer, 2026)
	if err != nil {
		t.Fatalf("groups error: %v", err)
	}

	if group.GroupType != models.DashboardGroupFarmer || group.Year != 2026 {
		t.Fatalf("wrong group header: %+v", group)
	}
	if len(group.Monthly) != 12 {
		t.Fatalf("expected 12 months, got %d", len(group.Monthly))
	}
	if group.Monthly[2].Count != 5 || group.Monthly[6].Count != 2 {
		t.Fatalf("reported months not carried over: %+v", group.Monthly)
	}
	for _, m := range []int{1, 2, 4, 5, 6, 8, 9, 10, 11, 12} {
		if group.Monthly[m-1].Count != 0 {
			t.Fatalf("month %d should be zero-filled, got %d", m, group.Monthly[m-1].Count)
		}
	}
	if len(group.Ranking) != 2 || group.Ranking[0].Name != "สุราษฎร์ธานี" || group.Ranking[0].Value != 12 {
		t.Fatalf("unexpected ranking: %+v", group.Ranking)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDashboardProductionSumsHarvests(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM farm_records").
		WithArgs("2025").
		WillReturnRows(sqlmock.NewRows([]string{"m", "count", "total"}).
			AddRow(6, 4, 1250.5))
	mock.ExpectQuery("SELECT (.+) FROM farm_records").
		WithArgs("2025", 5).
		WillReturnRows(sqlmock.NewRows([]string{"name", "total"}).
			AddRow("สมชาย ใจดี", 1250.5))

	svc := DashboardService{DB: db}
	group, err := svc.Groups(models.DashboardGroupProduction, 2025)
	if err != nil {
		t.Fatalf("groups error: %v", err)
	}

	june := group.Monthly[5]
	if june.Count != 4 || june.Total != 1250.5 {
		t.Fatalf("harvest totals lost: %+v", june)
	}
	if group.Monthly[0].Count != 0 || group.Monthly[0].Total != 0 {
		t.Fatalf("idle months should be zero: %+v", group.Monthly[0])
	}
	if len(group.Ranking) != 1 || group.Ranking[0].Name != "สมชาย ใจดี" {
		t.Fatalf("unexpected ranking: %+v", group.Ranking)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDashboardResearcherGroupHasNoRanking(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM researchers").
		WithArgs("2026").
		WillReturnRows(sqlmock.NewRows([]string{"m", "count"}).AddRow(1, 3))

	svc := DashboardService{DB: db}
	group, err := svc.Groups(models.DashboardGroupResearcher, 2026)
	if err != nil {
		t.Fatalf("groups error: %v", err)
	}
	if group.Monthly[0].Count != 3 {
		t.Fatalf("january count lost: %+v", group.Monthly[0])
	}
	if group.Ranking != nil {
		t.Fatalf("researcher group should carry no ranking: %+v", group.Ranking)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDashboardRejectsUnknownGroupType(t *testing.T) {
	svc := DashboardService{}
	if _, err := svc.Groups("vehicles", 2026); !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
