package repositories

import (
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/koard/DukeFarm-Admin-sub000/internal/domain"
	"github.com/koard/DukeFarm-Admin-sub000/internal/domain/models"
)

func domainFarmer(name string) models.Farmer {
	return models.Farmer{
		Name:      name,
		Phone:     "0812345678",
		FarmName:  "ฟาร์มลุงชัย",
		FarmType:  "cage",
		Province:  "เชียงใหม่",
		PondCount: 4,
	}
}

func farmerRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "phone", "email", "farm_name", "farm_type",
		"province", "latitude", "longitude", "pond_count", "registered_at",
	})
}

func TestFarmerListSearchAndFilter(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM farmers").
		WithArgs("%สมชาย%", "%สมชาย%", "%สมชาย%", "cage").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(23))
	mock.ExpectQuery("SELECT (.+) FROM farmers").
		WithArgs("%สมชาย%", "%สมชาย%", "%สมชาย%", "cage", 10, 10).
		WillReturnRows(farmerRows().
			AddRow("farmer-1", "สมชาย", "0812345678", "", "ฟาร์มลุงชัย", "cage", "เชียงใหม่", 18.78, 98.98, 4, "2026-01-15T08:00:00Z"))

	repo := FarmerRepository{DB: db}
	farmers, total, err := repo.List(domain.ListQuery{
		Page:    2,
		Limit:   10,
		Search:  "สมชาย",
		Filters: map[string]string{"farmType": "cage"},
	})
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if total != 23 {
		t.Fatalf("total mismatch: got %d want 23", total)
	}
	if len(farmers) != 1 || farmers[0].ID != "farmer-1" {
		t.Fatalf("unexpected page contents: %+v", farmers)
	}
	if farmers[0].Latitude == nil || *farmers[0].Latitude != 18.78 {
		t.Fatalf("latitude not scanned: %+v", farmers[0].Latitude)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFarmerGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM farmers WHERE id").
		WithArgs("farmer-missing").
		WillReturnRows(farmerRows())

	_, err = FarmerRepository{DB: db}.GetByID("farmer-missing")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestFarmerCreateAssignsServerID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO farmers").
		WillReturnResult(sqlmock.NewResult(1, 1))

	created, err := FarmerRepository{DB: db}.Create(domainFarmer("สมชาย"))
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if !strings.HasPrefix(created.ID, "farmer-") {
		t.Fatalf("id not assigned with resource prefix: %q", created.ID)
	}
	if created.RegisteredAt == "" {
		t.Fatalf("registered_at not stamped")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFarmerDeleteMissingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("DELETE FROM farmers").
		WithArgs("farmer-missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = FarmerRepository{DB: db}.Delete("farmer-missing")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestFarmerUpdateRereadsRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE farmers").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT (.+) FROM farmers WHERE id").
		WithArgs("farmer-1").
		WillReturnRows(farmerRows().
			AddRow("farmer-1", "สมชายใหม่", "0812345678", "", "ฟาร์มลุงชัย", "cage", "เชียงใหม่", nil, nil, 4, "2026-01-15T08:00:00Z"))

	f := domainFarmer("สมชายใหม่")
	f.ID = "farmer-1"
	updated, err := FarmerRepository{DB: db}.Update(f)
	if err != nil {
		t.Fatalf("update error: %v", err)
	}
	if updated.Name != "สมชายใหม่" {
		t.Fatalf("update did not return the re-read row: %+v", updated)
	}
	if updated.Latitude != nil {
		t.Fatalf("NULL latitude should map to nil pointer")
	}
}
