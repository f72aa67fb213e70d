package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/koard/DukeFarm-Admin-sub000/internal/domain"
	"github.com/koard/DukeFarm-Admin-sub000/internal/domain/models"
	"github.com/koard/DukeFarm-Admin-sub000/internal/repositories"
)

func cycleRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "pond_id", "species", "stock_count", "status", "started_at", "ended_at",
	})
}

func TestCycleStartRejectedWhileActive(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM pond_cycles").
		WithArgs("pond-1", models.CycleStatusActive).
		WillReturnRows(cycleRows().
			AddRow("cycle-1", "pond-1", "ปลานิล", 5000, models.CycleStatusActive, "2026-05-01T06:00:00Z", ""))

	svc := CycleService{CycleRepo: repositories.CycleRepository{DB: db}}
	_, err = svc.Start("pond-1", "ปลาดุก", 3000)
	if !domain.IsConflict(err) {
		t.Fatalf("expected ConflictError, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCycleStartInsertsWhenIdle(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM pond_cycles").
		WithArgs("pond-1", models.CycleStatusActive).
		WillReturnRows(cycleRows())
	mock.ExpectExec("INSERT INTO pond_cycles").
		WillReturnResult(sqlmock.NewResult(1, 1))

	svc := CycleService{CycleRepo: repositories.CycleRepository{DB: db}}
	cycle, err := svc.Start("pond-1", " ปลานิล ", 5000)
	if err != nil {
		t.Fatalf("start error: %v", err)
	}
	if cycle.Status != models.CycleStatusActive {
		t.Fatalf("new cycle not active: %q", cycle.Status)
	}
	if cycle.Species != "ปลานิล" {
		t.Fatalf("species not trimmed: %q", cycle.Species)
	}
	if cycle.ID == "" || cycle.StartedAt == "" {
		t.Fatalf("id or started_at not assigned: %+v", cycle)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCycleStartValidatesInput(t *testing.T) {
	svc := CycleService{}
	if _, err := svc.Start("", "ปลานิล", 10); !domain.IsValidation(err) {
		t.Fatalf("empty pond should fail validation, got %v", err)
	}
	if _, err := svc.Start("pond-1", "  ", 10); !domain.IsValidation(err) {
		t.Fatalf("empty species should fail validation, got %v", err)
	}
	if _, err := svc.Start("pond-1", "ปลานิล", 0); !domain.IsValidation(err) {
		t.Fatalf("zero stock should fail validation, got %v", err)
	}
}

func TestCycleEndClosesActive(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM pond_cycles").
		WithArgs("pond-1", models.CycleStatusActive).
		WillReturnRows(cycleRows().
			AddRow("cycle-1", "pond-1", "ปลานิล", 5000, models.CycleStatusActive, "2026-05-01T06:00:00Z", ""))
	mock.ExpectExec("UPDATE pond_cycles").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT (.+) FROM pond_cycles WHERE id").
		WithArgs("cycle-1").
		WillReturnRows(cycleRows().
			AddRow("cycle-1", "pond-1", "ปลานิล", 5000, models.CycleStatusEnded, "2026-05-01T06:00:00Z", "2026-08-30T06:00:00Z"))

	svc := CycleService{CycleRepo: repositories.CycleRepository{DB: db}}
	cycle, err := svc.End("pond-1")
	if err != nil {
		t.Fatalf("end error: %v", err)
	}
	if cycle.Status != models.CycleStatusEnded || cycle.EndedAt == "" {
		t.Fatalf("cycle not closed: %+v", cycle)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCycleEndWithoutActive(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM pond_cycles").
		WithArgs("pond-9", models.CycleStatusActive).
		WillReturnRows(cycleRows())

	svc := CycleService{CycleRepo: repositories.CycleRepository{DB: db}}
	if _, err := svc.End("pond-9"); !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
