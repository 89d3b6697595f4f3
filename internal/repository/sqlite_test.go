package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/subuhana2303/vaanirakshak/internal/models"
)

func setupTestDB(t *testing.T) *SQLiteDB {
	db, err := NewSQLiteDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test db: %v", err)
	}
	return db
}

func testAlert(category models.Category, createdAt time.Time) *models.AlertRecord {
	return &models.AlertRecord{
		ID:        uuid.NewString(),
		Category:  category,
		Message:   "test alert",
		Latitude:  28.6139,
		Longitude: 77.2090,
		CreatedAt: createdAt,
	}
}

func TestSQLiteDB_AddAndList(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx := context.Background()
	a := testAlert(models.CategoryFire, time.Now())
	a.Message = "Fire emergency - evacuation required"

	if err := db.Add(ctx, a); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	alerts, err := db.List(ctx, 10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(alerts))
	}
	if alerts[0].Category != models.CategoryFire {
		t.Errorf("expected fire category, got %s", alerts[0].Category)
	}
	if alerts[0].Message != "Fire emergency - evacuation required" {
		t.Errorf("unexpected message: %q", alerts[0].Message)
	}
}

func TestSQLiteDB_ListNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	old := testAlert(models.CategoryHelp, now.Add(-time.Hour))
	recent := testAlert(models.CategoryFlood, now)
	if err := db.Add(ctx, old); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := db.Add(ctx, recent); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	alerts, err := db.List(ctx, 10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(alerts) != 2 {
		t.Fatalf("expected 2 alerts, got %d", len(alerts))
	}
	if alerts[0].Category != models.CategoryFlood {
		t.Errorf("expected newest alert first, got %s", alerts[0].Category)
	}
}

func TestSQLiteDB_ListLimit(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		if err := db.Add(ctx, testAlert(models.CategoryHelp, time.Now())); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	alerts, err := db.List(ctx, 3)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(alerts) != 3 {
		t.Errorf("expected 3 alerts with limit, got %d", len(alerts))
	}
}

func TestSQLiteDB_CountSince(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	db.Add(ctx, testAlert(models.CategoryHelp, now.Add(-2*time.Hour)))
	db.Add(ctx, testAlert(models.CategoryFire, now))

	count, err := db.CountSince(ctx, now.Add(-time.Hour))
	if err != nil {
		t.Fatalf("CountSince failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 recent alert, got %d", count)
	}
}

func TestSQLiteDB_DuplicateID(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx := context.Background()
	a := testAlert(models.CategoryHelp, time.Now())

	if err := db.Add(ctx, a); err != nil {
		t.Fatalf("first Add failed: %v", err)
	}
	if err := db.Add(ctx, a); err == nil {
		t.Error("expected error for duplicate ID, got nil")
	}
}
