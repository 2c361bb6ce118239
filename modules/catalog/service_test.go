package catalog

import (
	"context"
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	domain "github.com/tungnhan410/Cty-ban-lieu-xay-dung/domain/catalog"
)

// setupService builds a catalog service on an in-memory database with
// caching disabled.
func setupService(t *testing.T) *Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	repo := domain.NewRepository(db)
	if err := repo.Migrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return NewService(repo, nil)
}

func TestService_CreateDerivesSlug(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, CreateInput{Name: "Xi măng ABC 50kg", Price: 95000, Stock: 120})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if p.Slug != "xi-mang-abc-50kg" {
		t.Errorf("expected slug %q, got %q", "xi-mang-abc-50kg", p.Slug)
	}
	if p.ID == 0 {
		t.Error("expected non-zero id after create")
	}
}

func TestService_CreateDuplicateSlug(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateInput{Name: "Xi măng ABC 50kg", Price: 95000}); err != nil {
		t.Fatalf("first Create() error = %v", err)
	}

	_, err := svc.Create(ctx, CreateInput{Name: "Xi măng ABC 50kg", Price: 99000})
	if !errors.Is(err, domain.ErrDuplicateSlug) {
		t.Fatalf("expected ErrDuplicateSlug, got %v", err)
	}

	products, err := svc.List(ctx, domain.Filter{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(products) != 1 {
		t.Errorf("expected catalog unchanged with 1 product, got %d", len(products))
	}
}

func TestService_CreateValidation(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateInput{Name: "", Price: 1}); err == nil {
		t.Error("expected error for empty name")
	}
	if _, err := svc.Create(ctx, CreateInput{Name: "Gạch", Price: -1}); err == nil {
		t.Error("expected error for negative price")
	}
	if _, err := svc.Create(ctx, CreateInput{Name: "Gạch", Price: 1, Stock: -1}); err == nil {
		t.Error("expected error for negative stock")
	}
}

func TestService_GetBySlug(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{Name: "Sơn nước 5L", Price: 420000})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	found, err := svc.GetBySlug(ctx, created.Slug)
	if err != nil {
		t.Fatalf("GetBySlug() error = %v", err)
	}
	if found.ID != created.ID {
		t.Errorf("expected id %d, got %d", created.ID, found.ID)
	}

	if _, err := svc.GetBySlug(ctx, "khong-ton-tai"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestService_DeleteAbsent(t *testing.T) {
	svc := setupService(t)

	if err := svc.Delete(context.Background(), 42); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
