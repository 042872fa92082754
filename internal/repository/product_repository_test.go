package repository

import (
	"fmt"
	"testing"

	"github.com/carvedrock/storefront/internal/constants"
	"github.com/carvedrock/storefront/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupProductRepositoryTest(t *testing.T) *GormProductRepository {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		t.Fatalf("migrate products failed: %v", err)
	}
	if err := db.Where("1 = 1").Delete(&models.Product{}).Error; err != nil {
		t.Fatalf("reset products failed: %v", err)
	}
	if err := models.SeedProducts(db); err != nil {
		t.Fatalf("seed products failed: %v", err)
	}
	return NewProductRepository(db)
}

func TestProductRepositoryGetAll(t *testing.T) {
	repo := setupProductRepositoryTest(t)

	products, err := repo.GetAll()
	if err != nil {
		t.Fatalf("get all failed: %v", err)
	}
	if len(products) != len(models.FixtureProducts()) {
		t.Fatalf("expected %d products, got %d", len(models.FixtureProducts()), len(products))
	}
}

func TestProductRepositoryGetByID(t *testing.T) {
	repo := setupProductRepositoryTest(t)

	product, err := repo.GetByID(5)
	if err != nil {
		t.Fatalf("get by id failed: %v", err)
	}
	if product == nil {
		t.Fatalf("expected product 5")
	}
	if product.Name != "PeakLock Carabiner" {
		t.Fatalf("expected PeakLock Carabiner, got %q", product.Name)
	}
	if product.Price.String() != "19.99" {
		t.Fatalf("expected price 19.99, got %s", product.Price.String())
	}

	missing, err := repo.GetByID(9999)
	if err != nil {
		t.Fatalf("get missing product failed: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for missing product, got %+v", missing)
	}
}

func TestProductRepositoryGetByCategory(t *testing.T) {
	repo := setupProductRepositoryTest(t)

	footwear, err := repo.GetByCategory(constants.CategoryFootwear)
	if err != nil {
		t.Fatalf("get by category failed: %v", err)
	}
	if len(footwear) != 4 {
		t.Fatalf("expected 4 footwear products, got %d", len(footwear))
	}
	for _, product := range footwear {
		if product.Category != constants.CategoryFootwear {
			t.Fatalf("unexpected category %q", product.Category)
		}
	}

	// 大小写不敏感
	upper, err := repo.GetByCategory("FOOTWEAR")
	if err != nil {
		t.Fatalf("get by upper category failed: %v", err)
	}
	if len(upper) != len(footwear) {
		t.Fatalf("expected case-insensitive match, got %d vs %d", len(upper), len(footwear))
	}

	// 空分类返回全部
	all, err := repo.GetByCategory("  ")
	if err != nil {
		t.Fatalf("get by blank category failed: %v", err)
	}
	if len(all) != len(models.FixtureProducts()) {
		t.Fatalf("expected all products for blank category, got %d", len(all))
	}

	unknown, err := repo.GetByCategory("nonexistent")
	if err != nil {
		t.Fatalf("get by unknown category failed: %v", err)
	}
	if len(unknown) != 0 {
		t.Fatalf("expected no products for unknown category, got %d", len(unknown))
	}
}

func TestSampleProductRepository(t *testing.T) {
	repo := NewSampleProductRepository()

	all, err := repo.GetAll()
	if err != nil {
		t.Fatalf("get all failed: %v", err)
	}
	if len(all) != 9 {
		t.Fatalf("expected 9 sample products, got %d", len(all))
	}

	product, err := repo.GetByID(4)
	if err != nil {
		t.Fatalf("get by id failed: %v", err)
	}
	if product == nil || product.Category != constants.CategoryFootwear {
		t.Fatalf("unexpected sample product: %+v", product)
	}

	// 返回的是副本
	product.Name = "mutated"
	again, err := repo.GetByID(4)
	if err != nil {
		t.Fatalf("second get failed: %v", err)
	}
	if again.Name == "mutated" {
		t.Fatalf("sample catalog mutated through returned pointer")
	}

	missing, err := repo.GetByID(42)
	if err != nil {
		t.Fatalf("get missing failed: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for missing sample product, got %+v", missing)
	}

	equipment, err := repo.GetByCategory("EQUIPMENT")
	if err != nil {
		t.Fatalf("get by category failed: %v", err)
	}
	if len(equipment) != 3 {
		t.Fatalf("expected 3 equipment products, got %d", len(equipment))
	}
}
