package service

import (
	"errors"
	"testing"

	"storefront-backend/internal/models"
	"storefront-backend/internal/seed"
)

var errDatabaseDown = errors.New("connection refused")

type downProductRepo struct{}

func (downProductRepo) Create(*models.Product) error { return errDatabaseDown }
func (downProductRepo) GetByID(uint) (*models.Product, error) {
	return nil, errDatabaseDown
}
func (downProductRepo) GetByHandle(string) (*models.Product, error) {
	return nil, errDatabaseDown
}
func (downProductRepo) GetByExternalID(string) (*models.Product, error) {
	return nil, errDatabaseDown
}
func (downProductRepo) GetAll(bool) ([]models.Product, error) {
	return nil, errDatabaseDown
}
func (downProductRepo) GetByCategorySlug(string, bool) ([]models.Product, error) {
	return nil, errDatabaseDown
}
func (downProductRepo) Update(*models.Product) error        { return errDatabaseDown }
func (downProductRepo) Delete(uint) error                   { return errDatabaseDown }
func (downProductRepo) ExistsByHandle(string) (bool, error) { return false, errDatabaseDown }
func (downProductRepo) AdjustStock(uint, int) error         { return errDatabaseDown }

type downCategoryRepo struct{}

func (downCategoryRepo) Create(*models.Category) error { return nil }
func (downCategoryRepo) GetByID(uint) (*models.Category, error) {
	return nil, errDatabaseDown
}
func (downCategoryRepo) GetBySlug(string) (*models.Category, error) {
	return nil, errDatabaseDown
}
func (downCategoryRepo) GetAll() ([]models.Category, error) {
	return nil, errDatabaseDown
}
func (downCategoryRepo) Update(*models.Category) error        { return nil }
func (downCategoryRepo) Delete(uint) error                    { return nil }
func (downCategoryRepo) ExistsBySlug(string) (bool, error)    { return false, errDatabaseDown }

func downCatalog() *CatalogService {
	return NewCatalogService(downProductRepo{}, downCategoryRepo{}, &fakeInventoryRepo{}, nil)
}

func TestProductsFallBackToSeedOnDatabaseError(t *testing.T) {
	products := downCatalog().Products()

	if len(products) != len(seed.Products()) {
		t.Fatalf("expected seed catalog fallback, got %d products", len(products))
	}
}

func TestProductByHandleFallsBackToSeed(t *testing.T) {
	catalog := downCatalog()

	product, ok := catalog.ProductByHandle("kit-3-camisas-ibiza-em-linho-de-algodao")
	if !ok || product == nil {
		t.Fatalf("expected seed product on database error")
	}
	if !product.IsKit {
		t.Fatalf("expected the seeded kit product, got %+v", product)
	}

	if _, ok := catalog.ProductByHandle("nao-existe"); ok {
		t.Fatalf("unknown handle must still miss against the seed list")
	}
}

func TestCategoriesFallBackToSeed(t *testing.T) {
	catalog := downCatalog()

	categories := catalog.Categories()
	if len(categories) != len(seed.Categories()) {
		t.Fatalf("expected seed categories, got %d", len(categories))
	}

	if !catalog.HasCategory("kits") {
		t.Fatalf("expected kits category from seed fallback")
	}
	if catalog.HasCategory("sapatos") {
		t.Fatalf("unexpected category resolved")
	}
}

func TestProductsByCategoryFallsBackAndLimits(t *testing.T) {
	catalog := downCatalog()

	conjuntos := catalog.ProductsByCategory("conjuntos", 0)
	if len(conjuntos) != 2 {
		t.Fatalf("expected 2 seeded conjuntos, got %d", len(conjuntos))
	}

	limited := catalog.ProductsByCategory("all", 1)
	if len(limited) != 1 {
		t.Fatalf("expected limit to cap results, got %d", len(limited))
	}
}
