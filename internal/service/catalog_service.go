package service

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"storefront-backend/internal/models"
	"storefront-backend/internal/repository"
	"storefront-backend/internal/seed"
	"storefront-backend/pkg/cache"
	"storefront-backend/pkg/logger"
	"storefront-backend/pkg/utils"
)

const (
	productsCacheKey   = "catalog:products"
	categoriesCacheKey = "catalog:categories"
	catalogCacheTTL    = 5 * time.Minute
)

// CatalogService serves products and categories to the storefront and the
// admin. Storefront reads favor availability: a failed database read falls
// back to the compiled-in seed catalog so the first paint is never blank.
type CatalogService struct {
	productRepo   repository.ProductRepository
	categoryRepo  repository.CategoryRepository
	inventoryRepo repository.InventoryRepository
	cache         *cache.Cache
}

func NewCatalogService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	inventoryRepo repository.InventoryRepository,
	cacheService *cache.Cache,
) *CatalogService {
	return &CatalogService{
		productRepo:   productRepo,
		categoryRepo:  categoryRepo,
		inventoryRepo: inventoryRepo,
		cache:         cacheService,
	}
}

// Products returns the active storefront catalog, or the seed fallback
// when the database read fails.
func (s *CatalogService) Products() []models.Product {
	if s.cache != nil {
		var products []models.Product
		if err := s.cache.Get(productsCacheKey, &products); err == nil {
			return products
		}
	}

	products, err := s.productRepo.GetAll(true)
	if err != nil {
		logger.Warn("Catalog read failed, serving seed fallback", map[string]interface{}{"error": err.Error()})
		return seed.Products()
	}

	if s.cache != nil {
		s.cache.Set(productsCacheKey, products, catalogCacheTTL)
	}

	return products
}

// ProductByHandle resolves a product for navigation and product pages.
// Falls back to the seed catalog on database errors; a handle unknown to
// whichever list was available reports (nil, false).
func (s *CatalogService) ProductByHandle(handle string) (*models.Product, bool) {
	product, err := s.productRepo.GetByHandle(handle)
	if err == nil {
		return product, true
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		for _, p := range seed.Products() {
			if p.Handle == handle {
				fallback := p
				return &fallback, true
			}
		}
	}

	return nil, false
}

// Categories returns the category list with the seed fallback.
func (s *CatalogService) Categories() []models.Category {
	if s.cache != nil {
		var categories []models.Category
		if err := s.cache.Get(categoriesCacheKey, &categories); err == nil {
			return categories
		}
	}

	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		logger.Warn("Category read failed, serving seed fallback", map[string]interface{}{"error": err.Error()})
		return seed.Categories()
	}

	if s.cache != nil {
		s.cache.Set(categoriesCacheKey, categories, catalogCacheTTL)
	}

	return categories
}

// HasCategory reports whether a category slug exists in the current list.
func (s *CatalogService) HasCategory(slug string) bool {
	for _, c := range s.Categories() {
		if c.Slug == slug {
			return true
		}
	}
	return false
}

// ProductsByCategory returns up to limit active products, optionally
// filtered by category slug ("" or "all" means the whole catalog).
func (s *CatalogService) ProductsByCategory(slug string, limit int) []models.Product {
	var products []models.Product

	if slug == "" || slug == "all" {
		products = s.Products()
	} else {
		fetched, err := s.productRepo.GetByCategorySlug(slug, true)
		if err != nil {
			for _, p := range seed.Products() {
				if p.Category.Slug == slug {
					products = append(products, p)
				}
			}
		} else {
			products = fetched
		}
	}

	if limit > 0 && len(products) > limit {
		products = products[:limit]
	}
	return products
}

func (s *CatalogService) CreateProduct(req models.CreateProductRequest) (*models.Product, error) {
	handle := req.Handle
	if handle == "" {
		handle = utils.GenerateSlug(req.Title)
	}

	exists, err := s.productRepo.ExistsByHandle(handle)
	if err != nil {
		return nil, fmt.Errorf("failed to check product handle: %w", err)
	}
	if exists {
		return nil, errors.New("product with this handle already exists")
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	product := &models.Product{
		Handle:       handle,
		ExternalID:   req.ExternalID,
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		OldPrice:     req.OldPrice,
		Installments: req.Installments,
		Images:       req.Images,
		Sizes:        req.Sizes,
		IsKit:        req.IsKit,
		CheckoutURL:  req.CheckoutURL,
		VariantURLs:  req.VariantURLs,
		Stock:        req.Stock,
		Active:       active,
		CategoryID:   req.CategoryID,
	}

	if err := s.productRepo.Create(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.invalidate()
	return product, nil
}

func (s *CatalogService) UpdateProduct(id uint, req models.UpdateProductRequest) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Handle != nil && *req.Handle != product.Handle {
		exists, err := s.productRepo.ExistsByHandle(*req.Handle)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, errors.New("product with this handle already exists")
		}
		product.Handle = *req.Handle
	}
	if req.ExternalID != nil {
		product.ExternalID = *req.ExternalID
	}
	if req.Title != nil {
		product.Title = *req.Title
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.OldPrice != nil {
		product.OldPrice = *req.OldPrice
	}
	if req.Installments != nil {
		product.Installments = *req.Installments
	}
	if req.Images != nil {
		product.Images = *req.Images
	}
	if req.Sizes != nil {
		product.Sizes = *req.Sizes
	}
	if req.IsKit != nil {
		product.IsKit = *req.IsKit
	}
	if req.CheckoutURL != nil {
		product.CheckoutURL = *req.CheckoutURL
	}
	if req.VariantURLs != nil {
		product.VariantURLs = *req.VariantURLs
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Active != nil {
		product.Active = *req.Active
	}
	if req.CategoryID != nil {
		product.CategoryID = *req.CategoryID
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	s.invalidate()
	return product, nil
}

func (s *CatalogService) DeleteProduct(id uint) error {
	if err := s.productRepo.Delete(id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *CatalogService) AllProducts() ([]models.Product, error) {
	return s.productRepo.GetAll(false)
}

func (s *CatalogService) ProductByID(id uint) (*models.Product, error) {
	return s.productRepo.GetByID(id)
}

func (s *CatalogService) CreateCategory(req models.CreateCategoryRequest) (*models.Category, error) {
	slug := req.Slug
	if slug == "" {
		slug = utils.GenerateSlug(req.Name)
	}

	exists, err := s.categoryRepo.ExistsBySlug(slug)
	if err != nil {
		return nil, fmt.Errorf("failed to check category slug: %w", err)
	}
	if exists {
		return nil, errors.New("category with this slug already exists")
	}

	category := &models.Category{
		Slug:  slug,
		Name:  req.Name,
		Image: req.Image,
		Order: req.Order,
	}

	if err := s.categoryRepo.Create(category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	s.invalidate()
	return category, nil
}

func (s *CatalogService) UpdateCategory(id uint, req models.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Image != nil {
		category.Image = *req.Image
	}
	if req.Order != nil {
		category.Order = *req.Order
	}

	if err := s.categoryRepo.Update(category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	s.invalidate()
	return category, nil
}

func (s *CatalogService) DeleteCategory(id uint) error {
	if err := s.categoryRepo.Delete(id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// AdjustInventory applies a manual stock correction and records it.
func (s *CatalogService) AdjustInventory(req models.InventoryAdjustmentRequest) (*models.InventoryLog, error) {
	if _, err := s.productRepo.GetByID(req.ProductID); err != nil {
		return nil, errors.New("product not found")
	}

	if err := s.productRepo.AdjustStock(req.ProductID, req.ChangeAmount); err != nil {
		return nil, fmt.Errorf("failed to adjust stock: %w", err)
	}

	entry := &models.InventoryLog{
		ProductID:    req.ProductID,
		ChangeAmount: req.ChangeAmount,
		Reason:       req.Reason,
	}
	if err := s.inventoryRepo.Log(entry); err != nil {
		return nil, fmt.Errorf("failed to record inventory change: %w", err)
	}

	s.invalidate()
	return entry, nil
}

func (s *CatalogService) InventoryLogs(productID uint, limit, offset int) ([]models.InventoryLog, int64, error) {
	return s.inventoryRepo.GetAll(productID, limit, offset)
}

func (s *CatalogService) invalidate() {
	if s.cache == nil {
		return
	}
	s.cache.Delete(productsCacheKey)
	s.cache.Delete(categoriesCacheKey)
}
