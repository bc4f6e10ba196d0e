package repository

import (
	"storefront-backend/internal/models"

	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *models.Product) error
	GetByID(id uint) (*models.Product, error)
	GetByHandle(handle string) (*models.Product, error)
	GetByExternalID(externalID string) (*models.Product, error)
	GetAll(activeOnly bool) ([]models.Product, error)
	GetByCategorySlug(slug string, activeOnly bool) ([]models.Product, error)
	Update(product *models.Product) error
	Delete(id uint) error
	ExistsByHandle(handle string) (bool, error)
	AdjustStock(id uint, delta int) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.Preload("Category").First(&product, id).Error
	return &product, err
}

func (r *productRepository) GetByHandle(handle string) (*models.Product, error) {
	var product models.Product
	err := r.db.Preload("Category").Where("handle = ?", handle).First(&product).Error
	return &product, err
}

func (r *productRepository) GetByExternalID(externalID string) (*models.Product, error) {
	var product models.Product
	err := r.db.Where("external_id = ?", externalID).First(&product).Error
	return &product, err
}

func (r *productRepository) GetAll(activeOnly bool) ([]models.Product, error) {
	var products []models.Product
	query := r.db.Preload("Category").Order("id ASC")
	if activeOnly {
		query = query.Where("active = true")
	}
	err := query.Find(&products).Error
	return products, err
}

func (r *productRepository) GetByCategorySlug(slug string, activeOnly bool) ([]models.Product, error) {
	var products []models.Product
	query := r.db.Preload("Category").
		Joins("JOIN categories ON categories.id = products.category_id").
		Where("categories.slug = ?", slug).
		Order("products.id ASC")
	if activeOnly {
		query = query.Where("products.active = true")
	}
	err := query.Find(&products).Error
	return products, err
}

func (r *productRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepository) Delete(id uint) error {
	return r.db.Delete(&models.Product{}, id).Error
}

func (r *productRepository) ExistsByHandle(handle string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Product{}).Where("handle = ?", handle).Count(&count).Error
	return count > 0, err
}

func (r *productRepository) AdjustStock(id uint, delta int) error {
	return r.db.Model(&models.Product{}).
		Where("id = ?", id).
		UpdateColumn("stock", gorm.Expr("stock + ?", delta)).Error
}
