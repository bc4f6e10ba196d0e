package repository

import (
	"storefront-backend/internal/models"

	"gorm.io/gorm"
)

type PageRepository interface {
	Create(page *models.Page) error
	GetByID(id uint) (*models.Page, error)
	GetByType(pageType string) (*models.Page, error)
	GetAll() ([]models.Page, error)
	Update(page *models.Page) error
	Delete(id uint) error
	ExistsByType(pageType string) (bool, error)
}

type pageRepository struct {
	db *gorm.DB
}

func NewPageRepository(db *gorm.DB) PageRepository {
	return &pageRepository{db: db}
}

func (r *pageRepository) Create(page *models.Page) error {
	return r.db.Create(page).Error
}

func (r *pageRepository) GetByID(id uint) (*models.Page, error) {
	var page models.Page
	err := r.db.First(&page, id).Error
	return &page, err
}

func (r *pageRepository) GetByType(pageType string) (*models.Page, error) {
	var page models.Page
	err := r.db.Where("type = ? AND published = true", pageType).First(&page).Error
	return &page, err
}

func (r *pageRepository) GetAll() ([]models.Page, error) {
	var pages []models.Page
	err := r.db.Order("type ASC").Find(&pages).Error
	return pages, err
}

func (r *pageRepository) Update(page *models.Page) error {
	return r.db.Save(page).Error
}

func (r *pageRepository) Delete(id uint) error {
	return r.db.Delete(&models.Page{}, id).Error
}

func (r *pageRepository) ExistsByType(pageType string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Page{}).Where("type = ?", pageType).Count(&count).Error
	return count > 0, err
}
