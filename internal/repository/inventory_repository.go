package repository

import (
	"storefront-backend/internal/models"

	"gorm.io/gorm"
)

type InventoryRepository interface {
	Log(entry *models.InventoryLog) error
	GetAll(productID uint, limit, offset int) ([]models.InventoryLog, int64, error)
}

type inventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) Log(entry *models.InventoryLog) error {
	return r.db.Create(entry).Error
}

func (r *inventoryRepository) GetAll(productID uint, limit, offset int) ([]models.InventoryLog, int64, error) {
	var logs []models.InventoryLog
	var total int64

	query := r.db.Model(&models.InventoryLog{})
	if productID != 0 {
		query = query.Where("product_id = ?", productID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&logs).Error
	return logs, total, err
}
