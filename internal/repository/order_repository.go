package repository

import (
	"errors"

	"storefront-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderRepository interface {
	Upsert(order *models.Order) error
	GetByID(id uint) (*models.Order, error)
	GetByExternalID(externalID string) (*models.Order, error)
	GetAll(limit, offset int) ([]models.Order, int64, error)
	Update(order *models.Order) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// Upsert inserts the order or refreshes it when the external id was seen
// before, keeping webhook ingestion idempotent on processor retries. Item
// rows are written on first insert only; a redelivery must not append a
// second copy of the order's lines.
func (r *orderRepository) Upsert(order *models.Order) error {
	var existing models.Order
	err := r.db.Select("id").Where("external_id = ?", order.ExternalID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "external_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"customer_name", "customer_email", "total", "status", "event_id", "updated_at",
			}),
		}).Create(order).Error
	}
	if err != nil {
		return err
	}

	order.ID = existing.ID
	return r.db.Omit(clause.Associations).Save(order).Error
}

func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").First(&order, id).Error
	return &order, err
}

func (r *orderRepository) GetByExternalID(externalID string) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").Where("external_id = ?", externalID).First(&order).Error
	return &order, err
}

func (r *orderRepository) GetAll(limit, offset int) ([]models.Order, int64, error) {
	var orders []models.Order
	var total int64

	if err := r.db.Model(&models.Order{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Items").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&orders).Error
	return orders, total, err
}

func (r *orderRepository) Update(order *models.Order) error {
	return r.db.Save(order).Error
}
