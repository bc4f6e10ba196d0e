package repository

import (
	"storefront-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EventRepository interface {
	Enqueue(event *models.ServerEvent) error
	GetPending(limit int) ([]models.ServerEvent, error)
	MarkSent(id uint) error
	MarkFailed(id uint, reason string) error
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

// Enqueue stores the event, ignoring duplicates of the same event id so
// webhook retries do not double-fire conversions.
func (r *eventRepository) Enqueue(event *models.ServerEvent) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "event_id"}},
		DoNothing: true,
	}).Create(event).Error
}

func (r *eventRepository) GetPending(limit int) ([]models.ServerEvent, error) {
	var events []models.ServerEvent
	err := r.db.Where("status = ?", "pending").
		Order("created_at ASC").
		Limit(limit).
		Find(&events).Error
	return events, err
}

func (r *eventRepository) MarkSent(id uint) error {
	return r.db.Model(&models.ServerEvent{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":   "sent",
			"attempts": gorm.Expr("attempts + 1"),
		}).Error
}

func (r *eventRepository) MarkFailed(id uint, reason string) error {
	return r.db.Model(&models.ServerEvent{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     "failed",
			"attempts":   gorm.Expr("attempts + 1"),
			"last_error": reason,
		}).Error
}
