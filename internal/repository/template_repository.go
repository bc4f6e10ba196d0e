package repository

import (
	"storefront-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TemplateRepository interface {
	GetByKey(key string) (*models.ThemeTemplate, error)
	Upsert(tmpl *models.ThemeTemplate) error
	ExistsByKey(key string) (bool, error)
}

type templateRepository struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) TemplateRepository {
	return &templateRepository{db: db}
}

func (r *templateRepository) GetByKey(key string) (*models.ThemeTemplate, error) {
	var tmpl models.ThemeTemplate
	err := r.db.Where("key = ?", key).First(&tmpl).Error
	return &tmpl, err
}

func (r *templateRepository) Upsert(tmpl *models.ThemeTemplate) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"template", "updated_at"}),
	}).Create(tmpl).Error
}

func (r *templateRepository) ExistsByKey(key string) (bool, error) {
	var count int64
	err := r.db.Model(&models.ThemeTemplate{}).Where("key = ?", key).Count(&count).Error
	return count > 0, err
}
