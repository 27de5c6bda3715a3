package repositories

import (
	"github.com/agnijaravdo/discord-bot/pkg/models"
	"gorm.io/gorm"
)

type TemplateRepository struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

func (r *TemplateRepository) Create(template *models.Template) error {
	return r.db.Create(template).Error
}

func (r *TemplateRepository) GetByID(id uint) (*models.Template, error) {
	var template models.Template
	if err := r.db.First(&template, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &template, nil
}

func (r *TemplateRepository) List() ([]models.Template, error) {
	var templates []models.Template
	if err := r.db.Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *TemplateRepository) Update(template *models.Template) error {
	return r.db.Save(template).Error
}

func (r *TemplateRepository) Delete(id uint) error {
	return r.db.Delete(&models.Template{}, "id = ?", id).Error
}
