package repositories

import (
	"github.com/agnijaravdo/discord-bot/pkg/models"
	"gorm.io/gorm"
)

type SprintRepository struct {
	db *gorm.DB
}

func NewSprintRepository(db *gorm.DB) *SprintRepository {
	return &SprintRepository{db: db}
}

func (r *SprintRepository) Create(sprint *models.Sprint) error {
	return r.db.Create(sprint).Error
}

func (r *SprintRepository) GetByID(id uint) (*models.Sprint, error) {
	var sprint models.Sprint
	if err := r.db.First(&sprint, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &sprint, nil
}

func (r *SprintRepository) GetByCode(code string) (*models.Sprint, error) {
	var sprint models.Sprint
	if err := r.db.Where("code = ?", code).First(&sprint).Error; err != nil {
		return nil, err
	}
	return &sprint, nil
}

func (r *SprintRepository) List() ([]models.Sprint, error) {
	var sprints []models.Sprint
	if err := r.db.Find(&sprints).Error; err != nil {
		return nil, err
	}
	return sprints, nil
}

func (r *SprintRepository) Update(sprint *models.Sprint) error {
	return r.db.Save(sprint).Error
}

func (r *SprintRepository) Delete(id uint) error {
	return r.db.Delete(&models.Sprint{}, "id = ?", id).Error
}
