package repositories

import (
	"github.com/agnijaravdo/discord-bot/pkg/models"
	"gorm.io/gorm"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

func (r *MessageRepository) List() ([]models.Message, error) {
	var messages []models.Message
	if err := r.db.Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *MessageRepository) ListByUsername(username string) ([]models.Message, error) {
	var messages []models.Message
	if err := r.db.Where("username = ?", username).Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *MessageRepository) ListBySprintID(sprintID uint) ([]models.Message, error) {
	var messages []models.Message
	if err := r.db.Where("sprint_id = ?", sprintID).Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}
