package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/agnijaravdo/discord-bot/pkg/models"
	"github.com/agnijaravdo/discord-bot/pkg/repositories"
)

type MessageService struct {
	messages *repositories.MessageRepository
	sprints  *repositories.SprintRepository
}

func NewMessageService(db *gorm.DB) *MessageService {
	return &MessageService{
		messages: repositories.NewMessageRepository(db),
		sprints:  repositories.NewSprintRepository(db),
	}
}

// ListMessages filters by username, then by sprint code, then returns all.
// An unknown username yields an empty list; an unknown sprint code is a
// not-found error, since the code names a single resource.
func (s *MessageService) ListMessages(username, sprintCode string) ([]models.Message, error) {
	if username != "" {
		return s.messages.ListByUsername(username)
	}
	if sprintCode != "" {
		sprint, err := s.sprints.GetByCode(sprintCode)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, NewSprintNotFoundError(sprintCode)
			}
			return nil, err
		}
		return s.messages.ListBySprintID(sprint.ID)
	}
	return s.messages.List()
}
