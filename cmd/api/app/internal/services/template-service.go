package services

import (
	"errors"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/agnijaravdo/discord-bot/pkg/models"
	"github.com/agnijaravdo/discord-bot/pkg/repositories"
)

type TemplateService struct {
	repo *repositories.TemplateRepository
}

func NewTemplateService(db *gorm.DB) *TemplateService {
	return &TemplateService{repo: repositories.NewTemplateRepository(db)}
}

// TemplateUpdate carries a partial patch; nil fields are left untouched.
type TemplateUpdate struct {
	Message *string `json:"message"`
}

func (s *TemplateService) CreateTemplate(template *models.Template) error {
	template.Message = strings.TrimSpace(template.Message)
	if err := validateTemplateMessage(template.Message); err != nil {
		return err
	}
	return s.repo.Create(template)
}

func (s *TemplateService) GetTemplateByID(id uint) (*models.Template, error) {
	template, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &TemplateNotFoundError{}
		}
		return nil, err
	}
	return template, nil
}

func (s *TemplateService) ListTemplates() ([]models.Template, error) {
	return s.repo.List()
}

func (s *TemplateService) UpdateTemplate(id uint, patch TemplateUpdate) (*models.Template, error) {
	template, err := s.GetTemplateByID(id)
	if err != nil {
		return nil, err
	}
	if patch.Message != nil {
		message := strings.TrimSpace(*patch.Message)
		if err := validateTemplateMessage(message); err != nil {
			return nil, err
		}
		template.Message = message
	}
	if err := s.repo.Update(template); err != nil {
		return nil, err
	}
	return template, nil
}

func (s *TemplateService) DeleteTemplate(id uint) (*models.Template, error) {
	template, err := s.GetTemplateByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(id); err != nil {
		return nil, err
	}
	return template, nil
}

func validateTemplateMessage(message string) error {
	if n := utf8.RuneCountInString(message); n < 1 || n > 1000 {
		return &ValidationError{Message: "message must be between 1 and 1000 characters long"}
	}
	return nil
}
