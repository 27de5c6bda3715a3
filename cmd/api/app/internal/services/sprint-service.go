package services

import (
	"errors"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/agnijaravdo/discord-bot/pkg/models"
	"github.com/agnijaravdo/discord-bot/pkg/repositories"
)

type SprintService struct {
	repo *repositories.SprintRepository
}

func NewSprintService(db *gorm.DB) *SprintService {
	return &SprintService{repo: repositories.NewSprintRepository(db)}
}

type SprintUpdate struct {
	Code *string `json:"code"`
	Name *string `json:"name"`
}

func (s *SprintService) CreateSprint(sprint *models.Sprint) error {
	sprint.Code = strings.TrimSpace(sprint.Code)
	sprint.Name = strings.TrimSpace(sprint.Name)
	if err := validateSprintCode(sprint.Code); err != nil {
		return err
	}
	if err := validateSprintName(sprint.Name); err != nil {
		return err
	}
	return s.repo.Create(sprint)
}

func (s *SprintService) GetSprintByID(id uint) (*models.Sprint, error) {
	sprint, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &SprintNotFoundError{}
		}
		return nil, err
	}
	return sprint, nil
}

func (s *SprintService) ListSprints() ([]models.Sprint, error) {
	return s.repo.List()
}

func (s *SprintService) UpdateSprint(id uint, patch SprintUpdate) (*models.Sprint, error) {
	sprint, err := s.GetSprintByID(id)
	if err != nil {
		return nil, err
	}
	if patch.Code != nil {
		code := strings.TrimSpace(*patch.Code)
		if err := validateSprintCode(code); err != nil {
			return nil, err
		}
		sprint.Code = code
	}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if err := validateSprintName(name); err != nil {
			return nil, err
		}
		sprint.Name = name
	}
	if err := s.repo.Update(sprint); err != nil {
		return nil, err
	}
	return sprint, nil
}

func (s *SprintService) DeleteSprint(id uint) (*models.Sprint, error) {
	sprint, err := s.GetSprintByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(id); err != nil {
		return nil, err
	}
	return sprint, nil
}

func validateSprintCode(code string) error {
	if n := utf8.RuneCountInString(code); n < 1 || n > 20 {
		return &ValidationError{Message: "code must be between 1 and 20 characters long"}
	}
	return nil
}

func validateSprintName(name string) error {
	if n := utf8.RuneCountInString(name); n < 1 || n > 100 {
		return &ValidationError{Message: "name must be between 1 and 100 characters long"}
	}
	return nil
}
