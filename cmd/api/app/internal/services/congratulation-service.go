package services

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/agnijaravdo/discord-bot/metrics"
	"github.com/agnijaravdo/discord-bot/pkg/models"
	"github.com/agnijaravdo/discord-bot/pkg/repositories"
)

// GifProvider supplies a celebratory image URL. It never fails: a broken
// provider yields its fallback URL.
type GifProvider interface {
	FetchRandomCelebrationGif() string
}

// Notifier delivers a formatted message with an image into a chat channel,
// resolving the @username mention against the platform's member cache.
type Notifier interface {
	SendCongratulationMessage(serverID, channelID, message, gifURL, username string) error
}

// CongratulationService sequences the congratulation flow: validate input,
// resolve the sprint, draw a template, fetch a gif, deliver to chat, then
// persist. Each step short-circuits the rest on failure, and delivery
// success is a precondition for persistence.
type CongratulationService struct {
	sprints   *repositories.SprintRepository
	templates *repositories.TemplateRepository
	messages  *repositories.MessageRepository
	gifs      GifProvider
	notifier  Notifier
	serverID  string
	channelID string
	log       *zap.Logger

	pick func(n int) int
}

func NewCongratulationService(db *gorm.DB, gifs GifProvider, notifier Notifier, serverID, channelID string, log *zap.Logger) *CongratulationService {
	return &CongratulationService{
		sprints:   repositories.NewSprintRepository(db),
		templates: repositories.NewTemplateRepository(db),
		messages:  repositories.NewMessageRepository(db),
		gifs:      gifs,
		notifier:  notifier,
		serverID:  serverID,
		channelID: channelID,
		log:       log,
		pick:      rand.Intn,
	}
}

func (s *CongratulationService) CreateCongratulation(username, sprintCode string) (*models.Message, error) {
	username = strings.TrimSpace(username)
	sprintCode = strings.TrimSpace(sprintCode)
	if n := utf8.RuneCountInString(username); n < 1 || n > 50 {
		return nil, &ValidationError{Message: "username must be between 1 and 50 characters long"}
	}
	if n := utf8.RuneCountInString(sprintCode); n < 1 || n > 20 {
		return nil, &ValidationError{Message: "sprintCode must be between 1 and 20 characters long"}
	}

	sprint, err := s.sprints.GetByCode(sprintCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewSprintNotFoundError(sprintCode)
		}
		return nil, err
	}

	templates, err := s.templates.List()
	if err != nil {
		return nil, err
	}
	if len(templates) == 0 {
		return nil, &TemplateNotFoundError{Message: "No templates available"}
	}
	// Independent uniform draw over the current full set on every call.
	template := templates[s.pick(len(templates))]

	gifURL := s.gifs.FetchRandomCelebrationGif()

	finalMessage := fmt.Sprintf("@%s has just completed the sprint %s! %s", username, sprint.Name, template.Message)

	if err := s.notifier.SendCongratulationMessage(s.serverID, s.channelID, finalMessage, gifURL, username); err != nil {
		metrics.CongratulationsTotal.WithLabelValues("not_sent").Inc()
		s.log.Error("Failed to deliver congratulation message",
			zap.String("username", username),
			zap.String("sprint_code", sprintCode),
			zap.Error(err),
		)
		return nil, &MessageNotSentError{Err: err}
	}

	message := &models.Message{
		Username:     username,
		SprintID:     sprint.ID,
		TemplateID:   template.ID,
		FinalMessage: finalMessage,
		GifURL:       gifURL,
	}
	if err := s.messages.Create(message); err != nil {
		// The Discord message already went out. Accepted inconsistency:
		// the notification stands without a stored record.
		metrics.CongratulationsTotal.WithLabelValues("not_saved").Inc()
		s.log.Error("Congratulation delivered but not persisted",
			zap.String("username", username),
			zap.String("sprint_code", sprintCode),
			zap.Error(err),
		)
		return nil, &MessageNotSavedError{Err: err}
	}

	metrics.CongratulationsTotal.WithLabelValues("sent").Inc()
	s.log.Info("Congratulation message sent",
		zap.String("username", username),
		zap.String("sprint_code", sprintCode),
		zap.Uint("message_id", message.ID),
	)
	return message, nil
}
