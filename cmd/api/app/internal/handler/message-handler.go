package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/agnijaravdo/discord-bot/cmd/api/app/internal/services"
	"github.com/agnijaravdo/discord-bot/pkg/models"
)

type MessageHandler struct {
	congratulations *services.CongratulationService
	messages        *services.MessageService
	log             *zap.Logger
}

func NewMessageHandler(db *gorm.DB, gifs services.GifProvider, notifier services.Notifier, serverID, channelID string, log *zap.Logger) *MessageHandler {
	return &MessageHandler{
		congratulations: services.NewCongratulationService(db, gifs, notifier, serverID, channelID, log),
		messages:        services.NewMessageService(db),
		log:             log,
	}
}

type CreateMessageRequest struct {
	Username   string `json:"username"`
	SprintCode string `json:"sprintCode"`
}

func (h *MessageHandler) CreateMessage(c *gin.Context) {
	var req CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := h.congratulations.CreateCongratulation(req.Username, req.SprintCode)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, message)
}

func (h *MessageHandler) ListMessages(c *gin.Context) {
	username := c.Query("username")
	sprintCode := c.Query("sprint")

	messages, err := h.messages.ListMessages(username, sprintCode)
	if err != nil {
		writeError(c, err)
		return
	}
	if messages == nil {
		messages = []models.Message{}
	}

	c.JSON(http.StatusOK, messages)
}
