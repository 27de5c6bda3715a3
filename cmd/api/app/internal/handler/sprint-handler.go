package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agnijaravdo/discord-bot/cmd/api/app/internal/services"
	"github.com/agnijaravdo/discord-bot/pkg/models"
)

type SprintHandler struct {
	service *services.SprintService
}

func NewSprintHandler(db *gorm.DB) *SprintHandler {
	return &SprintHandler{service: services.NewSprintService(db)}
}

func (h *SprintHandler) CreateSprint(c *gin.Context) {
	var sprint models.Sprint
	if err := c.ShouldBindJSON(&sprint); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sprint.ID = 0

	if err := h.service.CreateSprint(&sprint); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sprint)
}

func (h *SprintHandler) ListSprints(c *gin.Context) {
	sprints, err := h.service.ListSprints()
	if err != nil {
		writeError(c, err)
		return
	}
	if sprints == nil {
		sprints = []models.Sprint{}
	}
	c.JSON(http.StatusOK, sprints)
}

func (h *SprintHandler) GetSprintByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	sprint, err := h.service.GetSprintByID(id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, sprint)
}

func (h *SprintHandler) PatchSprint(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch services.SprintUpdate
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sprint, err := h.service.UpdateSprint(id, patch)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, sprint)
}

func (h *SprintHandler) DeleteSprint(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	sprint, err := h.service.DeleteSprint(id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, sprint)
}
