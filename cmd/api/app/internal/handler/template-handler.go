package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agnijaravdo/discord-bot/cmd/api/app/internal/services"
	"github.com/agnijaravdo/discord-bot/pkg/models"
)

type TemplateHandler struct {
	service *services.TemplateService
}

func NewTemplateHandler(db *gorm.DB) *TemplateHandler {
	return &TemplateHandler{service: services.NewTemplateService(db)}
}

func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	var template models.Template
	if err := c.ShouldBindJSON(&template); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	template.ID = 0

	if err := h.service.CreateTemplate(&template); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, template)
}

func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	templates, err := h.service.ListTemplates()
	if err != nil {
		writeError(c, err)
		return
	}
	if templates == nil {
		templates = []models.Template{}
	}
	c.JSON(http.StatusOK, templates)
}

func (h *TemplateHandler) GetTemplateByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	template, err := h.service.GetTemplateByID(id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, template)
}

func (h *TemplateHandler) PatchTemplate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch services.TemplateUpdate
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	template, err := h.service.UpdateTemplate(id, patch)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, template)
}

func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	template, err := h.service.DeleteTemplate(id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, template)
}
