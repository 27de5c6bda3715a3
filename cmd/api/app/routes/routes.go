package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/agnijaravdo/discord-bot/cmd/api/app/internal/handler"
	"github.com/agnijaravdo/discord-bot/cmd/api/app/internal/services"
)

func Messages(r *gin.RouterGroup, db *gorm.DB, gifs services.GifProvider, notifier services.Notifier, serverID, channelID string, log *zap.Logger) {
	messageHandler := handler.NewMessageHandler(db, gifs, notifier, serverID, channelID, log)
	r.GET("", messageHandler.ListMessages)
	r.POST("", messageHandler.CreateMessage)
}

func Templates(r *gin.RouterGroup, db *gorm.DB, log *zap.Logger) {
	templateHandler := handler.NewTemplateHandler(db)
	r.GET("", templateHandler.ListTemplates)
	r.POST("", templateHandler.CreateTemplate)
	r.GET("/:id", templateHandler.GetTemplateByID)
	r.PATCH("/:id", templateHandler.PatchTemplate)
	r.DELETE("/:id", templateHandler.DeleteTemplate)
	r.PUT("/:id", handler.MethodNotAllowed)
}

func Sprints(r *gin.RouterGroup, db *gorm.DB, log *zap.Logger) {
	sprintHandler := handler.NewSprintHandler(db)
	r.GET("", sprintHandler.ListSprints)
	r.POST("", sprintHandler.CreateSprint)
	r.GET("/:id", sprintHandler.GetSprintByID)
	r.PATCH("/:id", sprintHandler.PatchSprint)
	r.DELETE("/:id", sprintHandler.DeleteSprint)
	r.PUT("/:id", handler.MethodNotAllowed)
}
