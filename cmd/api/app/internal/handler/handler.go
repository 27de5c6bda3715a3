package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/agnijaravdo/discord-bot/cmd/api/app/internal/services"
)

// writeError maps the domain error taxonomy to HTTP statuses. Delivery
// failures (502) stay distinguishable from missing reference data (404)
// and from persistence failures after delivery (500).
func writeError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	var sprintNotFound *services.SprintNotFoundError
	var templateNotFound *services.TemplateNotFoundError
	var notSent *services.MessageNotSentError
	var notSaved *services.MessageNotSavedError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &sprintNotFound), errors.As(err, &templateNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &notSent):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	case errors.As(err, &notSaved):
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// MethodNotAllowed backs the routes that exist but deliberately reject the
// verb, PUT on the CRUD resources in particular.
func MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
}
