package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agnijaravdo/discord-bot/pkg/models"
)

func TestSprintCRUD(t *testing.T) {
	db := newTestDB(t)
	service := NewSprintService(db)

	sprint := models.Sprint{Code: "WD-1.1", Name: "First Steps"}
	require.NoError(t, service.CreateSprint(&sprint))
	require.NotZero(t, sprint.ID)

	got, err := service.GetSprintByID(sprint.ID)
	require.NoError(t, err)
	assert.Equal(t, "WD-1.1", got.Code)

	name := "Renamed"
	got, err = service.UpdateSprint(sprint.ID, SprintUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
	assert.Equal(t, "WD-1.1", got.Code)

	deleted, err := service.DeleteSprint(sprint.ID)
	require.NoError(t, err)
	assert.Equal(t, sprint.ID, deleted.ID)

	var notFound *SprintNotFoundError
	_, err = service.GetSprintByID(sprint.ID)
	require.ErrorAs(t, err, &notFound)
}

func TestSprintValidation(t *testing.T) {
	db := newTestDB(t)
	service := NewSprintService(db)

	var validationErr *ValidationError
	require.ErrorAs(t, service.CreateSprint(&models.Sprint{Code: "", Name: "ok"}), &validationErr)
	require.ErrorAs(t, service.CreateSprint(&models.Sprint{Code: strings.Repeat("a", 21), Name: "ok"}), &validationErr)
	require.ErrorAs(t, service.CreateSprint(&models.Sprint{Code: "WD-1.1", Name: ""}), &validationErr)
	require.ErrorAs(t, service.CreateSprint(&models.Sprint{Code: "WD-1.1", Name: strings.Repeat("a", 101)}), &validationErr)
}
