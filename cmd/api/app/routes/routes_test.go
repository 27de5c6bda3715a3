package routes

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/agnijaravdo/discord-bot/pkg/database"
)

type fakeGif struct{}

func (fakeGif) FetchRandomCelebrationGif() string {
	return "g.gif"
}

type fakeNotifier struct {
	err   error
	calls int
}

func (f *fakeNotifier) SendCongratulationMessage(serverID, channelID, message, gifURL, username string) error {
	f.calls++
	return f.err
}

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB, *fakeNotifier) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.InitSQLiteDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, database.MigrateDB(db))

	notifier := &fakeNotifier{}
	log := zap.NewNop()

	router := gin.New()
	Messages(router.Group("/messages"), db, fakeGif{}, notifier, "srv", "chan", log)
	Templates(router.Group("/templates"), db, log)
	Sprints(router.Group("/sprints"), db, log)
	return router, db, notifier
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func seedSprintAndTemplate(t *testing.T, router *gin.Engine) (sprintID, templateID uint) {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/sprints", gin.H{"code": "WD-1.1", "name": "X"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var sprint struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sprint))

	w = doJSON(t, router, http.MethodPost, "/templates", gin.H{"message": "Great!"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var template struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &template))
	return sprint.ID, template.ID
}

func TestPostMessagesCreatesCongratulation(t *testing.T) {
	router, _, notifier := setupRouter(t)
	sprintID, templateID := seedSprintAndTemplate(t, router)

	w := doJSON(t, router, http.MethodPost, "/messages", gin.H{"username": "u", "sprintCode": "WD-1.1"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "u", body["username"])
	assert.EqualValues(t, sprintID, body["sprintId"])
	assert.EqualValues(t, templateID, body["templateId"])
	assert.Equal(t, "@u has just completed the sprint X! Great!", body["finalMessage"])
	assert.Equal(t, "g.gif", body["gifUrl"])
	assert.NotZero(t, body["id"])
	assert.NotEmpty(t, body["sentAt"])
	assert.Equal(t, 1, notifier.calls)
}

func TestPostMessagesValidationFailure(t *testing.T) {
	router, _, notifier := setupRouter(t)
	seedSprintAndTemplate(t, router)

	w := doJSON(t, router, http.MethodPost, "/messages", gin.H{"username": "", "sprintCode": "WD-1.1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error")
	assert.Zero(t, notifier.calls)
}

func TestPostMessagesUnknownSprint(t *testing.T) {
	router, _, _ := setupRouter(t)
	seedSprintAndTemplate(t, router)

	w := doJSON(t, router, http.MethodPost, "/messages", gin.H{"username": "u", "sprintCode": "WD-9.9"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Sprint with code WD-9.9 not found")
}

func TestPostMessagesNoTemplates(t *testing.T) {
	router, _, _ := setupRouter(t)
	w := doJSON(t, router, http.MethodPost, "/sprints", gin.H{"code": "WD-1.1", "name": "X"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodPost, "/messages", gin.H{"username": "u", "sprintCode": "WD-1.1"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "No templates available")
}

func TestPostMessagesDeliveryFailure(t *testing.T) {
	router, db, notifier := setupRouter(t)
	seedSprintAndTemplate(t, router)
	notifier.err = errors.New("gateway down")

	w := doJSON(t, router, http.MethodPost, "/messages", gin.H{"username": "u", "sprintCode": "WD-1.1"})
	assert.Equal(t, http.StatusBadGateway, w.Code)

	// No partial record when delivery fails.
	var count int64
	require.NoError(t, db.Table("messages").Count(&count).Error)
	assert.Zero(t, count)
}

func TestGetMessagesUnknownUsernameReturnsEmptyList(t *testing.T) {
	router, _, _ := setupRouter(t)

	w := doJSON(t, router, http.MethodGet, "/messages?username=ghost", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestGetMessagesUnknownSprintReturns404(t *testing.T) {
	router, _, _ := setupRouter(t)

	w := doJSON(t, router, http.MethodGet, "/messages?sprint=ghost-code", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestGetMessagesReturnsCreated(t *testing.T) {
	router, _, _ := setupRouter(t)
	seedSprintAndTemplate(t, router)
	w := doJSON(t, router, http.MethodPost, "/messages", gin.H{"username": "u", "sprintCode": "WD-1.1"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, "/messages?username=u", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var messages []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &messages))
	require.Len(t, messages, 1)

	w = doJSON(t, router, http.MethodGet, "/messages?sprint=WD-1.1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &messages))
	require.Len(t, messages, 1)
}

func TestDeleteSprintCascadesMessages(t *testing.T) {
	router, db, _ := setupRouter(t)
	sprintID, _ := seedSprintAndTemplate(t, router)
	w := doJSON(t, router, http.MethodPost, "/messages", gin.H{"username": "u", "sprintCode": "WD-1.1"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/sprints/%d", sprintID), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var count int64
	require.NoError(t, db.Table("messages").Count(&count).Error)
	assert.Zero(t, count)
}

func TestTemplateCRUDRoutes(t *testing.T) {
	router, _, _ := setupRouter(t)

	w := doJSON(t, router, http.MethodPost, "/templates", gin.H{"message": "Great!"})
	require.Equal(t, http.StatusCreated, w.Code)
	var template struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &template))

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/templates/%d", template.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPatch, fmt.Sprintf("/templates/%d", template.ID), gin.H{"message": "Even better!"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Even better!")

	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/templates/%d", template.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/templates/%d", template.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTemplateValidationRoutes(t *testing.T) {
	router, _, _ := setupRouter(t)

	w := doJSON(t, router, http.MethodPost, "/templates", gin.H{"message": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPutIsMethodNotAllowed(t *testing.T) {
	router, _, _ := setupRouter(t)

	w := doJSON(t, router, http.MethodPut, "/templates/1", gin.H{"message": "x"})
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	w = doJSON(t, router, http.MethodPut, "/sprints/1", gin.H{"name": "x"})
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestGetMissingSprintByIDReturns404(t *testing.T) {
	router, _, _ := setupRouter(t)

	w := doJSON(t, router, http.MethodGet, "/sprints/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}
