package Controllers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"Pulse/Models"
	"Pulse/Notifications"
	"Pulse/Store"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() (*fiber.App, *Store.ReportStore, *Notifications.Feed) {
	feed := Notifications.NewFeed()
	store := Store.NewReportStore(feed)
	app := fiber.New()

	reportController := NewReportController(store, feed)
	app.Post("/api/reports", reportController.SubmitReport)
	app.Get("/api/reports", reportController.GetReports)
	app.Get("/api/reports/date", reportController.GetReportByDate)
	app.Get("/api/reports/month", reportController.GetMonthStatuses)
	app.Put("/api/reports/:id", reportController.UpdateReport)
	app.Delete("/api/reports/:id", reportController.DeleteReport)

	return app, store, feed
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	payload := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(raw, &payload))
	return resp.StatusCode, payload
}

const submission = `{
	"user_id": "u1",
	"date": "2024-05-01T09:00:00Z",
	"is_on_leave": false,
	"is_half_day": false,
	"tasks": [
		{"description": "x", "status": "Pending", "completion_percentage": 0}
	]
}`

func TestSubmitReport_CreatesThenReplacesSameDay(t *testing.T) {
	app, store, _ := newTestApp()

	status, payload := postJSON(t, app, "/api/reports", submission)
	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, true, payload["created"])

	leaveSubmission := `{
		"user_id": "u1",
		"date": "2024-05-01T18:00:00Z",
		"is_on_leave": true,
		"is_half_day": false,
		"tasks": []
	}`
	status, payload = postJSON(t, app, "/api/reports", leaveSubmission)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, false, payload["created"])

	require.Equal(t, 1, store.Count())
	stored, ok := store.GetByDate("u1", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.True(t, stored.IsOnLeave)
	assert.Empty(t, stored.Tasks)
}

func TestSubmitReport_ValidationFailureLeavesStoreUntouched(t *testing.T) {
	app, store, feed := newTestApp()

	invalid := `{
		"user_id": "u1",
		"date": "2024-05-01T09:00:00Z",
		"is_on_leave": false,
		"tasks": [{"description": "", "status": "Pending", "completion_percentage": 0}]
	}`
	status, payload := postJSON(t, app, "/api/reports", invalid)

	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Equal(t, "please fill in all required fields", payload["error"])
	assert.Equal(t, 0, store.Count())

	notifications := feed.Drain()
	require.NotEmpty(t, notifications)
	assert.Equal(t, Notifications.LevelError, notifications[len(notifications)-1].Level)
}

func TestSubmitReport_RequiresATask(t *testing.T) {
	app, store, _ := newTestApp()

	empty := `{
		"user_id": "u1",
		"date": "2024-05-01T09:00:00Z",
		"is_on_leave": false,
		"tasks": []
	}`
	status, payload := postJSON(t, app, "/api/reports", empty)

	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Equal(t, "at least one task is required", payload["error"])
	assert.Equal(t, 0, store.Count())
}

func TestGetReportByDate_NoneReturnsNullReport(t *testing.T) {
	app, _, _ := newTestApp()

	req := httptest.NewRequest("GET", "/api/reports/date?user_id=u1&date=2024-05-01", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	payload := map[string]interface{}{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Nil(t, payload["report"])
}

func TestDeleteReport_MissingIsNoOp(t *testing.T) {
	app, store, _ := newTestApp()
	postJSON(t, app, "/api/reports", submission)

	req := httptest.NewRequest("DELETE", "/api/reports/nonexistent-id", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, store.Count())
}

func TestUpdateReport_MissingIsNoOp(t *testing.T) {
	app, store, _ := newTestApp()
	postJSON(t, app, "/api/reports", submission)
	before := store.All()

	req := httptest.NewRequest("PUT", "/api/reports/nonexistent-id", strings.NewReader(submission))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	payload := map[string]interface{}{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, false, payload["updated"])
	assert.Equal(t, before, store.All())
}

func TestUpdateReport_EditsByID(t *testing.T) {
	app, store, _ := newTestApp()
	postJSON(t, app, "/api/reports", submission)
	stored, ok := store.GetByDate("u1", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	require.True(t, ok)

	halfDay := `{
		"user_id": "u1",
		"date": "2024-05-01T09:00:00Z",
		"is_on_leave": false,
		"is_half_day": true,
		"tasks": [{"description": "x", "status": "Completed", "completion_percentage": 100}]
	}`
	req := httptest.NewRequest("PUT", "/api/reports/"+stored.ID, strings.NewReader(halfDay))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	updated, ok := store.Get(stored.ID)
	require.True(t, ok)
	assert.True(t, updated.IsHalfDay)
	assert.Equal(t, Models.StatusCompleted, updated.Tasks[0].Status)
	assert.Equal(t, stored.CreatedAt, updated.CreatedAt)
}

func TestGetMonthStatuses(t *testing.T) {
	app, _, _ := newTestApp()
	postJSON(t, app, "/api/reports", submission)
	postJSON(t, app, "/api/reports", `{
		"user_id": "u1",
		"date": "2024-05-02T09:00:00Z",
		"is_on_leave": true,
		"tasks": []
	}`)

	req := httptest.NewRequest("GET", "/api/reports/month?user_id=u1&year=2024&month=5", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	payload := struct {
		Statuses map[string]string `json:"statuses"`
	}{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "completed", payload.Statuses["2024-05-01"])
	assert.Equal(t, "on-leave", payload.Statuses["2024-05-02"])
}
