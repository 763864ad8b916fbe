package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamcal/teamcal-api/internal/api/shared"
	"github.com/teamcal/teamcal-api/internal/platform/taskfile"
	"github.com/teamcal/teamcal-api/internal/service"
	"github.com/teamcal/teamcal-api/internal/service/auth"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

func newTestTaskHandler(t *testing.T) *TaskHandler {
	t.Helper()
	logger := testLogger()
	store := taskfile.NewStore(filepath.Join(t.TempDir(), "tasks.json"), logger)
	return NewTaskHandler(service.NewTaskService(store, logger))
}

// withSession attaches an authenticated session the way the auth
// middleware does on protected routes.
func withSession(r *http.Request, team string) *http.Request {
	session := &auth.Session{Username: "alice", Team: team, Nickname: "Alice"}
	ctx := context.WithValue(r.Context(), shared.SessionContextKey, session)
	return r.WithContext(ctx)
}

func postForm(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func saveTask(t *testing.T, h *TaskHandler, team, date, task string) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{}
	if date != "" {
		form.Set("date", date)
	}
	if task != "" {
		form.Set("task", task)
	}
	req := withSession(postForm("/api/save_task", form), team)
	w := httptest.NewRecorder()
	h.SaveTask(w, req)
	return w
}

func listTasks(t *testing.T, h *TaskHandler, team, date string) *httptest.ResponseRecorder {
	t.Helper()
	req := withSession(httptest.NewRequest(http.MethodGet, "/api/get_tasks?date="+date, nil), team)
	w := httptest.NewRecorder()
	h.GetTasks(w, req)
	return w
}

func TestSaveTaskAndGetTasks(t *testing.T) {
	h := newTestTaskHandler(t)

	w := saveTask(t, h, "eng", "2024-03-01", "write report")
	require.Equal(t, http.StatusOK, w.Code)
	w = saveTask(t, h, "eng", "2024-03-01", "review PR")
	require.Equal(t, http.StatusOK, w.Code)

	w = listTasks(t, h, "eng", "2024-03-01")
	require.Equal(t, http.StatusOK, w.Code)

	var tasks []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tasks))
	assert.Equal(t, []string{"write report", "review PR"}, tasks)
}

func TestSaveTaskValidation(t *testing.T) {
	h := newTestTaskHandler(t)

	tests := []struct {
		name string
		date string
		task string
	}{
		{name: "missing date", date: "", task: "task"},
		{name: "malformed date", date: "03/01/2024", task: "task"},
		{name: "missing task", date: "2024-03-01", task: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := saveTask(t, h, "eng", tc.date, tc.task)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestTaskEndpointsRequireSession(t *testing.T) {
	h := newTestTaskHandler(t)

	tests := []struct {
		name  string
		serve func(w http.ResponseWriter, r *http.Request)
		req   *http.Request
	}{
		{name: "save_task", serve: h.SaveTask, req: postForm("/api/save_task", url.Values{})},
		{name: "get_tasks", serve: h.GetTasks, req: httptest.NewRequest(http.MethodGet, "/api/get_tasks", nil)},
		{name: "delete_task", serve: h.DeleteTask, req: postForm("/api/delete_task", url.Values{})},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			tc.serve(w, tc.req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestGetTasksEmptySemantics(t *testing.T) {
	h := newTestTaskHandler(t)
	require.Equal(t, http.StatusOK, saveTask(t, h, "eng", "2024-03-01", "task").Code)

	tests := []struct {
		name string
		team string
		date string
	}{
		{name: "unknown date", team: "eng", date: "2024-03-02"},
		{name: "other team", team: "sales", date: "2024-03-01"},
		{name: "missing date", team: "eng", date: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := listTasks(t, h, tc.team, tc.date)
			require.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, "[]", w.Body.String())
		})
	}
}

func TestDeleteTask(t *testing.T) {
	h := newTestTaskHandler(t)
	require.Equal(t, http.StatusOK, saveTask(t, h, "eng", "2024-03-01", "write report").Code)
	require.Equal(t, http.StatusOK, saveTask(t, h, "eng", "2024-03-01", "review PR").Code)

	deleteAt := func(index string) *httptest.ResponseRecorder {
		form := url.Values{"date": {"2024-03-01"}, "index": {index}}
		req := withSession(postForm("/api/delete_task", form), "eng")
		w := httptest.NewRecorder()
		h.DeleteTask(w, req)
		return w
	}

	require.Equal(t, http.StatusOK, deleteAt("0").Code)

	w := listTasks(t, h, "eng", "2024-03-01")
	assert.JSONEq(t, `["review PR"]`, w.Body.String())

	t.Run("non-integer index", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, deleteAt("abc").Code)
	})

	t.Run("out of range index", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, deleteAt("5").Code)
	})

	require.Equal(t, http.StatusOK, deleteAt("0").Code)
	w = listTasks(t, h, "eng", "2024-03-01")
	assert.JSONEq(t, "[]", w.Body.String())

	t.Run("delete from emptied date", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, deleteAt("0").Code)
	})
}

func TestTeamIsolation(t *testing.T) {
	h := newTestTaskHandler(t)
	require.Equal(t, http.StatusOK, saveTask(t, h, "eng", "2024-03-01", "eng secret").Code)

	// Another team's session cannot see or delete the task.
	w := listTasks(t, h, "sales", "2024-03-01")
	assert.JSONEq(t, "[]", w.Body.String())

	form := url.Values{"date": {"2024-03-01"}, "index": {"0"}}
	req := withSession(postForm("/api/delete_task", form), "sales")
	rec := httptest.NewRecorder()
	h.DeleteTask(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	w = listTasks(t, h, "eng", "2024-03-01")
	assert.JSONEq(t, `["eng secret"]`, w.Body.String())
}
