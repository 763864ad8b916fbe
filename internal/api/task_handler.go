package api

import (
	"net/http"
	"strconv"

	"github.com/teamcal/teamcal-api/internal/api/middleware"
	"github.com/teamcal/teamcal-api/internal/api/shared"
	"github.com/teamcal/teamcal-api/internal/service"
)

// TaskHandler handles the task CRUD endpoints. The team for every
// operation comes from the authenticated session, never from the client.
type TaskHandler struct {
	tasks *service.TaskService
}

// NewTaskHandler creates a new TaskHandler over the task service.
func NewTaskHandler(tasks *service.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// SaveTask handles POST /save_task with form fields date and task.
func (h *TaskHandler) SaveTask(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Session required")
		return
	}
	if err := r.ParseForm(); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid form data")
		return
	}

	date := r.PostFormValue("date")
	task := r.PostFormValue("task")
	if err := h.tasks.AddTask(r.Context(), session.Team, date, task); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, StatusResponse{Status: "task saved"})
}

// GetTasks handles GET /get_tasks?date=YYYY-MM-DD. Unknown dates and a
// missing date parameter both yield an empty array, never an error.
func (h *TaskHandler) GetTasks(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Session required")
		return
	}

	date := r.URL.Query().Get("date")
	tasks, err := h.tasks.ListTasks(r.Context(), session.Team, date)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tasks)
}

// DeleteTask handles POST /delete_task with form fields date and index.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Session required")
		return
	}
	if err := r.ParseForm(); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid form data")
		return
	}

	date := r.PostFormValue("date")
	index, err := strconv.Atoi(r.PostFormValue("index"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "index must be an integer")
		return
	}

	if err := h.tasks.DeleteTask(r.Context(), session.Team, date, index); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, StatusResponse{Status: "task deleted"})
}
