package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"todo-app-backend/adapters/rest"
	"todo-app-backend/core"
	"todo-app-backend/pkg/res"
)

func taskAndUserIDs(r *http.Request) (taskID, userID int64, ok bool) {
	taskID, okTask := pathID(r, "taskID")
	userID, okUser := pathID(r, "userID")
	return taskID, userID, okTask && okUser
}

func NewCreateTaskHandler(_ *slog.Logger, svc *core.TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listID, userID, ok := listAndUserIDs(r)
		if !ok {
			res.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		var in rest.CreateTaskIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			res.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if fields := in.Validate(); len(fields) > 0 {
			res.ValidationError(w, fields)
			return
		}

		priority := core.Priority("")
		if in.Priority != "" {
			p, valid := parsePriority(in.Priority)
			if !valid {
				res.Error(w, "invalid priority", http.StatusBadRequest)
				return
			}
			priority = p
		}

		task, err := svc.CreateTask(listID, userID, in.Title, in.Description, priority, in.DueDate, in.Important)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, task, http.StatusCreated)
	}
}

// NewListTasksHandler serves a list's tasks; ?filter=pending|completed narrows
// the result with the matching ordering.
func NewListTasksHandler(_ *slog.Logger, svc *core.TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listID, userID, ok := listAndUserIDs(r)
		if !ok {
			res.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		var (
			tasks []core.Task
			err   error
		)
		switch r.URL.Query().Get("filter") {
		case "":
			tasks, err = svc.GetTasksByListID(listID, userID)
		case "pending":
			tasks, err = svc.GetPendingTasksByListID(listID, userID)
		case "completed":
			tasks, err = svc.GetCompletedTasksByListID(listID, userID)
		default:
			res.Error(w, "invalid filter", http.StatusBadRequest)
			return
		}
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, map[string]any{"tasks": tasks}, http.StatusOK)
	}
}

func NewGetTaskHandler(_ *slog.Logger, svc *core.TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		taskID, userID, ok := taskAndUserIDs(r)
		if !ok {
			res.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		task, err := svc.GetTaskByIDAndUserID(taskID, userID)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, task, http.StatusOK)
	}
}

func NewUpdateTaskHandler(_ *slog.Logger, svc *core.TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		taskID, userID, ok := taskAndUserIDs(r)
		if !ok {
			res.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		var in rest.UpdateTaskIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			res.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if fields := in.Validate(); len(fields) > 0 {
			res.ValidationError(w, fields)
			return
		}

		patch := core.TaskPatch{
			Description: in.Description,
			DueDate:     in.DueDate,
			Important:   in.Important,
		}
		if in.Priority != nil {
			p, valid := parsePriority(*in.Priority)
			if !valid {
				res.Error(w, "invalid priority", http.StatusBadRequest)
				return
			}
			patch.Priority = &p
		}

		task, err := svc.UpdateTask(taskID, userID, in.Title, patch)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, task, http.StatusOK)
	}
}

func NewDeleteTaskHandler(_ *slog.Logger, svc *core.TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		taskID, userID, ok := taskAndUserIDs(r)
		if !ok {
			res.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		if err := svc.DeleteTask(taskID, userID); err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, map[string]any{"ok": true}, http.StatusOK)
	}
}

func NewToggleCompletionHandler(_ *slog.Logger, svc *core.TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		taskID, userID, ok := taskAndUserIDs(r)
		if !ok {
			res.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		task, err := svc.ToggleTaskCompletion(taskID, userID)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, task, http.StatusOK)
	}
}

func NewToggleImportanceHandler(_ *slog.Logger, svc *core.TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		taskID, userID, ok := taskAndUserIDs(r)
		if !ok {
			res.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		task, err := svc.ToggleTaskImportance(taskID, userID)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, task, http.StatusOK)
	}
}

func NewMoveTaskHandler(_ *slog.Logger, svc *core.TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		taskID, userID, ok := taskAndUserIDs(r)
		if !ok {
			res.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		var in rest.MoveTaskIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			res.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if in.NewListID <= 0 {
			res.Error(w, "invalid new_list_id", http.StatusBadRequest)
			return
		}

		task, err := svc.MoveTaskToList(taskID, in.NewListID, userID)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, task, http.StatusOK)
	}
}

func NewDuplicateTaskHandler(_ *slog.Logger, svc *core.TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		taskID, userID, ok := taskAndUserIDs(r)
		if !ok {
			res.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		task, err := svc.DuplicateTask(taskID, userID)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, task, http.StatusCreated)
	}
}

func NewUserTasksHandler(_ *slog.Logger, svc *core.TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := pathID(r, "userID")
		if !ok {
			res.Error(w, "invalid user id", http.StatusBadRequest)
			return
		}

		res.Json(w, map[string]any{"tasks": svc.GetAllTasksByUserID(userID)}, http.StatusOK)
	}
}

func NewImportantTasksHandler(_ *slog.Logger, svc *core.TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := pathID(r, "userID")
		if !ok {
			res.Error(w, "invalid user id", http.StatusBadRequest)
			return
		}

		res.Json(w, map[string]any{"tasks": svc.GetImportantTasks(userID)}, http.StatusOK)
	}
}

func NewTasksDueTodayHandler(_ *slog.Logger, svc *core.TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := pathID(r, "userID")
		if !ok {
			res.Error(w, "invalid user id", http.StatusBadRequest)
			return
		}

		res.Json(w, map[string]any{"tasks": svc.GetTasksDueToday(userID)}, http.StatusOK)
	}
}

func NewOverdueTasksHandler(_ *slog.Logger, svc *core.TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := pathID(r, "userID")
		if !ok {
			res.Error(w, "invalid user id", http.StatusBadRequest)
			return
		}

		res.Json(w, map[string]any{"tasks": svc.GetOverdueTasks(userID)}, http.StatusOK)
	}
}

func NewSearchTasksHandler(_ *slog.Logger, svc *core.TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := pathID(r, "userID")
		if !ok {
			res.Error(w, "invalid user id", http.StatusBadRequest)
			return
		}

		term := r.URL.Query().Get("q")
		if term == "" {
			res.Error(w, "missing search term", http.StatusBadRequest)
			return
		}

		res.Json(w, map[string]any{"tasks": svc.SearchTasksByContent(userID, term)}, http.StatusOK)
	}
}
