package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"todo-app-backend/adapters/rest"
	"todo-app-backend/core"
	"todo-app-backend/pkg/res"
)

func listAndUserIDs(r *http.Request) (listID, userID int64, ok bool) {
	listID, okList := pathID(r, "listID")
	userID, okUser := pathID(r, "userID")
	return listID, userID, okList && okUser
}

func NewCreateTaskListHandler(_ *slog.Logger, svc *core.TaskListService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := pathID(r, "userID")
		if !ok {
			res.Error(w, "invalid user id", http.StatusBadRequest)
			return
		}

		var in rest.CreateTaskListIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			res.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if fields := in.Validate(); len(fields) > 0 {
			res.ValidationError(w, fields)
			return
		}

		list, err := svc.CreateTaskList(userID, in.Name, in.Description, in.Color)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, list, http.StatusCreated)
	}
}

func NewListTaskListsHandler(_ *slog.Logger, svc *core.TaskListService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := pathID(r, "userID")
		if !ok {
			res.Error(w, "invalid user id", http.StatusBadRequest)
			return
		}

		lists, err := svc.GetTaskListsByUserID(userID)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, map[string]any{"task_lists": lists}, http.StatusOK)
	}
}

func NewGetTaskListHandler(_ *slog.Logger, svc *core.TaskListService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listID, userID, ok := listAndUserIDs(r)
		if !ok {
			res.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		list, err := svc.GetTaskListByIDAndUserID(listID, userID)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, list, http.StatusOK)
	}
}

func NewUpdateTaskListHandler(_ *slog.Logger, svc *core.TaskListService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listID, userID, ok := listAndUserIDs(r)
		if !ok {
			res.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		var in rest.UpdateTaskListIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			res.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if fields := in.Validate(); len(fields) > 0 {
			res.ValidationError(w, fields)
			return
		}

		list, err := svc.UpdateTaskList(listID, userID, in.Name, in.Description, in.Color)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, list, http.StatusOK)
	}
}

func NewDeleteTaskListHandler(_ *slog.Logger, svc *core.TaskListService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listID, userID, ok := listAndUserIDs(r)
		if !ok {
			res.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		if err := svc.DeleteTaskList(listID, userID); err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, map[string]any{"ok": true}, http.StatusOK)
	}
}

func NewTaskListStatsHandler(_ *slog.Logger, svc *core.TaskListService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listID, userID, ok := listAndUserIDs(r)
		if !ok {
			res.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		stats, err := svc.GetTaskListStats(listID, userID)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, stats, http.StatusOK)
	}
}

func NewDuplicateTaskListHandler(_ *slog.Logger, svc *core.TaskListService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listID, userID, ok := listAndUserIDs(r)
		if !ok {
			res.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		// body optional: {"name": "..."} overrides the default copy name
		var in rest.DuplicateTaskListIn
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&in)
		}

		list, err := svc.DuplicateTaskList(listID, userID, in.Name)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, list, http.StatusCreated)
	}
}
