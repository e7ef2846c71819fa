package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"todo-app-backend/core"
)

// DemoStore is the operational slice of the storage the system endpoints
// need: introspection, wipe and reseed.
type DemoStore interface {
	Info() core.StorageInfo
	CountActiveUsers() int
	ClearAll()
	Seed()
}

type Deps struct {
	Users     *core.UserService
	TaskLists *core.TaskListService
	Tasks     *core.TaskService
	Store     DemoStore
}

func Register(mux *http.ServeMux, log *slog.Logger, deps Deps) {
	// users
	mux.Handle("POST /api/users", NewCreateUserHandler(log, deps.Users))
	mux.Handle("GET /api/users", NewListActiveUsersHandler(log, deps.Users))
	mux.Handle("POST /api/users/login", NewLoginHandler(log, deps.Users))
	mux.Handle("GET /api/users/{userID}", NewGetUserHandler(log, deps.Users))
	mux.Handle("PUT /api/users/{userID}", NewUpdateUserHandler(log, deps.Users))
	mux.Handle("DELETE /api/users/{userID}", NewDeleteUserHandler(log, deps.Users))
	mux.Handle("POST /api/users/{userID}/deactivate", NewDeactivateUserHandler(log, deps.Users))
	mux.Handle("PUT /api/users/{userID}/password", NewChangePasswordHandler(log, deps.Users))

	// task lists
	mux.Handle("POST /api/users/{userID}/lists", NewCreateTaskListHandler(log, deps.TaskLists))
	mux.Handle("GET /api/users/{userID}/lists", NewListTaskListsHandler(log, deps.TaskLists))
	mux.Handle("GET /api/lists/{listID}/user/{userID}", NewGetTaskListHandler(log, deps.TaskLists))
	mux.Handle("PUT /api/lists/{listID}/user/{userID}", NewUpdateTaskListHandler(log, deps.TaskLists))
	mux.Handle("DELETE /api/lists/{listID}/user/{userID}", NewDeleteTaskListHandler(log, deps.TaskLists))
	mux.Handle("GET /api/lists/{listID}/user/{userID}/stats", NewTaskListStatsHandler(log, deps.TaskLists))
	mux.Handle("POST /api/lists/{listID}/user/{userID}/duplicate", NewDuplicateTaskListHandler(log, deps.TaskLists))

	// tasks
	mux.Handle("POST /api/lists/{listID}/user/{userID}/tasks", NewCreateTaskHandler(log, deps.Tasks))
	mux.Handle("GET /api/lists/{listID}/user/{userID}/tasks", NewListTasksHandler(log, deps.Tasks))
	mux.Handle("GET /api/tasks/{taskID}/user/{userID}", NewGetTaskHandler(log, deps.Tasks))
	mux.Handle("PUT /api/tasks/{taskID}/user/{userID}", NewUpdateTaskHandler(log, deps.Tasks))
	mux.Handle("DELETE /api/tasks/{taskID}/user/{userID}", NewDeleteTaskHandler(log, deps.Tasks))
	mux.Handle("POST /api/tasks/{taskID}/user/{userID}/toggle-completion", NewToggleCompletionHandler(log, deps.Tasks))
	mux.Handle("POST /api/tasks/{taskID}/user/{userID}/toggle-importance", NewToggleImportanceHandler(log, deps.Tasks))
	mux.Handle("POST /api/tasks/{taskID}/user/{userID}/move", NewMoveTaskHandler(log, deps.Tasks))
	mux.Handle("POST /api/tasks/{taskID}/user/{userID}/duplicate", NewDuplicateTaskHandler(log, deps.Tasks))
	mux.Handle("GET /api/users/{userID}/tasks", NewUserTasksHandler(log, deps.Tasks))
	mux.Handle("GET /api/users/{userID}/tasks/important", NewImportantTasksHandler(log, deps.Tasks))
	mux.Handle("GET /api/users/{userID}/tasks/due-today", NewTasksDueTodayHandler(log, deps.Tasks))
	mux.Handle("GET /api/users/{userID}/tasks/overdue", NewOverdueTasksHandler(log, deps.Tasks))
	mux.Handle("GET /api/users/{userID}/tasks/search", NewSearchTasksHandler(log, deps.Tasks))

	// system
	mux.Handle("GET /api/system/info", NewSystemInfoHandler(log, deps.Store))
	mux.Handle("GET /api/system/health", NewHealthHandler(log))
	mux.Handle("POST /api/system/reset-demo-data", NewResetDemoDataHandler(log, deps.Store))
}

func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	return id, err == nil && id > 0
}

func parsePriority(s string) (core.Priority, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "LOW":
		return core.PriorityLow, true
	case "MEDIUM":
		return core.PriorityMedium, true
	case "HIGH":
		return core.PriorityHigh, true
	case "URGENT":
		return core.PriorityUrgent, true
	default:
		return "", false
	}
}
