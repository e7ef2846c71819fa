package rest

import (
	"errors"
	"net/http"

	"todo-app-backend/core"
	"todo-app-backend/pkg/res"
)

// WriteErr maps core sentinel errors onto stable HTTP statuses. Each error
// kind has exactly one status category.
func WriteErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrUserInvalidArgs),
		errors.Is(err, core.ErrTaskListInvalidArgs),
		errors.Is(err, core.ErrTaskInvalidArgs):
		res.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, core.ErrForbidden):
		res.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, core.ErrUserNotFound),
		errors.Is(err, core.ErrTaskListNotFound),
		errors.Is(err, core.ErrTaskNotFound):
		res.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, core.ErrEmailExists),
		errors.Is(err, core.ErrLastTaskList):
		res.Error(w, err.Error(), http.StatusConflict)
	default:
		res.Error(w, "internal error", http.StatusInternalServerError)
	}
}
