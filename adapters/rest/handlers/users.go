package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"todo-app-backend/adapters/rest"
	"todo-app-backend/core"
	"todo-app-backend/pkg/res"
)

func NewCreateUserHandler(_ *slog.Logger, svc *core.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in rest.CreateUserIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			res.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if fields := in.Validate(); len(fields) > 0 {
			res.ValidationError(w, fields)
			return
		}

		user, err := svc.CreateUser(in.Email, in.Name, in.Password)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, user, http.StatusCreated)
	}
}

func NewListActiveUsersHandler(_ *slog.Logger, svc *core.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res.Json(w, map[string]any{"users": svc.GetAllActiveUsers()}, http.StatusOK)
	}
}

func NewGetUserHandler(_ *slog.Logger, svc *core.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "userID")
		if !ok {
			res.Error(w, "invalid user id", http.StatusBadRequest)
			return
		}

		user, err := svc.GetUserByID(id)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, user, http.StatusOK)
	}
}

func NewUpdateUserHandler(_ *slog.Logger, svc *core.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "userID")
		if !ok {
			res.Error(w, "invalid user id", http.StatusBadRequest)
			return
		}

		var in rest.UpdateUserIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			res.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if fields := in.Validate(); len(fields) > 0 {
			res.ValidationError(w, fields)
			return
		}

		user, err := svc.UpdateUser(id, in.Name, in.Email)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, user, http.StatusOK)
	}
}

func NewDeleteUserHandler(_ *slog.Logger, svc *core.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "userID")
		if !ok {
			res.Error(w, "invalid user id", http.StatusBadRequest)
			return
		}

		if err := svc.DeleteUser(id); err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, map[string]any{"ok": true}, http.StatusOK)
	}
}

func NewDeactivateUserHandler(_ *slog.Logger, svc *core.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "userID")
		if !ok {
			res.Error(w, "invalid user id", http.StatusBadRequest)
			return
		}

		if err := svc.DeactivateUser(id); err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, map[string]any{"ok": true}, http.StatusOK)
	}
}

func NewChangePasswordHandler(_ *slog.Logger, svc *core.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "userID")
		if !ok {
			res.Error(w, "invalid user id", http.StatusBadRequest)
			return
		}

		var in rest.ChangePasswordIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			res.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if err := svc.ChangePassword(id, in.CurrentPassword, in.NewPassword); err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, map[string]any{"ok": true}, http.StatusOK)
	}
}

// NewLoginHandler reports credential validity as a boolean. A failed login is
// a regular 200 with valid=false, not an error status.
func NewLoginHandler(_ *slog.Logger, svc *core.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in rest.LoginIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			res.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		res.Json(w, map[string]any{"valid": svc.ValidateCredentials(in.Email, in.Password)}, http.StatusOK)
	}
}
