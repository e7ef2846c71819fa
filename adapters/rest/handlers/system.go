package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"todo-app-backend/pkg/res"
)

func NewSystemInfoHandler(_ *slog.Logger, store DemoStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res.Json(w, map[string]any{
			"app_name":     "todo-app-backend",
			"mode":         "demo - in-memory storage",
			"status":       "running",
			"timestamp":    time.Now(),
			"active_users": store.CountActiveUsers(),
			"storage":      store.Info(),
		}, http.StatusOK)
	}
}

func NewHealthHandler(_ *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res.Json(w, map[string]any{
			"status":    "up",
			"storage":   "in_memory",
			"timestamp": time.Now(),
		}, http.StatusOK)
	}
}

// NewResetDemoDataHandler wipes every collection, resets the id generators and
// reloads the demo dataset.
func NewResetDemoDataHandler(log *slog.Logger, store DemoStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store.ClearAll()
		store.Seed()
		log.Info("demo data reset")

		res.Json(w, map[string]any{
			"message":   "demo data reset",
			"timestamp": time.Now(),
		}, http.StatusOK)
	}
}
