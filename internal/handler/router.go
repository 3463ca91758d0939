package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"todoapp/pkg/respond"
)

// NewRouter собирает роутер со всеми эндпоинтами API
func NewRouter(h *TaskHandler) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status":"ok"}`)
	})

	r.Get("/api", apiInfo)

	r.Route("/api/tasks", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
		r.Patch("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})

	r.Get("/api/stats", h.Stats)

	return r
}

func apiInfo(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, r, http.StatusOK, map[string]any{
		"name":    "todo app api",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"GET /api/tasks":         "list tasks, optional ?filter=all|pending|completed",
			"POST /api/tasks":        "create a new task",
			"GET /api/tasks/{id}":    "get task details",
			"PATCH /api/tasks/{id}":  "partially update a task",
			"DELETE /api/tasks/{id}": "delete a task",
			"GET /api/stats":         "task counts by status",
		},
	})
}
