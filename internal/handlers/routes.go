package handlers

import (
	"time"

	"taskBoard/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// NewRouter собирает маршруты REST API.
// Поверхность повторяет исходный сервис: всё под /api/tasks.
func NewRouter(taskHandler TaskHandler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(middleware.RateLimit(100))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         int((10 * time.Minute).Seconds()),
	}))

	r.Route("/api/tasks", func(r chi.Router) {

		r.Get("/", taskHandler.GetTasks) // GET /api/tasks?query=&filter=&sort=
		r.Post("/", taskHandler.PostTask)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", taskHandler.GetTaskByID)
			r.Put("/", taskHandler.UpdateTaskByID)
			r.Delete("/", taskHandler.DeleteTaskByID)

			r.Patch("/title", taskHandler.UpdateTitle)
			r.Patch("/completion", taskHandler.SetCompletion)
			r.Patch("/duration", taskHandler.SetDuration)

			r.Post("/items", taskHandler.PostChecklistItem)

			r.Route("/items/{itemId}", func(r chi.Router) {
				r.Put("/", taskHandler.UpdateChecklistItem)
				r.Patch("/completion", taskHandler.ToggleChecklistItem)
				r.Delete("/", taskHandler.DeleteChecklistItem)
			})
		})
	})

	r.Get("/health", taskHandler.HealthCheck)

	return r
}
