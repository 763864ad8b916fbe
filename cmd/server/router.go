package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/teamcal/teamcal-api/internal/api"
	apiMiddleware "github.com/teamcal/teamcal-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(app.accounts, app.sessions)
	taskHandler := api.NewTaskHandler(app.taskService)
	exportHandler := api.NewExportHandler(app.exporter)
	weatherHandler := api.NewWeatherHandler(app.forecasts)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.sessions)

	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/auth/login", authHandler.Login)
		r.Get("/weather", weatherHandler.GetWeather)

		// Session-scoped endpoints; the team always comes from the token.
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Post("/save_task", taskHandler.SaveTask)
			r.Get("/get_tasks", taskHandler.GetTasks)
			r.Post("/delete_task", taskHandler.DeleteTask)
			r.Get("/calendar/download_excel", exportHandler.DownloadExcel)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
