package routers

import (
	"github.com/go-chi/chi/v5"

	"prepmate/internal/handlers"
	"prepmate/internal/middleware"
	"prepmate/internal/models"
)

// Handlers bundles everything the route table mounts.
type Handlers struct {
	Sessions    *handlers.SessionHandler
	Questions   *handlers.QuestionHandler
	Transcripts *handlers.TranscriptHandler
	Dashboard   *handlers.DashboardHandler
	Profile     *handlers.ProfileHandler
	Analytics   *handlers.AnalyticsHandler
	Health      *handlers.HealthHandler
}

// Routes mounts the full API surface.
func Routes(r *chi.Mux, h *Handlers) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/sessions", func(r chi.Router) {
			r.With(middleware.ValidateRequest[*models.CreateSessionRequest]()).
				Post("/", h.Sessions.CreateSessionHandler)
			r.Get("/", h.Sessions.GetSessionsHandler)
			r.Get("/current", h.Sessions.GetCurrentSessionHandler)
			r.Get("/{id}", h.Sessions.GetSessionByIDHandler)
			r.Delete("/{id}", h.Sessions.DeleteSessionHandler)
			r.With(middleware.ValidateRequest[*models.SubmitResponseRequest]()).
				Post("/{id}/responses", h.Sessions.SubmitResponseHandler)
			r.Post("/{id}/advance", h.Sessions.AdvanceSessionHandler)
			r.Get("/{id}/transcript", h.Transcripts.GetTranscriptHandler)
			r.Get("/{id}/transcript/export", h.Transcripts.ExportTranscriptHandler)
		})

		r.Route("/questions", func(r chi.Router) {
			r.Get("/", h.Questions.GetQuestionsHandler)
			r.With(middleware.ValidateRequest[*models.TailoredQuestionsRequest]()).
				Post("/tailored", h.Questions.TailoredQuestionsHandler)
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/data", h.Dashboard.GetDataHandler)
			r.Post("/refresh", h.Dashboard.RefreshHandler)
		})

		r.Route("/profile", func(r chi.Router) {
			r.Get("/", h.Profile.GetProfileHandler)
			r.With(middleware.ValidateRequest[*models.SaveProfileRequest]()).
				Post("/", h.Profile.SaveProfileHandler)
			r.Delete("/", h.Profile.DeleteProfileHandler)
		})

		r.Get("/plans", h.Profile.GetPlansHandler)
		r.Get("/analytics", h.Analytics.GetAnalyticsHandler)
	})

	r.Get("/healthz", h.Health.HealthzHandler)
	r.Get("/readyz", h.Health.ReadyzHandler)
}
