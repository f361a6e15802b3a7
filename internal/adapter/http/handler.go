package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"mailflow/internal/adapter/metrics"
	"mailflow/internal/core/port"
)

// UseCases groups the application services served over HTTP.
type UseCases struct {
	Accounts    port.AccountUseCase
	Audiences   port.AudienceUseCase
	Campaigns   port.CampaignUseCase
	Automations port.AutomationUseCase
}

// Handler is the inbound HTTP adapter. Routes are registered on a
// chi.Router.
type Handler struct {
	accounts    port.AccountUseCase
	audiences   port.AudienceUseCase
	campaigns   port.CampaignUseCase
	automations port.AutomationUseCase
	logger      *slog.Logger
	router      chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(uc UseCases, logger *slog.Logger) *Handler {
	h := &Handler{
		accounts:    uc.Accounts,
		audiences:   uc.Audiences,
		campaigns:   uc.Campaigns,
		automations: uc.Automations,
		logger:      logger,
	}
	r := chi.NewRouter()
	r.Use(middleware.RequestID, h.observe, middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/", h.handleWelcome)

		r.Route("/account", func(r chi.Router) {
			r.Post("/", h.handleCreateAccount)
			r.Get("/", h.handleListAccounts)
			r.Post("/login", h.handleLogin)
			r.Get("/{id}", h.handleGetAccount)
			r.Put("/{id}", h.handleUpdateAccount)
			r.Delete("/{id}", h.handleDeleteAccount)
		})
		r.Route("/audience", func(r chi.Router) {
			r.Post("/", h.handleCreateAudience)
			r.Get("/", h.handleListAudiences)
			r.Get("/{id}", h.handleGetAudience)
			r.Put("/{id}", h.handleUpdateAudience)
			r.Delete("/{id}", h.handleDeleteAudience)
		})
		r.Route("/campaign", func(r chi.Router) {
			r.Post("/", h.handleCreateCampaign)
			r.Get("/", h.handleListCampaigns)
			r.Get("/{id}", h.handleGetCampaign)
			r.Put("/{id}", h.handleUpdateCampaign)
			r.Delete("/{id}", h.handleDeleteCampaign)
		})
		r.Route("/automation", func(r chi.Router) {
			r.Post("/", h.handleCreateAutomation)
			r.Get("/", h.handleListAutomations)
			r.Get("/{id}", h.handleGetAutomation)
			r.Put("/{id}", h.handleUpdateAutomation)
			r.Delete("/{id}", h.handleDeleteAutomation)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleWelcome(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, messageBody{Message: "Welcome to backend!"})
}
