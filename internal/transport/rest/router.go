package rest

import (
	"log/slog"
	"net/http"

	"github.com/minhvudev/clausecheck-backend/internal/config"
	"github.com/minhvudev/clausecheck-backend/internal/transport/middleware"
)

// RouterDeps bundles everything the HTTP router needs.
type RouterDeps struct {
	Auth        *AuthHandler
	Profile     *ProfileHandler
	Drafts      *DraftHandler
	Inspections *InspectionHandler
	Templates   *TemplateHandler
	Health      *HealthHandler

	TokenValidator middleware.TokenValidator
	RateLimiter    *middleware.RateLimiter
	Logger         *slog.Logger
	CORS           config.CORSConfig
	RateLimit      int
}

// NewRouter assembles the full HTTP handler: public auth and health
// routes, and bearer-protected contract routes.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	// public
	mux.HandleFunc("GET /health/live", deps.Health.Live)
	mux.HandleFunc("GET /health/ready", deps.Health.Ready)
	mux.HandleFunc("POST /auth/register", deps.Auth.Register)
	mux.HandleFunc("POST /auth/login", deps.Auth.Login)
	mux.HandleFunc("POST /auth/refresh", deps.Auth.Refresh)
	mux.HandleFunc("POST /auth/password-reset/request", deps.Auth.RequestPasswordReset)
	mux.HandleFunc("POST /auth/password-reset/confirm", deps.Auth.ResetPassword)

	// bearer-protected
	authed := middleware.Auth(deps.TokenValidator)
	protected := http.NewServeMux()
	protected.HandleFunc("POST /auth/logout", deps.Auth.Logout)
	protected.HandleFunc("GET /profile", deps.Profile.Get)
	protected.HandleFunc("PATCH /profile", deps.Profile.Patch)
	protected.HandleFunc("GET /drafts", deps.Drafts.List)
	protected.HandleFunc("POST /drafts", deps.Drafts.Create)
	protected.HandleFunc("GET /drafts/{id}", deps.Drafts.Get)
	protected.HandleFunc("PUT /drafts/{id}", deps.Drafts.Save)
	protected.HandleFunc("DELETE /drafts/{id}", deps.Drafts.Delete)
	protected.HandleFunc("POST /drafts/{id}/promote", deps.Drafts.Promote)
	protected.HandleFunc("GET /inspections", deps.Inspections.List)
	protected.HandleFunc("POST /inspections", deps.Inspections.Create)
	protected.HandleFunc("GET /inspections/{id}", deps.Inspections.Get)
	protected.HandleFunc("DELETE /inspections/{id}", deps.Inspections.Delete)
	protected.HandleFunc("POST /inspections/{id}/analyze", deps.Inspections.Analyze)
	protected.HandleFunc("GET /templates", deps.Templates.List)
	protected.HandleFunc("GET /templates/{id}", deps.Templates.Get)
	mux.Handle("/", authed(protected))

	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(deps.Logger),
		middleware.Logger(deps.Logger),
		middleware.CORS(deps.CORS),
		deps.RateLimiter.Limit(deps.RateLimit),
	)

	return chain(mux)
}
