package app

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/ronrahal/athar-syria-s-hope/internal/config"
	"github.com/ronrahal/athar-syria-s-hope/internal/transport/middleware"
	"github.com/ronrahal/athar-syria-s-hope/internal/transport/rest"
)

const loginRateWindow = time.Minute

type routerDeps struct {
	cfg       *config.Config
	logger    *slog.Logger
	limiter   *middleware.RateLimiter
	validator middleware.TokenValidator
	prefs     middleware.PreferenceLookup
	uploads   *fileRoute

	health      *rest.HealthHandler
	cases       *rest.CasesHandler
	admin       *rest.AdminHandler
	auth        *rest.AuthHandler
	preferences *rest.PreferencesHandler
}

// newRouter builds the route table. Probes and uploaded files sit outside the
// /api chain so they never receive client cookies.
func newRouter(d routerDeps) http.Handler {
	api := http.NewServeMux()

	submitLimit := d.limiter.Limit("submit", d.cfg.Submission.RateLimit, d.cfg.Submission.RateWindow)
	loginLimit := d.limiter.Limit("login", d.cfg.Submission.LoginRateLimit, loginRateWindow)

	api.HandleFunc("GET /api/cases", d.cases.List)
	api.HandleFunc("GET /api/cases/featured", d.cases.Featured)
	api.HandleFunc("GET /api/cases/{caseNumber}", d.cases.Get)
	api.Handle("POST /api/cases", middleware.HandlerFunc(submitLimit, d.cases.Submit))
	api.HandleFunc("GET /api/stats", d.cases.Stats)
	api.HandleFunc("GET /api/statuses", d.cases.Statuses)

	api.HandleFunc("GET /api/preferences/language", d.preferences.GetLanguage)
	api.HandleFunc("PUT /api/preferences/language", d.preferences.SetLanguage)

	api.Handle("POST /api/auth/login", middleware.HandlerFunc(loginLimit, d.auth.Login))

	adminOnly := middleware.Middleware(middleware.RequireAdmin)
	api.Handle("GET /api/admin/cases", middleware.HandlerFunc(adminOnly, d.admin.ListCases))
	api.Handle("PATCH /api/admin/cases/{caseNumber}/status", middleware.HandlerFunc(adminOnly, d.admin.UpdateStatus))
	api.Handle("PATCH /api/admin/cases/{caseNumber}/flags", middleware.HandlerFunc(adminOnly, d.admin.SetFlags))
	api.Handle("POST /api/admin/cases/{caseNumber}/timeline", middleware.HandlerFunc(adminOnly, d.admin.AddTimelineEvent))
	api.Handle("POST /api/admin/cases/{caseNumber}/evidence", middleware.HandlerFunc(adminOnly, d.admin.AddEvidence))
	api.Handle("POST /api/admin/cases/{caseNumber}/publish", middleware.HandlerFunc(adminOnly, d.admin.Publish))

	apiChain := middleware.Chain(
		middleware.CORS(d.cfg.CORS),
		middleware.Locale(d.prefs, d.cfg.Server.CookieSecure, d.logger),
		middleware.Logger(d.logger),
		middleware.Auth(d.validator),
	)

	root := http.NewServeMux()
	root.HandleFunc("GET /live", d.health.Live)
	root.HandleFunc("GET /ready", d.health.Ready)
	root.HandleFunc("GET /health", d.health.Health)
	root.Handle("/api/", apiChain(api))
	if d.uploads != nil {
		root.Handle("GET "+d.uploads.prefix, d.uploads.handler)
	}

	return middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(d.logger),
	)(root)
}
