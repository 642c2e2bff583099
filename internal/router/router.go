package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/suraksha-dev/suraksha/internal/setup"
	mw "github.com/suraksha-dev/suraksha/shared/middleware"
	"github.com/suraksha-dev/suraksha/shared/middleware/metrics"
	rl "github.com/suraksha-dev/suraksha/shared/middleware/ratelimiter"
)

// New creates and configures the chi router with all routes.
// IMPORTANT! ratelimiters set with .Use limit requests for all endpoints
// combined in that subrouter.
func New(deps *setup.Dependencies) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(metrics.Middleware)

	// setup CORS for the dashboard frontend
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.Public.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// JSON API only, no scripts/styles needed
	apiCSP := "default-src 'none'; frame-ancestors 'none'"
	r.Use(mw.SecurityHeadersWithCSP(deps.Config.Public.SecureCookies, apiCSP))

	h := deps.Handler
	needAuth := mw.NeedAuth(deps.Jwt)

	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(v1 chi.Router) {
		v1.Route("/auth", func(auth chi.Router) {
			// Account creation: 1 per minute by IP
			auth.With(
				mw.RateLimit(rl.OnceInMinute(), mw.GetIP),
				mw.GlobalRateLimit(rl.Rps10()),
			).Post("/signup", h.Signup)

			// Login: 1 per second by IP
			auth.With(
				mw.RateLimit(rl.OnceInSecond(), mw.GetIP),
				mw.GlobalRateLimit(rl.Rps100()),
			).Post("/login", h.Login)

			auth.Post("/logout", h.Logout)
			auth.With(needAuth).Get("/me", h.Me)
		})

		v1.Route("/forums", func(forums chi.Router) {
			forums.Get("/", h.GetForums)
			forums.Get("/{forum}", h.GetForum)

			// Write endpoints require a signed-in user.
			loggedIn := forums.With(needAuth, mw.RateLimit(rl.Rps10(), mw.GetUserIdFromContext))

			loggedIn.Post("/", h.CreateForum)
			loggedIn.Patch("/{forum}", h.PatchForum)
			loggedIn.Put("/{forum}/rating", h.RateForum)

			loggedIn.Post("/{forum}/notes", h.CreateNote)
			loggedIn.Post("/{forum}/discussions", h.CreateDiscussion)
			loggedIn.Post("/{forum}/notes/{note}/replies", h.CreateNoteReply)
			loggedIn.Post("/{forum}/discussions/{discussion}/replies", h.CreateDiscussionReply)

			loggedIn.Post("/{forum}/{kind}/{post}/votes", h.Vote)
			loggedIn.Put("/{forum}/{kind}/{post}/pin", h.PinPost)
			loggedIn.Post("/{forum}/discussions/{discussion}/poll/{option}", h.VotePoll)
		})

		v1.Route("/notifications", func(n chi.Router) {
			n.Use(needAuth)
			n.Get("/", h.GetNotifications)
			n.Post("/read", h.MarkAllNotificationsRead)
			n.Post("/{notification}/read", h.MarkNotificationRead)
			n.Delete("/", h.ClearNotifications)
		})

		v1.Route("/assistant", func(a chi.Router) {
			a.Use(needAuth)
			// Upstream quota protection: 1 request per second per user.
			a.Use(mw.RateLimit(rl.New(1, 1, time.Hour), mw.GetUserIdFromContext))
			a.Post("/chat", h.AssistantChat)
			a.Post("/schemes", h.AssistantSchemes)
		})
	})

	// Avoid 404s for preflight requests outside defined routes.
	r.MethodFunc(http.MethodOptions, "/*", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return r
}
