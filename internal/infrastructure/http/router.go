package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/The0nly0ne1/MemeVotingApp/internal/infrastructure/http/handlers"
	"github.com/The0nly0ne1/MemeVotingApp/internal/infrastructure/http/middleware"
)

type RouterConfig struct {
	AuthHandler    *handlers.AuthHandler
	ProfileHandler *handlers.ProfileHandler
	MemeHandler    *handlers.MemeHandler
	CommentHandler *handlers.CommentHandler
	HealthHandler  *handlers.HealthHandler
	RequireJWT     func(http.Handler) http.Handler
	Secure         func(http.Handler) http.Handler
	IPRateLimit    func(http.Handler) http.Handler
	CORS           func(http.Handler) http.Handler
	Log            zerolog.Logger
	Metrics        bool // expose /metrics
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(chimid.RequestID)
	r.Use(chimid.RealIP)
	r.Use(loggerMiddleware(cfg.Log))
	r.Use(chimid.Recoverer)
	if cfg.Metrics {
		r.Use(middleware.PrometheusMiddleware)
	}
	if cfg.Secure != nil {
		r.Use(cfg.Secure)
	}
	if cfg.CORS != nil {
		r.Use(cfg.CORS)
	}
	if cfg.IPRateLimit != nil {
		r.Use(cfg.IPRateLimit)
	}

	if cfg.HealthHandler != nil {
		r.Get("/health", cfg.HealthHandler.ServeHTTP)
	} else {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		})
	}
	if cfg.Metrics {
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Post("/register", cfg.AuthHandler.Register)
	r.Post("/login", cfg.AuthHandler.Login)
	r.Post("/refresh", cfg.AuthHandler.Refresh)
	r.Post("/logout", cfg.AuthHandler.Logout)

	r.Route("/profile", func(r chi.Router) {
		r.Get("/{id}", cfg.ProfileHandler.Get)
		r.Group(func(r chi.Router) {
			r.Use(cfg.RequireJWT)
			r.Put("/", cfg.ProfileHandler.Update)
			r.Post("/{id}/follow", cfg.ProfileHandler.Follow)
			r.Post("/{id}/unfollow", cfg.ProfileHandler.Unfollow)
		})
	})

	// Meme routes live at the root, reads included behind the bearer check.
	// Static paths (/add, /register, ...) are matched by chi before the {id}
	// wildcard.
	r.Group(func(r chi.Router) {
		r.Use(cfg.RequireJWT)
		r.Get("/", cfg.MemeHandler.List)
		r.Get("/{id}", cfg.MemeHandler.Get)
		r.Post("/add", cfg.MemeHandler.Add)
		r.Delete("/{id}", cfg.MemeHandler.Delete)
	})

	// The whole comment tree sits behind the bearer check, reads included.
	r.Route("/{id}/comment", func(r chi.Router) {
		r.Use(cfg.RequireJWT)
		r.Post("/", cfg.CommentHandler.AddComment)
		r.Get("/", cfg.CommentHandler.ListComments)
		r.Get("/{commentID}", cfg.CommentHandler.GetComment)
		r.Put("/{commentID}", cfg.CommentHandler.EditComment)
		r.Delete("/{commentID}", cfg.CommentHandler.DeleteComment)
		r.Post("/{commentID}/reply", cfg.CommentHandler.AddReply)
		r.Get("/{commentID}/reply", cfg.CommentHandler.ListReplies)
		r.Get("/{commentID}/reply/{replyID}", cfg.CommentHandler.GetReply)
		r.Put("/{commentID}/reply/{replyID}", cfg.CommentHandler.EditReply)
		r.Delete("/{commentID}/reply/{replyID}", cfg.CommentHandler.DeleteReply)
	})

	return r
}

func loggerMiddleware(log zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := chimid.GetReqID(r.Context())
			log.Info().
				Str("request_id", reqID).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("request")
			next.ServeHTTP(w, r)
		})
	}
}
