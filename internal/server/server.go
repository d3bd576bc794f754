package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/yuregl/download-yt/internal/auth"
	"github.com/yuregl/download-yt/internal/database"
	"github.com/yuregl/download-yt/internal/download"
	"github.com/yuregl/download-yt/internal/geoip"
	"github.com/yuregl/download-yt/internal/metadata"
	"github.com/yuregl/download-yt/internal/ratelimit"
	"github.com/yuregl/download-yt/internal/user"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type Config struct {
	DB                 database.DBTX
	Pinger             Pinger
	Provider           metadata.Provider
	Geo                *geoip.Resolver
	JWTSecret          string
	TokenTTL           time.Duration
	DailyDownloadLimit int
}

type Server struct {
	router          chi.Router
	pinger          Pinger
	authHandler     *auth.Handler
	userHandler     *user.Handler
	downloadHandler *download.Handler
}

func New(cfg Config) *Server {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(slogMiddleware)

	s := &Server{router: r, pinger: cfg.Pinger}

	if cfg.DB != nil {
		if cfg.JWTSecret == "" {
			log.Fatal("JWT_SECRET is required; set the environment variable")
		}
		s.authHandler = auth.NewHandler(cfg.DB, cfg.JWTSecret, cfg.TokenTTL)
		s.userHandler = user.NewHandler(cfg.DB)
		s.downloadHandler = download.NewHandler(cfg.DB, cfg.Provider, cfg.Geo, cfg.DailyDownloadLimit)
	}

	s.routes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Get("/health", s.handleHealth)

	if s.userHandler == nil {
		return
	}

	// 100 requests per 15 minutes per client, matching the public API cap.
	apiLimiter := ratelimit.NewLimiter(100.0/900.0, 100)
	s.router.Group(func(r chi.Router) {
		r.Use(apiLimiter.Middleware)

		r.Post("/user/create", s.userHandler.Create)
		r.Post("/auth/login", s.authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(s.authHandler.Middleware)
			r.Get("/user", s.userHandler.Get)
			r.Put("/user/update", s.userHandler.Update)
			r.Put("/user/update-vip", s.userHandler.UpdateVip)
			r.Post("/download/create", s.downloadHandler.Create)
			r.Get("/download/get-formats", s.downloadHandler.GetFormats)
		})
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if s.pinger != nil {
		if err := s.pinger.Ping(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"unhealthy","error":"database unreachable"}`))
			return
		}
	}
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
