// Package http wires the JSON API, the embedded single-page UI, and the
// request middleware around the assistant and the in-memory ledger.
package http

import (
	"context"
	"io/fs"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"ledgerchat/internal/assistant"
	"ledgerchat/internal/store"
	appweb "ledgerchat/web"
)

// Options tunes the server surface.
type Options struct {
	CORSOrigins        []string
	RateLimitPerMinute int
	ChatTimeout        time.Duration
}

type Server struct {
	http.Server
	assistant *assistant.Assistant
	store     *store.Store
	limiter   *rateLimiter

	chatTimeout  time.Duration
	shutdownOnce sync.Once
}

// NewServer configures routes and middleware, returning a ready-to-run server.
func NewServer(addr string, asst *assistant.Assistant, st *store.Store, opts Options) *Server {
	if opts.RateLimitPerMinute <= 0 {
		opts.RateLimitPerMinute = 60
	}
	if opts.ChatTimeout <= 0 {
		opts.ChatTimeout = 90 * time.Second
	}
	if len(opts.CORSOrigins) == 0 {
		opts.CORSOrigins = []string{"*"}
	}

	s := &Server{
		assistant:   asst,
		store:       st,
		limiter:     newRateLimiter(opts.RateLimitPerMinute),
		chatTimeout: opts.ChatTimeout,
	}

	r := chi.NewRouter()
	r.Use(s.withTracing)
	r.Use(s.withSecurityHeaders)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(s.withRateLimit)

	r.Get("/healthz", handleHealth)
	r.Get("/readyz", handleReady)

	r.Route("/api", func(api chi.Router) {
		api.Post("/chat", s.handleChat)
		api.Get("/expenses", s.handleListExpenses)
		api.Post("/expenses", s.handleCreateExpense)
		api.Delete("/expenses/{id}", s.handleDeleteExpense)
		api.Get("/budget", s.handleGetBudget)
		api.Put("/budget", s.handlePutBudget)
		api.Get("/summary", s.handleSummary)
	})

	// Embedded single-page UI
	if sub, err := fs.Sub(appweb.StaticFS, "static"); err == nil {
		static := http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
		r.Handle("/static/*", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("Cache-Control", "public, max-age=3600")
			static.ServeHTTP(w, req)
		}))
		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			http.ServeFileFS(w, req, sub, "index.html")
		})
	} else {
		slog.Warn("Failed to mount embedded static FS", "error", err)
	}

	s.Server = http.Server{Addr: addr, Handler: r}
	return s
}

// Shutdown gracefully shuts down the server and its cleanup routines.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		if s.limiter != nil {
			s.limiter.stop()
		}
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
