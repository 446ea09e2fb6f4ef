// Package window serves the shell as a fixed-size browser window: a sidebar
// of entry buttons and a content frame showing the active document.
package window

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ziadkadry99/camino/internal/pages"
	"github.com/ziadkadry99/camino/internal/shell"
)

// Config holds window server configuration.
type Config struct {
	Host     string // defaults to 127.0.0.1
	Port     int    // 0 picks a free port
	AllowAll bool   // allow all CORS origins
}

// Renderer renders a document without touching the content region.
type Renderer interface {
	Load(id string) pages.Page
}

// Server hosts one Shell over HTTP.
type Server struct {
	cfg        Config
	shell      *shell.Shell
	renderer   Renderer
	hub        *hub
	router     chi.Router
	listener   net.Listener
	httpServer *http.Server
	unsub      func()
}

// New creates a window server for sh. Every swap of the shell's content
// region is pushed to connected windows.
func New(cfg Config, sh *shell.Shell, renderer Renderer) *Server {
	if cfg.Host == "" {
		cfg.Host = "127.0.0.1"
	}
	s := &Server{
		cfg:      cfg,
		shell:    sh,
		renderer: renderer,
		hub:      newHub(),
	}
	s.router = s.buildRouter()
	s.unsub = sh.Region().Subscribe(s.refresh)
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// The websocket outlives any request timeout.
	r.Get("/ws", s.handleWebSocket)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(30 * time.Second))

		r.Get("/", s.handleWindow)
		r.Post("/entries/{id}", s.handleActivate)
		r.Get("/content", s.handleContent)
		r.Get("/pages/{id}", s.handlePage)
		r.Get("/api/entries", s.handleEntries)
		r.Get("/api/state", s.handleState)
		r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	return r
}

// Router returns the HTTP handler.
func (s *Server) Router() chi.Router { return s.router }

// Listen binds the configured address. It must be called before Serve.
func (s *Server) Listen() error {
	addr := net.JoinHostPort(s.cfg.Host, fmt.Sprint(s.cfg.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}
	s.listener = ln
	return nil
}

// URL returns the window address once Listen has succeeded.
func (s *Server) URL() string {
	if s.listener == nil {
		return ""
	}
	return "http://" + s.listener.Addr().String()
}

// Serve handles requests until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context) error {
	if s.listener == nil {
		if err := s.Listen(); err != nil {
			return err
		}
	}
	s.httpServer = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("window: listening on %s", s.URL())
		errCh <- s.httpServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.Close()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down window: %w", err)
		}
		return nil
	case err := <-errCh:
		s.Close()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// Close stops refresh pushes and disconnects websocket clients.
func (s *Server) Close() {
	if s.unsub != nil {
		s.unsub()
		s.unsub = nil
	}
	s.hub.closeAll()
}

// refresh pushes the region's current view to every connected window.
// Concurrent swaps may notify out of order, so v is only a trigger.
func (s *Server) refresh(v shell.View) {
	if cur, ok := s.shell.Region().Current(); ok {
		v = cur
	}
	s.hub.broadcast(refreshMessage{
		Type:  "refresh",
		Doc:   v.DocID,
		View:  v.ID,
		Label: s.labelFor(v.DocID),
	})
}

func (s *Server) labelFor(id string) string {
	if e, ok := s.shell.Entry(id); ok {
		return e.Label
	}
	return id
}
