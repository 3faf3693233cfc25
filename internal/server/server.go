// Package server implements the dotkit HTTP API.
//
// The API exposes the build pipeline and the document store:
//
//	POST   /v1/dot                   compile a document body to DOT text
//	POST   /v1/render                compile and render a document body
//	POST   /v1/documents             create a stored document
//	GET    /v1/documents             list stored documents
//	GET    /v1/documents/{id}        fetch a stored document
//	PUT    /v1/documents/{id}        replace a stored document
//	DELETE /v1/documents/{id}        delete a stored document
//	GET    /v1/documents/{id}/render render a stored document
//	GET    /healthz                  liveness probe
//
// Errors are returned as JSON bodies with a stable machine-readable code:
//
//	{"error": "edge references unknown node \"ghost\"", "code": "INVALID_DOCUMENT"}
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/dotkit/pkg/pipeline"
	"github.com/matzehuels/dotkit/pkg/store"
)

// Config carries the server's dependencies.
type Config struct {
	Addr   string
	Store  store.Store
	Runner *pipeline.Runner
	Logger *log.Logger
}

// Server is the dotkit HTTP API server.
type Server struct {
	cfg    Config
	router chi.Router
	http   *http.Server
}

// New assembles the router and returns an unstarted server.
func New(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.Runner == nil {
		cfg.Runner = pipeline.NewRunner(nil, nil, cfg.Logger)
	}
	if cfg.Store == nil {
		cfg.Store = store.NewMemoryStore()
	}

	s := &Server{cfg: cfg}
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(requestLogger(cfg.Logger))
	r.Use(recoverer(cfg.Logger))

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/dot", s.handleDot)
		r.Post("/render", s.handleRender)
		r.Route("/documents", func(r chi.Router) {
			r.Post("/", s.handleCreateDocument)
			r.Get("/", s.handleListDocuments)
			r.Get("/{id}", s.handleGetDocument)
			r.Put("/{id}", s.handleUpdateDocument)
			r.Delete("/{id}", s.handleDeleteDocument)
			r.Get("/{id}/render", s.handleRenderDocument)
		})
	})
	s.router = r
	return s
}

// Handler returns the server's HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe runs the server until ctx is canceled, then shuts down
// gracefully with a short drain window.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.http = &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.cfg.Logger.Info("server listening", "addr", s.cfg.Addr)
		errc <- s.http.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	}
}
