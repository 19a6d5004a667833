package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"

	"github.com/gorilla/mux"

	"github.com/npillmayer/sarf"
	"github.com/npillmayer/sarf/internal/config"
)

// Server exposes an engine as a JSON API.
//
// The engine itself is not synchronized. Handlers take a read lock for pure
// lookups and a write lock for everything that may record words or change
// a store, generation and validation included.
type Server struct {
	mu     sync.RWMutex
	engine *sarf.Engine
	logger *slog.Logger
	server *http.Server
}

// New creates a server for engine. Nothing listens until ListenAndServe is
// called.
func New(engine *sarf.Engine, cfg config.ServerConfig, logger *slog.Logger) *Server {
	s := &Server{engine: engine, logger: logger}

	r := mux.NewRouter()
	r.HandleFunc("/health", s.health).Methods(http.MethodGet)

	r.HandleFunc("/generate", s.generate).Methods(http.MethodPost)
	r.HandleFunc("/generate_family", s.generateFamily).Methods(http.MethodPost)
	r.HandleFunc("/validate", s.validate).Methods(http.MethodPost)
	r.HandleFunc("/add_root", s.addRoot).Methods(http.MethodPost)
	r.HandleFunc("/add_pattern", s.addPattern).Methods(http.MethodPost)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/roots", s.listRoots).Methods(http.MethodGet)
	api.HandleFunc("/roots/{root}", s.getRoot).Methods(http.MethodGet)
	api.HandleFunc("/roots/{root}", s.deleteRoot).Methods(http.MethodDelete)
	api.HandleFunc("/roots/{root}/derivatives", s.addDerivative).Methods(http.MethodPost)
	api.HandleFunc("/patterns", s.listPatterns).Methods(http.MethodGet)
	api.HandleFunc("/patterns/{pattern}", s.getPattern).Methods(http.MethodGet)
	api.HandleFunc("/patterns/{pattern}", s.updatePattern).Methods(http.MethodPut)
	api.HandleFunc("/patterns/{pattern}", s.deletePattern).Methods(http.MethodDelete)
	api.HandleFunc("/words", s.completeWords).Methods(http.MethodGet)
	api.HandleFunc("/words/{word}/roots", s.wordRoots).Methods(http.MethodGet)
	api.HandleFunc("/stats", s.stats).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse{Status: "error", Error: "no such endpoint"})
	})

	handler := Chain(RequestID, Logger(logger), Recovery(logger))(r)

	s.server = &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
	return s
}

// Handler returns the HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Addr returns the address the server is configured to listen on.
func (s *Server) Addr() string {
	return s.server.Addr
}

// ListenAndServe blocks until the server fails or is shut down. A regular
// shutdown is not an error.
func (s *Server) ListenAndServe() error {
	s.logger.Info("server listening", slog.String("addr", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen on %s: %w", s.server.Addr, err)
	}
	return nil
}

// Shutdown stops accepting requests and waits for active ones until ctx
// is done.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
