// Package api serves the tracker over HTTP with JSON bodies.
//
// Routes:
//
//	GET    /users          participants with derived fields
//	POST   /users          {"name"} -> new participant on page 1
//	GET    /users/{id}     one participant with derived fields
//	PUT    /users/{id}     {"currentPage"} -> updated participant
//	PATCH  /users/{id}     {"name"} -> renamed participant
//	DELETE /users/{id}     removed participant
//	GET    /leaderboard    ranked standings and a group summary
//	GET    /pages/{page}   derivation for a bare page number
//	GET    /surahs         the surah start table
//	GET    /healthz        liveness
package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Gulur101/quran-toolkit/internal/store"
)

// Option configures a Server.
type Option func(*Server)

// WithAllowedOrigins sets the CORS origins; "*" allows any.
func WithAllowedOrigins(origins []string) Option {
	return func(s *Server) {
		s.origins = origins
	}
}

// WithShutdownTimeout bounds graceful shutdown in Run.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) {
		s.shutdownTimeout = d
	}
}

type Server struct {
	store           *store.Store
	logger          *zap.Logger
	origins         []string
	shutdownTimeout time.Duration
	handler         http.Handler
}

func NewServer(st *store.Store, logger *zap.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		store:           st,
		logger:          logger,
		origins:         []string{"*"},
		shutdownTimeout: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.handler = s.routes()
	return s
}

// Handler returns the full middleware-wrapped handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /users", s.handleListUsers)
	mux.HandleFunc("POST /users", s.handleCreateUser)
	mux.HandleFunc("GET /users/{id}", s.handleGetUser)
	mux.HandleFunc("PUT /users/{id}", s.handleUpdatePage)
	mux.HandleFunc("PATCH /users/{id}", s.handleRenameUser)
	mux.HandleFunc("DELETE /users/{id}", s.handleDeleteUser)
	mux.HandleFunc("GET /leaderboard", s.handleLeaderboard)
	mux.HandleFunc("GET /pages/{page}", s.handlePage)
	mux.HandleFunc("GET /surahs", s.handleSurahs)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	var h http.Handler = mux
	h = s.cors(h)
	h = s.recoverPanics(h)
	h = s.accessLog(h)
	h = requestID(h)
	return h
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	server := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	s.logger.Info("Backend running", zap.String("addr", ln.Addr().String()))

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			server.Close()
			return fmt.Errorf("shutdown: %w", err)
		}
		<-errCh
		s.logger.Info("Backend stopped")
		return nil
	}
}
