package web

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

type Config struct {
	Addr    string // ":3000"
	Handler http.Handler

	// ReadHeaderTimeout: zero uses 10s. There is no write timeout;
	// a send holds the request open until the SMTP exchange finishes.
	ReadHeaderTimeout time.Duration
}

type Server struct {
	addr string
	lg   zerolog.Logger
	srv  *http.Server

	mu sync.Mutex
	ln net.Listener

	stopOnce sync.Once
	stopErr  error
}

func NewServer(cfg Config, lg zerolog.Logger) *Server {
	rht := cfg.ReadHeaderTimeout
	if rht <= 0 {
		rht = 10 * time.Second
	}
	return &Server{
		addr: cfg.Addr,
		lg:   lg.With().Str("component", "web").Logger(),
		srv: &http.Server{
			Addr:              cfg.Addr,
			Handler:           cfg.Handler,
			ReadHeaderTimeout: rht,
		},
	}
}

// Start binds and serves until ctx is cancelled or Stop is called.
// It returns nil on a clean shutdown.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.ln = ln
	s.mu.Unlock()

	served := make(chan struct{})
	defer close(served)
	go func() {
		select {
		case <-ctx.Done():
			_ = s.Stop(context.Background())
		case <-served:
		}
	}()

	s.lg.Info().Str("addr", ln.Addr().String()).Msg("mail relay listening")
	err = s.srv.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Addr is the bound address once Start has run, else the configured one.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln != nil {
		return s.ln.Addr().String()
	}
	return s.addr
}

// Stop drains and closes the server. Only the first call does anything;
// later calls return its result.
func (s *Server) Stop(ctx context.Context) error {
	s.stopOnce.Do(func() {
		s.lg.Info().Msg("mail relay shutting down")
		s.stopErr = s.srv.Shutdown(ctx)
	})
	return s.stopErr
}
