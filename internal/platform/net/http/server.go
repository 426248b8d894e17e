package http

import (
	"context"
	"errors"
	stdhttp "net/http"
	"time"

	"creatorscout/internal/platform/config"
	"creatorscout/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// Server runs a chi mux on a net/http server
type Server struct {
	mux   *chi.Mux
	srv   *stdhttp.Server
	grace time.Duration
}

// NewServer reads PORT, READ_HEADER_TIMEOUT, IDLE_TIMEOUT and SHUTDOWN_GRACE from cfg
// There is no write timeout, a harvest answer can take minutes
// opts get the mux before any module mounts
func NewServer(cfg config.Conf, opts ...func(*chi.Mux)) *Server {
	m := chi.NewRouter()
	for _, o := range opts {
		o(m)
	}
	return &Server{
		mux:   m,
		grace: cfg.MayDuration("SHUTDOWN_GRACE", 15*time.Second),
		srv: &stdhttp.Server{
			Addr:              cfg.MayString("PORT", ":4000"),
			Handler:           m,
			ReadHeaderTimeout: cfg.MayDuration("READ_HEADER_TIMEOUT", 10*time.Second),
			IdleTimeout:       cfg.MayDuration("IDLE_TIMEOUT", 2*time.Minute),
		},
	}
}

// Router returns the mux as a Router
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Addr returns the listen address
func (s *Server) Addr() string { return s.srv.Addr }

// Run serves until ctx is cancelled, then drains in flight requests for the grace period
// A clean shutdown returns nil
func (s *Server) Run(ctx context.Context) error {
	log := logger.Named("http")
	log.Info().Str("addr", s.srv.Addr).Msg("http listening")

	drained := make(chan error, 1)
	stop := context.AfterFunc(ctx, func() {
		shCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.grace)
		defer cancel()
		log.Info().Dur("grace", s.grace).Msg("http draining")
		drained <- s.srv.Shutdown(shCtx)
	})
	defer stop()

	err := s.srv.ListenAndServe()
	if !errors.Is(err, stdhttp.ErrServerClosed) {
		return err
	}
	return <-drained
}
