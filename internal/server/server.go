// Package server exposes the decision engine over HTTP and WebSocket and
// runs heads-up practice sessions against the advisor.
package server

import (
	"context"
	"errors"
	rand "math/rand/v2"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	"preflop-advisor/internal/advisor"
)

// Server wires the session manager and the advisor behind the HTTP API.
type Server struct {
	cfg      *Config
	logger   *log.Logger
	manager  *Manager
	advisor  *advisor.Advisor
	upgrader websocket.Upgrader
}

// New builds a Server from configuration.
func New(cfg *Config, logger *log.Logger, clock quartz.Clock, rng *rand.Rand) (*Server, error) {
	adv, err := advisor.New(logger)
	if err != nil {
		return nil, err
	}

	return &Server{
		cfg:     cfg,
		logger:  logger.WithPrefix("server"),
		manager: NewManager(cfg.Game, clock, rng, logger),
		advisor: adv,
		upgrader: websocket.Upgrader{
			// Practice sessions are served to a local frontend; origin
			// checking is left to a reverse proxy in real deployments.
			CheckOrigin:     func(r *http.Request) bool { return true },
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}, nil
}

// Start serves the API until ctx is cancelled, then drains connections.
func (s *Server) Start(ctx context.Context) error {
	s.manager.StartSweeper(ctx)

	httpServer := &http.Server{
		Addr:    s.cfg.Address(),
		Handler: s.Router(),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
