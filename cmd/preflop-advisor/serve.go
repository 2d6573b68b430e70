package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/joho/godotenv"

	"preflop-advisor/internal/randutil"
	"preflop-advisor/internal/server"
)

// ServeCmd runs the HTTP and WebSocket API.
type ServeCmd struct {
	Config string `kong:"default='advisor.hcl',help='Path to the HCL configuration file'"`
	Debug  bool   `kong:"help='Enable debug logging regardless of config'"`
	Seed   *int64 `kong:"help='Deterministic RNG seed for dealing (optional)'"`
}

func (c *ServeCmd) Run() error {
	// A .env file can override the config path in development.
	_ = godotenv.Load()
	configPath := c.Config
	if env := os.Getenv("PREFLOP_ADVISOR_CONFIG"); env != "" {
		configPath = env
	}

	cfg, err := server.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, closeLog, err := setupLogger(cfg, c.Debug)
	if err != nil {
		return err
	}
	defer closeLog()

	seed := time.Now().UnixNano()
	if c.Seed != nil {
		seed = *c.Seed
		logger.Info("using deterministic seed", "seed", seed)
	}

	srv, err := server.New(cfg, logger, quartz.NewReal(), randutil.New(seed))
	if err != nil {
		return fmt.Errorf("building server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting advisor server", "addr", cfg.Address(),
		"ai_tendency", cfg.Game.AITendency, "search", cfg.Game.SearchAlgorithm)
	return srv.Start(ctx)
}

// setupLogger builds the server logger from config, writing to the
// configured log file when one is set.
func setupLogger(cfg *server.Config, debug bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", cfg.Server.LogLevel, err)
	}
	if debug {
		level = log.DebugLevel
	}

	out := os.Stderr
	closeLog := func() {}
	if cfg.Server.LogFile != "" {
		f, err := os.OpenFile(cfg.Server.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		out = f
		closeLog = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})
	return logger, closeLog, nil
}
