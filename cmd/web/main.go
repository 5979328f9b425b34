package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/minaorangina/rummy/config"
	"github.com/minaorangina/rummy/logging"
	"github.com/minaorangina/rummy/server"
	"github.com/minaorangina/rummy/store"
	"github.com/rs/zerolog"
)

// newServer wires a table server from cfg, logging to w
func newServer(cfg config.Config, w io.Writer) (*server.TableServer, zerolog.Logger, error) {
	logger, err := logging.New(w, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, zerolog.Nop(), err
	}

	s := server.NewServer(server.Options{
		Store:          store.NewInMemoryTableStore(cfg.MaxTables),
		Logger:         logger,
		AllowedOrigins: cfg.AllowedOrigins,
		Addr:           cfg.Addr(),
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
	})
	return s, logger, nil
}

func main() {
	bootLog := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		bootLog.Fatal().Err(err).Msg("could not load config")
	}

	s, logger, err := newServer(cfg, os.Stderr)
	if err != nil {
		bootLog.Fatal().Err(err).Msg("could not build logger")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info().Str("addr", s.Addr).Msg("listening")
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("shutdown")
	}
}
