package main

import (
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/indigo-web/oneshot"
	"github.com/indigo-web/oneshot/config"
	"github.com/indigo-web/oneshot/filestore"
	"github.com/indigo-web/oneshot/internal/routes"
	"github.com/rs/zerolog"
)

func main() {
	cfg, err := config.Load(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		zerolog.New(os.Stderr).Fatal().Err(err).Msg("bad configuration")
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		zerolog.New(os.Stderr).Fatal().Err(err).Msg("bad log level")
	}

	app := oneshot.New(cfg).Logger(logger)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info().Stringer("signal", sig).Msg("shutting down")
		app.Stop()
	}()

	store := filestore.NewDir(cfg.Files.Root, logger)
	if err = app.Serve(routes.New(store)); err != nil {
		logger.Fatal().Err(err).Msg("server failed")
	}
}

func newLogger(cfg config.Log) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Logger{}, err
	}

	logger := zerolog.New(os.Stderr)
	if cfg.Pretty {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.DateTime})
	}

	return logger.Level(level).With().Timestamp().Logger(), nil
}
