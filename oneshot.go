// Package oneshot is an HTTP/1.1 server answering a single request per connection.
package oneshot

import (
	"net"
	"os"

	"github.com/indigo-web/oneshot/config"
	"github.com/indigo-web/oneshot/internal/server"
	"github.com/indigo-web/oneshot/router"
	"github.com/indigo-web/oneshot/router/inbuilt"
	"github.com/indigo-web/oneshot/transport"
	"github.com/rs/zerolog"
)

// App binds a listener and serves every accepted connection in its own goroutine.
type App struct {
	cfg    *config.Config
	logger zerolog.Logger
	hooks  hooks
	tcp    *transport.TCP
}

// New returns a new App instance. Passing nil config is the same as passing config.Default().
func New(cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.Default()
	}

	return &App{
		cfg:    cfg,
		logger: zerolog.New(os.Stderr).With().Timestamp().Logger(),
		tcp:    transport.NewTCP(),
	}
}

// Logger replaces the default logger, which writes JSON lines into stderr.
func (a *App) Logger(logger zerolog.Logger) *App {
	a.logger = logger
	return a
}

// NotifyOnStart calls the callback once the listener is bound, right before the first
// connection is accepted.
func (a *App) NotifyOnStart(cb func()) *App {
	a.hooks.OnStart = cb
	return a
}

// NotifyOnStop calls the callback once the listener is closed and all the connections
// are served.
func (a *App) NotifyOnStop(cb func()) *App {
	a.hooks.OnStop = cb
	return a
}

// Serve starts the application and blocks until it's stopped or the listener fails. If nil
// is passed instead of a router, empty inbuilt one is used, so every request gets 404.
func (a *App) Serve(r router.Router) error {
	if r == nil {
		r = inbuilt.New()
	}

	if err := a.tcp.Bind(a.cfg.NET.Addr); err != nil {
		return err
	}

	a.logger.Info().
		Str("url", "http://"+a.tcp.Addr().String()).
		Str("root", a.cfg.Files.Root).
		Msg("listening")

	srv := server.New(r, a.cfg.NET, a.logger)
	callIfNotNil(a.hooks.OnStart)
	err := a.tcp.Listen(srv.OnConn)
	a.tcp.Wait()
	callIfNotNil(a.hooks.OnStop)

	if err != nil {
		a.logger.Error().Err(err).Msg("listener failed")
	} else {
		a.logger.Info().Msg("stopped")
	}

	return err
}

// Addr returns the address the app is listening on, or nil if it isn't bound yet.
func (a *App) Addr() net.Addr {
	return a.tcp.Addr()
}

// Stop stops accepting new connections. The call isn't blocking: Serve returns only after
// the connections being served at the moment are done.
func (a *App) Stop() {
	a.tcp.Stop()
}

type hooks struct {
	OnStart, OnStop func()
}

func callIfNotNil(f func()) {
	if f != nil {
		f()
	}
}
