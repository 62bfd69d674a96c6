package server

import (
	"errors"
	"io"
	"net"
	"runtime/debug"

	"github.com/dchest/uniuri"
	"github.com/indigo-web/oneshot/config"
	"github.com/indigo-web/oneshot/http"
	"github.com/indigo-web/oneshot/internal/protocol/http1"
	"github.com/indigo-web/oneshot/router"
	"github.com/indigo-web/oneshot/transport"
	"github.com/rs/zerolog"
)

const connIDLength = 8

// Server answers exactly one request per connection.
type Server struct {
	router router.Router
	cfg    config.NET
	logger zerolog.Logger
}

func New(r router.Router, cfg config.NET, logger zerolog.Logger) *Server {
	return &Server{
		router: r,
		cfg:    cfg,
		logger: logger,
	}
}

// OnConn is suitable as a transport.TCP callback.
func (s *Server) OnConn(conn net.Conn) {
	s.Serve(transport.NewClient(conn, s.cfg))
}

// Serve reads a single request from the client, routes it and writes the response back.
// The client is always closed on return, no matter whether the request was answered.
func (s *Server) Serve(client transport.Client) {
	logger := s.logger.With().
		Str("conn", uniuri.NewLen(connIDLength)).
		Str("remote", remote(client)).
		Logger()

	defer func() {
		if r := recover(); r != nil {
			logger.Error().
				Interface("panic", r).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic while serving the connection")
		}

		if err := client.Close(); err != nil {
			logger.Debug().Err(err).Msg("closing the connection")
		}
	}()

	s.handle(client, logger)
}

func (s *Server) handle(client transport.Client, logger zerolog.Logger) {
	data, err := client.Read()
	if len(data) == 0 {
		if err != nil && !errors.Is(err, io.EOF) {
			logger.Debug().Err(err).Msg("read failed")
		} else {
			logger.Debug().Msg("peer closed the connection without sending anything")
		}

		return
	}

	request, err := http1.Parse(data)
	if err != nil {
		logger.Debug().Err(err).Msg("malformed request")
		return
	}

	response := s.router.OnRequest(request)
	if response == nil {
		response = http.Respond(request)
	}

	raw, err := response.Build()
	if err != nil {
		logger.Error().
			Err(err).
			Stringer("request", request).
			Msg("response can't be built")
		return
	}

	if _, err = client.Write(raw); err != nil {
		logger.Debug().Err(err).Stringer("request", request).Msg("write failed")
		return
	}

	logger.Info().
		Str("method", request.RawMethod).
		Str("path", request.Path).
		Str("version", request.Version).
		Uint16("status", uint16(response.Expose().Code)).
		Msg("served")
}

func remote(client transport.Client) string {
	if addr := client.Remote(); addr != nil {
		return addr.String()
	}

	return ""
}
