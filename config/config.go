package config

import "time"

type (
	NET struct {
		// Addr is the address to listen on. The server is meant to be reached locally,
		// therefore it's the loopback by default.
		Addr string
		// ReadBufferSize is a size of buffer in bytes which will be used to read from
		// socket. Every request must fit into a single read, anything beyond is cut off.
		ReadBufferSize int
		// ReadTimeout limits how long the server waits for the request. Zero disables it,
		// leaving a silent client to hold its connection forever.
		ReadTimeout time.Duration `test:"nullable"`
		// WriteTimeout limits how long writing the response may take. Zero disables it.
		WriteTimeout time.Duration `test:"nullable"`
	}

	Files struct {
		// Root is the directory files are read from and written into.
		Root string
	}

	Log struct {
		// Level is one of zerolog levels: trace, debug, info, warn, error, fatal, panic
		// or disabled.
		Level string
		// Pretty enables human-readable console output instead of JSON lines.
		Pretty bool
	}
)

// Config holds everything resolved before the first connection is accepted. It must not be
// modified after the server has started.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because most likely this will result in ambiguous errors.
type Config struct {
	NET   NET
	Files Files
	Log   Log
}

// Default returns default config.
func Default() *Config {
	return &Config{
		NET: NET{
			Addr:           "localhost:4221",
			ReadBufferSize: 1024,
			ReadTimeout:    0,
			WriteTimeout:   0,
		},
		Files: Files{
			Root: ".",
		},
		Log: Log{
			Level:  "info",
			Pretty: true,
		},
	}
}
