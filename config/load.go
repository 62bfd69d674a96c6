package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	json "github.com/json-iterator/go"
)

// fileConfig mirrors Config for JSON files. Pointers tell absent keys apart from zero values,
// so a file may override only some of the defaults.
type fileConfig struct {
	Addr           *string `json:"addr"`
	Directory      *string `json:"directory"`
	ReadBufferSize *int    `json:"read_buffer_size"`
	ReadTimeout    *string `json:"read_timeout"`
	WriteTimeout   *string `json:"write_timeout"`
	LogLevel       *string `json:"log_level"`
	LogPretty      *bool   `json:"log_pretty"`
}

// Load resolves the config from the command-line arguments (without the program name). An
// optional JSON file passed via --config is applied on top of the defaults first, and then
// flags passed explicitly override it.
func Load(args []string, output io.Writer) (*Config, error) {
	cfg := Default()

	fset := flag.NewFlagSet("oneshot", flag.ContinueOnError)
	fset.SetOutput(output)

	var (
		configFile     = fset.String("config", "", "path to a JSON config file")
		directory      = fset.String("directory", cfg.Files.Root, "directory to serve files from")
		addr           = fset.String("addr", cfg.NET.Addr, "address to listen on")
		readBufferSize = fset.Int("read-buffer", cfg.NET.ReadBufferSize, "max size of a request in bytes")
		readTimeout    = fset.Duration("read-timeout", cfg.NET.ReadTimeout, "request read timeout, 0 to disable")
		writeTimeout   = fset.Duration("write-timeout", cfg.NET.WriteTimeout, "response write timeout, 0 to disable")
		logLevel       = fset.String("log-level", cfg.Log.Level, "log level")
		logPretty      = fset.Bool("log-pretty", cfg.Log.Pretty, "human-readable logs instead of JSON")
	)

	if err := fset.Parse(args); err != nil {
		return nil, err
	}

	if len(*configFile) > 0 {
		if err := applyFile(cfg, *configFile); err != nil {
			return nil, err
		}
	}

	fset.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "directory":
			cfg.Files.Root = *directory
		case "addr":
			cfg.NET.Addr = *addr
		case "read-buffer":
			cfg.NET.ReadBufferSize = *readBufferSize
		case "read-timeout":
			cfg.NET.ReadTimeout = *readTimeout
		case "write-timeout":
			cfg.NET.WriteTimeout = *writeTimeout
		case "log-level":
			cfg.Log.Level = *logLevel
		case "log-pretty":
			cfg.Log.Pretty = *logPretty
		}
	})

	return cfg, cfg.Validate()
}

func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	var file fileConfig
	if err = json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}

	setIfPresent(&cfg.NET.Addr, file.Addr)
	setIfPresent(&cfg.Files.Root, file.Directory)
	setIfPresent(&cfg.NET.ReadBufferSize, file.ReadBufferSize)
	setIfPresent(&cfg.Log.Level, file.LogLevel)
	setIfPresent(&cfg.Log.Pretty, file.LogPretty)

	if cfg.NET.ReadTimeout, err = durationOr(file.ReadTimeout, cfg.NET.ReadTimeout); err != nil {
		return fmt.Errorf("config: read_timeout: %w", err)
	}

	if cfg.NET.WriteTimeout, err = durationOr(file.WriteTimeout, cfg.NET.WriteTimeout); err != nil {
		return fmt.Errorf("config: write_timeout: %w", err)
	}

	return nil
}

func setIfPresent[T any](dst *T, value *T) {
	if value != nil {
		*dst = *value
	}
}

func durationOr(value *string, or time.Duration) (time.Duration, error) {
	if value == nil {
		return or, nil
	}

	return time.ParseDuration(*value)
}

// Validate reports values the server can't work with.
func (c *Config) Validate() error {
	switch {
	case len(c.NET.Addr) == 0:
		return fmt.Errorf("config: empty address")
	case c.NET.ReadBufferSize <= 0:
		return fmt.Errorf("config: read buffer size must be positive, got %d", c.NET.ReadBufferSize)
	case c.NET.ReadTimeout < 0 || c.NET.WriteTimeout < 0:
		return fmt.Errorf("config: negative timeout")
	case len(c.Files.Root) == 0:
		return fmt.Errorf("config: empty directory")
	}

	return nil
}
