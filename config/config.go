package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config is read from RUMMY_* environment variables.
// List values are separated by semicolons.
type Config struct {
	Port           int           `env:"RUMMY_PORT,default=8000"`
	AllowedOrigins []string      `env:"RUMMY_ALLOWED_ORIGINS,default=*"`
	LogLevel       string        `env:"RUMMY_LOG_LEVEL,default=info"`
	LogFormat      string        `env:"RUMMY_LOG_FORMAT,default=console"`
	ReadTimeout    time.Duration `env:"RUMMY_READ_TIMEOUT,default=10s"`
	WriteTimeout   time.Duration `env:"RUMMY_WRITE_TIMEOUT,default=10s"`
	MaxTables      int           `env:"RUMMY_MAX_TABLES,default=1000"`
}

func Default() Config {
	return Config{
		Port:           8000,
		AllowedOrigins: []string{"*"},
		LogLevel:       "info",
		LogFormat:      "console",
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxTables:      1000,
	}
}

// Load reads the environment. With no RUMMY_* variables set it returns Default().
func Load() (Config, error) {
	var cfg Config
	err := envdecode.Decode(&cfg)
	if errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidConfig, c.Port)
	}
	switch strings.ToLower(c.LogFormat) {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log format %q is not console or json", ErrInvalidConfig, c.LogFormat)
	}
	if c.ReadTimeout < 0 || c.WriteTimeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidConfig)
	}
	return nil
}

// Addr is the address to listen on
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
