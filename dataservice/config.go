package dataservice

import (
	"context"
	"strings"
	"time"

	"github.com/goliatone/go-catalog/core"
	"github.com/goliatone/go-catalog/migrations"
	goerrors "github.com/goliatone/go-errors"
)

type Config struct {
	Driver        string `koanf:"driver" mapstructure:"driver"`
	DSN           string `koanf:"dsn" mapstructure:"dsn"`
	Addr          string `koanf:"addr" mapstructure:"addr"`
	Debug         bool   `koanf:"debug" mapstructure:"debug"`
	PingTimeoutMS int    `koanf:"ping_timeout_ms" mapstructure:"ping_timeout_ms"`
	MaxBodyBytes  int64  `koanf:"max_body_bytes" mapstructure:"max_body_bytes"`
}

func DefaultConfig() Config {
	return Config{
		Driver:        "sqlite3",
		DSN:           "file:catalog.db?cache=shared&_foreign_keys=on",
		Addr:          ":8081",
		PingTimeoutMS: 2000,
		MaxBodyBytes:  1 << 20,
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return goerrors.New("data service config is required", goerrors.CategoryInternal).WithTextCode(core.ErrorInternal)
	}
	if _, err := migrations.DialectForDriver(c.Driver); err != nil {
		return err
	}
	if strings.TrimSpace(c.DSN) == "" {
		return configError("dsn", "dsn is required")
	}
	if strings.TrimSpace(c.Addr) == "" {
		return configError("addr", "addr is required")
	}
	if c.PingTimeoutMS <= 0 {
		return configError("ping_timeout_ms", "ping_timeout_ms must be positive")
	}
	if c.MaxBodyBytes < 0 {
		return configError("max_body_bytes", "max_body_bytes must not be negative")
	}
	return nil
}

func configError(key, message string) error {
	return goerrors.New(message, goerrors.CategoryBadInput).
		WithTextCode(core.ErrorBadParameter).
		WithMetadata(map[string]any{"key": key})
}

func (c Config) GetDebug() bool {
	return c.Debug
}

func (c Config) GetDriver() string {
	return strings.TrimSpace(c.Driver)
}

func (c Config) GetServer() string {
	return strings.TrimSpace(c.DSN)
}

func (c Config) GetPingTimeout() time.Duration {
	return time.Duration(c.PingTimeoutMS) * time.Millisecond
}

func (c Config) GetOtelIdentifier() string {
	return "go-catalog-data"
}

var envKeys = map[string]core.EnvKey{
	"DATA_DRIVER":          {Path: []string{"driver"}},
	"DATA_DSN":             {Path: []string{"dsn"}},
	"DATA_ADDR":            {Path: []string{"addr"}},
	"DATA_DEBUG":           {Path: []string{"debug"}, Type: core.EnvBool},
	"DATA_PING_TIMEOUT_MS": {Path: []string{"ping_timeout_ms"}, Type: core.EnvInt},
	"DATA_MAX_BODY_BYTES":  {Path: []string{"max_body_bytes"}, Type: core.EnvInt},
}

// NewEnvRawConfigLoader reads CATALOG_DATA_* variables.
func NewEnvRawConfigLoader() core.EnvRawConfigLoader {
	loader := core.NewEnvRawConfigLoader()
	loader.Keys = envKeys
	return loader
}

// ResolveConfig layers defaults, the loader's values and runtime overrides.
// Zero-valued runtime fields do not override; Debug only ever turns on.
func ResolveConfig(ctx context.Context, loader core.RawConfigLoader, runtime Config) (Config, error) {
	defaults := DefaultConfig()
	loaded, err := core.BuildFromLoader(ctx, loader, defaults, (*Config).Validate)
	if err != nil {
		return Config{}, err
	}
	return core.BuildLayered(defaults,
		configToLayerMap(defaults, true),
		configToLayerMap(loaded, false),
		configToLayerMap(runtime, false),
		(*Config).Validate,
	)
}

func configToLayerMap(cfg Config, includeZero bool) map[string]any {
	layer := map[string]any{}
	if includeZero || strings.TrimSpace(cfg.Driver) != "" {
		layer["driver"] = cfg.Driver
	}
	if includeZero || strings.TrimSpace(cfg.DSN) != "" {
		layer["dsn"] = cfg.DSN
	}
	if includeZero || strings.TrimSpace(cfg.Addr) != "" {
		layer["addr"] = cfg.Addr
	}
	if includeZero || cfg.Debug {
		layer["debug"] = cfg.Debug
	}
	if includeZero || cfg.PingTimeoutMS != 0 {
		layer["ping_timeout_ms"] = cfg.PingTimeoutMS
	}
	if includeZero || cfg.MaxBodyBytes != 0 {
		layer["max_body_bytes"] = cfg.MaxBodyBytes
	}
	return layer
}
