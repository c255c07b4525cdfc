package core

import (
	"net/url"
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"
)

type DataServiceConfig struct {
	BaseURL              string `koanf:"base_url" mapstructure:"base_url"`
	ConnectTimeoutMS     int    `koanf:"connect_timeout_ms" mapstructure:"connect_timeout_ms"`
	ReadTimeoutMS        int    `koanf:"read_timeout_ms" mapstructure:"read_timeout_ms"`
	MaxResponseBodyBytes int64  `koanf:"max_response_body_bytes" mapstructure:"max_response_body_bytes"`
}

type HTTPConfig struct {
	Addr string `koanf:"addr" mapstructure:"addr"`
}

type LogConfig struct {
	Level  string `koanf:"level" mapstructure:"level"`
	Format string `koanf:"format" mapstructure:"format"`
}

type Config struct {
	ServiceName string            `koanf:"service_name" mapstructure:"service_name"`
	DataService DataServiceConfig `koanf:"data_service" mapstructure:"data_service"`
	HTTP        HTTPConfig        `koanf:"http" mapstructure:"http"`
	Log         LogConfig         `koanf:"log" mapstructure:"log"`
}

func DefaultConfig() Config {
	return Config{
		ServiceName: "catalog",
		DataService: DataServiceConfig{
			BaseURL:              "http://localhost:8081",
			ConnectTimeoutMS:     2000,
			ReadTimeoutMS:        3000,
			MaxResponseBodyBytes: 10 << 20,
		},
		HTTP: HTTPConfig{Addr: ":8080"},
		Log:  LogConfig{Level: "info", Format: "text"},
	}
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.ServiceName) == "" {
		return configError("service_name", "service_name is required")
	}
	base := strings.TrimSpace(c.DataService.BaseURL)
	if base == "" {
		return configError("data_service.base_url", "data_service.base_url is required")
	}
	parsed, err := url.Parse(base)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return configError("data_service.base_url", "data_service.base_url is not an absolute url")
	}
	if c.DataService.ConnectTimeoutMS <= 0 {
		return configError("data_service.connect_timeout_ms", "data_service.connect_timeout_ms must be positive")
	}
	if c.DataService.ReadTimeoutMS <= 0 {
		return configError("data_service.read_timeout_ms", "data_service.read_timeout_ms must be positive")
	}
	if c.DataService.MaxResponseBodyBytes < 0 {
		return configError("data_service.max_response_body_bytes", "data_service.max_response_body_bytes must not be negative")
	}
	switch strings.ToLower(strings.TrimSpace(c.Log.Format)) {
	case "", "text", "json":
	default:
		return configError("log.format", "log.format is not supported")
	}
	return nil
}

// configError reports an invalid setting as a bad-input envelope naming the
// offending key.
func configError(key, message string) error {
	return goerrors.New(message, goerrors.CategoryBadInput).
		WithTextCode(ErrorBadParameter).
		WithMetadata(map[string]any{"key": key})
}

func (c DataServiceConfig) ConnectTimeout() time.Duration {
	return time.Duration(c.ConnectTimeoutMS) * time.Millisecond
}

func (c DataServiceConfig) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutMS) * time.Millisecond
}
