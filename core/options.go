package core

import (
	"context"
	"os"
	"strconv"
	"strings"

	"github.com/goliatone/go-config/cfgx"
	goerrors "github.com/goliatone/go-errors"
	glog "github.com/goliatone/go-logger/glog"
	opts "github.com/goliatone/go-options"
)

const EnvPrefix = "CATALOG_"

type ConfigProvider interface {
	Load(ctx context.Context, defaults Config) (Config, error)
}

type RawConfigLoader interface {
	LoadRaw(ctx context.Context) (map[string]any, error)
}

type OptionsResolver interface {
	Resolve(defaults Config, loaded Config, runtime Config) (Config, error)
}

type serviceBuilder struct {
	logger          Logger
	loggerProvider  LoggerProvider
	metricsRecorder MetricsRecorder
}

type Option func(*serviceBuilder)

func WithLogger(logger Logger) Option {
	return func(b *serviceBuilder) {
		b.logger = logger
	}
}

func WithLoggerProvider(provider LoggerProvider) Option {
	return func(b *serviceBuilder) {
		b.loggerProvider = provider
	}
}

func WithMetricsRecorder(recorder MetricsRecorder) Option {
	return func(b *serviceBuilder) {
		b.metricsRecorder = recorder
	}
}

func buildInstrumentation(name string, options []Option) instrumentation {
	builder := serviceBuilder{metricsRecorder: NopMetricsRecorder{}}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&builder)
	}
	provider, logger := glog.Resolve(name, builder.loggerProvider, builder.logger)
	logger = glog.Ensure(logger)
	if builder.logger == nil && provider != nil {
		if named := provider.GetLogger(name); named != nil {
			logger = glog.Ensure(named)
		}
	}
	recorder := builder.metricsRecorder
	if recorder == nil {
		recorder = NopMetricsRecorder{}
	}
	return instrumentation{service: name, logger: logger, metricsRecorder: recorder}
}

// StaticRawConfigLoader serves a fixed raw map, mostly for tests and for
// callers that already parsed their own config file.
type StaticRawConfigLoader struct {
	Values map[string]any
}

func (l StaticRawConfigLoader) LoadRaw(context.Context) (map[string]any, error) {
	if len(l.Values) == 0 {
		return map[string]any{}, nil
	}
	out := make(map[string]any, len(l.Values))
	for key, value := range l.Values {
		out[key] = value
	}
	return out, nil
}

// EnvRawConfigLoader reads prefixed variables into the nested raw shape cfgx
// expects. Typed keys are parsed here so a bad value fails loudly. A nil
// Keys table reads the gateway keys.
type EnvRawConfigLoader struct {
	Prefix string
	Lookup func(string) (string, bool)
	Keys   map[string]EnvKey
}

func NewEnvRawConfigLoader() EnvRawConfigLoader {
	return EnvRawConfigLoader{Prefix: EnvPrefix, Lookup: os.LookupEnv}
}

type EnvValueType int

const (
	EnvString EnvValueType = iota
	EnvInt
	EnvBool
)

// EnvKey maps one variable suffix to its nested config path.
type EnvKey struct {
	Path []string
	Type EnvValueType
}

var gatewayEnvKeys = map[string]EnvKey{
	"SERVICE_NAME":                         {Path: []string{"service_name"}},
	"DATA_SERVICE_BASE_URL":                {Path: []string{"data_service", "base_url"}},
	"DATA_SERVICE_CONNECT_TIMEOUT_MS":      {Path: []string{"data_service", "connect_timeout_ms"}, Type: EnvInt},
	"DATA_SERVICE_READ_TIMEOUT_MS":         {Path: []string{"data_service", "read_timeout_ms"}, Type: EnvInt},
	"DATA_SERVICE_MAX_RESPONSE_BODY_BYTES": {Path: []string{"data_service", "max_response_body_bytes"}, Type: EnvInt},
	"HTTP_ADDR":                            {Path: []string{"http", "addr"}},
	"LOG_LEVEL":                            {Path: []string{"log", "level"}},
	"LOG_FORMAT":                           {Path: []string{"log", "format"}},
}

func (l EnvRawConfigLoader) LoadRaw(context.Context) (map[string]any, error) {
	lookup := l.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	prefix := l.Prefix
	if prefix == "" {
		prefix = EnvPrefix
	}
	keys := l.Keys
	if keys == nil {
		keys = gatewayEnvKeys
	}
	raw := map[string]any{}
	for suffix, key := range keys {
		if len(key.Path) == 0 {
			continue
		}
		value, ok := lookup(prefix + suffix)
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		var typed any = value
		switch key.Type {
		case EnvInt:
			parsed, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return nil, goerrors.Wrap(err, goerrors.CategoryBadInput, prefix+suffix+" must be an integer").
					WithTextCode(ErrorBadParameter)
			}
			typed = parsed
		case EnvBool:
			parsed, err := strconv.ParseBool(value)
			if err != nil {
				return nil, goerrors.Wrap(err, goerrors.CategoryBadInput, prefix+suffix+" must be a boolean").
					WithTextCode(ErrorBadParameter)
			}
			typed = parsed
		}
		setNested(raw, key.Path, typed)
	}
	return raw, nil
}

func setNested(raw map[string]any, path []string, value any) {
	current := raw
	for _, segment := range path[:len(path)-1] {
		next, ok := current[segment].(map[string]any)
		if !ok {
			next = map[string]any{}
			current[segment] = next
		}
		current = next
	}
	current[path[len(path)-1]] = value
}

type CfgxConfigProvider struct {
	Loader RawConfigLoader
}

func NewCfgxConfigProvider(loader RawConfigLoader) *CfgxConfigProvider {
	return &CfgxConfigProvider{Loader: loader}
}

func (p *CfgxConfigProvider) Load(ctx context.Context, defaults Config) (Config, error) {
	if p == nil {
		return defaults, nil
	}
	return BuildFromLoader(ctx, p.Loader, defaults, (*Config).Validate)
}

// BuildFromLoader reads raw values from loader and builds T over defaults
// through cfgx.
func BuildFromLoader[T any](ctx context.Context, loader RawConfigLoader, defaults T, validate func(*T) error) (T, error) {
	var zero T
	if loader == nil {
		loader = StaticRawConfigLoader{}
	}
	raw, err := loader.LoadRaw(ctx)
	if err != nil {
		return zero, err
	}
	built, err := cfgx.Build[T](raw,
		cfgx.WithDefaults(defaults),
		cfgx.WithValidator[T](validate),
	)
	if err != nil {
		return zero, err
	}
	return built, nil
}

type GoOptionsResolver struct{}

func (GoOptionsResolver) Resolve(defaults Config, loaded Config, runtime Config) (Config, error) {
	return BuildLayered(defaults,
		configToLayerMap(defaults, true),
		configToLayerMap(loaded, false),
		configToLayerMap(runtime, false),
		(*Config).Validate,
	)
}

// BuildLayered merges the defaults, config and runtime layers with
// go-options, in that order of precedence, and builds T from the result.
func BuildLayered[T any](defaults T, defaultsLayer, configLayer, runtimeLayer map[string]any, validate func(*T) error) (T, error) {
	var zero T
	stack, err := opts.NewStack(
		opts.NewLayer(
			opts.NewScope("defaults", 0),
			defaultsLayer,
			opts.WithSnapshotID[map[string]any]("defaults"),
		),
		opts.NewLayer(
			opts.NewScope("config", 10),
			configLayer,
			opts.WithSnapshotID[map[string]any]("config"),
		),
		opts.NewLayer(
			opts.NewScope("runtime", 20),
			runtimeLayer,
			opts.WithSnapshotID[map[string]any]("runtime"),
		),
	)
	if err != nil {
		return zero, goerrors.Wrap(err, goerrors.CategoryInternal, "options stack build failed").WithTextCode(ErrorInternal)
	}
	merged, err := stack.Merge()
	if err != nil {
		return zero, goerrors.Wrap(err, goerrors.CategoryInternal, "options merge failed").WithTextCode(ErrorInternal)
	}
	resolved, err := cfgx.Build[T](merged.Value,
		cfgx.WithDefaults(defaults),
		cfgx.WithValidator[T](validate),
	)
	if err != nil {
		return zero, err
	}
	return resolved, nil
}

// ResolveConfig layers defaults, the loader's values and runtime overrides
// (typically CLI flags). Zero-valued runtime fields do not override.
func ResolveConfig(ctx context.Context, loader RawConfigLoader, runtime Config) (Config, error) {
	defaults := DefaultConfig()
	loaded, err := NewCfgxConfigProvider(loader).Load(ctx, defaults)
	if err != nil {
		return Config{}, err
	}
	return GoOptionsResolver{}.Resolve(defaults, loaded, runtime)
}

func configToLayerMap(cfg Config, includeZero bool) map[string]any {
	layer := map[string]any{}
	if includeZero || strings.TrimSpace(cfg.ServiceName) != "" {
		layer["service_name"] = cfg.ServiceName
	}

	dataService := map[string]any{}
	if includeZero || strings.TrimSpace(cfg.DataService.BaseURL) != "" {
		dataService["base_url"] = cfg.DataService.BaseURL
	}
	if includeZero || cfg.DataService.ConnectTimeoutMS != 0 {
		dataService["connect_timeout_ms"] = cfg.DataService.ConnectTimeoutMS
	}
	if includeZero || cfg.DataService.ReadTimeoutMS != 0 {
		dataService["read_timeout_ms"] = cfg.DataService.ReadTimeoutMS
	}
	if includeZero || cfg.DataService.MaxResponseBodyBytes != 0 {
		dataService["max_response_body_bytes"] = cfg.DataService.MaxResponseBodyBytes
	}
	if len(dataService) > 0 {
		layer["data_service"] = dataService
	}

	if includeZero || strings.TrimSpace(cfg.HTTP.Addr) != "" {
		layer["http"] = map[string]any{"addr": cfg.HTTP.Addr}
	}

	logLayer := map[string]any{}
	if includeZero || strings.TrimSpace(cfg.Log.Level) != "" {
		logLayer["level"] = cfg.Log.Level
	}
	if includeZero || strings.TrimSpace(cfg.Log.Format) != "" {
		logLayer["format"] = cfg.Log.Format
	}
	if len(logLayer) > 0 {
		layer["log"] = logLayer
	}
	return layer
}

// ResolveLogger returns the logger a service named name would use with opts.
// Collaborators built next to the services share it.
func ResolveLogger(name string, opts ...Option) Logger {
	return buildInstrumentation(name, opts).logger
}
