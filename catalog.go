package catalog

import (
	"github.com/goliatone/go-catalog/core"
	"github.com/goliatone/go-catalog/remote"
)

type Config = core.Config

type Option = core.Option

type Service = core.Service

type ProductRecord = core.ProductRecord
type CategoryRecord = core.CategoryRecord
type InventoryRecord = core.InventoryRecord
type ProductMutationRequest = core.ProductMutationRequest

var (
	WithLogger          = core.WithLogger
	WithLoggerProvider  = core.WithLoggerProvider
	WithMetricsRecorder = core.WithMetricsRecorder
)

func DefaultConfig() Config {
	return core.DefaultConfig()
}

// NewService builds the orchestration services over an existing client.
func NewService(client core.RemoteClient, opts ...Option) (*Service, error) {
	return core.NewService(client, opts...)
}

// Setup validates cfg, builds the data service client from it and returns
// the orchestration services on top.
func Setup(cfg Config, opts ...Option) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	client, err := remote.NewClientFromConfig(cfg.DataService,
		remote.WithLogger(core.ResolveLogger("catalog.remote", opts...)),
	)
	if err != nil {
		return nil, err
	}
	return core.NewService(client, opts...)
}
