package dataservice

import (
	"context"
	"net/http"

	"github.com/goliatone/go-catalog/core"
	"github.com/goliatone/go-catalog/inbound"
	sqlstore "github.com/goliatone/go-catalog/store/sql"
	goerrors "github.com/goliatone/go-errors"
	glog "github.com/goliatone/go-logger/glog"
	persistence "github.com/goliatone/go-persistence-bun"
)

// Service is the runnable reference data service.
type Service struct {
	cfg     Config
	client  *persistence.Client
	store   *sqlstore.CatalogStore
	handler http.Handler
	logger  glog.Logger
}

func New(ctx context.Context, cfg Config, logger glog.Logger) (*Service, error) {
	logger = glog.Ensure(logger)
	client, err := OpenPersistence(ctx, cfg)
	if err != nil {
		return nil, err
	}
	store, err := sqlstore.NewCatalogStoreFromPersistence(client)
	if err != nil {
		_ = client.Close()
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "catalog store").WithTextCode(core.ErrorInternal)
	}
	return &Service{
		cfg:     cfg,
		client:  client,
		store:   store,
		handler: NewRouter(store, logger, cfg.MaxBodyBytes),
		logger:  logger,
	}, nil
}

func (s *Service) Handler() http.Handler {
	if s == nil {
		return nil
	}
	return s.handler
}

func (s *Service) Store() *sqlstore.CatalogStore {
	if s == nil {
		return nil
	}
	return s.store
}

// Run serves until ctx is done.
func (s *Service) Run(ctx context.Context) error {
	if s == nil || s.handler == nil {
		return goerrors.New("data service is not configured", goerrors.CategoryInternal).WithTextCode(core.ErrorInternal)
	}
	return inbound.Serve(ctx, s.cfg.Addr, s.handler, s.logger, inbound.DefaultShutdownTimeout)
}

func (s *Service) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Close()
}

var _ Store = (*sqlstore.CatalogStore)(nil)
