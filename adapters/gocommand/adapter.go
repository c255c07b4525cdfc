package gocommand

import (
	"context"
	"strings"

	catalog "github.com/goliatone/go-catalog"
	"github.com/goliatone/go-catalog/core"
	"github.com/goliatone/go-command"
	commanddispatcher "github.com/goliatone/go-command/dispatcher"
	"github.com/goliatone/go-command/runner"
	goerrors "github.com/goliatone/go-errors"
)

// ValidateMessageContract enforces Type() plus optional Validate() contract.
func ValidateMessageContract(msg any) error {
	if err := command.ValidateMessage(msg); err != nil {
		return err
	}
	m, ok := msg.(command.Message)
	if !ok {
		return goerrors.New("message must implement Type() string", goerrors.CategoryValidation).
			WithTextCode(core.ErrorBadParameter)
	}
	if strings.TrimSpace(m.Type()) == "" {
		return goerrors.New("message type is required", goerrors.CategoryValidation).
			WithTextCode(core.ErrorBadParameter)
	}
	return nil
}

func errRegistryNotConfigured() error {
	return goerrors.New("command registry is not configured", goerrors.CategoryInternal).
		WithTextCode(core.ErrorInternal)
}

type RegistryAdapter struct {
	registry *command.Registry
}

func NewRegistryAdapter(registry *command.Registry) *RegistryAdapter {
	if registry == nil {
		registry = command.NewRegistry()
	}
	return &RegistryAdapter{registry: registry}
}

func (a *RegistryAdapter) RegisterCommand(cmd any) error {
	if a == nil || a.registry == nil {
		return errRegistryNotConfigured()
	}
	return a.registry.RegisterCommand(cmd)
}

func (a *RegistryAdapter) RegisterQuery(qry any) error {
	if a == nil || a.registry == nil {
		return errRegistryNotConfigured()
	}
	return a.registry.RegisterCommand(qry)
}

func (a *RegistryAdapter) Initialize() error {
	if a == nil || a.registry == nil {
		return errRegistryNotConfigured()
	}
	return a.registry.Initialize()
}

func SubscribeCommand[T any](cmd command.Commander[T], runnerOpts ...runner.Option) commanddispatcher.Subscription {
	return commanddispatcher.SubscribeCommand(cmd, runnerOpts...)
}

func SubscribeQuery[T any, R any](qry command.Querier[T, R], runnerOpts ...runner.Option) commanddispatcher.Subscription {
	return commanddispatcher.SubscribeQuery(qry, runnerOpts...)
}

// Dispatch checks the message contract before handing msg to the
// dispatcher, so malformed messages never reach a handler.
func Dispatch[T any](ctx context.Context, msg T) error {
	if err := ValidateMessageContract(msg); err != nil {
		return err
	}
	return commanddispatcher.Dispatch(ctx, msg)
}

func Query[T any, R any](ctx context.Context, msg T) (R, error) {
	if err := ValidateMessageContract(msg); err != nil {
		var zero R
		return zero, err
	}
	return commanddispatcher.Query[T, R](ctx, msg)
}

func RegisterAndSubscribe[T any](
	adapter *RegistryAdapter,
	cmd command.Commander[T],
	runnerOpts ...runner.Option,
) (commanddispatcher.Subscription, error) {
	if adapter == nil || adapter.registry == nil {
		return nil, errRegistryNotConfigured()
	}
	if cmd == nil {
		return nil, goerrors.New("command handler is required", goerrors.CategoryInternal).
			WithTextCode(core.ErrorInternal)
	}
	subscription := SubscribeCommand(cmd, runnerOpts...)
	if err := adapter.RegisterCommand(cmd); err != nil {
		if subscription != nil {
			subscription.Unsubscribe()
		}
		return nil, err
	}
	return subscription, nil
}

func RegisterAndSubscribeQuery[T any, R any](
	adapter *RegistryAdapter,
	qry command.Querier[T, R],
	runnerOpts ...runner.Option,
) (commanddispatcher.Subscription, error) {
	if adapter == nil || adapter.registry == nil {
		return nil, errRegistryNotConfigured()
	}
	if qry == nil {
		return nil, goerrors.New("query handler is required", goerrors.CategoryInternal).
			WithTextCode(core.ErrorInternal)
	}
	subscription := SubscribeQuery(qry, runnerOpts...)
	if err := adapter.RegisterQuery(qry); err != nil {
		if subscription != nil {
			subscription.Unsubscribe()
		}
		return nil, err
	}
	return subscription, nil
}

// Subscriptions tracks dispatcher subscriptions made for one facade.
type Subscriptions []commanddispatcher.Subscription

func (s Subscriptions) Unsubscribe() {
	for _, subscription := range s {
		if subscription != nil {
			subscription.Unsubscribe()
		}
	}
}

// RegisterFacade registers every catalog command and query with the adapter,
// subscribes them to the go-command dispatcher and initializes the registry.
// On failure nothing stays subscribed.
func RegisterFacade(adapter *RegistryAdapter, facade *catalog.Facade, runnerOpts ...runner.Option) (Subscriptions, error) {
	if facade == nil {
		return nil, goerrors.New("catalog facade is required", goerrors.CategoryInternal).
			WithTextCode(core.ErrorInternal)
	}
	commands := facade.Commands()
	queries := facade.Queries()

	var subs Subscriptions
	track := func(sub commanddispatcher.Subscription, err error) error {
		if err != nil {
			subs.Unsubscribe()
			return err
		}
		subs = append(subs, sub)
		return nil
	}

	steps := []func() error{
		func() error { return track(RegisterAndSubscribe(adapter, commands.CreateProduct, runnerOpts...)) },
		func() error { return track(RegisterAndSubscribe(adapter, commands.UpdateProduct, runnerOpts...)) },
		func() error { return track(RegisterAndSubscribe(adapter, commands.DeleteProduct, runnerOpts...)) },
		func() error { return track(RegisterAndSubscribeQuery(adapter, queries.ListProducts, runnerOpts...)) },
		func() error { return track(RegisterAndSubscribeQuery(adapter, queries.GetProduct, runnerOpts...)) },
		func() error {
			return track(RegisterAndSubscribeQuery(adapter, queries.ListProductsByCategory, runnerOpts...))
		},
		func() error { return track(RegisterAndSubscribeQuery(adapter, queries.ListCategories, runnerOpts...)) },
		func() error { return track(RegisterAndSubscribeQuery(adapter, queries.ListLowStock, runnerOpts...)) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}
	if err := adapter.Initialize(); err != nil {
		subs.Unsubscribe()
		return nil, err
	}
	return subs, nil
}

// DispatchProduct dispatches a create or update message and returns the
// product the handler stored in the result collector.
func DispatchProduct[T any](ctx context.Context, msg T) (core.ProductRecord, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	collector := command.NewResult[core.ProductRecord]()
	if err := Dispatch(command.ContextWithResult(ctx, collector), msg); err != nil {
		return core.ProductRecord{}, err
	}
	product, _ := collector.Load()
	return product, nil
}
