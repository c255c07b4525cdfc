package core

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
)

type stubRemoteClient struct {
	mu    sync.Mutex
	calls []string

	listProducts           func(context.Context) ([]ProductRecord, error)
	getProduct             func(context.Context, int64) (ProductRecord, error)
	createProduct          func(context.Context, ProductMutationRequest) (ProductRecord, error)
	updateProduct          func(context.Context, int64, ProductMutationRequest) (ProductRecord, error)
	deleteProduct          func(context.Context, int64) error
	listProductsByCategory func(context.Context, string) ([]ProductRecord, error)
	listCategories         func(context.Context) ([]CategoryRecord, error)
	listLowStock           func(context.Context) ([]InventoryRecord, error)
}

func (c *stubRemoteClient) record(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, name)
}

func (c *stubRemoteClient) callCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.calls)
}

func (c *stubRemoteClient) ListProducts(ctx context.Context) ([]ProductRecord, error) {
	c.record("listProducts")
	if c.listProducts == nil {
		return nil, nil
	}
	return c.listProducts(ctx)
}

func (c *stubRemoteClient) GetProduct(ctx context.Context, id int64) (ProductRecord, error) {
	c.record("getProduct")
	if c.getProduct == nil {
		return ProductRecord{}, nil
	}
	return c.getProduct(ctx, id)
}

func (c *stubRemoteClient) CreateProduct(ctx context.Context, req ProductMutationRequest) (ProductRecord, error) {
	c.record("createProduct")
	if c.createProduct == nil {
		return ProductRecord{}, nil
	}
	return c.createProduct(ctx, req)
}

func (c *stubRemoteClient) UpdateProduct(ctx context.Context, id int64, req ProductMutationRequest) (ProductRecord, error) {
	c.record("updateProduct")
	if c.updateProduct == nil {
		return ProductRecord{}, nil
	}
	return c.updateProduct(ctx, id, req)
}

func (c *stubRemoteClient) DeleteProduct(ctx context.Context, id int64) error {
	c.record("deleteProduct")
	if c.deleteProduct == nil {
		return nil
	}
	return c.deleteProduct(ctx, id)
}

func (c *stubRemoteClient) ListProductsByCategory(ctx context.Context, name string) ([]ProductRecord, error) {
	c.record("listProductsByCategory")
	if c.listProductsByCategory == nil {
		return nil, nil
	}
	return c.listProductsByCategory(ctx, name)
}

func (c *stubRemoteClient) ListCategories(ctx context.Context) ([]CategoryRecord, error) {
	c.record("listCategories")
	if c.listCategories == nil {
		return nil, nil
	}
	return c.listCategories(ctx)
}

func (c *stubRemoteClient) ListLowStock(ctx context.Context) ([]InventoryRecord, error) {
	c.record("listLowStock")
	if c.listLowStock == nil {
		return nil, nil
	}
	return c.listLowStock(ctx)
}

var _ RemoteClient = (*stubRemoteClient)(nil)

func validMutation() ProductMutationRequest {
	return ProductMutationRequest{
		Name:       "Mate",
		Price:      decimal.NewFromInt(100),
		CategoryID: 2,
		Stock:      IntPtr(5),
	}
}

type stubLogger struct{}

func (stubLogger) Trace(string, ...any) {}
func (stubLogger) Debug(string, ...any) {}
func (stubLogger) Info(string, ...any)  {}
func (stubLogger) Warn(string, ...any)  {}
func (stubLogger) Error(string, ...any) {}
func (stubLogger) Fatal(string, ...any) {}

func (l stubLogger) WithContext(context.Context) Logger { return l }

type stubLoggerProvider struct {
	logger Logger
}

func (p stubLoggerProvider) GetLogger(string) Logger {
	return p.logger
}
