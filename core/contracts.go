package core

import (
	"context"
	"time"

	glog "github.com/goliatone/go-logger/glog"
)

type Logger = glog.Logger

type LoggerProvider = glog.LoggerProvider

type FieldsLogger = glog.FieldsLogger

type MetricsRecorder interface {
	IncCounter(ctx context.Context, name string, value int64, tags map[string]string)
	ObserveHistogram(ctx context.Context, name string, value float64, tags map[string]string)
}

type TransportRequest struct {
	Method   string
	URL      string
	Headers  map[string]string
	Query    map[string]string
	Body     []byte
	Metadata map[string]any
	Timeout  time.Duration
}

type TransportResponse struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
	Metadata   map[string]any
}

type TransportAdapter interface {
	Kind() string
	Do(ctx context.Context, req TransportRequest) (TransportResponse, error)
}

// RemoteClient is the blocking, single-shot view of the data service wire
// contract. Implementations return *Failure values, never *Error.
type RemoteClient interface {
	ListProducts(ctx context.Context) ([]ProductRecord, error)
	GetProduct(ctx context.Context, id int64) (ProductRecord, error)
	CreateProduct(ctx context.Context, req ProductMutationRequest) (ProductRecord, error)
	UpdateProduct(ctx context.Context, id int64, req ProductMutationRequest) (ProductRecord, error)
	DeleteProduct(ctx context.Context, id int64) error
	ListProductsByCategory(ctx context.Context, name string) ([]ProductRecord, error)
	ListCategories(ctx context.Context) ([]CategoryRecord, error)
	ListLowStock(ctx context.Context) ([]InventoryRecord, error)
}

type ProductReader interface {
	ObtainAllProducts(ctx context.Context) ([]ProductRecord, error)
	ObtainProduct(ctx context.Context, id int64) (ProductRecord, error)
}

type ProductWriter interface {
	CreateProduct(ctx context.Context, req ProductMutationRequest) (ProductRecord, error)
	UpdateProduct(ctx context.Context, id int64, req ProductMutationRequest) (ProductRecord, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type CategoryReader interface {
	ObtainAllCategories(ctx context.Context) ([]CategoryRecord, error)
	ObtainProductsByCategory(ctx context.Context, name string) ([]ProductRecord, error)
}

type InventoryReader interface {
	ObtainLowStockProducts(ctx context.Context) ([]InventoryRecord, error)
}

type requestIDKey struct{}

// ContextWithRequestID stores the inbound correlation id so outbound calls can
// forward it.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value, _ := ctx.Value(requestIDKey{}).(string)
	return value
}
