package remote

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-catalog/core"
	"github.com/goliatone/go-catalog/transport"
	goerrors "github.com/goliatone/go-errors"
	glog "github.com/goliatone/go-logger/glog"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// Client is the blocking stub for the data service. Every method makes
// exactly one exchange and never retries.
type Client struct {
	adapter     core.TransportAdapter
	baseURL     string
	readTimeout time.Duration
	logger      core.Logger
}

type ClientOption func(*Client)

func WithReadTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.readTimeout = timeout
	}
}

func WithLogger(logger core.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient builds a stub over adapter. Without a positive read timeout the
// default data service read timeout applies, since the caller's cancellation
// never reaches the exchange.
func NewClient(baseURL string, adapter core.TransportAdapter, opts ...ClientOption) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, goerrors.New("remote: base url is required", goerrors.CategoryBadInput).
			WithTextCode(core.ErrorBadParameter)
	}
	if adapter == nil {
		return nil, goerrors.New("remote: transport adapter is required", goerrors.CategoryInternal).
			WithTextCode(core.ErrorInternal)
	}
	client := &Client{adapter: adapter, baseURL: baseURL}
	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}
	if client.readTimeout <= 0 {
		client.readTimeout = core.DefaultConfig().DataService.ReadTimeout()
	}
	client.logger = glog.Ensure(client.logger)
	return client, nil
}

// NewClientFromConfig wires the REST adapter with the configured connect
// timeout, read timeout and body limit.
func NewClientFromConfig(cfg core.DataServiceConfig, opts ...ClientOption) (*Client, error) {
	adapter := transport.NewRESTAdapter(transport.NewHTTPClient(cfg.ConnectTimeout()))
	if cfg.MaxResponseBodyBytes > 0 {
		adapter.MaxResponseBodyBytes = cfg.MaxResponseBodyBytes
	}
	return NewClient(cfg.BaseURL, adapter, append([]ClientOption{WithReadTimeout(cfg.ReadTimeout())}, opts...)...)
}

func (c *Client) ListProducts(ctx context.Context) ([]core.ProductRecord, error) {
	return invoke[[]core.ProductRecord](ctx, c, OpListProducts, nil, nil)
}

func (c *Client) GetProduct(ctx context.Context, id int64) (core.ProductRecord, error) {
	return invoke[core.ProductRecord](ctx, c, OpGetProduct, idParams(id), nil)
}

func (c *Client) CreateProduct(ctx context.Context, req core.ProductMutationRequest) (core.ProductRecord, error) {
	return invoke[core.ProductRecord](ctx, c, OpCreateProduct, nil, req)
}

func (c *Client) UpdateProduct(ctx context.Context, id int64, req core.ProductMutationRequest) (core.ProductRecord, error) {
	return invoke[core.ProductRecord](ctx, c, OpUpdateProduct, idParams(id), req)
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	_, err := c.exchange(ctx, OpDeleteProduct, idParams(id), nil)
	return err
}

func (c *Client) ListProductsByCategory(ctx context.Context, name string) ([]core.ProductRecord, error) {
	return invoke[[]core.ProductRecord](ctx, c, OpListProductsByCategory, map[string]string{"name": name}, nil)
}

func (c *Client) ListCategories(ctx context.Context) ([]core.CategoryRecord, error) {
	return invoke[[]core.CategoryRecord](ctx, c, OpListCategories, nil, nil)
}

func (c *Client) ListLowStock(ctx context.Context) ([]core.InventoryRecord, error) {
	return invoke[[]core.InventoryRecord](ctx, c, OpListLowStock, nil, nil)
}

func idParams(id int64) map[string]string {
	return map[string]string{"id": strconv.FormatInt(id, 10)}
}

// invoke performs the exchange for name and decodes a successful body into T.
func invoke[T any](ctx context.Context, c *Client, name string, params map[string]string, body any) (T, error) {
	var out T
	res, err := c.exchange(ctx, name, params, body)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(res.Body, &out); err != nil {
		var zero T
		return zero, &Failure{
			Kind:       core.FailureMalformedResponse,
			Operation:  name,
			StatusCode: res.StatusCode,
			Body:       excerpt(res.Body),
			Err:        err,
		}
	}
	return out, nil
}

func (c *Client) exchange(ctx context.Context, name string, params map[string]string, body any) (core.TransportResponse, error) {
	op, ok := Lookup(name)
	if !ok {
		return core.TransportResponse{}, goerrors.New("remote: unknown operation "+name, goerrors.CategoryInternal).
			WithTextCode(core.ErrorInternal)
	}
	path, err := op.Path(params)
	if err != nil {
		return core.TransportResponse{}, goerrors.Wrap(err, goerrors.CategoryInternal, "remote: expand path").
			WithTextCode(core.ErrorInternal)
	}

	if ctx == nil {
		ctx = context.Background()
	}
	requestID := core.RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	headers := map[string]string{
		"Accept":        "application/json",
		RequestIDHeader: requestID,
	}

	var payload []byte
	if op.HasBody {
		payload, err = json.Marshal(body)
		if err != nil {
			return core.TransportResponse{}, goerrors.Wrap(err, goerrors.CategoryInternal, "remote: encode request body").
				WithTextCode(core.ErrorInternal)
		}
		headers["Content-Type"] = "application/json"
	}

	// The exchange outlives the caller: cancellation is detached and only
	// the read timeout bounds it.
	startedAt := time.Now()
	res, err := c.adapter.Do(context.WithoutCancel(ctx), core.TransportRequest{
		Method:  op.Method,
		URL:     c.baseURL + path,
		Headers: headers,
		Body:    payload,
		Timeout: c.readTimeout,
		Metadata: map[string]any{
			"operation": op.Name,
		},
	})

	if failure := Decode(Outcome{Operation: op.Name, StatusCode: res.StatusCode, Body: res.Body, Err: err}); failure != nil {
		c.logger.Debug("remote call failed",
			"operation", op.Name,
			"request_id", requestID,
			"failure", string(failure.Kind),
			"status_code", failure.StatusCode,
			"duration_ms", time.Since(startedAt).Milliseconds(),
		)
		return core.TransportResponse{}, failure
	}
	c.logger.Debug("remote call succeeded",
		"operation", op.Name,
		"request_id", requestID,
		"status_code", res.StatusCode,
		"duration_ms", time.Since(startedAt).Milliseconds(),
	)
	return res, nil
}

var _ core.RemoteClient = (*Client)(nil)
