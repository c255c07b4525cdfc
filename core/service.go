package core

import (
	"context"
	"strconv"
	"time"

	goerrors "github.com/goliatone/go-errors"
)

// operation describes one orchestration call. A non-empty key marks an
// operation addressed to a single resource, the only case where a remote
// NotFound is reported as ResourceNotFound.
type operation struct {
	name     string
	resource string
	key      string
}

func keyed(name string, resource string, id int64) operation {
	return operation{name: name, resource: resource, key: strconv.FormatInt(id, 10)}
}

// run drives VALIDATING -> CALLING -> SUCCEEDED|FAILED for a single
// invocation and observes it exactly once.
func run[T any](
	ctx context.Context,
	inst instrumentation,
	op operation,
	validate func() error,
	call func(context.Context) (T, error),
) (T, error) {
	var zero T
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	if op.key != "" {
		fields["key"] = op.key
	}

	if validate != nil {
		if err := validate(); err != nil {
			fields["failed_in"] = string(PhaseValidating)
			inst.observeOperation(ctx, startedAt, op.name, PhaseFailed, err, fields)
			return zero, err
		}
	}

	result, err := call(ctx)
	if err != nil {
		failure := failureOf(err)
		fields["failed_in"] = string(PhaseCalling)
		fields["failure"] = string(failure.Kind)
		if failure.StatusCode > 0 {
			fields["remote_status"] = failure.StatusCode
		}
		if failure.Timeout {
			fields["timeout"] = true
		}
		classified := reclassify(op, failure)
		inst.observeOperation(ctx, startedAt, op.name, PhaseFailed, classified, fields)
		return zero, classified
	}

	inst.observeOperation(ctx, startedAt, op.name, PhaseSucceeded, nil, fields)
	return result, nil
}

func reclassify(op operation, failure *Failure) *Error {
	if failure.Kind == FailureNotFound && op.key != "" {
		return NewResourceNotFound(op.resource, op.key, failure)
	}
	return NewCommunicationFailure(failure)
}

func missingClientError(service string) error {
	return goerrors.New(service+": remote client is required", goerrors.CategoryInternal).
		WithTextCode(ErrorInternal)
}

// Service bundles the three orchestration services behind one handle for the
// command and query layers.
type Service struct {
	Products   *ProductService
	Categories *CategoryService
	Inventory  *InventoryService
}

func NewService(client RemoteClient, opts ...Option) (*Service, error) {
	products, err := NewProductService(client, opts...)
	if err != nil {
		return nil, err
	}
	categories, err := NewCategoryService(client, opts...)
	if err != nil {
		return nil, err
	}
	inventory, err := NewInventoryService(client, opts...)
	if err != nil {
		return nil, err
	}
	return &Service{
		Products:   products,
		Categories: categories,
		Inventory:  inventory,
	}, nil
}
