package command

import (
	"context"
	"testing"

	"github.com/goliatone/go-catalog/core"
	gocmd "github.com/goliatone/go-command"
	"github.com/shopspring/decimal"
)

type stubProductWriter struct {
	createFn func(context.Context, core.ProductMutationRequest) (core.ProductRecord, error)
	updateFn func(context.Context, int64, core.ProductMutationRequest) (core.ProductRecord, error)
	deleteFn func(context.Context, int64) error
}

func (s stubProductWriter) CreateProduct(ctx context.Context, req core.ProductMutationRequest) (core.ProductRecord, error) {
	if s.createFn == nil {
		return core.ProductRecord{}, nil
	}
	return s.createFn(ctx, req)
}

func (s stubProductWriter) UpdateProduct(ctx context.Context, id int64, req core.ProductMutationRequest) (core.ProductRecord, error) {
	if s.updateFn == nil {
		return core.ProductRecord{}, nil
	}
	return s.updateFn(ctx, id, req)
}

func (s stubProductWriter) DeleteProduct(ctx context.Context, id int64) error {
	if s.deleteFn == nil {
		return nil
	}
	return s.deleteFn(ctx, id)
}

func TestCreateProductCommand_ExecuteDelegatesAndStoresResult(t *testing.T) {
	expected := core.ProductRecord{ID: 10, Name: "Mate", Price: decimal.NewFromInt(100), CategoryName: "Bazar", Stock: 5}
	called := false
	svc := stubProductWriter{
		createFn: func(_ context.Context, req core.ProductMutationRequest) (core.ProductRecord, error) {
			called = true
			if req.Name != "Mate" || req.CategoryID != 2 {
				t.Fatalf("unexpected request %#v", req)
			}
			return expected, nil
		},
	}

	collector := gocmd.NewResult[core.ProductRecord]()
	ctx := gocmd.ContextWithResult(context.Background(), collector)
	err := NewCreateProductCommand(svc).Execute(ctx, CreateProductMessage{Request: core.ProductMutationRequest{
		Name:       "Mate",
		Price:      decimal.NewFromInt(100),
		CategoryID: 2,
		Stock:      core.IntPtr(5),
	}})
	if err != nil {
		t.Fatalf("execute create: %v", err)
	}
	if !called {
		t.Fatalf("expected create invocation")
	}
	result, ok := collector.Load()
	if !ok {
		t.Fatalf("expected result to be stored")
	}
	if result.ID != expected.ID || result.CategoryName != "Bazar" {
		t.Fatalf("unexpected result: %#v", result)
	}
}

func TestUpdateProductCommand_PropagatesDomainErrors(t *testing.T) {
	svc := stubProductWriter{
		updateFn: func(_ context.Context, id int64, _ core.ProductMutationRequest) (core.ProductRecord, error) {
			return core.ProductRecord{}, core.NewResourceNotFound("product", "999", nil)
		},
	}
	collector := gocmd.NewResult[core.ProductRecord]()
	ctx := gocmd.ContextWithResult(context.Background(), collector)

	err := NewUpdateProductCommand(svc).Execute(ctx, UpdateProductMessage{ID: 999})
	if !core.IsKind(err, core.KindResourceNotFound) {
		t.Fatalf("expected resource not found, got %v", err)
	}
	if _, ok := collector.Load(); ok {
		t.Fatalf("expected no result on failure")
	}
}

func TestDeleteProductCommand_Delegates(t *testing.T) {
	var got int64
	svc := stubProductWriter{
		deleteFn: func(_ context.Context, id int64) error {
			got = id
			return nil
		},
	}
	if err := NewDeleteProductCommand(svc).Execute(context.Background(), DeleteProductMessage{ID: 9}); err != nil {
		t.Fatalf("execute delete: %v", err)
	}
	if got != 9 {
		t.Fatalf("expected id 9, got %d", got)
	}
}

func TestMessages_TypesAndValidation(t *testing.T) {
	if (CreateProductMessage{}).Type() != TypeCreateProduct {
		t.Fatalf("unexpected create type")
	}
	if err := (UpdateProductMessage{ID: 0}).Validate(); err == nil {
		t.Fatalf("expected update validation error")
	}
	if err := (UpdateProductMessage{ID: 1}).Validate(); err != nil {
		t.Fatalf("expected valid update message, got %v", err)
	}
	if err := (CreateProductMessage{}).Validate(); err != nil {
		t.Fatalf("create payload is validated by the service, got %v", err)
	}
}
