package core

import (
	"context"
	"errors"
	"testing"

	goerrors "github.com/goliatone/go-errors"
	"github.com/shopspring/decimal"
)

func TestNewService_RequiresClient(t *testing.T) {
	_, err := NewService(nil)
	if err == nil {
		t.Fatalf("expected error for nil client")
	}
	var rich *goerrors.Error
	if !goerrors.As(err, &rich) || rich.Category != goerrors.CategoryInternal {
		t.Fatalf("expected internal go-errors error, got %#v", err)
	}
}

func TestProductService_MutationValidationSkipsRemote(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ProductMutationRequest)
		field  string
	}{
		{name: "negative price", mutate: func(r *ProductMutationRequest) { r.Price = decimal.NewFromInt(-1) }, field: "precio"},
		{name: "zero price", mutate: func(r *ProductMutationRequest) { r.Price = decimal.Zero }, field: "precio"},
		{name: "negative stock", mutate: func(r *ProductMutationRequest) { r.Stock = IntPtr(-1) }, field: "stock"},
		{name: "missing stock", mutate: func(r *ProductMutationRequest) { r.Stock = nil }, field: "stock"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := &stubRemoteClient{}
			svc, err := NewProductService(client)
			if err != nil {
				t.Fatalf("new product service: %v", err)
			}
			req := validMutation()
			tc.mutate(&req)

			_, createErr := svc.CreateProduct(context.Background(), req)
			_, updateErr := svc.UpdateProduct(context.Background(), 1, req)
			for _, err := range []error{createErr, updateErr} {
				if !IsKind(err, KindValidation) {
					t.Fatalf("expected validation error, got %v", err)
				}
				var domainErr *Error
				if !errors.As(err, &domainErr) || domainErr.Field != tc.field {
					t.Fatalf("expected field %q, got %#v", tc.field, domainErr)
				}
				if domainErr.Failure != nil {
					t.Fatalf("validation error must not carry a remote failure")
				}
			}
			if client.callCount() != 0 {
				t.Fatalf("expected no remote calls, got %v", client.calls)
			}
		})
	}
}

func TestProductService_CreateRequiresCategory(t *testing.T) {
	client := &stubRemoteClient{}
	svc, _ := NewProductService(client)
	req := validMutation()
	req.CategoryID = 0

	_, err := svc.CreateProduct(context.Background(), req)
	if !IsKind(err, KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if client.callCount() != 0 {
		t.Fatalf("expected no remote calls")
	}

	// Update keeps the current category when none is given.
	if _, err := svc.UpdateProduct(context.Background(), 1, req); err != nil {
		t.Fatalf("update without category: %v", err)
	}
	if client.callCount() != 1 {
		t.Fatalf("expected one remote call, got %d", client.callCount())
	}
}

func TestProductService_ObtainProductPassesPayloadThrough(t *testing.T) {
	want := ProductRecord{
		ID:           1,
		Name:         "Mate",
		Price:        decimal.RequireFromString("100.0"),
		CategoryName: "Bazar",
		Stock:        5,
	}
	client := &stubRemoteClient{
		getProduct: func(_ context.Context, id int64) (ProductRecord, error) {
			if id != 1 {
				t.Fatalf("unexpected id %d", id)
			}
			return want, nil
		},
	}
	svc, _ := NewProductService(client)

	got, err := svc.ObtainProduct(context.Background(), 1)
	if err != nil {
		t.Fatalf("obtain product: %v", err)
	}
	if got.ID != want.ID || got.Name != want.Name || !got.Price.Equal(want.Price) || got.CategoryName != "Bazar" || got.Stock != 5 || got.LowStock {
		t.Fatalf("unexpected record %#v", got)
	}
}

func TestProductService_KeyedNotFoundBecomesResourceNotFound(t *testing.T) {
	notFound := &Failure{Kind: FailureNotFound, StatusCode: 404}
	client := &stubRemoteClient{
		getProduct: func(context.Context, int64) (ProductRecord, error) { return ProductRecord{}, notFound },
		updateProduct: func(context.Context, int64, ProductMutationRequest) (ProductRecord, error) {
			return ProductRecord{}, notFound
		},
		deleteProduct: func(context.Context, int64) error { return notFound },
	}
	svc, _ := NewProductService(client)

	_, getErr := svc.ObtainProduct(context.Background(), 999)
	_, updateErr := svc.UpdateProduct(context.Background(), 999, validMutation())
	deleteErr := svc.DeleteProduct(context.Background(), 9)

	for name, err := range map[string]error{"get": getErr, "update": updateErr, "delete": deleteErr} {
		if !IsKind(err, KindResourceNotFound) {
			t.Fatalf("%s: expected resource not found, got %v", name, err)
		}
		var failure *Failure
		if !errors.As(err, &failure) || failure.Kind != FailureNotFound {
			t.Fatalf("%s: expected wrapped not found failure", name)
		}
	}
	var domainErr *Error
	errors.As(deleteErr, &domainErr)
	if domainErr.Key != "9" || domainErr.Resource != "product" {
		t.Fatalf("unexpected not found identity %#v", domainErr)
	}
}

func TestProductService_TransportFailuresBecomeCommunicationFailure(t *testing.T) {
	cases := []struct {
		name    string
		failure error
	}{
		{name: "service unavailable", failure: &Failure{Kind: FailureServiceUnavailable, StatusCode: 503}},
		{name: "timeout", failure: &Failure{Kind: FailureCommunication, Timeout: true}},
		{name: "client rejected", failure: &Failure{Kind: FailureClientRejected, StatusCode: 409}},
		{name: "generic", failure: &Failure{Kind: FailureGenericTransport, StatusCode: 500}},
		{name: "malformed", failure: &Failure{Kind: FailureMalformedResponse, StatusCode: 200}},
		{name: "undecoded", failure: errors.New("boom")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := &stubRemoteClient{
				getProduct: func(context.Context, int64) (ProductRecord, error) { return ProductRecord{}, tc.failure },
				createProduct: func(context.Context, ProductMutationRequest) (ProductRecord, error) {
					return ProductRecord{}, tc.failure
				},
			}
			svc, _ := NewProductService(client)
			_, getErr := svc.ObtainProduct(context.Background(), 2)
			_, createErr := svc.CreateProduct(context.Background(), validMutation())
			for _, err := range []error{getErr, createErr} {
				if !IsKind(err, KindCommunicationFailure) {
					t.Fatalf("expected communication failure, got %v", err)
				}
				var failure *Failure
				if !errors.As(err, &failure) {
					t.Fatalf("expected wrapped failure")
				}
			}
		})
	}
}

func TestCollectionOperations_NeverReportResourceNotFound(t *testing.T) {
	notFound := &Failure{Kind: FailureNotFound, StatusCode: 404}
	client := &stubRemoteClient{
		listProducts: func(context.Context) ([]ProductRecord, error) { return nil, notFound },
		listProductsByCategory: func(context.Context, string) ([]ProductRecord, error) {
			return nil, notFound
		},
		listCategories: func(context.Context) ([]CategoryRecord, error) { return nil, notFound },
		listLowStock:   func(context.Context) ([]InventoryRecord, error) { return nil, notFound },
	}
	svc, err := NewService(client)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	ctx := context.Background()

	_, productsErr := svc.Products.ObtainAllProducts(ctx)
	_, byCategoryErr := svc.Categories.ObtainProductsByCategory(ctx, "Bazar")
	_, categoriesErr := svc.Categories.ObtainAllCategories(ctx)
	_, lowStockErr := svc.Inventory.ObtainLowStockProducts(ctx)

	for _, err := range []error{productsErr, byCategoryErr, categoriesErr, lowStockErr} {
		if !IsKind(err, KindCommunicationFailure) {
			t.Fatalf("expected communication failure, got %v", err)
		}
	}
}

func TestCategoryService_TrimsAndValidatesName(t *testing.T) {
	var gotName string
	client := &stubRemoteClient{
		listProductsByCategory: func(_ context.Context, name string) ([]ProductRecord, error) {
			gotName = name
			return []ProductRecord{{ID: 1, Name: "Mate", CategoryName: "Bazar"}}, nil
		},
	}
	svc, _ := NewCategoryService(client)

	if _, err := svc.ObtainProductsByCategory(context.Background(), "   "); !IsKind(err, KindValidation) {
		t.Fatalf("expected validation error for blank name, got %v", err)
	}
	if client.callCount() != 0 {
		t.Fatalf("expected no remote call for blank name")
	}

	products, err := svc.ObtainProductsByCategory(context.Background(), "  Bazar ")
	if err != nil {
		t.Fatalf("obtain by category: %v", err)
	}
	if gotName != "Bazar" {
		t.Fatalf("expected trimmed name, got %q", gotName)
	}
	if len(products) != 1 {
		t.Fatalf("expected one product, got %d", len(products))
	}
}

func TestInventoryService_PassesRecordsThrough(t *testing.T) {
	client := &stubRemoteClient{
		listLowStock: func(context.Context) ([]InventoryRecord, error) {
			return []InventoryRecord{{ProductID: 4, Quantity: 1, MinimumThreshold: 5}}, nil
		},
	}
	svc, _ := NewInventoryService(client)
	records, err := svc.ObtainLowStockProducts(context.Background())
	if err != nil {
		t.Fatalf("obtain low stock: %v", err)
	}
	if len(records) != 1 || records[0].ProductID != 4 {
		t.Fatalf("unexpected records %#v", records)
	}
	if client.callCount() != 1 {
		t.Fatalf("expected exactly one remote call, got %d", client.callCount())
	}
}
