package query

import (
	"context"
	"testing"

	"github.com/goliatone/go-catalog/core"
)

type stubReader struct {
	listProductsFn   func(context.Context) ([]core.ProductRecord, error)
	getProductFn     func(context.Context, int64) (core.ProductRecord, error)
	byCategoryFn     func(context.Context, string) ([]core.ProductRecord, error)
	listCategoriesFn func(context.Context) ([]core.CategoryRecord, error)
	lowStockFn       func(context.Context) ([]core.InventoryRecord, error)
}

func (s stubReader) ObtainAllProducts(ctx context.Context) ([]core.ProductRecord, error) {
	return s.listProductsFn(ctx)
}

func (s stubReader) ObtainProduct(ctx context.Context, id int64) (core.ProductRecord, error) {
	return s.getProductFn(ctx, id)
}

func (s stubReader) ObtainProductsByCategory(ctx context.Context, name string) ([]core.ProductRecord, error) {
	return s.byCategoryFn(ctx, name)
}

func (s stubReader) ObtainAllCategories(ctx context.Context) ([]core.CategoryRecord, error) {
	return s.listCategoriesFn(ctx)
}

func (s stubReader) ObtainLowStockProducts(ctx context.Context) ([]core.InventoryRecord, error) {
	return s.lowStockFn(ctx)
}

func TestProductQueries_Delegate(t *testing.T) {
	reader := stubReader{
		listProductsFn: func(context.Context) ([]core.ProductRecord, error) {
			return []core.ProductRecord{{ID: 1}, {ID: 2}}, nil
		},
		getProductFn: func(_ context.Context, id int64) (core.ProductRecord, error) {
			return core.ProductRecord{ID: id, Name: "Mate"}, nil
		},
	}

	products, err := NewListProductsQuery(reader).Query(context.Background(), ListProductsMessage{})
	if err != nil {
		t.Fatalf("list products: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected two products, got %d", len(products))
	}

	product, err := NewGetProductQuery(reader).Query(context.Background(), GetProductMessage{ID: 7})
	if err != nil {
		t.Fatalf("get product: %v", err)
	}
	if product.ID != 7 || product.Name != "Mate" {
		t.Fatalf("unexpected product %#v", product)
	}
}

func TestCategoryAndInventoryQueries_Delegate(t *testing.T) {
	reader := stubReader{
		byCategoryFn: func(_ context.Context, name string) ([]core.ProductRecord, error) {
			if name != "Bazar" {
				t.Fatalf("unexpected category %q", name)
			}
			return []core.ProductRecord{{ID: 1, CategoryName: "Bazar"}}, nil
		},
		listCategoriesFn: func(context.Context) ([]core.CategoryRecord, error) {
			return []core.CategoryRecord{{ID: 1, Name: "General"}}, nil
		},
		lowStockFn: func(context.Context) ([]core.InventoryRecord, error) {
			return nil, core.NewCommunicationFailure(&core.Failure{Kind: core.FailureServiceUnavailable})
		},
	}

	products, err := NewListProductsByCategoryQuery(reader).Query(context.Background(), ListProductsByCategoryMessage{Name: "Bazar"})
	if err != nil || len(products) != 1 {
		t.Fatalf("unexpected by-category result %#v %v", products, err)
	}
	categories, err := NewListCategoriesQuery(reader).Query(context.Background(), ListCategoriesMessage{})
	if err != nil || len(categories) != 1 || categories[0].Name != "General" {
		t.Fatalf("unexpected categories %#v %v", categories, err)
	}
	if _, err := NewListLowStockQuery(reader).Query(context.Background(), ListLowStockMessage{}); !core.IsKind(err, core.KindCommunicationFailure) {
		t.Fatalf("expected communication failure to pass through, got %v", err)
	}
}
