package query

import (
	"context"

	"github.com/goliatone/go-catalog/core"
)

type ListProductsQuery struct {
	reader core.ProductReader
}

func NewListProductsQuery(reader core.ProductReader) *ListProductsQuery {
	return &ListProductsQuery{reader: reader}
}

func (q *ListProductsQuery) Query(ctx context.Context, _ ListProductsMessage) ([]core.ProductRecord, error) {
	if q == nil || q.reader == nil {
		return nil, queryDependencyError("query: product reader is required")
	}
	return q.reader.ObtainAllProducts(ctx)
}

type GetProductQuery struct {
	reader core.ProductReader
}

func NewGetProductQuery(reader core.ProductReader) *GetProductQuery {
	return &GetProductQuery{reader: reader}
}

func (q *GetProductQuery) Query(ctx context.Context, msg GetProductMessage) (core.ProductRecord, error) {
	if q == nil || q.reader == nil {
		return core.ProductRecord{}, queryDependencyError("query: product reader is required")
	}
	return q.reader.ObtainProduct(ctx, msg.ID)
}

type ListProductsByCategoryQuery struct {
	reader core.CategoryReader
}

func NewListProductsByCategoryQuery(reader core.CategoryReader) *ListProductsByCategoryQuery {
	return &ListProductsByCategoryQuery{reader: reader}
}

func (q *ListProductsByCategoryQuery) Query(
	ctx context.Context,
	msg ListProductsByCategoryMessage,
) ([]core.ProductRecord, error) {
	if q == nil || q.reader == nil {
		return nil, queryDependencyError("query: category reader is required")
	}
	return q.reader.ObtainProductsByCategory(ctx, msg.Name)
}

type ListCategoriesQuery struct {
	reader core.CategoryReader
}

func NewListCategoriesQuery(reader core.CategoryReader) *ListCategoriesQuery {
	return &ListCategoriesQuery{reader: reader}
}

func (q *ListCategoriesQuery) Query(ctx context.Context, _ ListCategoriesMessage) ([]core.CategoryRecord, error) {
	if q == nil || q.reader == nil {
		return nil, queryDependencyError("query: category reader is required")
	}
	return q.reader.ObtainAllCategories(ctx)
}

type ListLowStockQuery struct {
	reader core.InventoryReader
}

func NewListLowStockQuery(reader core.InventoryReader) *ListLowStockQuery {
	return &ListLowStockQuery{reader: reader}
}

func (q *ListLowStockQuery) Query(ctx context.Context, _ ListLowStockMessage) ([]core.InventoryRecord, error) {
	if q == nil || q.reader == nil {
		return nil, queryDependencyError("query: inventory reader is required")
	}
	return q.reader.ObtainLowStockProducts(ctx)
}
