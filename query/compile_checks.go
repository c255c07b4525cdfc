package query

import (
	"github.com/goliatone/go-catalog/core"
	gocmd "github.com/goliatone/go-command"
)

var (
	_ gocmd.Querier[ListProductsMessage, []core.ProductRecord]           = (*ListProductsQuery)(nil)
	_ gocmd.Querier[GetProductMessage, core.ProductRecord]               = (*GetProductQuery)(nil)
	_ gocmd.Querier[ListProductsByCategoryMessage, []core.ProductRecord] = (*ListProductsByCategoryQuery)(nil)
	_ gocmd.Querier[ListCategoriesMessage, []core.CategoryRecord]        = (*ListCategoriesQuery)(nil)
	_ gocmd.Querier[ListLowStockMessage, []core.InventoryRecord]         = (*ListLowStockQuery)(nil)
)
