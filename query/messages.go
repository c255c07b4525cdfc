package query

import "strings"

const (
	TypeListProducts           = "catalog.query.product.list"
	TypeGetProduct             = "catalog.query.product.get"
	TypeListProductsByCategory = "catalog.query.product.list_by_category"
	TypeListCategories         = "catalog.query.category.list"
	TypeListLowStock           = "catalog.query.inventory.low_stock"
)

type ListProductsMessage struct{}

func (ListProductsMessage) Type() string { return TypeListProducts }

func (ListProductsMessage) Validate() error { return nil }

type GetProductMessage struct {
	ID int64
}

func (GetProductMessage) Type() string { return TypeGetProduct }

func (m GetProductMessage) Validate() error {
	if m.ID < 1 {
		return queryValidationError("id", "must be greater than or equal to 1")
	}
	return nil
}

type ListProductsByCategoryMessage struct {
	Name string
}

func (ListProductsByCategoryMessage) Type() string { return TypeListProductsByCategory }

func (m ListProductsByCategoryMessage) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return queryValidationError("name", "must not be blank")
	}
	return nil
}

type ListCategoriesMessage struct{}

func (ListCategoriesMessage) Type() string { return TypeListCategories }

func (ListCategoriesMessage) Validate() error { return nil }

type ListLowStockMessage struct{}

func (ListLowStockMessage) Type() string { return TypeListLowStock }

func (ListLowStockMessage) Validate() error { return nil }
