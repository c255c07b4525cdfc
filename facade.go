package catalog

import (
	catalogcommand "github.com/goliatone/go-catalog/command"
	"github.com/goliatone/go-catalog/core"
	catalogquery "github.com/goliatone/go-catalog/query"
	goerrors "github.com/goliatone/go-errors"
)

type Commands struct {
	CreateProduct *catalogcommand.CreateProductCommand
	UpdateProduct *catalogcommand.UpdateProductCommand
	DeleteProduct *catalogcommand.DeleteProductCommand
}

type Queries struct {
	ListProducts           *catalogquery.ListProductsQuery
	GetProduct             *catalogquery.GetProductQuery
	ListProductsByCategory *catalogquery.ListProductsByCategoryQuery
	ListCategories         *catalogquery.ListCategoriesQuery
	ListLowStock           *catalogquery.ListLowStockQuery
}

// Facade exposes the orchestration services as go-command handlers.
type Facade struct {
	service  *core.Service
	commands Commands
	queries  Queries
}

func NewFacade(service *core.Service) (*Facade, error) {
	if service == nil || service.Products == nil || service.Categories == nil || service.Inventory == nil {
		return nil, goerrors.New("orchestration service is required", goerrors.CategoryInternal).
			WithTextCode(core.ErrorInternal)
	}

	facade := &Facade{service: service}
	facade.commands = Commands{
		CreateProduct: catalogcommand.NewCreateProductCommand(service.Products),
		UpdateProduct: catalogcommand.NewUpdateProductCommand(service.Products),
		DeleteProduct: catalogcommand.NewDeleteProductCommand(service.Products),
	}
	facade.queries = Queries{
		ListProducts:           catalogquery.NewListProductsQuery(service.Products),
		GetProduct:             catalogquery.NewGetProductQuery(service.Products),
		ListProductsByCategory: catalogquery.NewListProductsByCategoryQuery(service.Categories),
		ListCategories:         catalogquery.NewListCategoriesQuery(service.Categories),
		ListLowStock:           catalogquery.NewListLowStockQuery(service.Inventory),
	}
	return facade, nil
}

func (f *Facade) Commands() Commands {
	if f == nil {
		return Commands{}
	}
	return f.commands
}

func (f *Facade) Queries() Queries {
	if f == nil {
		return Queries{}
	}
	return f.queries
}

func (f *Facade) Service() *core.Service {
	if f == nil {
		return nil
	}
	return f.service
}
