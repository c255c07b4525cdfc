package core

import "context"

const productResource = "product"

type ProductService struct {
	client RemoteClient
	inst   instrumentation
}

func NewProductService(client RemoteClient, opts ...Option) (*ProductService, error) {
	if client == nil {
		return nil, missingClientError("product service")
	}
	return &ProductService{client: client, inst: buildInstrumentation("catalog.products", opts)}, nil
}

func (s *ProductService) ObtainAllProducts(ctx context.Context) ([]ProductRecord, error) {
	return run(ctx, s.inst, operation{name: "obtain_all_products"}, nil,
		func(ctx context.Context) ([]ProductRecord, error) {
			return s.client.ListProducts(ctx)
		})
}

func (s *ProductService) ObtainProduct(ctx context.Context, id int64) (ProductRecord, error) {
	return run(ctx, s.inst, keyed("obtain_product", productResource, id), nil,
		func(ctx context.Context) (ProductRecord, error) {
			return s.client.GetProduct(ctx, id)
		})
}

func (s *ProductService) CreateProduct(ctx context.Context, req ProductMutationRequest) (ProductRecord, error) {
	validate := func() error {
		if err := validateMutation(req); err != nil {
			return err
		}
		if req.CategoryID <= 0 {
			return NewValidationError("categoriaId", "category is required")
		}
		return nil
	}
	return run(ctx, s.inst, operation{name: "create_product", resource: productResource}, validate,
		func(ctx context.Context) (ProductRecord, error) {
			return s.client.CreateProduct(ctx, req)
		})
}

func (s *ProductService) UpdateProduct(ctx context.Context, id int64, req ProductMutationRequest) (ProductRecord, error) {
	return run(ctx, s.inst, keyed("update_product", productResource, id),
		func() error { return validateMutation(req) },
		func(ctx context.Context) (ProductRecord, error) {
			return s.client.UpdateProduct(ctx, id, req)
		})
}

// DeleteProduct reports ResourceNotFound when the product is already gone.
func (s *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	_, err := run(ctx, s.inst, keyed("delete_product", productResource, id), nil,
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.client.DeleteProduct(ctx, id)
		})
	return err
}

func validateMutation(req ProductMutationRequest) error {
	if req.Price.Sign() <= 0 {
		return NewValidationError("precio", "price must be greater than zero")
	}
	if req.Stock == nil {
		return NewValidationError("stock", "stock is required")
	}
	if *req.Stock < 0 {
		return NewValidationError("stock", "stock must not be negative")
	}
	return nil
}
