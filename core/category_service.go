package core

import (
	"context"
	"strings"
)

type CategoryService struct {
	client RemoteClient
	inst   instrumentation
}

func NewCategoryService(client RemoteClient, opts ...Option) (*CategoryService, error) {
	if client == nil {
		return nil, missingClientError("category service")
	}
	return &CategoryService{client: client, inst: buildInstrumentation("catalog.categories", opts)}, nil
}

func (s *CategoryService) ObtainAllCategories(ctx context.Context) ([]CategoryRecord, error) {
	return run(ctx, s.inst, operation{name: "obtain_all_categories"}, nil,
		func(ctx context.Context) ([]CategoryRecord, error) {
			return s.client.ListCategories(ctx)
		})
}

// ObtainProductsByCategory trims the name before the lookup. An unknown
// category is a communication failure, not ResourceNotFound.
func (s *CategoryService) ObtainProductsByCategory(ctx context.Context, name string) ([]ProductRecord, error) {
	trimmed := strings.TrimSpace(name)
	validate := func() error {
		if trimmed == "" {
			return NewValidationError("nombre", "category name is required")
		}
		return nil
	}
	return run(ctx, s.inst, operation{name: "obtain_products_by_category"}, validate,
		func(ctx context.Context) ([]ProductRecord, error) {
			return s.client.ListProductsByCategory(ctx, trimmed)
		})
}
