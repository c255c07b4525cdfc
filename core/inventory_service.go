package core

import "context"

type InventoryService struct {
	client RemoteClient
	inst   instrumentation
}

func NewInventoryService(client RemoteClient, opts ...Option) (*InventoryService, error) {
	if client == nil {
		return nil, missingClientError("inventory service")
	}
	return &InventoryService{client: client, inst: buildInstrumentation("catalog.inventory", opts)}, nil
}

func (s *InventoryService) ObtainLowStockProducts(ctx context.Context) ([]InventoryRecord, error) {
	return run(ctx, s.inst, operation{name: "obtain_low_stock_products"}, nil,
		func(ctx context.Context) ([]InventoryRecord, error) {
			return s.client.ListLowStock(ctx)
		})
}
