package command

import (
	"context"

	"github.com/goliatone/go-catalog/core"
	gocmd "github.com/goliatone/go-command"
)

type CreateProductCommand struct {
	service core.ProductWriter
}

func NewCreateProductCommand(service core.ProductWriter) *CreateProductCommand {
	return &CreateProductCommand{service: service}
}

func (c *CreateProductCommand) Execute(ctx context.Context, msg CreateProductMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: product writer is required")
	}
	out, err := c.service.CreateProduct(ctx, msg.Request)
	if err != nil {
		return err
	}
	storeResult(ctx, out)
	return nil
}

type UpdateProductCommand struct {
	service core.ProductWriter
}

func NewUpdateProductCommand(service core.ProductWriter) *UpdateProductCommand {
	return &UpdateProductCommand{service: service}
}

func (c *UpdateProductCommand) Execute(ctx context.Context, msg UpdateProductMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: product writer is required")
	}
	out, err := c.service.UpdateProduct(ctx, msg.ID, msg.Request)
	if err != nil {
		return err
	}
	storeResult(ctx, out)
	return nil
}

type DeleteProductCommand struct {
	service core.ProductWriter
}

func NewDeleteProductCommand(service core.ProductWriter) *DeleteProductCommand {
	return &DeleteProductCommand{service: service}
}

func (c *DeleteProductCommand) Execute(ctx context.Context, msg DeleteProductMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: product writer is required")
	}
	return c.service.DeleteProduct(ctx, msg.ID)
}

func storeResult[T any](ctx context.Context, value T) {
	collector := gocmd.ResultFromContext[T](ctx)
	if collector == nil {
		return
	}
	collector.Store(value)
}
