package command

import "github.com/goliatone/go-catalog/core"

const (
	TypeCreateProduct = "catalog.command.product.create"
	TypeUpdateProduct = "catalog.command.product.update"
	TypeDeleteProduct = "catalog.command.product.delete"
)

type CreateProductMessage struct {
	Request core.ProductMutationRequest
}

func (CreateProductMessage) Type() string { return TypeCreateProduct }

// Validate is a no-op: business rules on the payload belong to the product
// service.
func (CreateProductMessage) Validate() error { return nil }

type UpdateProductMessage struct {
	ID      int64
	Request core.ProductMutationRequest
}

func (UpdateProductMessage) Type() string { return TypeUpdateProduct }

func (m UpdateProductMessage) Validate() error {
	return validateID(m.ID)
}

type DeleteProductMessage struct {
	ID int64
}

func (DeleteProductMessage) Type() string { return TypeDeleteProduct }

func (m DeleteProductMessage) Validate() error {
	return validateID(m.ID)
}

func validateID(id int64) error {
	if id < 1 {
		return commandValidationError("id", "must be greater than or equal to 1")
	}
	return nil
}
