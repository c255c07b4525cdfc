package command

import gocmd "github.com/goliatone/go-command"

var (
	_ gocmd.Commander[CreateProductMessage] = (*CreateProductCommand)(nil)
	_ gocmd.Commander[UpdateProductMessage] = (*UpdateProductCommand)(nil)
	_ gocmd.Commander[DeleteProductMessage] = (*DeleteProductCommand)(nil)
)
