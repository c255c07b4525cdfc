package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/goliatone/go-catalog/adapters/gocommand"
	catalogcommand "github.com/goliatone/go-catalog/command"
	"github.com/goliatone/go-catalog/core"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type productFlags struct {
	name        string
	description string
	price       string
	categoryID  int64
	stock       int
}

func (f *productFlags) bind(flags *pflag.FlagSet) {
	flags.StringVar(&f.name, "name", "", "product name")
	flags.StringVar(&f.description, "description", "", "product description")
	flags.StringVar(&f.price, "price", "", "unit price, must be positive")
	flags.Int64Var(&f.categoryID, "category-id", 0, "category id")
	flags.IntVar(&f.stock, "stock", 0, "units in stock")
}

// request leaves Stock nil when --stock was not given so the product
// service reports the missing field.
func (f *productFlags) request(flags *pflag.FlagSet) (core.ProductMutationRequest, error) {
	req := core.ProductMutationRequest{
		Name:        f.name,
		Description: f.description,
		CategoryID:  f.categoryID,
	}
	if f.price != "" {
		price, err := decimal.NewFromString(f.price)
		if err != nil {
			return req, fmt.Errorf("price must be a decimal: %w", err)
		}
		req.Price = price
	}
	if flags.Changed("stock") {
		req.Stock = core.IntPtr(f.stock)
	}
	return req, nil
}

func productMutationCmds(dataURL *string) []*cobra.Command {
	var createFlags productFlags
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := createFlags.request(cmd.Flags())
			if err != nil {
				return err
			}
			return withDispatcher(cmd, *dataURL, func(ctx context.Context) (any, error) {
				return gocommand.DispatchProduct(ctx, catalogcommand.CreateProductMessage{Request: req})
			})
		},
	}
	createFlags.bind(create.Flags())

	var updateFlags productFlags
	update := &cobra.Command{
		Use:   "update ID",
		Short: "Replace a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseProductID(args[0])
			if err != nil {
				return err
			}
			req, err := updateFlags.request(cmd.Flags())
			if err != nil {
				return err
			}
			return withDispatcher(cmd, *dataURL, func(ctx context.Context) (any, error) {
				return gocommand.DispatchProduct(ctx, catalogcommand.UpdateProductMessage{ID: id, Request: req})
			})
		},
	}
	updateFlags.bind(update.Flags())

	remove := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseProductID(args[0])
			if err != nil {
				return err
			}
			return withDispatcher(cmd, *dataURL, func(ctx context.Context) (any, error) {
				if err := gocommand.Dispatch(ctx, catalogcommand.DeleteProductMessage{ID: id}); err != nil {
					return nil, err
				}
				return map[string]int64{"deleted": id}, nil
			})
		},
	}

	return []*cobra.Command{create, update, remove}
}

func parseProductID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("product id must be an integer: %w", err)
	}
	return id, nil
}
