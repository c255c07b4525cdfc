package commands

import (
	"context"
	"encoding/json"
	"io"

	"github.com/goliatone/go-catalog"
	"github.com/goliatone/go-catalog/adapters/gocommand"
	"github.com/goliatone/go-catalog/core"
	catalogquery "github.com/goliatone/go-catalog/query"
	"github.com/spf13/cobra"
)

func productsCmd() *cobra.Command {
	var dataURL string
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Query and change products through the data service",
	}
	cmd.PersistentFlags().StringVar(&dataURL, "data-service-url", "", "data service base url")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List every product",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withDispatcher(cmd, dataURL, func(ctx context.Context) (any, error) {
					return gocommand.Query[catalogquery.ListProductsMessage, []core.ProductRecord](ctx, catalogquery.ListProductsMessage{})
				})
			},
		},
		&cobra.Command{
			Use:   "get ID",
			Short: "Show one product",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseProductID(args[0])
				if err != nil {
					return err
				}
				return withDispatcher(cmd, dataURL, func(ctx context.Context) (any, error) {
					return gocommand.Query[catalogquery.GetProductMessage, core.ProductRecord](ctx, catalogquery.GetProductMessage{ID: id})
				})
			},
		},
		&cobra.Command{
			Use:   "category NAME",
			Short: "List the products of a category",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withDispatcher(cmd, dataURL, func(ctx context.Context) (any, error) {
					return gocommand.Query[catalogquery.ListProductsByCategoryMessage, []core.ProductRecord](ctx,
						catalogquery.ListProductsByCategoryMessage{Name: args[0]})
				})
			},
		},
		&cobra.Command{
			Use:   "low-stock",
			Short: "List inventory below its minimum threshold",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withDispatcher(cmd, dataURL, func(ctx context.Context) (any, error) {
					return gocommand.Query[catalogquery.ListLowStockMessage, []core.InventoryRecord](ctx, catalogquery.ListLowStockMessage{})
				})
			},
		},
	)
	cmd.AddCommand(productMutationCmds(&dataURL)...)
	return cmd
}

func categoriesCmd() *cobra.Command {
	var dataURL string
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List categories through the data service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDispatcher(cmd, dataURL, func(ctx context.Context) (any, error) {
				return gocommand.Query[catalogquery.ListCategoriesMessage, []core.CategoryRecord](ctx, catalogquery.ListCategoriesMessage{})
			})
		},
	}
	cmd.Flags().StringVar(&dataURL, "data-service-url", "", "data service base url")
	return cmd
}

// withDispatcher subscribes the catalog handlers to the go-command
// dispatcher for the duration of run and prints its result as JSON.
func withDispatcher(cmd *cobra.Command, dataURL string, run func(context.Context) (any, error)) error {
	cfg, err := resolveGatewayConfig(cmd, gatewayFlags{dataURL: dataURL})
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	svc, err := catalog.Setup(cfg, catalog.WithLogger(logger))
	if err != nil {
		return err
	}
	facade, err := catalog.NewFacade(svc)
	if err != nil {
		return err
	}
	subs, err := gocommand.RegisterFacade(gocommand.NewRegistryAdapter(nil), facade)
	if err != nil {
		return err
	}
	defer subs.Unsubscribe()

	result, err := run(cmd.Context())
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), result)
}

func printJSON(w io.Writer, value any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}
