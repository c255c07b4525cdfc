package commands

import (
	"github.com/goliatone/go-catalog"
	"github.com/goliatone/go-catalog/adapters/gologger"
	"github.com/goliatone/go-catalog/api"
	"github.com/goliatone/go-catalog/core"
	"github.com/goliatone/go-catalog/inbound"
	"github.com/spf13/cobra"
)

type gatewayFlags struct {
	addr    string
	dataURL string
}

func gatewayCmd() *cobra.Command {
	var flags gatewayFlags
	cmd := &cobra.Command{
		Use:   "gateway",
		Short: "Serve the public catalog API over the data service",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := resolveGatewayConfig(cmd, flags)
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg.Log.Level, cfg.Log.Format)
			if err != nil {
				return err
			}
			provider := gologger.NewProvider(logger)

			svc, err := catalog.Setup(cfg, catalog.WithLoggerProvider(provider))
			if err != nil {
				return err
			}
			facade, err := catalog.NewFacade(svc)
			if err != nil {
				return err
			}
			server, err := api.NewServer(facade, api.WithLogger(provider.GetLogger("catalog.api")))
			if err != nil {
				return err
			}
			logger.Info("catalog gateway starting",
				"service", cfg.ServiceName,
				"addr", cfg.HTTP.Addr,
				"data_service", cfg.DataService.BaseURL,
			)
			return inbound.Serve(ctx, cfg.HTTP.Addr, server, logger, inbound.DefaultShutdownTimeout)
		},
	}
	cmd.Flags().StringVar(&flags.addr, "addr", "", "listen address (default :8080)")
	cmd.Flags().StringVar(&flags.dataURL, "data-service-url", "", "data service base url")
	return cmd
}

func resolveGatewayConfig(cmd *cobra.Command, flags gatewayFlags) (core.Config, error) {
	runtime := core.Config{
		DataService: core.DataServiceConfig{BaseURL: flags.dataURL},
		HTTP:        core.HTTPConfig{Addr: flags.addr},
		Log:         core.LogConfig{Level: logLevel, Format: logFormat},
	}
	return core.ResolveConfig(cmd.Context(), core.NewEnvRawConfigLoader(), runtime)
}
