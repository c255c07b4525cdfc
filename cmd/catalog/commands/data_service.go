package commands

import (
	"github.com/goliatone/go-catalog/dataservice"
	"github.com/spf13/cobra"
)

func dataServiceCmd() *cobra.Command {
	var runtime dataservice.Config
	cmd := &cobra.Command{
		Use:   "data-service",
		Short: "Serve the catalog persistence API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := dataservice.ResolveConfig(ctx, dataservice.NewEnvRawConfigLoader(), runtime)
			if err != nil {
				return err
			}
			logger, err := newLogger(logLevel, logFormat)
			if err != nil {
				return err
			}
			svc, err := dataservice.New(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer svc.Close()
			logger.Info("catalog data service starting", "addr", cfg.Addr, "driver", cfg.Driver)
			return svc.Run(ctx)
		},
	}
	cmd.Flags().StringVar(&runtime.Addr, "addr", "", "listen address (default :8081)")
	cmd.Flags().StringVar(&runtime.Driver, "driver", "", "database driver (sqlite3, postgres)")
	cmd.Flags().StringVar(&runtime.DSN, "dsn", "", "database connection string")
	cmd.Flags().BoolVar(&runtime.Debug, "debug", false, "log SQL queries")
	return cmd
}
