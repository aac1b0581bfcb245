package cli

import (
	"github.com/spf13/cobra"

	"willowpack/estimator/internal/app"
	"willowpack/estimator/internal/app/config"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the estimator HTTP API",
		Example: `  # Listen on the address from HTTP_ADDR (default :8080)
  estimator serve

  # Listen on a custom address
  estimator serve --addr :3000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.HTTPAddr = addr
			}
			return app.Run(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides HTTP_ADDR)")
	return cmd
}
