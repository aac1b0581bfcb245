package cli

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"willowpack/estimator/internal/app"
	"willowpack/estimator/internal/app/config"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimator",
		Short: "Print and packaging quote estimator",
		Long: `Estimator builds print and packaging quotes: order summaries, quote and
specification sheet PDFs, price lists, and a searchable quote history.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// .env is optional
			_ = godotenv.Load()
		},
		SilenceUsage: true,
	}

	cmd.AddCommand(
		newServeCmd(),
		newQuoteNumberCmd(),
		newHistoryCmd(),
	)
	return cmd
}

// openApp loads the configuration and builds the application. Flags override
// the matching environment variables.
func openApp(ctx context.Context, historyFile string) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if historyFile != "" {
		cfg.HistoryFile = historyFile
		cfg.DatabaseURL = ""
	}
	return app.New(ctx, cfg)
}
