package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"willowpack/estimator/internal/domain/quote"
)

func newQuoteNumberCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quote-number",
		Short: "Print a new quote number",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := quote.NewNumberGenerator().NewNumber()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
}
