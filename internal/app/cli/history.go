package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"willowpack/estimator/internal/domain/pricing"
	"willowpack/estimator/internal/domain/quote"
	"willowpack/estimator/internal/domain/quote/export"
)

func newHistoryCmd() *cobra.Command {
	var historyFile string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List, search, delete and export stored quotes",
	}
	cmd.PersistentFlags().StringVar(&historyFile, "file", "", "History file (overrides HISTORY_FILE and DATABASE_URL)")

	cmd.AddCommand(
		newHistoryListCmd(&historyFile),
		newHistoryDeleteCmd(&historyFile),
		newHistoryExportCmd(&historyFile),
		newHistoryPDFCmd(&historyFile),
	)
	return cmd
}

func newHistoryListCmd(historyFile *string) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored quotes",
		Example: `  estimator history list
  estimator history list --search acme`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), *historyFile)
			if err != nil {
				return err
			}
			defer a.Close()

			records, err := a.Quotes.History(cmd.Context(), search)
			if err != nil {
				return err
			}
			return printHistory(cmd, records)
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "Filter by customer, company or quote number")
	return cmd
}

func printHistory(cmd *cobra.Command, records []quote.StoredQuote) error {
	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No quotes found")
		return nil
	}
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NUMBER\tDATE\tCUSTOMER\tCOMPANY\tPRODUCT\tITEMS\tTOTAL")
	for _, r := range records {
		q := r.Quote()
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
			r.QuoteNumber, r.Date, r.CustomerDetails.Name, r.CustomerDetails.CompanyName,
			r.ProductType(), len(r.OrderItems), pricing.FormatMoney(q.Currency(), q.Total()))
	}
	return tw.Flush()
}

func newHistoryDeleteCmd(historyFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <quote-number>",
		Short: "Delete a stored quote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), *historyFile)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.Quotes.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}
}

func newHistoryExportCmd(historyFile *string) *cobra.Command {
	var (
		format string
		output string
		search string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the history as JSON or parquet",
		Example: `  estimator history export -o history.json
  estimator history export --format parquet -o history.parquet`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "json" && format != "parquet" {
				return fmt.Errorf("--format must be json or parquet, got %q", format)
			}
			a, err := openApp(cmd.Context(), *historyFile)
			if err != nil {
				return err
			}
			defer a.Close()

			records, err := a.Quotes.History(cmd.Context(), search)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if output != "" && output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			if format == "parquet" {
				err = export.HistoryParquet(w, records)
			} else {
				err = export.HistoryJSON(w, records)
			}
			if err != nil {
				return err
			}
			if output != "" && output != "-" {
				fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d quotes to %s\n", len(records), output)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json or parquet")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (stdout when empty)")
	cmd.Flags().StringVarP(&search, "search", "s", "", "Only export matching quotes")
	return cmd
}

func newHistoryPDFCmd(historyFile *string) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "pdf <quote-number>",
		Short: "Render a stored quote as PDF again and record the re-export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), *historyFile)
			if err != nil {
				return err
			}
			defer a.Close()

			q, data, err := a.Quotes.Reexport(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if output == "" {
				output = q.FileName()
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (defaults to quote_<number>.pdf)")
	return cmd
}
