package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jask/fintrack/internal/ledger"
)

func (a *App) reportsCommand() *cobra.Command {
	var month, year string
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "Print monthly spending and the category breakdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, y := ledger.CurrentWindow(a.now())
			if month == "" {
				month = m
			}
			if year == "" {
				year = y
			}
			total, err := a.Services.Reports.MonthlySpending(cmd.Context(), month, year)
			if err != nil {
				return err
			}
			breakdown, err := a.Services.Reports.CategoryBreakdown(cmd.Context(), month, year)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Monthly spending for %s/%s: %s %s\n", month, year, total.StringFixed(2), a.Currency)
			fmt.Fprintf(out, "Category breakdown for %s/%s:\n", month, year)
			if len(breakdown) == 0 {
				fmt.Fprintln(out, " (no expenses)")
			}
			for _, ct := range breakdown {
				fmt.Fprintf(out, " - %s: %s %s\n", ct.Category, ct.Total.StringFixed(2), a.Currency)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&month, "month", "", "two-digit month, e.g. 03 (default: current)")
	cmd.Flags().StringVar(&year, "year", "", "four-digit year (default: current)")
	return cmd
}
