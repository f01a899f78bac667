package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jask/fintrack/internal/apperrors"
	"github.com/jask/fintrack/internal/service"
)

func (a *App) addCommand() *cobra.Command {
	var amount, category, description, date string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction (negative amounts are expenses)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			amt, err := decimal.NewFromString(strings.TrimSpace(amount))
			if err != nil {
				return apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("invalid amount %q", amount))
			}
			t, err := a.Services.Transactions.Add(cmd.Context(), service.AddTransactionInput{
				Amount:      amt,
				Category:    category,
				Description: description,
				Date:        date,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved: %s in '%s' on %s\n", t.Amount.StringFixed(2), t.CategoryLabel(), t.Date)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&amount, "amount", "a", "", "amount; negative for expenses")
	f.StringVarP(&category, "category", "c", "", "category")
	f.StringVarP(&description, "description", "d", "", "description")
	f.StringVarP(&date, "date", "D", "", "date as MM/DD/YYYY (default: today)")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func (a *App) importCommand() *cobra.Command {
	var file, kind string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import transactions from a CSV file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !strings.EqualFold(kind, "csv") {
				return apperrors.WithMessage(apperrors.ErrInvalidInput, "only CSV import is supported")
			}
			f, err := os.Open(file)
			if err != nil {
				return apperrors.Wrap(apperrors.ErrInvalidInput, err)
			}
			defer f.Close()

			res, err := a.Services.Ingest.ImportCSV(cmd.Context(), f)
			out := cmd.OutOrStdout()
			for _, e := range res.Errors {
				fmt.Fprintf(out, "skipped: %v\n", e)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Import completed. %d imported, %d skipped.\n", res.Imported, res.Skipped)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "path to the file")
	cmd.Flags().StringVarP(&kind, "type", "t", "csv", "file type")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func (a *App) searchCommand() *cobra.Command {
	var keyword string
	cmd := &cobra.Command{
		Use:   "search",
		Short: "List transactions whose category contains a keyword",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			txs, err := a.Services.Transactions.Search(cmd.Context(), keyword)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(txs) == 0 {
				fmt.Fprintln(out, "No transactions found.")
				return nil
			}
			for _, t := range txs {
				fmt.Fprintf(out, "%d | %s | %s | %s | %s\n",
					t.ID, t.Amount.StringFixed(2), t.CategoryLabel(), t.DescriptionText(), t.Date)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&keyword, "keyword", "k", "", "category keyword (default: all)")
	return cmd
}
