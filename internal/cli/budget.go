package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jask/fintrack/internal/apperrors"
	"github.com/jask/fintrack/internal/ledger"
	"github.com/jask/fintrack/internal/service"
)

const checkSeparator = "----------------------"

// budgetCommand sets a budget when given a category and a limit, checks one
// category when given only the category, and checks every budget otherwise.
func (a *App) budgetCommand() *cobra.Command {
	var category, limit string
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Set or check per-category budgets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			svc := a.Services.Budgets
			switch {
			case limit != "" && category == "":
				return apperrors.WithMessage(apperrors.ErrInvalidInput, "--limit requires --category")
			case limit != "":
				l, err := decimal.NewFromString(limit)
				if err != nil {
					return apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("invalid limit %q", limit))
				}
				if err := svc.SetBudget(cmd.Context(), category, l); err != nil {
					return err
				}
				fmt.Fprintf(out, "Budget added: %s → %s %s\n", category, l.StringFixed(2), a.Currency)
				return nil
			case category != "":
				check, err := svc.CheckBudget(cmd.Context(), category)
				if errors.Is(err, apperrors.ErrBudgetNotFound) {
					fmt.Fprintf(out, "No budget configured for '%s'.\n", category)
					if s, ok := svc.Suggest(cmd.Context(), category); ok {
						fmt.Fprintf(out, "Did you mean '%s'?\n", s)
					}
					return nil
				}
				if err != nil {
					return err
				}
				a.printCheck(out, check)
				return nil
			default:
				report, err := svc.CheckAll(cmd.Context())
				if err != nil {
					return err
				}
				if len(report.Checks)+len(report.Failures) == 0 {
					fmt.Fprintln(out, "No budgets configured.")
					return nil
				}
				for _, check := range report.Checks {
					a.printCheck(out, check)
					fmt.Fprintln(out, checkSeparator)
				}
				for _, f := range report.Failures {
					fmt.Fprintf(out, "Category: %s\nCheck failed: %v\n%s\n", f.Category, f.Err, checkSeparator)
				}
				return nil
			}
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "budget category")
	cmd.Flags().StringVarP(&limit, "limit", "l", "", "monthly limit; sets the budget")
	return cmd
}

func (a *App) printCheck(w io.Writer, c service.BudgetCheck) {
	fmt.Fprintf(w, "Category: %s\n", c.Category)
	fmt.Fprintf(w, "Spent: %s %s\n", c.Spent.StringFixed(2), a.Currency)
	fmt.Fprintf(w, "Limit: %s %s\n", c.Limit.StringFixed(2), a.Currency)
	switch c.Status {
	case ledger.Exceeded:
		fmt.Fprintln(w, "⚠️ ALERT: Budget exceeded!")
	case ledger.Warning:
		fmt.Fprintln(w, "Warning: You reached 80% of your budget.")
	default:
		fmt.Fprintln(w, "✓ You are within the budget.")
	}
}
