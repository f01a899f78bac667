// Package cli is the command layer: one cobra command per user-facing
// operation, each printing its result to the command's output stream.
package cli

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/fintrack/internal/apperrors"
	"github.com/jask/fintrack/internal/config"
	"github.com/jask/fintrack/internal/service"
	"github.com/jask/fintrack/internal/testdata"
)

// Services are the handles the commands drive.
type Services struct {
	Categorizer  *service.CategorizerService
	Budgets      *service.BudgetService
	Reports      *service.ReportService
	Transactions *service.TransactionService
	Ingest       *service.IngestService
}

// App builds the command tree.
type App struct {
	Services Services
	Config   config.Config
	// Samples is where the seed command writes.
	Samples  testdata.Stores
	Currency string
	Now      func() time.Time
	// Dashboard runs the interactive dashboard until the user quits.
	Dashboard func(ctx context.Context) error
	Log       *zap.Logger
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) log() *zap.Logger {
	if a.Log == nil {
		return zap.NewNop()
	}
	return a.Log
}

// Command returns the root command with every subcommand attached.
func (a *App) Command() *cobra.Command {
	root := &cobra.Command{
		Use:           "fintrack",
		Short:         "Track income and expenses from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.log().Debug("command", zap.String("name", cmd.Name()))
		},
	}
	root.AddCommand(
		a.categorizeCommand(),
		a.budgetCommand(),
		a.reportsCommand(),
		a.addCommand(),
		a.importCommand(),
		a.searchCommand(),
		a.tuiCommand(),
		a.configCommand(),
		a.seedCommand(),
	)
	return root
}

func (a *App) categorizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categorize",
		Short: "Assign categories to uncategorized transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.Services.Categorizer.Categorize(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Categorization complete. %d transactions updated.\n", res.Updated)
			return nil
		},
	}
}

func (a *App) tuiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.Dashboard(cmd.Context())
		},
	}
}

func (a *App) configCommand() *cobra.Command {
	var save bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			c := a.Config
			fmt.Fprintf(out, "database.path = %s\n", c.Database.Path)
			fmt.Fprintf(out, "ui.currency_symbol = %s\n", c.UI.CurrencySymbol)
			fmt.Fprintf(out, "ui.tick_interval = %s\n", c.UI.TickInterval)
			fmt.Fprintf(out, "ui.timezone = %s\n", c.UI.Timezone)
			fmt.Fprintf(out, "log.level = %s\n", c.Log.Level)
			fmt.Fprintf(out, "log.path = %s\n", c.Log.Path)
			fmt.Fprintf(out, "log.format = %s\n", c.Log.Format)
			if !save {
				return nil
			}
			if err := config.Save(c); err != nil {
				return err
			}
			fmt.Fprintf(out, "Wrote %s\n", config.Path())
			return nil
		},
	}
	cmd.Flags().BoolVar(&save, "save", false, "write the effective configuration to the config file")
	return cmd
}

func (a *App) seedCommand() *cobra.Command {
	var count int
	var seed int64
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill the database with sample transactions and budgets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 1 {
				return apperrors.WithMessage(apperrors.ErrInvalidInput, "--count must be positive")
			}
			if !cmd.Flags().Changed("seed") {
				seed = a.now().UnixNano()
			}
			sum, err := testdata.Seed(cmd.Context(), a.Samples, a.now(), count, rand.New(rand.NewSource(seed)))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d transactions and %d budgets.\n", sum.Transactions, sum.Budgets)
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 20, "number of transactions")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (default: time-based)")
	return cmd
}
