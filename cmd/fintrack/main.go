package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/jask/fintrack/internal/cli"
	"github.com/jask/fintrack/internal/config"
	"github.com/jask/fintrack/internal/database"
	"github.com/jask/fintrack/internal/database/repository"
	"github.com/jask/fintrack/internal/ledger"
	"github.com/jask/fintrack/internal/logger"
	"github.com/jask/fintrack/internal/service"
	"github.com/jask/fintrack/internal/testdata"
	"github.com/jask/fintrack/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer logger.Sync(log)

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return fmt.Errorf("mkdir db dir: %w", err)
	}
	if err := database.RunMigrations(cfg.Database.Path); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	loc, err := cfg.UI.Location()
	if err != nil {
		log.Warn("using local timezone", zap.String("timezone", cfg.UI.Timezone), zap.Error(err))
		loc = time.Local
	}
	clock := func() time.Time { return time.Now().In(loc) }

	// repositories
	txRepo := repository.NewTransactionRepo(db)
	budgetRepo := repository.NewBudgetRepo(db)

	app := &cli.App{
		Services: cli.Services{
			Categorizer:  &service.CategorizerService{Transactions: txRepo, Rules: ledger.DefaultRules(), Log: log},
			Budgets:      &service.BudgetService{Transactions: txRepo, Budgets: budgetRepo, Now: clock, Log: log},
			Reports:      &service.ReportService{Transactions: txRepo},
			Transactions: &service.TransactionService{Transactions: txRepo, Now: clock, Log: log},
			Ingest:       &service.IngestService{Transactions: txRepo, Log: log},
		},
		Config:   cfg,
		Samples:  testdata.Stores{Transactions: txRepo, Budgets: budgetRepo},
		Currency: cfg.UI.CurrencySymbol,
		Now:      clock,
		Log:      log,
		Dashboard: func(ctx context.Context) error {
			data := tui.LoadData(ctx, txRepo, budgetRepo, log)
			return tui.Run(ctx, data, tui.Options{
				Currency: cfg.UI.CurrencySymbol,
				Tick:     cfg.UI.TickInterval,
				Clock:    clock,
				Styles:   tui.DefaultStyles(),
				Keys:     tui.DefaultKeyMap(),
			})
		},
	}

	if err := app.Command().ExecuteContext(ctx); err != nil {
		log.Error("command failed", zap.Error(err))
		return err
	}
	return nil
}
