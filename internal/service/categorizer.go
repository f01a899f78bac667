package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jask/fintrack/internal/ledger"
)

// CategorizerService assigns categories to uncategorized transactions using
// an ordered rule table.
type CategorizerService struct {
	Transactions TransactionStore
	Rules        ledger.RuleTable
	Log          *zap.Logger
}

// CategorizeResult summarizes one categorization run.
type CategorizeResult struct {
	RunID   string
	Scanned int
	Updated int
}

// Categorize matches every uncategorized transaction against the rules and
// writes each match back individually. A write failure stops the run; rows
// written before it stay written and the partial result is returned.
func (s *CategorizerService) Categorize(ctx context.Context) (CategorizeResult, error) {
	log := nopIfNil(s.Log)
	res := CategorizeResult{RunID: uuid.NewString()}

	pending, err := s.Transactions.ListUncategorized(ctx)
	if err != nil {
		return res, err
	}
	res.Scanned = len(pending)

	for _, tx := range pending {
		category, ok := s.Rules.Match(tx.DescriptionText())
		if !ok {
			continue
		}
		if err := s.Transactions.UpdateCategory(ctx, tx.ID, category); err != nil {
			log.Warn("categorize write failed",
				zap.String("run_id", res.RunID), zap.Int64("transaction_id", tx.ID), zap.Error(err))
			return res, err
		}
		res.Updated++
	}

	log.Info("categorization complete",
		zap.String("run_id", res.RunID), zap.Int("scanned", res.Scanned), zap.Int("updated", res.Updated))
	return res, nil
}
