package service

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/jask/fintrack/internal/apperrors"
	"github.com/jask/fintrack/internal/database/repository"
	"github.com/jask/fintrack/internal/ledger"
)

// IngestService handles CSV imports.
type IngestService struct {
	Transactions TransactionStore
	Log          *zap.Logger
}

type IngestResult struct {
	Imported int
	Skipped  int
	Errors   []error
}

// ImportCSV reads rows of amount, category, description, date after a header
// line. Short rows and rows with an unparsable amount or date are skipped and
// reported; a storage failure aborts the import, keeping rows already stored.
func (s *IngestService) ImportCSV(ctx context.Context, r io.Reader) (IngestResult, error) {
	log := nopIfNil(s.Log)
	res := IngestResult{}
	csvr := csv.NewReader(bufio.NewReader(r))
	csvr.TrimLeadingSpace = true
	csvr.FieldsPerRecord = -1
	line := 0
	for {
		line++
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if line == 1 {
			continue // header
		}
		if err != nil {
			res.skip(fmt.Errorf("line %d: %w", line, err))
			continue
		}
		if len(rec) < 4 {
			res.skip(fmt.Errorf("line %d: expected 4 columns (amount, category, description, date)", line))
			continue
		}
		amount, err := decimal.NewFromString(strings.TrimSpace(rec[0]))
		if err != nil {
			res.skip(fmt.Errorf("line %d amount: %w", line, err))
			continue
		}
		date := strings.TrimSpace(rec[3])
		if !ledger.ValidDate(date) {
			res.skip(fmt.Errorf("line %d date %q: %w", line, date, apperrors.ErrMalformedDate))
			continue
		}

		t := repository.Transaction{
			Amount:      amount,
			Category:    optional(strings.TrimSpace(rec[1])),
			Description: optional(strings.TrimSpace(rec[2])),
			Date:        date,
		}
		if _, err := s.Transactions.Insert(ctx, t); err != nil {
			return res, err
		}
		res.Imported++
	}
	log.Info("import complete",
		zap.Int("imported", res.Imported), zap.Int("skipped", res.Skipped), zap.Int("errors", len(res.Errors)))
	return res, nil
}

func (r *IngestResult) skip(err error) {
	r.Skipped++
	r.Errors = append(r.Errors, err)
}
