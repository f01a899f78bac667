// Package ledger holds the pure computations over transactions and budgets:
// fixed-width date windows, the categorization rule table, budget status
// classification and per-category expense totals. Nothing here performs I/O.
package ledger
