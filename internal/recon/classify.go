package recon

import "github.com/sells-group/recon-cli/internal/model"

// Classify returns the verdict for a single joined row. Absence of either
// amount dominates; otherwise amounts must be exactly equal.
func Classify(row model.ReconciledRow) model.Verdict {
	expected, deposit := row.Expected(), row.Deposit()
	switch {
	case !expected.Valid || !deposit.Valid:
		return model.VerdictPendingOrNew
	case expected.Decimal.Equal(deposit.Decimal):
		return model.VerdictOK
	default:
		return model.VerdictAmountMismatch
	}
}

// ClassifyAll returns a copy of rows with every verdict set.
func ClassifyAll(rows []model.ReconciledRow) []model.ReconciledRow {
	out := make([]model.ReconciledRow, len(rows))
	for i, row := range rows {
		out[i] = row.WithVerdict(Classify(row))
	}
	return out
}
