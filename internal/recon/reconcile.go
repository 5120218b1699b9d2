package recon

import "github.com/sells-group/recon-cli/internal/model"

// Report is the outcome of one reconciliation run.
type Report struct {
	Rows     []model.ReconciledRow `json:"-"`
	OK       Summary               `json:"ok"`
	Mismatch Summary               `json:"mismatch"`
}

// Reconcile runs match, classify, and sort, then summarises the OK and
// amount-mismatch verdicts. Inputs are never modified.
func Reconcile(roster []model.RosterEntry, txns []model.TransactionRecord) Report {
	rows := Sort(ClassifyAll(Match(roster, txns)))
	return Report{
		Rows:     rows,
		OK:       CountAndSum(rows, model.VerdictOK),
		Mismatch: CountAndSum(rows, model.VerdictAmountMismatch),
	}
}

// Table returns the report rows laid out for export.
func (r Report) Table() [][]any {
	return Present(r.Rows)
}
