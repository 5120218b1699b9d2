package recon

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sells-group/recon-cli/internal/model"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	zero := amount(0)
	tests := []struct {
		name     string
		expected decimal.NullDecimal
		deposit  decimal.NullDecimal
		roster   bool
		ledger   bool
		want     model.Verdict
	}{
		{"equal", amount(10000), amount(10000), true, true, model.VerdictOK},
		{"different", amount(8000), amount(5000), true, true, model.VerdictAmountMismatch},
		{"overpaid", amount(8000), amount(9000), true, true, model.VerdictAmountMismatch},
		{"zero equal", zero, zero, true, true, model.VerdictOK},
		{"ledger absent", amount(10000), decimal.NullDecimal{}, true, false, model.VerdictPendingOrNew},
		{"zero expected ledger absent", zero, decimal.NullDecimal{}, true, false, model.VerdictPendingOrNew},
		{"roster absent", decimal.NullDecimal{}, amount(2000), false, true, model.VerdictPendingOrNew},
		{"roster amount blank", decimal.NullDecimal{}, amount(2000), true, true, model.VerdictPendingOrNew},
		{"deposit blank", amount(2000), decimal.NullDecimal{}, true, true, model.VerdictPendingOrNew},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var row model.ReconciledRow
			if tt.roster {
				row.Roster = &model.RosterEntry{Name: "홍길동", Expected: tt.expected}
			}
			if tt.ledger {
				row.Txn = &model.TransactionRecord{Description: "홍길동", Deposit: tt.deposit}
			}
			assert.Equal(t, tt.want, Classify(row))
		})
	}
}

func TestClassify_ExactDecimalEquality(t *testing.T) {
	row := model.ReconciledRow{
		Roster: &model.RosterEntry{Expected: decimal.NewNullDecimal(decimal.RequireFromString("10000.00"))},
		Txn:    &model.TransactionRecord{Deposit: amount(10000)},
	}
	assert.Equal(t, model.VerdictOK, Classify(row))

	row.Txn = &model.TransactionRecord{Deposit: decimal.NewNullDecimal(decimal.RequireFromString("10000.01"))}
	assert.Equal(t, model.VerdictAmountMismatch, Classify(row))
}

func TestClassifyAll_Copies(t *testing.T) {
	rows := Match([]model.RosterEntry{entry(1, "홍길동", 10000)}, nil)
	out := ClassifyAll(rows)

	assert.Equal(t, model.VerdictPendingOrNew, out[0].Verdict)
	assert.Equal(t, model.Verdict(0), rows[0].Verdict)
}
