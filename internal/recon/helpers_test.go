package recon

import (
	"github.com/shopspring/decimal"

	"github.com/sells-group/recon-cli/internal/model"
)

func amount(v int64) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.NewFromInt(v))
}

func entry(seq int, name string, expected int64) model.RosterEntry {
	return model.RosterEntry{Seq: seq, Name: name, Expected: amount(expected)}
}

func txn(desc string, deposit int64) model.TransactionRecord {
	return model.TransactionRecord{Description: desc, Deposit: amount(deposit)}
}

func decimalFrom(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}
