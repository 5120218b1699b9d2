package model

import (
	"github.com/shopspring/decimal"

	"github.com/sells-group/recon-cli/internal/extract"
)

// TransactionRecord is one bank ledger line after the header rows.
type TransactionRecord struct {
	Date        string              `json:"date"`
	Deposit     decimal.NullDecimal `json:"deposit"`
	Description string              `json:"description"`
	Branch      string              `json:"branch"`
}

// Name returns the payer name extracted from the description.
// It is derived on every call and never stored.
func (t TransactionRecord) Name() string {
	return extract.Name(t.Description)
}
