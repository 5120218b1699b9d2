package sheet

import (
	"github.com/rotisserie/eris"

	"github.com/sells-group/recon-cli/internal/model"
)

const ledgerFile = "ledger"

// LedgerSkipRows is the number of title and account rows above the ledger header.
const LedgerSkipRows = 9

// ParseLedger projects a header-first ledger table (metadata rows already
// skipped) onto transaction records. Blank rows are skipped; a blank deposit
// cell is kept as an absent amount.
func ParseLedger(rows [][]string) ([]model.TransactionRecord, error) {
	t, err := newTable(rows, model.LedgerColumns)
	if err != nil {
		return nil, invalid(ledgerFile, err)
	}

	var txns []model.TransactionRecord
	for i, row := range t.rows {
		if blankRow(row) {
			continue
		}

		deposit, err := parseAmount(t.cell(row, model.ColDeposit))
		if err != nil {
			return nil, invalid(ledgerFile, eris.Wrapf(err, "row %d: %s", i+2, model.ColDeposit))
		}

		txns = append(txns, model.TransactionRecord{
			Date:        t.text(row, model.ColTxnDate),
			Deposit:     deposit,
			Description: t.cell(row, model.ColDescription),
			Branch:      t.text(row, model.ColBranch),
		})
	}
	return txns, nil
}
