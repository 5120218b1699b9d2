// Package recon reconciles a roster of expected payers against bank ledger
// deposits: join on name, classify each row, order for display, and summarise.
package recon

import "github.com/sells-group/recon-cli/internal/model"

// Match full-outer-joins roster and ledger on exact name equality. Duplicate
// names fan out into one row per roster/ledger pair. Output order is roster
// order (each entry followed by its ledger matches in ledger order), then
// unmatched ledger lines in ledger order. Verdicts are left unset.
func Match(roster []model.RosterEntry, txns []model.TransactionRecord) []model.ReconciledRow {
	names := make([]string, len(txns))
	byName := make(map[string][]int, len(txns))
	for i, t := range txns {
		names[i] = t.Name()
		byName[names[i]] = append(byName[names[i]], i)
	}

	rosterNames := make(map[string]struct{}, len(roster))
	rows := make([]model.ReconciledRow, 0, len(roster)+len(txns))

	for i := range roster {
		entry := roster[i]
		rosterNames[entry.Name] = struct{}{}

		matches := byName[entry.Name]
		if len(matches) == 0 {
			rows = append(rows, model.ReconciledRow{Roster: &entry})
			continue
		}
		for _, j := range matches {
			txn := txns[j]
			rows = append(rows, model.ReconciledRow{Roster: &entry, Txn: &txn})
		}
	}

	for i := range txns {
		if _, ok := rosterNames[names[i]]; ok {
			continue
		}
		txn := txns[i]
		rows = append(rows, model.ReconciledRow{Txn: &txn})
	}

	return rows
}
