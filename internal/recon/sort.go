package recon

import (
	"math"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/sells-group/recon-cli/internal/model"
)

// noSeq sorts ledger-only rows after every numbered row in their group.
const noSeq = math.MaxInt

// Sort returns a new slice ordered by verdict priority, then roster sequence
// number. Rows without a sequence number come last within their verdict, and
// ties keep their input order.
func Sort(rows []model.ReconciledRow) []model.ReconciledRow {
	out := slices.Clone(rows)
	slices.SortStableFunc(out, func(a, b model.ReconciledRow) int {
		if c := a.Verdict.Rank() - b.Verdict.Rank(); c != 0 {
			return c
		}
		sa, sb := sortSeq(a), sortSeq(b)
		switch {
		case sa < sb:
			return -1
		case sa > sb:
			return 1
		default:
			return 0
		}
	})
	return out
}

func sortSeq(row model.ReconciledRow) int {
	if seq, ok := row.Seq(); ok {
		return seq
	}
	return noSeq
}

// Present lays sorted rows out under model.ReportColumns. Absent values are
// nil; amounts are int64 when whole and float64 otherwise.
func Present(rows []model.ReconciledRow) [][]any {
	table := make([][]any, 0, len(rows))
	for _, row := range rows {
		cells := make([]any, 0, len(model.ReportColumns))
		cells = append(cells, row.Verdict.Label())

		if r := row.Roster; r != nil {
			cells = append(cells,
				r.Seq, r.Category, r.Name, r.City, r.District, r.Address, r.AddressDetail,
				r.Mobile, r.Landline, r.Quota, r.BirthDate, r.SMSOptIn, r.Household,
				amountCell(r.Expected),
			)
		} else {
			cells = append(cells, nil, nil, row.Name())
			for range 11 {
				cells = append(cells, nil)
			}
		}

		if t := row.Txn; t != nil {
			cells = append(cells, amountCell(t.Deposit), t.Branch, t.Date, t.Description)
		} else {
			cells = append(cells, nil, nil, nil, nil)
		}

		table = append(table, cells)
	}
	return table
}

func amountCell(d decimal.NullDecimal) any {
	if !d.Valid {
		return nil
	}
	if d.Decimal.IsInteger() {
		return d.Decimal.IntPart()
	}
	return d.Decimal.InexactFloat64()
}
