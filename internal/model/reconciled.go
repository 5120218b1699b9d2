package model

import "github.com/shopspring/decimal"

// ReconciledRow is one outer-join result. At least one of Roster and Txn is set.
type ReconciledRow struct {
	Roster  *RosterEntry
	Txn     *TransactionRecord
	Verdict Verdict
}

// Name returns the join key: the roster name, or the extracted ledger name
// for ledger-only rows.
func (r ReconciledRow) Name() string {
	if r.Roster != nil {
		return r.Roster.Name
	}
	if r.Txn != nil {
		return r.Txn.Name()
	}
	return ""
}

// Expected returns the roster's expected amount, invalid when absent.
func (r ReconciledRow) Expected() decimal.NullDecimal {
	if r.Roster == nil {
		return decimal.NullDecimal{}
	}
	return r.Roster.Expected
}

// Deposit returns the ledger deposit amount, invalid when absent.
func (r ReconciledRow) Deposit() decimal.NullDecimal {
	if r.Txn == nil {
		return decimal.NullDecimal{}
	}
	return r.Txn.Deposit
}

// Seq returns the roster sequence number and whether the row has one.
func (r ReconciledRow) Seq() (int, bool) {
	if r.Roster == nil {
		return 0, false
	}
	return r.Roster.Seq, true
}

// WithVerdict returns a copy of r carrying v.
func (r ReconciledRow) WithVerdict(v Verdict) ReconciledRow {
	r.Verdict = v
	return r
}
