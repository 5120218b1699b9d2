package model

// Verdict is the reconciliation outcome for one joined row.
// The numeric value doubles as display priority: lower sorts first.
type Verdict int

const (
	VerdictAmountMismatch Verdict = iota + 1
	VerdictOK
	VerdictPendingOrNew
)

// Verdicts lists every verdict in display order.
var Verdicts = []Verdict{VerdictAmountMismatch, VerdictOK, VerdictPendingOrNew}

// String returns the stable code used in logs and JSON.
func (v Verdict) String() string {
	switch v {
	case VerdictAmountMismatch:
		return "AMOUNT_MISMATCH"
	case VerdictOK:
		return "OK"
	case VerdictPendingOrNew:
		return "PENDING_OR_NEW"
	default:
		return "UNKNOWN"
	}
}

// Label returns the Korean text shown in reports.
func (v Verdict) Label() string {
	switch v {
	case VerdictAmountMismatch:
		return "금액 확인필요"
	case VerdictOK:
		return "정상"
	case VerdictPendingOrNew:
		return "입금요청 및 신규 검토 대상"
	default:
		return ""
	}
}

// Rank returns the sort priority. Unknown verdicts sort last.
func (v Verdict) Rank() int {
	if v < VerdictAmountMismatch || v > VerdictPendingOrNew {
		return len(Verdicts) + 1
	}
	return int(v)
}

// MarshalText implements encoding.TextMarshaler.
func (v Verdict) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}
