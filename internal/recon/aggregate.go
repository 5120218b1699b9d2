package recon

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sells-group/recon-cli/internal/model"
)

// Summary is the count and deposit total for one verdict.
type Summary struct {
	Verdict model.Verdict   `json:"verdict"`
	Count   int             `json:"count"`
	Total   decimal.Decimal `json:"total"`
}

// CountAndSum counts rows carrying v and sums their deposits, treating an
// absent deposit as zero. An empty result is a zero Summary, never omitted.
func CountAndSum(rows []model.ReconciledRow, v model.Verdict) Summary {
	s := Summary{Verdict: v, Total: decimal.Zero}
	for _, row := range rows {
		if row.Verdict != v {
			continue
		}
		s.Count++
		if d := row.Deposit(); d.Valid {
			s.Total = s.Total.Add(d.Decimal)
		}
	}
	return s
}

// printer groups amount digits; counts are printed plain.
var printer = message.NewPrinter(language.Korean)

// Line renders the summary as the one-line Korean status message.
func (s Summary) Line() string {
	totalLabel := "입금금액 합계"
	if s.Verdict == model.VerdictAmountMismatch {
		totalLabel = "확인금액 합계"
	}
	return fmt.Sprintf("검증결과 '%s' 납부자 수: %d명, %s: %s원",
		s.Verdict.Label(), s.Count, totalLabel, formatAmount(s.Total))
}

func formatAmount(d decimal.Decimal) string {
	if d.IsInteger() {
		return printer.Sprintf("%d", d.IntPart())
	}
	return printer.Sprintf("%.2f", d.InexactFloat64())
}
