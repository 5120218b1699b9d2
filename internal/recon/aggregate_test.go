package recon

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sells-group/recon-cli/internal/model"
)

func TestCountAndSum(t *testing.T) {
	rows := ClassifyAll(Match(
		[]model.RosterEntry{entry(1, "가", 10000), entry(2, "나", 8000), entry(3, "다", 2000), entry(4, "라", 500)},
		[]model.TransactionRecord{txn("가", 10000), txn("나", 5000), txn("다", 2000), txn("마", 700)},
	))

	ok := CountAndSum(rows, model.VerdictOK)
	assert.Equal(t, 2, ok.Count)
	assert.True(t, ok.Total.Equal(decimal.NewFromInt(12000)))

	mismatch := CountAndSum(rows, model.VerdictAmountMismatch)
	assert.Equal(t, 1, mismatch.Count)
	assert.True(t, mismatch.Total.Equal(decimal.NewFromInt(5000)))

	pending := CountAndSum(rows, model.VerdictPendingOrNew)
	assert.Equal(t, 2, pending.Count)
	assert.True(t, pending.Total.Equal(decimal.NewFromInt(700)), "absent deposit counts as zero")
}

func TestCountAndSum_CountMatchesFilter(t *testing.T) {
	rows := ClassifyAll(Match(
		[]model.RosterEntry{entry(1, "가", 1), entry(2, "가", 2), entry(3, "나", 3)},
		[]model.TransactionRecord{txn("가", 1), txn("다", 9), txn("나", 4)},
	))

	for _, v := range model.Verdicts {
		want := 0
		for _, row := range rows {
			if row.Verdict == v {
				want++
			}
		}
		assert.Equal(t, want, CountAndSum(rows, v).Count, v.String())
	}
}

func TestCountAndSum_Empty(t *testing.T) {
	s := CountAndSum(nil, model.VerdictOK)
	assert.Equal(t, 0, s.Count)
	assert.True(t, s.Total.IsZero())
	assert.Equal(t, "검증결과 '정상' 납부자 수: 0명, 입금금액 합계: 0원", s.Line())
}

func TestSummaryLine(t *testing.T) {
	ok := Summary{Verdict: model.VerdictOK, Count: 3, Total: decimal.NewFromInt(1234567)}
	assert.Equal(t, "검증결과 '정상' 납부자 수: 3명, 입금금액 합계: 1,234,567원", ok.Line())

	mismatch := Summary{Verdict: model.VerdictAmountMismatch, Count: 1, Total: decimal.NewFromInt(5000)}
	assert.Equal(t, "검증결과 '금액 확인필요' 납부자 수: 1명, 확인금액 합계: 5,000원", mismatch.Line())
}

func TestSummaryLine_CountNotGrouped(t *testing.T) {
	s := Summary{Verdict: model.VerdictOK, Count: 1234, Total: decimal.NewFromInt(12340000)}
	assert.Equal(t, "검증결과 '정상' 납부자 수: 1234명, 입금금액 합계: 12,340,000원", s.Line())
}
