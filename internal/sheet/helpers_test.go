package sheet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/recon-cli/internal/model"
)

func xlsxBytes(t *testing.T, rows [][]string) []byte {
	t.Helper()
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Sheet1")
	require.NoError(t, err)
	for _, rowData := range rows {
		row := sheet.AddRow()
		for _, cellData := range rowData {
			row.AddCell().SetString(cellData)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func rosterRow(seq, name, expected string) []string {
	return []string{seq, "기초수급", name, "양산시", "물금읍", "경상남도 양산시 물금읍", "",
		"010-2233-4433", "055-392-2222", "1", "1981-09-15", "y", "1", expected}
}

func rosterTable(rows ...[]string) [][]string {
	return append([][]string{model.RosterColumns}, rows...)
}

// ledgerRows prepends the nine metadata rows a bank export carries.
func ledgerRows(rows ...[]string) [][]string {
	out := [][]string{
		{"거래내역조회"},
		{"계좌번호", "301-0000-0000-00"},
		{"예금주", "양산시청"},
		{"조회기간", "2024-02-01 ~ 2024-02-29"},
		{"거래구분", "전체"},
		{"출력일시", "2024-03-01 09:00"},
		{"정렬", "과거순"},
		{"단위", "원"},
		{"-"},
		{"순번", model.ColTxnDate, "출금금액(원)", model.ColDeposit, "잔액(원)", model.ColDescription, model.ColBranch},
	}
	return append(out, rows...)
}
