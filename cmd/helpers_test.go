package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/recon-cli/internal/model"
	"github.com/sells-group/recon-cli/internal/sheet"
)

// templateRosterXLSX returns the sample roster: 제이홉 10000, 진 8000, 슈가 2000.
func templateRosterXLSX(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, sheet.WriteTemplate(&buf))
	return buf.Bytes()
}

// ledgerXLSX builds a bank export with nine metadata rows above the header.
// Each deposit is {description, amount}.
func ledgerXLSX(t *testing.T, deposits ...[2]string) []byte {
	t.Helper()
	f := xlsx.NewFile()
	sh, err := f.AddSheet("Sheet1")
	require.NoError(t, err)

	for i := 0; i < sheet.LedgerSkipRows; i++ {
		sh.AddRow().AddCell().SetString("거래내역조회")
	}
	header := sh.AddRow()
	for _, h := range []string{"순번", model.ColTxnDate, model.ColDeposit, model.ColDescription, model.ColBranch} {
		header.AddCell().SetString(h)
	}
	for i, d := range deposits {
		row := sh.AddRow()
		row.AddCell().SetInt(i + 1)
		row.AddCell().SetString("2024-02-01")
		row.AddCell().SetString(d[1])
		row.AddCell().SetString(d[0])
		row.AddCell().SetString("물금")
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func writeFixture(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}
