package sheet

import (
	"io"
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/recon-cli/internal/fetcher"
	"github.com/sells-group/recon-cli/internal/model"
	"github.com/sells-group/recon-cli/internal/recon"
)

const sheetName = "Sheet1"

// ReportFileName names a report download after the run time, to the second.
func ReportFileName(now time.Time) string {
	return "검증결과_" + now.Format("20060102_150405") + ".xlsx"
}

// TemplateFileName names the roster template after the current month.
func TemplateFileName(now time.Time) string {
	return now.Format("2006년 01월") + " 양곡관리 입금대상.xlsx"
}

// WriteReport writes the sorted reconciliation table as a one-sheet workbook.
func WriteReport(w io.Writer, report recon.Report) error {
	if err := fetcher.WriteXLSX(w, sheetName, model.ReportColumns, report.Table()); err != nil {
		return eris.Wrap(err, "sheet: write report")
	}
	return nil
}

// WriteRoster writes entries in the roster template layout.
func WriteRoster(w io.Writer, entries []model.RosterEntry) error {
	rows := make([][]any, 0, len(entries))
	for _, e := range entries {
		var expected any
		if e.Expected.Valid {
			expected = e.Expected.Decimal.IntPart()
		}
		rows = append(rows, []any{
			e.Seq, e.Category, e.Name, e.City, e.District, e.Address, e.AddressDetail,
			e.Mobile, e.Landline, e.Quota, e.BirthDate, e.SMSOptIn, e.Household, expected,
		})
	}
	if err := fetcher.WriteXLSX(w, sheetName, model.RosterColumns, rows); err != nil {
		return eris.Wrap(err, "sheet: write roster")
	}
	return nil
}
