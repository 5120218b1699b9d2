package fetcher

import (
	"bytes"

	"github.com/extrame/xls"
	"github.com/rotisserie/eris"
)

// xlsMaxCols is the BIFF8 column limit, used when a row carries no ROW record.
const xlsMaxCols = 256

// ReadXLSBytes parses an in-memory legacy BIFF (.xls) workbook and returns
// the rows of the first sheet after SkipRows. Physical rows with no cells
// come back empty, so SkipRows counts the same rows a spreadsheet shows.
func ReadXLSBytes(data []byte, opts SheetOptions) (rows [][]string, err error) {
	defer func() {
		if r := recover(); r != nil {
			rows, err = nil, eris.Errorf("xls: malformed workbook: %v", r)
		}
	}()

	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, eris.Wrap(err, "xls: open binary")
	}
	if wb == nil {
		return nil, eris.New("xls: no workbook stream")
	}
	if wb.NumSheets() == 0 {
		return nil, eris.New("xls: workbook has no sheets")
	}

	sheet := wb.GetSheet(0)
	for i := opts.SkipRows; i <= int(sheet.MaxRow); i++ {
		rows = append(rows, xlsRowToStrings(xlsRow(sheet, i)))
	}
	return rows, nil
}

// xlsRow returns row i, or nil when the sheet has no record for it.
// WorkSheet.Row dereferences missing rows, so that panic is absorbed here.
func xlsRow(sheet *xls.WorkSheet, i int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return sheet.Row(i)
}

func xlsRowToStrings(row *xls.Row) []string {
	if row == nil {
		return nil
	}
	last := row.LastCol()
	if last <= 0 || last > xlsMaxCols {
		last = xlsMaxCols
	}

	cells := make([]string, last)
	width := 0
	for j := range cells {
		cells[j] = row.Col(j)
		if cells[j] != "" {
			width = j + 1
		}
	}
	return cells[:width]
}
