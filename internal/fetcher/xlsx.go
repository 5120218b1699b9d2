package fetcher

import (
	"io"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
)

// SheetOptions configures the workbook readers. Only the first sheet is read.
type SheetOptions struct {
	SkipRows int // number of leading rows to discard
}

// ReadXLSXBytes parses an in-memory XLSX workbook, such as an upload.
func ReadXLSXBytes(data []byte, opts SheetOptions) ([][]string, error) {
	f, err := xlsx.OpenBinary(data)
	if err != nil {
		return nil, eris.Wrap(err, "xlsx: open binary")
	}
	if len(f.Sheets) == 0 {
		return nil, eris.New("xlsx: workbook has no sheets")
	}

	var rows [][]string
	for i, row := range f.Sheets[0].Rows {
		if i < opts.SkipRows {
			continue
		}
		rows = append(rows, rowToStrings(row))
	}
	return rows, nil
}

func rowToStrings(row *xlsx.Row) []string {
	if row == nil {
		return nil
	}
	cells := make([]string, len(row.Cells))
	for j, cell := range row.Cells {
		if cell == nil {
			continue
		}
		cells[j] = cell.String()
	}
	return cells
}

// WriteXLSX writes a single-sheet workbook with a header row followed by rows.
// Cell values may be string, int, int64, float64, or nil for an empty cell.
func WriteXLSX(w io.Writer, sheetName string, header []string, rows [][]any) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet(sheetName)
	if err != nil {
		return eris.Wrapf(err, "xlsx: add sheet %q", sheetName)
	}

	hr := sheet.AddRow()
	for _, h := range header {
		hr.AddCell().SetString(h)
	}

	for i, values := range rows {
		row := sheet.AddRow()
		for j, v := range values {
			if err := setCell(row.AddCell(), v); err != nil {
				return eris.Wrapf(err, "xlsx: row %d col %d", i+1, j+1)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return eris.Wrap(err, "xlsx: write")
	}
	return nil
}

func setCell(cell *xlsx.Cell, v any) error {
	switch val := v.(type) {
	case nil:
	case string:
		cell.SetString(val)
	case int:
		cell.SetInt(val)
	case int64:
		cell.SetInt64(val)
	case float64:
		cell.SetFloat(val)
	default:
		return eris.Errorf("unsupported cell type %T", v)
	}
	return nil
}
