package sheet

import (
	"math"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/shopspring/decimal"
)

// table indexes rows by their header cells.
type table struct {
	cols map[string]int
	rows [][]string
}

// newTable treats rows[0] as the header and requires every name in required.
func newTable(rows [][]string, required []string) (*table, error) {
	if len(rows) == 0 {
		return nil, eris.New("no header row")
	}

	cols := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		if _, dup := cols[h]; !dup {
			cols[h] = i
		}
	}

	var missing []string
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, eris.Errorf("missing columns %s", strings.Join(missing, ", "))
	}

	return &table{cols: cols, rows: rows[1:]}, nil
}

func (t *table) has(col string) bool {
	_, ok := t.cols[col]
	return ok
}

// cell returns the raw value of col in row, or "" when absent.
func (t *table) cell(row []string, col string) string {
	i, ok := t.cols[col]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// text returns the cell with surrounding whitespace removed.
func (t *table) text(row []string, col string) string {
	return strings.TrimSpace(t.cell(row, col))
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// parseAmount reads a currency cell. Blank cells are absent; thousands
// separators and a trailing 원 are accepted.
func parseAmount(raw string) (decimal.NullDecimal, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimSuffix(s, "원")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}, eris.Wrapf(err, "parse amount %q", raw)
	}
	return decimal.NewNullDecimal(d), nil
}

var (
	minInt = decimal.NewFromInt(int64(math.MinInt))
	maxInt = decimal.NewFromInt(int64(math.MaxInt))
)

// parseInt reads a whole-number cell. Spreadsheet readers may render
// integers as "3.0"; anything fractional is rejected. Blank reads as 0.
func parseInt(raw string) (int, bool, error) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if s == "" {
		return 0, false, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, false, eris.Wrapf(err, "parse integer %q", raw)
	}
	if !d.IsInteger() {
		return 0, false, eris.Errorf("parse integer %q: not a whole number", raw)
	}
	if d.LessThan(minInt) || d.GreaterThan(maxInt) {
		return 0, false, eris.Errorf("parse integer %q: out of range", raw)
	}
	return int(d.IntPart()), true, nil
}
