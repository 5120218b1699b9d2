// Package fetcher reads and writes the tabular files the reconciliation
// consumes and produces: XLSX workbooks and CSV exports.
package fetcher

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// CSVOptions configures the CSV parser.
type CSVOptions struct {
	Encoding   string // "euc-kr", "cp949", or "utf-8" (default)
	SkipRows   int    // number of leading records to discard
	LazyQuotes bool
}

// ReadCSV decodes r from the configured encoding and returns all records
// after SkipRows. Records may have differing field counts.
func ReadCSV(r io.Reader, opts CSVOptions) ([][]string, error) {
	enc, err := lookupEncoding(opts.Encoding)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(transform.NewReader(r, enc.NewDecoder()))
	reader.LazyQuotes = opts.LazyQuotes
	reader.FieldsPerRecord = -1 // allow variable fields

	var rows [][]string
	for i := 0; ; i++ {
		record, err := reader.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, eris.Wrap(err, "csv: read row")
		}
		if i < opts.SkipRows {
			continue
		}
		rows = append(rows, record)
	}
}

func lookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return unicode.UTF8BOM, nil
	case "euc-kr", "euckr", "cp949", "uhc":
		return korean.EUCKR, nil
	default:
		return nil, eris.Errorf("csv: unsupported encoding %q", name)
	}
}
