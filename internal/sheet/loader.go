// Package sheet is the ingestion boundary between uploaded spreadsheets and
// the reconciliation engine. Every parse or shape failure leaves this package
// as an *InputError; nothing malformed reaches recon.
package sheet

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/recon-cli/internal/fetcher"
	"github.com/sells-group/recon-cli/internal/model"
)

// File is a spreadsheet held in memory. Name is used only for its extension.
type File struct {
	Name string
	Data []byte
}

// Open reads a spreadsheet from disk.
func Open(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, eris.Wrapf(err, "sheet: read %s", path)
	}
	return File{Name: filepath.Base(path), Data: data}, nil
}

// Options configures how files are decoded.
type Options struct {
	LedgerSkipRows int
	CSVEncoding    string
}

// Loader reads roster and ledger files into typed records.
type Loader struct {
	opts Options
}

// NewLoader creates a Loader. A zero LedgerSkipRows uses LedgerSkipRows.
func NewLoader(opts Options) *Loader {
	if opts.LedgerSkipRows <= 0 {
		opts.LedgerSkipRows = LedgerSkipRows
	}
	return &Loader{opts: opts}
}

// Roster reads the first sheet of f as a roster.
func (l *Loader) Roster(f File) ([]model.RosterEntry, error) {
	rows, err := l.rows(f, 0)
	if err != nil {
		return nil, invalid(rosterFile, err)
	}
	return ParseRoster(rows)
}

// Ledger reads the first sheet of f as a bank ledger, discarding the
// metadata rows above the header.
func (l *Loader) Ledger(f File) ([]model.TransactionRecord, error) {
	rows, err := l.rows(f, l.opts.LedgerSkipRows)
	if err != nil {
		return nil, invalid(ledgerFile, err)
	}
	return ParseLedger(rows)
}

func (l *Loader) rows(f File, skip int) ([][]string, error) {
	if len(f.Data) == 0 {
		return nil, eris.New("empty file")
	}

	switch strings.ToLower(filepath.Ext(f.Name)) {
	case ".csv":
		return fetcher.ReadCSV(bytes.NewReader(f.Data), fetcher.CSVOptions{
			Encoding:   l.opts.CSVEncoding,
			SkipRows:   skip,
			LazyQuotes: true,
		})
	case ".xls":
		return fetcher.ReadXLSBytes(f.Data, fetcher.SheetOptions{SkipRows: skip})
	default:
		return fetcher.ReadXLSXBytes(f.Data, fetcher.SheetOptions{SkipRows: skip})
	}
}
