package sheet

import (
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/recon-cli/internal/model"
)

const rosterFile = "roster"

// rosterRequired is every roster column except the optional SMS flag.
var rosterRequired = func() []string {
	var cols []string
	for _, c := range model.RosterColumns {
		if c != model.ColSMSOptIn {
			cols = append(cols, c)
		}
	}
	return cols
}()

// ParseRoster converts a header-first table into roster entries. Blank rows
// are skipped. Sequence numbers must be present and unique, names non-empty,
// and expected amounts non-negative when given.
func ParseRoster(rows [][]string) ([]model.RosterEntry, error) {
	t, err := newTable(rows, rosterRequired)
	if err != nil {
		return nil, invalid(rosterFile, err)
	}

	seen := make(map[int]int)
	var entries []model.RosterEntry
	for i, row := range t.rows {
		if blankRow(row) {
			continue
		}
		line := i + 2

		e, err := parseRosterRow(t, row)
		if err != nil {
			return nil, invalid(rosterFile, eris.Wrapf(err, "row %d", line))
		}
		if prev, dup := seen[e.Seq]; dup {
			return nil, invalid(rosterFile, eris.Errorf("row %d: %s %d already used on row %d", line, model.ColSeq, e.Seq, prev))
		}
		seen[e.Seq] = line

		entries = append(entries, e)
	}
	return entries, nil
}

func parseRosterRow(t *table, row []string) (model.RosterEntry, error) {
	seq, ok, err := parseInt(t.cell(row, model.ColSeq))
	if err != nil {
		return model.RosterEntry{}, eris.Wrap(err, model.ColSeq)
	}
	if !ok {
		return model.RosterEntry{}, eris.Errorf("%s is empty", model.ColSeq)
	}

	name := t.cell(row, model.ColName)
	if strings.TrimSpace(name) == "" {
		return model.RosterEntry{}, eris.Errorf("%s is empty", model.ColName)
	}

	quota, _, err := parseInt(t.cell(row, model.ColQuota))
	if err != nil {
		return model.RosterEntry{}, eris.Wrap(err, model.ColQuota)
	}
	household, _, err := parseInt(t.cell(row, model.ColHousehold))
	if err != nil {
		return model.RosterEntry{}, eris.Wrap(err, model.ColHousehold)
	}

	expected, err := parseAmount(t.cell(row, model.ColExpected))
	if err != nil {
		return model.RosterEntry{}, eris.Wrap(err, model.ColExpected)
	}
	if expected.Valid && expected.Decimal.IsNegative() {
		return model.RosterEntry{}, eris.Errorf("%s is negative", model.ColExpected)
	}

	e := model.RosterEntry{
		Seq:           seq,
		Category:      t.text(row, model.ColCategory),
		Name:          name,
		City:          t.text(row, model.ColCity),
		District:      t.text(row, model.ColDistrict),
		Address:       t.text(row, model.ColAddress),
		AddressDetail: t.text(row, model.ColAddressDetail),
		Mobile:        t.text(row, model.ColMobile),
		Landline:      t.text(row, model.ColLandline),
		Quota:         quota,
		BirthDate:     t.text(row, model.ColBirthDate),
		Household:     household,
		Expected:      expected,
	}
	if t.has(model.ColSMSOptIn) {
		e.SMSOptIn = strings.ToUpper(t.text(row, model.ColSMSOptIn))
	}
	return e, nil
}
