package sheet

import (
	"io"

	"github.com/shopspring/decimal"

	"github.com/sells-group/recon-cli/internal/model"
)

// TemplateRoster returns the sample roster offered as a starting point.
func TemplateRoster() []model.RosterEntry {
	won := func(v int64) decimal.NullDecimal { return decimal.NewNullDecimal(decimal.NewFromInt(v)) }
	return []model.RosterEntry{
		{
			Seq: 1, Category: "기초수급", Name: "제이홉", City: "양산시", District: "물금읍",
			Address: "경상남도 양산시 물금읍", Mobile: "010-2233-4433", Landline: "055-392-2222",
			Quota: 1, BirthDate: "1981-09-15", SMSOptIn: "Y", Household: 1, Expected: won(10000),
		},
		{
			Seq: 2, Category: "생계급여", Name: "진", City: "양산시", District: "동면",
			Address: "경상남도 양산시 동면", Mobile: "010-2390-1234", Landline: "055-392-2224",
			Quota: 2, BirthDate: "1948-05-21", SMSOptIn: "N", Household: 2, Expected: won(8000),
		},
		{
			Seq: 3, Category: "주거급여", Name: "슈가", City: "양산시", District: "원동면",
			Address: "경상남도 양산시 원동면", Mobile: "010-3222-3333", Landline: "055-392-2221",
			Quota: 3, BirthDate: "1951-01-13", SMSOptIn: "Y", Household: 3, Expected: won(2000),
		},
	}
}

// WriteTemplate writes the sample roster workbook.
func WriteTemplate(w io.Writer) error {
	return WriteRoster(w, TemplateRoster())
}
