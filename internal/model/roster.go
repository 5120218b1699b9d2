package model

import "github.com/shopspring/decimal"

// RosterEntry is one expected payer.
// Phone numbers and birth date stay text so leading zeros survive.
type RosterEntry struct {
	Seq           int                 `json:"seq"`
	Category      string              `json:"category"`
	Name          string              `json:"name"`
	City          string              `json:"city"`
	District      string              `json:"district"`
	Address       string              `json:"address"`
	AddressDetail string              `json:"address_detail"`
	Mobile        string              `json:"mobile"`
	Landline      string              `json:"landline"`
	Quota         int                 `json:"quota"`
	BirthDate     string              `json:"birth_date"`
	SMSOptIn      string              `json:"sms_opt_in"`
	Household     int                 `json:"household"`
	Expected      decimal.NullDecimal `json:"expected"`
}
