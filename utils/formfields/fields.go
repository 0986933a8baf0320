// Package formfields is the static lookup table of recognized line labels
// per IRS information return. The table is hand-maintained from observed
// transcript layouts; labels must match the transcript text exactly after
// whitespace trimming.
package formfields

import "slices"

// FieldSet lists the income-line and withholding-line labels recognized
// for one form identifier.
type FieldSet struct {
	Income      []string
	Withholding []string
}

var forms = map[string]FieldSet{
	"W-2": {
		Income:      []string{"Wages, Tips and Other Compensation"},
		Withholding: []string{"Federal Income Tax Withheld"},
	},
	"1099-MISC": {
		Income:      []string{"Non-Employee Compensation", "Medical Payments", "Fishing Income", "Rents", "Royalties", "Attorney Fees", "Other Income", "Substitute Payments for Dividends"},
		Withholding: []string{"Tax Withheld"},
	},
	"1099-NEC": {
		Income:      []string{"Non-Employee Compensation"},
		Withholding: []string{"Federal Income Tax Withheld"},
	},
	"1099-K": {
		Income:      []string{"Gross Amount of Payment Card/Third Party Transactions"},
		Withholding: []string{"Federal Income Tax Withheld"},
	},
	"1099-PATR": {
		Income:      []string{"Patronage Dividends", "Non-Patronage Distribution", "Retained Allocations", "Redemption Amount"},
		Withholding: []string{"Tax Withheld"},
	},
	"1042-S": {
		Income:      []string{"Gross Income"},
		Withholding: []string{"U.S. Federal Tax Withheld"},
	},
	"K-1 1065": {
		Income: []string{"Royalties", "Ordinary Income K-1", "Real Estate", "Other Rental", "Guaranteed Payments", "Dividends", "Interest"},
	},
	"K-1 1041": {
		Income: []string{"Net Rental Real Estate Income", "Other Rental Income", "Dividends", "Interest", "Long-Term Capital Gain", "Other Portfolio and Non-Business Income"},
	},
	"K-1 1120S": {
		Income: []string{"Dividends", "Interest", "Royalties", "Ordinary Income K-1", "Real Estate", "Other Rental"},
	},
	"W-2G": {
		Income:      []string{"Gross Winnings"},
		Withholding: []string{"Federal Income Tax Withheld"},
	},
	"1099-R": {
		Income:      []string{"Taxable Amount"},
		Withholding: []string{"Tax Withheld"},
	},
	"1099-B": {
		Income: []string{"Proceeds", "Cost or Basis"},
	},
	"1099-S": {
		Income: []string{"Gross Proceeds"},
	},
	"1099-LTC": {
		Income: []string{"Gross Long-Term Care Benefits Paid", "Accelerated Death Benefits Paid"},
	},
	"3922": {
		Income: []string{"Exercise Fair Market Value per Share on Exercise Date", "Exercise Price per Share", "Number of Shares Transferred"},
	},
	"SSA": {
		Income:      []string{"Pensions and Annuities (Total Benefits Paid)"},
		Withholding: []string{"Tax Withheld"},
	},
	"1099-DIV": {
		Income:      []string{"Qualified Dividends", "Cash Liquidation Distribution", "Capital Gains", "Ordinary Dividend"},
		Withholding: []string{"Tax Withheld"},
	},
	"1099-INT": {
		Income:      []string{"Interest"},
		Withholding: []string{"Tax Withheld"},
	},
	"1099-G": {
		Income:      []string{"Unemployment Compensation", "Agricultural Subsidies", "Taxable Grants"},
		Withholding: []string{"Tax Withheld"},
	},
	"1098": {
		Income: []string{"Mortgage Interest Received from Payer(s)/Borrower(s)", "Outstanding Mortgage Principle"},
	},
}

// seForms are the form identifiers whose income is subject to
// self-employment tax.
var seForms = map[string]bool{
	"1099-MISC": true,
	"1099-NEC":  true,
	"1099-K":    true,
	"1099-PATR": true,
	"1042-S":    true,
	"K-1 1065":  true,
	"K-1 1041":  true,
}

// Lookup returns the field set for a form identifier.
func Lookup(form string) (FieldSet, bool) {
	fs, ok := forms[form]
	return fs, ok
}

// IsIncomeField reports whether label is a recognized income line of form.
func IsIncomeField(form, label string) bool {
	return slices.Contains(forms[form].Income, label)
}

// IsWithholdingField reports whether label is a recognized withholding
// line of form.
func IsWithholdingField(form, label string) bool {
	return slices.Contains(forms[form].Withholding, label)
}

// SubjectToSETax reports whether income reported under form counts toward
// self-employment income.
func SubjectToSETax(form string) bool {
	return seForms[form]
}
