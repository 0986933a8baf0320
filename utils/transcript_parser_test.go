package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwhitfield/tax-transcript-analyzer/dto"
)

const accountTranscriptUnfiled = `Account Transcript
Tracking Number: 100200300
TAX PERIOD: Dec. 31, 2018
TAXPAYER IDENTIFICATION NUMBER: XXX-XX-2171
FILING STATUS: Single
ADJUSTED GROSS INCOME: 8,938.00
TAXABLE INCOME: 0.00
TAX PER RETURN: 0.00
`

const accountTranscriptFiled = `Account Transcript
Tracking Number: 999888777
TAX PERIOD: Dec. 31, 2019
TAXPAYER IDENTIFICATION NUMBER: XXX-XX-2171
FILING STATUS: Married Filing Joint
ADJUSTED GROSS INCOME: 62,410.00
TAXABLE INCOME: 37,810.00
TAX PER RETURN: 4,331.00
Current Balance: 1,256.16
Balance Plus Accruals (this is not a payoff amount): 1,309.21
150 Tax return filed 03-16-2020
`

const wageAndIncomeTranscript = `Wage and Income Transcript
Tracking Number: 456789123
SSN Provided: 123-45-2171
Tax Period Requested: December, 2020
Form W-2 Wage and Tax Statement
Employer Identification Number (EIN): 93-1234567
Wages, Tips and Other Compensation: $586.00
Federal Income Tax Withheld: $0.00
Form 1099-NEC
Non-Employee Compensation: $2,400.00
Federal Income Tax Withheld: $120.00
`

const wageAndIncomeSummary = `Wage and Income Transcript
Wage & Income Summary
Tracking Number: 222333444
SSN Provided: 123-45-2171
Tax Period Requested: December, 2017
Wages, tips, other comp.: 11,200.00
Nonemployee compensation: 0.00
`

func TestClassify(t *testing.T) {
	assert.Equal(t, dto.TypeAccountTranscript, Classify(accountTranscriptUnfiled))
	assert.Equal(t, dto.TypeRecordOfAccount, Classify("Record of Account\nsome lines"))
	assert.Equal(t, dto.TypeWageAndIncome, Classify(wageAndIncomeTranscript))
	assert.Equal(t, dto.TypeWageAndIncomeSummary, Classify(wageAndIncomeSummary))
	assert.Equal(t, dto.TypeUnknown, Classify("not a transcript at all"))
}

func TestClassifyAccountTranscriptWins(t *testing.T) {
	// Whole-document classification: the first matching header decides,
	// even when wage form markers appear later.
	content := "Account Transcript\nForm W-2\nWages, Tips and Other Compensation: $1.00"
	assert.Equal(t, dto.TypeAccountTranscript, Classify(content))
}

func TestClassifySummaryVetoedByFormMarkers(t *testing.T) {
	content := "Wage and Income Transcript\nWage & Income Summary\nForm W-2\n"
	assert.Equal(t, dto.TypeWageAndIncome, Classify(content))
}

func TestParseAccountTranscript(t *testing.T) {
	parsed := ParseTranscript(accountTranscriptUnfiled)

	assert.Equal(t, dto.TypeAccountTranscript, parsed.Type)
	assert.Equal(t, "100200300", parsed.TrackingNumber)
	assert.Equal(t, "2018", parsed.TaxPeriod)
	assert.Equal(t, "XXX-XX-2171", parsed.SSN)
	assert.False(t, parsed.ReturnFiled)

	// Flat income shape, never form-nested.
	assert.Nil(t, parsed.Forms)
	assert.Equal(t, "8,938.00", parsed.Fields["ADJUSTED GROSS INCOME"])
	assert.Equal(t, "Single", parsed.Fields["FILING STATUS"])

	assert.Contains(t, parsed.Details, dto.Detail{Label: "TAXABLE INCOME", Value: "0.00"})
}

func TestParseAccountTranscriptReturnFiled(t *testing.T) {
	parsed := ParseTranscript(accountTranscriptFiled)

	assert.True(t, parsed.ReturnFiled)
	assert.Equal(t, "2019", parsed.TaxPeriod)
	assert.Equal(t, "4,331.00", parsed.Fields["TAX PER RETURN"])
}

func TestParseKeepsFirstTrackingNumberAndSSN(t *testing.T) {
	content := "Account Transcript\n" +
		"Tracking Number: 111\n" +
		"Tracking Number: 222\n" +
		"SSN Provided: 123-45-6789\n" +
		"SSN Provided: 987-65-4321\n"
	parsed := ParseTranscript(content)

	assert.Equal(t, "111", parsed.TrackingNumber)
	assert.Equal(t, "123-45-6789", parsed.SSN)
}

func TestParseWageAndIncomeTranscript(t *testing.T) {
	parsed := ParseTranscript(wageAndIncomeTranscript)

	assert.Equal(t, dto.TypeWageAndIncome, parsed.Type)
	assert.Equal(t, "2020", parsed.TaxPeriod)
	assert.Nil(t, parsed.Fields)

	w2 := parsed.Forms["W-2"]
	require.NotNil(t, w2)
	assert.Equal(t, "$586.00", w2.Income["Wages, Tips and Other Compensation"])
	assert.Equal(t, "$0.00", w2.Withholdings["Federal Income Tax Withheld"])
	assert.NotContains(t, w2.Withholdings, "Wages, Tips and Other Compensation")

	nec := parsed.Forms["1099-NEC"]
	require.NotNil(t, nec)
	assert.Equal(t, "$2,400.00", nec.Income["Non-Employee Compensation"])
	assert.Equal(t, "$120.00", nec.Withholdings["Federal Income Tax Withheld"])

	// Unrecognized labels stay out of the income shape but keep their
	// provenance in details.
	assert.NotContains(t, w2.Income, "Employer Identification Number (EIN)")
	assert.Contains(t, parsed.Details, dto.Detail{Label: "Employer Identification Number (EIN)", Value: "93-1234567"})
}

func TestParseWageAndIncomeSummary(t *testing.T) {
	parsed := ParseTranscript(wageAndIncomeSummary)

	assert.Equal(t, dto.TypeWageAndIncomeSummary, parsed.Type)
	assert.Nil(t, parsed.Forms)
	assert.Equal(t, "11,200.00", parsed.Fields["Wages, tips, other comp."])
	assert.Equal(t, "2017", parsed.TaxPeriod)
}

func TestParseUnknownDocument(t *testing.T) {
	parsed := ParseTranscript("completely unrelated text\nwith no patterns")

	assert.Equal(t, dto.TypeUnknown, parsed.Type)
	assert.Equal(t, "Unknown", parsed.TaxPeriod)
	assert.Empty(t, parsed.SSN)
	assert.Empty(t, parsed.TrackingNumber)
	assert.False(t, parsed.ReturnFiled)
	assert.Empty(t, parsed.Details)
}

func TestParseDiscardsEmptyLabelsAndValues(t *testing.T) {
	content := "Account Transcript\nEmployer:\n: orphan value\nFILING STATUS: Single\n"
	parsed := ParseTranscript(content)

	assert.Len(t, parsed.Details, 1)
	assert.Equal(t, "FILING STATUS", parsed.Details[0].Label)
}

func TestParseIdempotent(t *testing.T) {
	first := ParseTranscript(wageAndIncomeTranscript)
	second := ParseTranscript(wageAndIncomeTranscript)
	assert.Equal(t, first, second)
}

func TestTaxYear(t *testing.T) {
	assert.Equal(t, "2018", TaxYear("2018"))
	assert.Equal(t, "2019", TaxYear("Dec. 31, 2019"))
	assert.Equal(t, "Unknown", TaxYear("Unknown"))
	assert.Equal(t, "Unknown", TaxYear(""))
}

func TestLastFourSSN(t *testing.T) {
	assert.Equal(t, "2171", LastFourSSN("XXX-XX-2171"))
	assert.Equal(t, "6789", LastFourSSN("123-45-6789"))
	assert.Equal(t, "Unknown", LastFourSSN(""))
	assert.Equal(t, "Unknown", LastFourSSN("123"))
}
