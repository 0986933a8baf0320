package utils

import (
	"regexp"
	"strings"

	"github.com/mwhitfield/tax-transcript-analyzer/dto"
	"github.com/mwhitfield/tax-transcript-analyzer/utils/formfields"
)

var (
	trackingNumberPattern = regexp.MustCompile(`Tracking Number[:\s]*([\d]+)`)
	taxPeriodPattern      = regexp.MustCompile(`Tax Period[:\s]*([\d-]+)|TAX PERIOD[:\s]*([A-Za-z\s\d.,]+)|Tax Period Requested[:\s]*([A-Za-z\s\d.,]+)`)
	ssnPattern            = regexp.MustCompile(`SSN Provided[:\s]*([\d-]+)|TAXPAYER IDENTIFICATION NUMBER[:\s]*([\d-]+|XXX-XX-\d{4})`)
	formPattern           = regexp.MustCompile(`Form\s+([\w-]+)`)
	yearPattern           = regexp.MustCompile(`\d{4}`)
)

// summaryVetoForms: a Wage & Income Summary header is only trusted when
// none of these form markers appear anywhere in the document.
var summaryVetoForms = []string{"W-2", "1099-MISC", "1099-NEC", "1099-G", "1099-DIV"}

// returnPostedCode is the IRS transaction code for a posted return. The
// check is a coarse substring test, not a structured transaction-code
// parse; false positives are an accepted limitation.
const returnPostedCode = "150"

// ParseTranscript classifies a raw transcript text and extracts its
// identifying fields and income lines in a single pass. It never fails:
// a document matching nothing yields a ParsedTranscript with default
// fields and an Unknown type.
func ParseTranscript(content string) dto.ParsedTranscript {
	t := dto.ParsedTranscript{
		Type:      Classify(content),
		TaxPeriod: "Unknown",
	}

	switch t.Type {
	case dto.TypeAccountTranscript, dto.TypeRecordOfAccount, dto.TypeWageAndIncomeSummary:
		t.Fields = make(map[string]string)
	case dto.TypeWageAndIncome:
		t.Forms = make(map[string]*dto.FormIncome)
	}

	currentForm := ""
	for _, line := range strings.Split(content, "\n") {
		if t.TrackingNumber == "" {
			if m := trackingNumberPattern.FindStringSubmatch(line); m != nil {
				t.TrackingNumber = m[1]
			}
		}

		if m := taxPeriodPattern.FindStringSubmatch(line); m != nil {
			if raw := firstNonEmpty(m[1], m[2], m[3]); raw != "" {
				if year := yearPattern.FindString(raw); year != "" {
					t.TaxPeriod = year
				} else {
					t.TaxPeriod = "Unknown"
				}
			}
		}

		if t.SSN == "" {
			if m := ssnPattern.FindStringSubmatch(line); m != nil {
				t.SSN = firstNonEmpty(m[1], m[2])
			}
		}

		if strings.Contains(line, returnPostedCode) {
			t.ReturnFiled = true
		}

		if m := formPattern.FindStringSubmatch(line); m != nil {
			currentForm = m[1]
			if t.Type == dto.TypeWageAndIncome {
				if _, ok := t.Forms[currentForm]; !ok {
					t.Forms[currentForm] = &dto.FormIncome{
						Income:       make(map[string]string),
						Withholdings: make(map[string]string),
					}
				}
			}
		}

		idx := strings.Index(line, ":")
		if idx < 0 {
			continue
		}
		label := strings.TrimSpace(line[:idx])
		value := strings.TrimSpace(line[idx+1:])
		if label == "" || value == "" {
			continue
		}
		t.Details = append(t.Details, dto.Detail{Label: label, Value: value})

		switch t.Type {
		case dto.TypeAccountTranscript, dto.TypeRecordOfAccount, dto.TypeWageAndIncomeSummary:
			t.Fields[label] = value
		case dto.TypeWageAndIncome:
			if currentForm == "" {
				continue
			}
			switch {
			case formfields.IsIncomeField(currentForm, label):
				t.Forms[currentForm].Income[label] = value
			case formfields.IsWithholdingField(currentForm, label):
				t.Forms[currentForm].Withholdings[label] = value
			}
		}
	}

	return t
}

// Classify determines the transcript type from the whole document text,
// first match wins.
func Classify(content string) dto.TranscriptType {
	switch {
	case strings.Contains(content, "Account Transcript"):
		return dto.TypeAccountTranscript
	case strings.Contains(content, "Record of Account"):
		return dto.TypeRecordOfAccount
	case strings.Contains(content, "Wage and Income Transcript"):
		if strings.Contains(content, "Wage & Income Summary") && !containsAny(content, summaryVetoForms) {
			return dto.TypeWageAndIncomeSummary
		}
		return dto.TypeWageAndIncome
	default:
		return dto.TypeUnknown
	}
}

// TaxYear normalizes a tax period to a bare 4-digit year, "Unknown" when
// no year can be extracted.
func TaxYear(period string) string {
	if year := yearPattern.FindString(period); year != "" {
		return year
	}
	return "Unknown"
}

// LastFourSSN returns the last four characters of an SSN string, masked or
// not, "Unknown" when the string is too short to carry them.
func LastFourSSN(ssn string) string {
	if len(ssn) < 4 {
		return "Unknown"
	}
	return ssn[len(ssn)-4:]
}

func containsAny(content string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(content, marker) {
			return true
		}
	}
	return false
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
