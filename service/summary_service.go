package service

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mwhitfield/tax-transcript-analyzer/dto"
	"github.com/mwhitfield/tax-transcript-analyzer/logger"
	"github.com/mwhitfield/tax-transcript-analyzer/utils"
)

const unknownValue = "Unknown"

// Anchor substrings into known transcript boilerplate. Brittle on purpose:
// format drift only requires updating these two accessors.
const (
	currentBalanceAnchor      = "Current Balance"
	balancePlusAccrualsAnchor = "(this is not a payoff amount)"
)

// Flat labels on a Wage & Income Summary that indicate a form was reported.
var summaryLabelForms = map[string]string{
	"Wages, tips, other comp.": "W-2",
	"Nonemployee compensation": "1099-MISC",
}

type SummaryService struct {
	projections *ProjectionService
}

func NewSummaryService(projections *ProjectionService) *SummaryService {
	return &SummaryService{projections: projections}
}

type summaryKey struct {
	ssnLastFour string
	taxYear     string
}

// Summarize merges parsed transcripts into exactly one row per
// (SSN last four, tax year) pair. Account-type documents overwrite a row's
// identity and balance fields, last contributor in input order wins.
// Unfiled transcripts get a projected amount owed from the projection
// engine with default household parameters; filed years carry the
// IRS-stated tax per return instead.
func (s *SummaryService) Summarize(transcripts []dto.ParsedTranscript) []dto.ClientYearSummary {
	rows := make(map[summaryKey]*dto.ClientYearSummary)
	incomeTypes := make(map[summaryKey]map[string]bool)
	var order []summaryKey

	for _, t := range transcripts {
		key := summaryKey{
			ssnLastFour: utils.LastFourSSN(t.SSN),
			taxYear:     utils.TaxYear(t.TaxPeriod),
		}

		row, ok := rows[key]
		if !ok {
			row = &dto.ClientYearSummary{
				SSNLastFour:  key.ssnLastFour,
				TaxYear:      key.taxYear,
				ReturnFiled:  "No",
				FilingStatus: unknownValue,
				IncomeTypes:  unknownValue,
			}
			rows[key] = row
			incomeTypes[key] = make(map[string]bool)
			order = append(order, key)
		}

		switch t.Type {
		case dto.TypeAccountTranscript, dto.TypeRecordOfAccount:
			row.ReturnFiled = yesNo(t.ReturnFiled)
			row.FilingStatus = fieldOrUnknown(t.Fields, "FILING STATUS")
			row.CurrentBalance = detailAmount(t.Details, currentBalanceAnchor)
			row.BalancePlusAccruals = detailAmount(t.Details, balancePlusAccrualsAnchor)
			row.AdjustedGrossIncome = utils.ToAmount(t.Fields[labelAdjustedGrossIncome])
			row.TaxableIncome = utils.ToAmount(t.Fields[labelTaxableIncome])
			row.TaxPerReturn = utils.ToAmount(t.Fields["TAX PER RETURN"])
		case dto.TypeWageAndIncome:
			for form := range t.Forms {
				incomeTypes[key][form] = true
			}
		case dto.TypeWageAndIncomeSummary:
			for label, form := range summaryLabelForms {
				if _, ok := t.Fields[label]; ok {
					incomeTypes[key][form] = true
				}
			}
		}

		if !t.ReturnFiled {
			projection, err := s.projections.Project(t, 1, unknownValue, unknownValue)
			if err != nil {
				logger.Warn("projection failed for unfiled transcript",
					zap.String("ssn_last_four", key.ssnLastFour),
					zap.String("tax_year", key.taxYear),
					zap.Error(err))
			} else {
				row.ProjectedAmountOwed = projection.ProjectedAmountOwed
			}
		}
	}

	out := make([]dto.ClientYearSummary, 0, len(order))
	for _, key := range order {
		row := rows[key]
		if forms := incomeTypes[key]; len(forms) > 0 {
			row.IncomeTypes = joinSorted(forms)
		}
		out = append(out, *row)
	}
	return out
}

// detailAmount returns the value of the first detail line whose label
// contains anchor, zero when no line matches.
func detailAmount(details []dto.Detail, anchor string) decimal.Decimal {
	for _, d := range details {
		if strings.Contains(d.Label, anchor) {
			return utils.ToAmount(d.Value)
		}
	}
	return decimal.Zero
}

func fieldOrUnknown(fields map[string]string, label string) string {
	if v, ok := fields[label]; ok && v != "" {
		return v
	}
	return unknownValue
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func joinSorted(set map[string]bool) string {
	forms := make([]string, 0, len(set))
	for form := range set {
		forms = append(forms, form)
	}
	sort.Strings(forms)
	return strings.Join(forms, ", ")
}
