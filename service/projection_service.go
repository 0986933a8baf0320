package service

import (
	"github.com/shopspring/decimal"

	"github.com/mwhitfield/tax-transcript-analyzer/dto"
	"github.com/mwhitfield/tax-transcript-analyzer/utils"
	"github.com/mwhitfield/tax-transcript-analyzer/utils/formfields"
)

// Reference bracket schedule. Deliberately simplified, not the statutory
// IRS schedule.
var (
	bracketLow  = decimal.NewFromInt(10000)
	bracketHigh = decimal.NewFromInt(50000)
	rateLow     = decimal.NewFromFloat(0.10)
	rateMid     = decimal.NewFromFloat(0.15)
	rateHigh    = decimal.NewFromFloat(0.25)
	baseMid     = decimal.NewFromInt(1000)
	baseHigh    = decimal.NewFromInt(7000)
)

// Flat-shaped transcripts contribute only these labels to projected income.
const (
	labelAdjustedGrossIncome = "ADJUSTED GROSS INCOME"
	labelTaxableIncome       = "TAXABLE INCOME"
)

type ProjectionService struct{}

func NewProjectionService() *ProjectionService {
	return &ProjectionService{}
}

// Project estimates the liability for one transcript. All extracted values
// are treated permissively (missing fields count as zero); the only hard
// error is a household size below 1.
func (p *ProjectionService) Project(t dto.ParsedTranscript, householdSize int, county, state string) (*dto.TaxProjection, error) {
	if householdSize < 1 {
		return nil, dto.ErrInvalidHouseholdSize
	}

	se := decimal.Zero
	nonSE := decimal.Zero
	withheld := decimal.Zero

	switch t.Type {
	case dto.TypeWageAndIncome:
		for form, fi := range t.Forms {
			subjectToSE := formfields.SubjectToSETax(form)
			for _, v := range fi.Income {
				amount := utils.ToAmount(v)
				if subjectToSE {
					se = se.Add(amount)
				} else {
					nonSE = nonSE.Add(amount)
				}
			}
			for _, v := range fi.Withholdings {
				withheld = withheld.Add(utils.ToAmount(v))
			}
		}
	case dto.TypeAccountTranscript, dto.TypeRecordOfAccount, dto.TypeWageAndIncomeSummary:
		nonSE = nonSE.
			Add(utils.ToAmount(t.Fields[labelAdjustedGrossIncome])).
			Add(utils.ToAmount(t.Fields[labelTaxableIncome]))
	}

	total := se.Add(nonSE)
	tax := bracketTax(total)
	owed := tax.Sub(withheld)
	if owed.IsNegative() {
		owed = decimal.Zero
	}

	return &dto.TaxProjection{
		IncomeSubjectToSETax:    se,
		IncomeNotSubjectToSETax: nonSE,
		Withholding:             withheld,
		TotalIncome:             total,
		ProjectedTax:            tax,
		ProjectedAmountOwed:     owed,
		Standards:               livingStandards(householdSize),
		County:                  county,
		State:                   state,
	}, nil
}

func bracketTax(total decimal.Decimal) decimal.Decimal {
	switch {
	case total.LessThanOrEqual(bracketLow):
		return total.Mul(rateLow)
	case total.LessThanOrEqual(bracketHigh):
		return baseMid.Add(total.Sub(bracketLow).Mul(rateMid))
	default:
		return baseHigh.Add(total.Sub(bracketHigh).Mul(rateHigh))
	}
}

// livingStandards builds the allowable-expense table for a household.
// County and state do not influence the table yet; jurisdiction-specific
// tables would slot in here.
func livingStandards(householdSize int) dto.LivingStandards {
	perPerson := decimal.NewFromInt(int64(householdSize))
	return dto.LivingStandards{
		FoodClothingMisc:     decimal.NewFromInt(733).Mul(perPerson),
		HousingUtilities:     decimal.NewFromInt(2110),
		VehicleOwnership:     decimal.NewFromInt(588),
		VehicleOperatingCost: decimal.NewFromInt(308),
		PublicTransportation: decimal.NewFromInt(217),
		HealthInsurance:      decimal.NewFromInt(68).Mul(perPerson),
		PrescriptionsCopays:  decimal.NewFromInt(55).Mul(perPerson),
	}
}
