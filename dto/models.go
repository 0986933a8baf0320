package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TranscriptType identifies the family of an IRS transcript document.
// It is decided once, from the whole document text, before any line-level
// field is attributed.
type TranscriptType string

const (
	TypeAccountTranscript    TranscriptType = "Account Transcript"
	TypeRecordOfAccount      TranscriptType = "Record of Account"
	TypeWageAndIncome        TranscriptType = "Wage and Income Transcript"
	TypeWageAndIncomeSummary TranscriptType = "Wage and Income Summary"
	TypeUnknown              TranscriptType = "Unknown"
)

// FormNested reports whether income values for this transcript type are
// grouped under individual form identifiers rather than stored flat.
func (t TranscriptType) FormNested() bool {
	return t == TypeWageAndIncome
}

// Detail is one colon-delimited line of the source document, in document
// order. Details keep raw provenance even for values that are also
// projected into the income shape.
type Detail struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// FormIncome holds the recognized lines of a single information return
// (W-2, 1099-NEC, ...) inside a Wage and Income Transcript.
type FormIncome struct {
	Income       map[string]string `json:"income"`
	Withholdings map[string]string `json:"withholdings"`
}

// ParsedTranscript is the structured result of parsing one document.
// At most one of Fields and Forms is populated, keyed off Type: Account
// Transcript, Record of Account and Wage and Income Summary documents use
// the flat Fields map, Wage and Income Transcripts use Forms. Unknown
// documents populate neither.
type ParsedTranscript struct {
	Type           TranscriptType         `json:"transcript_type"`
	TrackingNumber string                 `json:"tracking_number,omitempty"`
	TaxPeriod      string                 `json:"tax_period"`
	SSN            string                 `json:"ssn"`
	ReturnFiled    bool                   `json:"return_filed"`
	Details        []Detail               `json:"details"`
	Fields         map[string]string      `json:"fields,omitempty"`
	Forms          map[string]*FormIncome `json:"forms,omitempty"`
}

// StoredDocument is one uploaded file held in the in-memory document set.
type StoredDocument struct {
	ID         string           `json:"id"`
	Filename   string           `json:"filename"`
	UploadedAt time.Time        `json:"uploaded_at"`
	Transcript ParsedTranscript `json:"transcript"`
}

// ClientYearSummary is the aggregated view of one (SSN last four, tax year)
// pair. Monetary fields stay numeric here; Formatted produces the
// external-facing representation.
type ClientYearSummary struct {
	SSNLastFour         string
	TaxYear             string
	ReturnFiled         string
	FilingStatus        string
	CurrentBalance      decimal.Decimal
	BalancePlusAccruals decimal.Decimal
	AdjustedGrossIncome decimal.Decimal
	TaxableIncome       decimal.Decimal
	TaxPerReturn        decimal.Decimal
	ProjectedAmountOwed decimal.Decimal
	IncomeTypes         string
}

// ClientYearSummaryRow is the boundary representation of a summary row:
// every currency value rendered as a fixed two-decimal string with a
// leading dollar sign.
type ClientYearSummaryRow struct {
	SSNLastFour         string `json:"ssn_last_four"`
	TaxYear             string `json:"tax_year"`
	ReturnFiled         string `json:"return_filed"`
	FilingStatus        string `json:"filing_status"`
	CurrentBalance      string `json:"current_balance"`
	BalancePlusAccruals string `json:"balance_plus_accruals"`
	AdjustedGrossIncome string `json:"adjusted_gross_income"`
	TaxableIncome       string `json:"taxable_income"`
	TaxPerReturn        string `json:"tax_per_return"`
	ProjectedAmountOwed string `json:"projected_amount_owed"`
	IncomeTypes         string `json:"income_types"`
}

// Formatted renders the summary row for external consumers.
func (s ClientYearSummary) Formatted() ClientYearSummaryRow {
	return ClientYearSummaryRow{
		SSNLastFour:         s.SSNLastFour,
		TaxYear:             s.TaxYear,
		ReturnFiled:         s.ReturnFiled,
		FilingStatus:        s.FilingStatus,
		CurrentBalance:      USD(s.CurrentBalance),
		BalancePlusAccruals: USD(s.BalancePlusAccruals),
		AdjustedGrossIncome: USD(s.AdjustedGrossIncome),
		TaxableIncome:       USD(s.TaxableIncome),
		TaxPerReturn:        USD(s.TaxPerReturn),
		ProjectedAmountOwed: USD(s.ProjectedAmountOwed),
		IncomeTypes:         s.IncomeTypes,
	}
}

// USD formats an amount as a fixed two-decimal dollar string.
func USD(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// LivingStandards is the allowable-expense table attached to a projection
// for display. It does not feed the projected amount owed.
type LivingStandards struct {
	FoodClothingMisc     decimal.Decimal `json:"food_clothing_misc"`
	HousingUtilities     decimal.Decimal `json:"housing_utilities"`
	VehicleOwnership     decimal.Decimal `json:"vehicle_ownership"`
	VehicleOperatingCost decimal.Decimal `json:"vehicle_operating_cost"`
	PublicTransportation decimal.Decimal `json:"public_transportation"`
	HealthInsurance      decimal.Decimal `json:"health_insurance"`
	PrescriptionsCopays  decimal.Decimal `json:"prescriptions_copays"`
}

// TaxProjection is the liability estimate for one transcript. County and
// state are carried for display; the current standards table is not
// jurisdiction specific.
type TaxProjection struct {
	IncomeSubjectToSETax    decimal.Decimal `json:"income_subject_to_se_tax"`
	IncomeNotSubjectToSETax decimal.Decimal `json:"income_not_subject_to_se_tax"`
	Withholding             decimal.Decimal `json:"withholding"`
	TotalIncome             decimal.Decimal `json:"total_income"`
	ProjectedTax            decimal.Decimal `json:"projected_tax"`
	ProjectedAmountOwed     decimal.Decimal `json:"projected_amount_owed"`
	Standards               LivingStandards `json:"irs_standards"`
	County                  string          `json:"county"`
	State                   string          `json:"state"`
}
