package dto

import "errors"

var (
	ErrNoFiles              = errors.New("no files provided")
	ErrInvalidHouseholdSize = errors.New("household size must be at least 1")
)

// ErrorResponse is the structured error envelope returned by the API.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// UploadResponse returns the documents parsed from one upload batch.
type UploadResponse struct {
	Documents   []StoredDocument `json:"documents"`
	Count       int              `json:"count"`
	ProcessedAt string           `json:"processed_at"`
}

// SummaryResponse carries the aggregated per-client rows plus the totals
// the dashboard shows alongside them.
type SummaryResponse struct {
	Rows                     []ClientYearSummaryRow `json:"rows"`
	TotalBalancePlusAccruals string                 `json:"total_balance_plus_accruals"`
	TotalProjectedAmountOwed string                 `json:"total_projected_amount_owed"`
	GeneratedAt              string                 `json:"generated_at"`
}

// ProjectionResponse pairs a parsed transcript with its projection.
type ProjectionResponse struct {
	Transcript ParsedTranscript `json:"transcript"`
	Projection TaxProjection    `json:"projection"`
}
