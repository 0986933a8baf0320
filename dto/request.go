package dto

// ProjectionRequest runs the projection engine on a raw document text with
// explicit household parameters. HouseholdSize defaults to 1 when omitted;
// a value below 1 is rejected. County and state are free-form and default
// to "Unknown".
type ProjectionRequest struct {
	Content       string `json:"content" binding:"required"`
	HouseholdSize int    `json:"household_size"`
	County        string `json:"county"`
	State         string `json:"state"`
}
