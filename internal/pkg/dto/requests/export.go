package requests

// ExportDailyRecords selects either a single date or an inclusive range.
// With no date at all, the previous day is exported.
type ExportDailyRecords struct {
	Date         string `json:"date,omitempty" validate:"omitempty,dob"`
	StartDate    string `json:"startDate,omitempty" validate:"omitempty,dob"`
	EndDate      string `json:"endDate,omitempty" validate:"omitempty,dob"`
	FacilityName string `json:"facilityName,omitempty"`
}
