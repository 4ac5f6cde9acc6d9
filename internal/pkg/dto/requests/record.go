package requests

type ListRecords struct {
	FacilityName string `json:"facilityName,omitempty"`
	StartDate    string `json:"startDate,omitempty" validate:"omitempty,dob"`
	EndDate      string `json:"endDate,omitempty" validate:"omitempty,dob"`
	Limit        int    `json:"limit,omitempty" validate:"omitempty,gt=0"`
}
