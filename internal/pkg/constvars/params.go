package constvars

const (
	URLParamRecordID  = "record_id"
	URLParamPatientID = "patient_id"
)

const (
	URLQueryParamFacilityName = "facility_name"
	URLQueryParamStartDate    = "start_date"
	URLQueryParamEndDate      = "end_date"
	URLQueryParamLimit        = "limit"
)
