package constvars

const (
	ResponseUnknown = "unknown"

	SyncSuccessMessage        = "Successfully synced"
	RecordGetSuccessMessage   = "Successfully fetched record"
	RecordListSuccessMessage  = "Successfully fetched records"
	PatientGetSuccessMessage  = "Successfully fetched patient"
	PatientListSuccessMessage = "Successfully fetched patients"
	ExportSuccessMessage      = "Successfully exported daily records"
)
