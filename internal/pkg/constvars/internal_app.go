package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "requestID"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "isClientRequestID"
	CONTEXT_DEVICE_ID_KEY            ContextKey = "deviceID"
)

const (
	CollectionMedicalRecords = "medical_records"
)

const (
	SyncStatusPending = "PENDING"
	SyncStatusSynced  = "SYNCED"
	SyncStatusError   = "ERROR"
)

const (
	// Fallback record identifier reported when a failed raw record carries no id.
	UnknownRecordID = "unknown"

	// Records expire 7 years after sync.
	RecordRetentionDays = 2555
)

const (
	ObjectPrefixPatientImage = "medical-records/patient_image"
	ObjectPrefixRawData      = "medical-records/patient_test_images"
	ObjectPrefixLegacyRaw    = "records"
	ObjectPrefixDailyExport  = "daily-exports"

	DefaultPhotoExtension = "jpg"
)

const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

const (
	DefaultRecordsPageLimit = 50
)
