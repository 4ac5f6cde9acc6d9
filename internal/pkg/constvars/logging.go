package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"

	LoggingDeviceIDKey    = "device_id"
	LoggingOperatorIDKey  = "operator_id"
	LoggingRecordIDKey    = "record_id"
	LoggingPatientIDKey   = "patient_id"
	LoggingObjectKeyKey   = "object_key"
	LoggingObservationKey = "observation_index"
	LoggingFileIndexKey   = "file_index"
)
