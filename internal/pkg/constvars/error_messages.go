package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":  "is required",
	"email":     "must be a valid email",
	"min":       "must be at least %s",
	"max":       "must be at most %s",
	"gt":        "must be greater than %s",
	"gte":       "must be greater than or equal to %s",
	"lt":        "must be less than %s",
	"lte":       "must be less than or equal to %s",
	"oneof":     "must be one of [%s]",
	"numeric":   "must be a number",
	"url":       "must be a valid URL",
	"latitude":  "must be between -90 and 90",
	"longitude": "must be between -180 and 180",
	"dob":       "must match YYYY-MM-DD",
	"pincode":   "must be 5-6 digits",
	"gender":    "must be one of [Male Female Other]",
	"iso8601":   "must be a valid ISO-8601 timestamp",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "cannot process request"
	ErrClientSomethingWrongWithApplication = "something is wrong with the application"
	ErrClientServerLongRespond             = "server took too long to respond"
	ErrClientNotAuthorized                 = "you are not authorized"
	ErrClientRecordNotFound                = "record not found"
	ErrClientPatientNotFound               = "patient not found"
	ErrClientRecordAlreadySynced           = "record already synced"
	ErrClientBatchValidationPrefix         = "Request validation failed"
	ErrClientRecordValidationPrefix        = "Validation failed"
	ErrClientPatientDetailsMissing         = "internal data inconsistency: patient details missing"
)

// Error messages for developers
const (
	ErrDevCannotParseJSON           = "failed to parse JSON request body"
	ErrDevCannotMarshalJSON         = "failed to marshal value to JSON"
	ErrDevValidationFailed          = "request validation failed"
	ErrDevServerDeadlineExceeded    = "server deadline exceeded"
	ErrDevAuthTokenMissing          = "authorization token is missing"
	ErrDevAuthTokenInvalidOrExpired = "authorization token is invalid or expired"

	ErrDevDBFailedToFindDocument     = "failed to find document(s) in MongoDB"
	ErrDevDBFailedToInsertDocument   = "failed to insert document to MongoDB"
	ErrDevDBFailedToReplaceDocument  = "failed to replace document in MongoDB"
	ErrDevDBFailedToIterateDocuments = "failed to iterate MongoDB documents"
	ErrDevDBRecordAlreadySynced      = "conditional write rejected: record already has sync_status SYNCED"

	ErrDevMinioFailedToCreateObject = "failed to create object in bucket %s"

	ErrDevRedisGetData = "failed to get data from Redis"
	ErrDevRedisSetData = "failed to set data to Redis"

	ErrDevRabbitMQPublish = "failed to publish message to RabbitMQ"

	ErrDevBase64Decode = "failed to decode base64 payload"
)
