package models

// MedicalRecord is the canonical flat shape every raw upload is normalized
// into before validation and persistence. The persisted document is the
// normalized map itself so unrecognized fields survive round trips; this type
// exists to give the validator a declarative schema and the pipeline typed
// access to the fields it needs.
type MedicalRecord struct {
	ID              string          `json:"id" bson:"_id" validate:"required"`
	LivwiseRecordID string          `json:"livwise_record_id" bson:"livwise_record_id" validate:"required"`
	FacilityName    string          `json:"facility_name" bson:"facility_name" validate:"required"`
	BranchName      string          `json:"branch_name" bson:"branch_name" validate:"required"`
	LocationCode    string          `json:"location_code" bson:"location_code" validate:"required"`
	OperatorDetails OperatorDetails `json:"operator_details" bson:"operator_details"`
	PatientDetails  PatientDetails  `json:"patient_details" bson:"patient_details"`
	Observations    []Observation   `json:"observations" bson:"observations" validate:"required,min=1,dive"`
	OperatorNotes   string          `json:"operator_notes,omitempty" bson:"operator_notes,omitempty"`
	CreatedAt       string          `json:"created_at" bson:"created_at" validate:"required,iso8601"`
	SyncMetadata    *SyncMetadata   `json:"sync_metadata,omitempty" bson:"sync_metadata,omitempty"`
}

type OperatorDetails struct {
	OperatorID   string `json:"operator_id" bson:"operator_id" validate:"required"`
	OperatorName string `json:"operator_name" bson:"operator_name" validate:"required"`
}

type PatientDetails struct {
	PatientID                string `json:"patient_id" bson:"patient_id" validate:"required"`
	PatientMRN               string `json:"patient_mrn" bson:"patient_mrn" validate:"required"`
	FirstName                string `json:"first_name" bson:"first_name" validate:"required"`
	LastName                 string `json:"last_name" bson:"last_name" validate:"required"`
	DOB                      string `json:"dob" bson:"dob" validate:"required,dob"`
	Gender                   string `json:"gender" bson:"gender" validate:"required,oneof=Male Female Other"`
	Mobile                   string `json:"mobile" bson:"mobile" validate:"required,min=10"`
	Email                    string `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	ConsentToStoreHealthInfo bool   `json:"consent_to_store_health_info" bson:"consent_to_store_health_info"`
	Address1                 string `json:"address_1" bson:"address_1" validate:"required"`
	Address2                 string `json:"address_2,omitempty" bson:"address_2,omitempty"`
	AddressCity              string `json:"address_city" bson:"address_city" validate:"required"`
	AddressState             string `json:"address_state" bson:"address_state" validate:"required"`
	AddressPincode           string `json:"address_pincode" bson:"address_pincode" validate:"required,pincode"`
	PatientPhoto             string `json:"patient_photo,omitempty" bson:"patient_photo,omitempty" validate:"omitempty,url"`
	// PatientPhotoBlob carries an inline base64 image on input only. The blob
	// extractor consumes it before persistence.
	PatientPhotoBlob string `json:"patient_photo_blob,omitempty" bson:"-"`
}

type Observation struct {
	DiagnosticCategory  string         `json:"diagnostic_category" bson:"diagnostic_category" validate:"required"`
	DiagnosticCode      string         `json:"diagnostic_code" bson:"diagnostic_code" validate:"required"`
	DiagnosticName      string         `json:"diagnostic_name" bson:"diagnostic_name" validate:"required"`
	PatientVitals       []PatientVital `json:"patient_vitals" bson:"patient_vitals" validate:"required,min=1,dive"`
	S3ObjectURL         string         `json:"s3_object_url,omitempty" bson:"s3_object_url,omitempty" validate:"omitempty,url"`
	DiagnosticStatus    string         `json:"diagnostic_status,omitempty" bson:"diagnostic_status,omitempty"`
	ExceptionMessage    string         `json:"exception_message,omitempty" bson:"exception_message,omitempty"`
	TestDurationMinutes int            `json:"test_duration_minutes" bson:"test_duration_minutes" validate:"required,gt=0"`
	ObservationNotes    string         `json:"observation_notes,omitempty" bson:"observation_notes,omitempty"`
	// RawData accepts either a sequence of RawDataItem or an arbitrary legacy
	// object. It is resolved and removed by the blob extractor, never persisted.
	RawData interface{} `json:"raw_data,omitempty" bson:"-"`
}

type RawDataItem struct {
	Data      string `json:"data,omitempty"`
	RawFormat string `json:"raw_format,omitempty"`
	RawSize   int64  `json:"raw_size" validate:"required,gt=0"`
	Filename  string `json:"filename,omitempty"`
}

type PatientVital struct {
	VitalType     string   `json:"vital_type" bson:"vital_type" validate:"required"`
	ObservedValue *float64 `json:"observed_value" bson:"observed_value" validate:"required"`
	UnitOfMeasure string   `json:"unit_of_measure,omitempty" bson:"unit_of_measure,omitempty"`
}

// SyncMetadata is written exclusively by the pipeline; anything the caller
// supplies under the same name is overwritten before persistence.
type SyncMetadata struct {
	DeviceID   string   `json:"device_id" bson:"device_id" validate:"required"`
	OperatorID string   `json:"operator_id,omitempty" bson:"operator_id,omitempty"`
	SyncedAt   string   `json:"synced_at" bson:"synced_at" validate:"required,iso8601"`
	SyncStatus string   `json:"sync_status" bson:"sync_status" validate:"required,oneof=PENDING SYNCED ERROR"`
	Latitude   *float64 `json:"latitude,omitempty" bson:"latitude,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Longitude  *float64 `json:"longitude,omitempty" bson:"longitude,omitempty" validate:"omitempty,gte=-180,lte=180"`
}
