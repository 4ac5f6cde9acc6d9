package utils

import (
	"livwise-service/internal/app/models"
	"livwise-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func observedValue(v float64) *float64 { return &v }

func validRecord() *models.MedicalRecord {
	return &models.MedicalRecord{
		ID:              "rec-1",
		LivwiseRecordID: "lw-rec-1",
		FacilityName:    "Main Clinic",
		BranchName:      "North",
		LocationCode:    "MC-01",
		CreatedAt:       "2025-08-30T10:15:00.000Z",
		OperatorDetails: models.OperatorDetails{
			OperatorID:   "op-1",
			OperatorName: "Ravi Kumar",
		},
		PatientDetails: models.PatientDetails{
			PatientID:      "pat-1",
			PatientMRN:     "MRN-0001",
			FirstName:      "Asha",
			LastName:       "Rao",
			DOB:            "1990-04-12",
			Gender:         "Female",
			Mobile:         "9876543210",
			Address1:       "12 High St",
			AddressCity:    "Pune",
			AddressState:   "MH",
			AddressPincode: "411001",
		},
		Observations: []models.Observation{
			{
				DiagnosticCategory: "Vitals",
				DiagnosticCode:     "BP",
				DiagnosticName:     "Blood Pressure",
				PatientVitals: []models.PatientVital{
					{VitalType: "systolic", ObservedValue: observedValue(120), UnitOfMeasure: "mmHg"},
				},
				TestDurationMinutes: 5,
			},
		},
	}
}

func TestValidateStruct(t *testing.T) {
	t.Run("Valid Record Passes", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(validRecord()))
	})

	t.Run("Missing Consent Is Allowed", func(t *testing.T) {
		record := validRecord()
		record.PatientDetails.ConsentToStoreHealthInfo = false
		assert.NoError(t, ValidateStruct(record), "consent false must not read as missing")
	})

	t.Run("Zero Vital Reading Is Allowed", func(t *testing.T) {
		record := validRecord()
		record.Observations[0].PatientVitals[0].ObservedValue = observedValue(0)
		assert.NoError(t, ValidateStruct(record), "an observed value of zero is a real reading")
	})

	t.Run("Missing Vital Reading Is Rejected", func(t *testing.T) {
		record := validRecord()
		record.Observations[0].PatientVitals[0].ObservedValue = nil
		assert.Error(t, ValidateStruct(record))
	})

	t.Run("Bad DOB Format", func(t *testing.T) {
		record := validRecord()
		record.PatientDetails.DOB = "12-04-1990"

		err := ValidateStruct(record)
		assert.Error(t, err)
		assert.Contains(t, FormatAllValidationErrors(err), "patient_details.dob: must match YYYY-MM-DD")
	})

	t.Run("Bad Pincode", func(t *testing.T) {
		record := validRecord()
		record.PatientDetails.AddressPincode = "41"

		err := ValidateStruct(record)
		assert.Error(t, err)
		assert.Contains(t, FormatAllValidationErrors(err), "patient_details.address_pincode: must be 5-6 digits")
	})

	t.Run("Bad Gender", func(t *testing.T) {
		record := validRecord()
		record.PatientDetails.Gender = "female"

		err := ValidateStruct(record)
		assert.Error(t, err)
		assert.Contains(t, FormatAllValidationErrors(err), "patient_details.gender: must be one of")
	})

	t.Run("Fractional Seconds Timestamp Accepted", func(t *testing.T) {
		record := validRecord()
		record.CreatedAt = "2025-08-30T10:15:00Z"
		assert.NoError(t, ValidateStruct(record))

		record.CreatedAt = "2025-08-30T10:15:00.123+05:30"
		assert.NoError(t, ValidateStruct(record))

		record.CreatedAt = "30 Aug 2025"
		assert.Error(t, ValidateStruct(record))
	})

	t.Run("Empty Observations Rejected", func(t *testing.T) {
		record := validRecord()
		record.Observations = nil

		err := ValidateStruct(record)
		assert.Error(t, err)
		assert.Contains(t, FormatAllValidationErrors(err), "observations: is required")
	})

	t.Run("All Violations Are Reported", func(t *testing.T) {
		record := validRecord()
		record.FacilityName = ""
		record.PatientDetails.DOB = "bad"

		message := FormatAllValidationErrors(ValidateStruct(record))
		assert.Contains(t, message, "facility_name: is required")
		assert.Contains(t, message, "patient_details.dob: must match YYYY-MM-DD")
	})
}

func TestValidateListRecordsRequest(t *testing.T) {
	t.Run("Valid Filters", func(t *testing.T) {
		request := &requests.ListRecords{
			FacilityName: "Main Clinic",
			StartDate:    "2025-08-01",
			EndDate:      "2025-08-31",
			Limit:        25,
		}
		assert.NoError(t, ValidateStruct(request))
	})

	t.Run("Bad Date Filter", func(t *testing.T) {
		request := &requests.ListRecords{StartDate: "08/01/2025"}

		err := ValidateStruct(request)
		assert.Error(t, err)
		assert.Contains(t, FormatAllValidationErrors(err), "startDate: must match YYYY-MM-DD")
	})

	t.Run("Negative Limit", func(t *testing.T) {
		request := &requests.ListRecords{Limit: -1}
		assert.Error(t, ValidateStruct(request))
	})
}
