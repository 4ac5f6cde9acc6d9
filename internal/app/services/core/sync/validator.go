package sync

import (
	"fmt"
	"livwise-service/internal/app/models"
	"livwise-service/internal/pkg/constvars"
	"livwise-service/internal/pkg/exceptions"
	"livwise-service/internal/pkg/utils"

	"github.com/goccy/go-json"
)

// DecodeAndValidateRecord checks one canonical record document against the
// full per-record contract. The document itself stays the unit of work; the
// decoded model gives the rest of the pipeline typed access to the fields it
// needs (ids, names, diagnostic codes).
func DecodeAndValidateRecord(document map[string]interface{}) (*models.MedicalRecord, error) {
	payload, err := json.Marshal(document)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	var record models.MedicalRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, errRecordValidation(err.Error())
	}

	if err := utils.ValidateStruct(&record); err != nil {
		return nil, errRecordValidation(utils.FormatAllValidationErrors(err))
	}

	return &record, nil
}

func errRecordValidation(violations string) *exceptions.CustomError {
	message := fmt.Sprintf("%s: %s", constvars.ErrClientRecordValidationPrefix, violations)
	return exceptions.BuildNewCustomError(nil, constvars.StatusBadRequest, message, constvars.ErrDevValidationFailed)
}
