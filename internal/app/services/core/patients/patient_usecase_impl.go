package patients

import (
	"context"
	"fmt"
	"livwise-service/internal/pkg/dto/responses"
	"livwise-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type patientUsecase struct {
	Log               *zap.Logger
	PatientRepository PatientRepository
}

func NewPatientUsecase(log *zap.Logger, patientRepository PatientRepository) PatientUsecase {
	return &patientUsecase{
		Log:               log,
		PatientRepository: patientRepository,
	}
}

func (uc *patientUsecase) ListPatients(ctx context.Context) (*responses.PatientList, error) {
	results, err := uc.PatientRepository.FindDistinctPatients(ctx)
	if err != nil {
		return nil, err
	}

	return &responses.PatientList{
		Patients: results,
		Count:    len(results),
	}, nil
}

func (uc *patientUsecase) GetPatientByID(ctx context.Context, patientID string) (map[string]interface{}, error) {
	record, err := uc.PatientRepository.FindLatestRecordByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, exceptions.ErrPatientNotFound(fmt.Errorf("patient %s not found", patientID))
	}

	details, ok := record["patient_details"].(map[string]interface{})
	if !ok || len(details) == 0 {
		return nil, exceptions.ErrPatientDetailsMissing(fmt.Errorf("record for patient %s has no patient details", patientID))
	}

	return details, nil
}
