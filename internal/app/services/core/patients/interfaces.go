package patients

import (
	"context"
	"livwise-service/internal/pkg/dto/responses"
)

type PatientUsecase interface {
	ListPatients(ctx context.Context) (*responses.PatientList, error)
	GetPatientByID(ctx context.Context, patientID string) (map[string]interface{}, error)
}

type PatientRepository interface {
	FindDistinctPatients(ctx context.Context) ([]map[string]interface{}, error)
	FindLatestRecordByPatientID(ctx context.Context, patientID string) (map[string]interface{}, error)
}
