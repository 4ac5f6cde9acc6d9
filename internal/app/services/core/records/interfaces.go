package records

import (
	"context"
	"livwise-service/internal/pkg/dto/requests"
	"livwise-service/internal/pkg/dto/responses"
)

type RecordUsecase interface {
	ListRecords(ctx context.Context, request *requests.ListRecords) (*responses.RecordList, error)
	GetRecordByID(ctx context.Context, recordID string) (map[string]interface{}, error)
	ListRecordsByPatientID(ctx context.Context, patientID string) (*responses.RecordList, error)
}

type RecordRepository interface {
	Find(ctx context.Context, request *requests.ListRecords) ([]map[string]interface{}, error)
	FindByID(ctx context.Context, recordID string) (map[string]interface{}, error)
	FindByPatientID(ctx context.Context, patientID string) ([]map[string]interface{}, error)
}
