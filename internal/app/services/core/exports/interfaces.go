package exports

import (
	"context"
	"livwise-service/internal/pkg/dto/requests"
	"livwise-service/internal/pkg/dto/responses"
)

type ExportUsecase interface {
	ExportDailyRecords(ctx context.Context, request *requests.ExportDailyRecords) (*responses.ExportResponse, error)
}

type ExportRepository interface {
	FindByDate(ctx context.Context, date, facilityName string) ([]map[string]interface{}, error)
}
