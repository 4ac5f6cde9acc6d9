package exports

import (
	"context"
	"livwise-service/internal/pkg/constvars"
	"livwise-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ExportMongoRepository struct {
	Collection *mongo.Collection
}

func NewExportMongoRepository(db *mongo.Database) ExportRepository {
	return &ExportMongoRepository{
		Collection: db.Collection(constvars.CollectionMedicalRecords),
	}
}

func (r *ExportMongoRepository) FindByDate(ctx context.Context, date, facilityName string) ([]map[string]interface{}, error) {
	filter := bson.M{
		"created_at": bson.M{
			"$gte": date + "T00:00:00Z",
			"$lte": date + "T23:59:59Z",
		},
	}
	if facilityName != "" {
		filter["facility_name"] = facilityName
	}

	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	results := make([]map[string]interface{}, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return results, nil
}
