package records

import (
	"context"
	"livwise-service/internal/pkg/constvars"
	"livwise-service/internal/pkg/dto/requests"
	"livwise-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RecordMongoRepository struct {
	Collection *mongo.Collection
}

func NewRecordMongoRepository(db *mongo.Database) RecordRepository {
	return &RecordMongoRepository{
		Collection: db.Collection(constvars.CollectionMedicalRecords),
	}
}

func (r *RecordMongoRepository) Find(ctx context.Context, request *requests.ListRecords) ([]map[string]interface{}, error) {
	filter := bson.M{}
	if request.FacilityName != "" {
		filter["facility_name"] = request.FacilityName
	}

	// created_at is stored as an ISO-8601 string, so a lexicographic range
	// on date prefixes is a correct date range.
	createdAt := bson.M{}
	if request.StartDate != "" {
		createdAt["$gte"] = request.StartDate
	}
	if request.EndDate != "" {
		createdAt["$lte"] = request.EndDate + "T23:59:59.999Z"
	}
	if len(createdAt) > 0 {
		filter["created_at"] = createdAt
	}

	limit := request.Limit
	if limit <= 0 {
		limit = constvars.DefaultRecordsPageLimit
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.Collection.Find(ctx, filter, opts)
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

func (r *RecordMongoRepository) FindByID(ctx context.Context, recordID string) (map[string]interface{}, error) {
	var record map[string]interface{}
	err := r.Collection.FindOne(ctx, bson.M{"_id": recordID}).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return record, nil
}

func (r *RecordMongoRepository) FindByPatientID(ctx context.Context, patientID string) ([]map[string]interface{}, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.Collection.Find(ctx, bson.M{"patientId": patientID}, opts)
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
