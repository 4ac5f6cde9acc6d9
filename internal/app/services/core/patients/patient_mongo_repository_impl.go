package patients

import (
	"context"
	"livwise-service/internal/pkg/constvars"
	"livwise-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PatientMongoRepository struct {
	Collection *mongo.Collection
}

func NewPatientMongoRepository(db *mongo.Database) PatientRepository {
	return &PatientMongoRepository{
		Collection: db.Collection(constvars.CollectionMedicalRecords),
	}
}

// FindDistinctPatients groups records by patientId and keeps the details of
// the most recent record per patient.
func (r *PatientMongoRepository) FindDistinctPatients(ctx context.Context) ([]map[string]interface{}, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"patientId": bson.M{"$nin": bson.A{nil, ""}}}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":             "$patientId",
			"patient_details": bson.M{"$first": "$patient_details"},
			"last_record_at":  bson.M{"$first": "$created_at"},
			"record_count":    bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"_id":             0,
			"patient_id":      "$_id",
			"patient_details": 1,
			"last_record_at":  1,
			"record_count":    1,
		}}},
	}

	cursor, err := r.Collection.Aggregate(ctx, pipeline)
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

func (r *PatientMongoRepository) FindLatestRecordByPatientID(ctx context.Context, patientID string) (map[string]interface{}, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	var record map[string]interface{}
	err := r.Collection.FindOne(ctx, bson.M{"patientId": patientID}, opts).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return record, nil
}
