package main

import (
	"context"
	"livwise-service/internal/app/config"
	"livwise-service/internal/app/drivers/database"
	"livwise-service/internal/pkg/constvars"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Creates the indexes the record collection relies on: the retention TTL
// on expires_at and the secondary lookups used by the retrieval endpoints.
func main() {
	driverConfig := config.NewDriverConfig()

	mongoDB := database.NewMongoDB(driverConfig)
	collection := mongoDB.Collection(constvars.CollectionMedicalRecords)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().SetName("ttl_expires_at").SetExpireAfterSeconds(0),
		},
		{
			Keys:    bson.D{{Key: "patientId", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_patient_created_at"),
		},
		{
			Keys:    bson.D{{Key: "operatorId", Value: 1}},
			Options: options.Index().SetName("idx_operator"),
		},
		{
			Keys:    bson.D{{Key: "facility_name", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_facility_created_at"),
		},
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_created_at"),
		},
	}

	names, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		log.Fatalf("Error creating indexes: %v", err)
	}

	log.Printf("Applied %d indexes: %v\n", len(names), names)
}
