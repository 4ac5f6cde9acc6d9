package sync

import (
	"context"
	"livwise-service/internal/pkg/constvars"
	"livwise-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type syncMongoRepository struct {
	Collection *mongo.Collection
}

func NewSyncMongoRepository(db *mongo.Database) MedicalRecordRepository {
	return &syncMongoRepository{
		Collection: db.Collection(constvars.CollectionMedicalRecords),
	}
}

// PutSynced performs the conditional write: replace-with-upsert guarded by a
// filter that only matches a record that is not yet SYNCED. A record that
// already reached SYNCED falls outside the filter, so the upsert attempts a
// fresh insert and trips the unique _id constraint instead of overwriting.
func (r *syncMongoRepository) PutSynced(ctx context.Context, document map[string]interface{}, recordID string) error {
	document["_id"] = recordID

	filter := bson.M{
		"_id": recordID,
		"sync_metadata.sync_status": bson.M{"$ne": constvars.SyncStatusSynced},
	}
	opts := options.Replace().SetUpsert(true)

	_, err := r.Collection.ReplaceOne(ctx, filter, document, opts)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return exceptions.ErrRecordAlreadySynced(err, recordID)
		}
		return exceptions.ErrMongoDBReplaceDocument(err)
	}
	return nil
}
