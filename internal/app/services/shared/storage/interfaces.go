package storage

import "context"

// Storage is the blob-store collaborator: a keyed put of raw bytes with a
// content type, returning the stable external reference for the object.
type Storage interface {
	UploadObject(ctx context.Context, bucketName, objectName string, data []byte, contentType string) (string, error)
}
