package sync

import (
	"context"
	"encoding/base64"
	"fmt"
	"livwise-service/internal/app/models"
	"livwise-service/internal/app/services/shared/storage"
	"livwise-service/internal/pkg/constvars"
	"livwise-service/internal/pkg/exceptions"
	"livwise-service/internal/pkg/utils"
	"regexp"
	"strings"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// BlobExtractor converts inline binary payloads into blob-store references so
// the persisted record never carries raw bytes. Upload failures degrade the
// record (missing reference) but never fail it; the caller decides what to
// log and always continues.
type BlobExtractor struct {
	Log        *zap.Logger
	Storage    storage.Storage
	BucketName string
}

func NewBlobExtractor(log *zap.Logger, blobStorage storage.Storage, bucketName string) *BlobExtractor {
	return &BlobExtractor{
		Log:        log,
		Storage:    blobStorage,
		BucketName: bucketName,
	}
}

var contentTypesByFormat = map[string]string{
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"bmp":  "image/bmp",
	"webp": "image/webp",
	"mp3":  "audio/mpeg",
	"wav":  "audio/wav",
	"mp4":  "video/mp4",
	"avi":  "video/avi",
	"mov":  "video/quicktime",
	"pdf":  "application/pdf",
	"json": "application/json",
	"xml":  constvars.MIMEApplicationXML,
}

// ContentTypeForFormat maps a declared raw format to its MIME type,
// defaulting to a generic binary type for anything unrecognized.
func ContentTypeForFormat(format string) string {
	if contentType, ok := contentTypesByFormat[strings.ToLower(format)]; ok {
		return contentType
	}
	return constvars.MIMEOctetStream
}

var dataURIPattern = regexp.MustCompile(constvars.RegexDataURIPrefix)

// ExtractPatientPhoto consumes patient_details.patient_photo_blob, uploads
// the decoded image and sets patient_photo to the resulting reference. The
// blob is removed from the document whether or not the upload succeeds.
func (e *BlobExtractor) ExtractPatientPhoto(ctx context.Context, record map[string]interface{}, operatorID, timestamp string) (string, error) {
	patientDetails, ok := asDocument(record["patient_details"])
	if !ok {
		return "", nil
	}
	blob := asString(patientDetails["patient_photo_blob"])
	if blob == "" {
		return "", nil
	}
	delete(patientDetails, "patient_photo_blob")

	extension := constvars.DefaultPhotoExtension
	encoded := blob
	if match := dataURIPattern.FindStringSubmatch(blob); match != nil {
		extension = match[1]
		encoded = dataURIPattern.ReplaceAllString(blob, "")
	}

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", exceptions.ErrBase64Decode(err)
	}

	safePatientName := utils.SanitizeObjectName(fmt.Sprintf("%s_%s",
		asString(patientDetails["first_name"]),
		asString(patientDetails["last_name"]),
	))
	filename := fmt.Sprintf("%s_%s_%s_%s.%s",
		safePatientName,
		asString(patientDetails["patient_id"]),
		operatorID,
		utils.SanitizeTimestamp(timestamp),
		extension,
	)
	objectKey := fmt.Sprintf("%s/%s", constvars.ObjectPrefixPatientImage, filename)

	reference, err := e.Storage.UploadObject(ctx, e.BucketName, objectKey, decoded, "image/"+extension)
	if err != nil {
		return "", err
	}

	patientDetails["patient_photo"] = reference
	return reference, nil
}

// ExtractRawData consumes every observation's raw_data, uploading each item
// (or the legacy object as one JSON document) and joining the surviving
// references into s3_object_url. Per-item failures are logged and skipped; if
// every upload fails no reference is set. raw_data never survives.
func (e *BlobExtractor) ExtractRawData(ctx context.Context, record map[string]interface{}, validated *models.MedicalRecord, operatorID, timestamp string) {
	observations, ok := record["observations"].([]interface{})
	if !ok {
		return
	}

	for index, value := range observations {
		observation, ok := asDocument(value)
		if !ok {
			continue
		}
		rawData, present := observation["raw_data"]
		if !present || rawData == nil {
			continue
		}

		switch raw := rawData.(type) {
		case []interface{}:
			uploaded := make([]string, 0, len(raw))
			for itemIndex, itemValue := range raw {
				reference, err := e.uploadRawDataItem(ctx, itemValue, validated, observation, operatorID, timestamp, itemIndex)
				if err != nil {
					e.Log.Error("failed to upload raw data file",
						zap.String(constvars.LoggingRecordIDKey, validated.ID),
						zap.Int(constvars.LoggingObservationKey, index),
						zap.Int(constvars.LoggingFileIndexKey, itemIndex),
						zap.Error(err),
					)
					continue
				}
				uploaded = append(uploaded, reference)
			}
			if len(uploaded) > 0 {
				observation["s3_object_url"] = strings.Join(uploaded, ",")
			}
		case map[string]interface{}:
			reference, err := e.uploadLegacyRawData(ctx, raw, validated.ID, index, timestamp)
			if err != nil {
				e.Log.Error("failed to upload legacy raw data",
					zap.String(constvars.LoggingRecordIDKey, validated.ID),
					zap.Int(constvars.LoggingObservationKey, index),
					zap.Error(err),
				)
			} else {
				observation["s3_object_url"] = reference
			}
		}

		delete(observation, "raw_data")
	}
}

func (e *BlobExtractor) uploadRawDataItem(ctx context.Context, itemValue interface{}, validated *models.MedicalRecord, observation map[string]interface{}, operatorID, timestamp string, itemIndex int) (string, error) {
	item, err := decodeRawDataItem(itemValue)
	if err != nil {
		return "", err
	}

	decoded, err := base64.StdEncoding.DecodeString(item.Data)
	if err != nil {
		return "", exceptions.ErrBase64Decode(err)
	}

	safePatientName := utils.SanitizeObjectName(fmt.Sprintf("%s_%s",
		validated.PatientDetails.FirstName,
		validated.PatientDetails.LastName,
	))
	safeDiagnosticCode := utils.SanitizeObjectName(asString(observation["diagnostic_code"]))
	safeDiagnosticName := utils.SanitizeObjectName(asString(observation["diagnostic_name"]))

	filename := fmt.Sprintf("%s_%s_%s_%s_%s_%s_%d.%s",
		safePatientName,
		validated.PatientDetails.PatientID,
		operatorID,
		safeDiagnosticCode,
		safeDiagnosticName,
		utils.SanitizeTimestamp(timestamp),
		itemIndex,
		item.RawFormat,
	)
	objectKey := fmt.Sprintf("%s/%s", constvars.ObjectPrefixRawData, filename)

	return e.Storage.UploadObject(ctx, e.BucketName, objectKey, decoded, ContentTypeForFormat(item.RawFormat))
}

func (e *BlobExtractor) uploadLegacyRawData(ctx context.Context, raw map[string]interface{}, recordID string, observationIndex int, timestamp string) (string, error) {
	payload, err := json.Marshal(raw)
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	objectKey := fmt.Sprintf("%s/%s/obs/%d/%s.json",
		constvars.ObjectPrefixLegacyRaw,
		recordID,
		observationIndex,
		utils.SanitizeTimestamp(timestamp),
	)

	return e.Storage.UploadObject(ctx, e.BucketName, objectKey, payload, contentTypesByFormat["json"])
}

func decodeRawDataItem(value interface{}) (*models.RawDataItem, error) {
	payload, err := json.Marshal(value)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}
	var item models.RawDataItem
	if err := json.Unmarshal(payload, &item); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return &item, nil
}
