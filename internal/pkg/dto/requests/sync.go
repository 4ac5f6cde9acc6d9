package requests

// SyncBatch is the inbound envelope for one device upload. Records stay as
// raw documents here: each one is normalized and validated individually so a
// malformed record fails alone instead of rejecting the whole batch.
type SyncBatch struct {
	Records    []map[string]interface{} `json:"records" validate:"required,min=1"`
	DeviceID   string                   `json:"deviceId" validate:"required"`
	OperatorID string                   `json:"operatorId,omitempty"`
	Latitude   *float64                 `json:"latitude,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Longitude  *float64                 `json:"longitude,omitempty" validate:"omitempty,gte=-180,lte=180"`
}
