package responses

const (
	SyncResultStatusSuccess = "success"
	SyncResultStatusError   = "error"
)

type SyncResult struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	SyncedAt string `json:"synced_at,omitempty"`
	Message  string `json:"message,omitempty"`
}

type SyncResponse struct {
	DeviceID          string       `json:"device_id"`
	OperatorID        string       `json:"operator_id,omitempty"`
	SyncedAt          string       `json:"synced_at"`
	TotalRecords      int          `json:"total_records"`
	SuccessfulRecords int          `json:"successful_records"`
	FailedRecords     int          `json:"failed_records"`
	Results           []SyncResult `json:"results"`
	Latitude          *float64     `json:"latitude,omitempty"`
	Longitude         *float64     `json:"longitude,omitempty"`
}
