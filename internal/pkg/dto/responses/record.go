package responses

type RecordList struct {
	Records []map[string]interface{} `json:"records"`
	Count   int                      `json:"count"`
}
