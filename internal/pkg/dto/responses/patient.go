package responses

type PatientList struct {
	Patients []map[string]interface{} `json:"patients"`
	Count    int                      `json:"count"`
}
