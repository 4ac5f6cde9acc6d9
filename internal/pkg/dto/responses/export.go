package responses

type DailyRecordsSummary struct {
	Date                string         `json:"date"`
	TotalRecords        int            `json:"totalRecords"`
	FacilitiesCount     int            `json:"facilitiesCount"`
	OperatorsCount      int            `json:"operatorsCount"`
	PatientsCount       int            `json:"patientsCount"`
	TestCategoriesCount int            `json:"testCategoriesCount"`
	RecordsByFacility   map[string]int `json:"recordsByFacility"`
	RecordsByCategory   map[string]int `json:"recordsByCategory"`
}

type DailyExportResult struct {
	Date         string               `json:"date"`
	RecordsCount int                  `json:"recordsCount,omitempty"`
	StorageURL   string               `json:"s3Location,omitempty"`
	Summary      *DailyRecordsSummary `json:"summary,omitempty"`
	Status       string               `json:"status,omitempty"`
	Error        string               `json:"error,omitempty"`
}

type ExportResponse struct {
	ProcessedDates    int                 `json:"processedDates"`
	SuccessfulExports int                 `json:"successfulExports"`
	FailedExports     int                 `json:"failedExports"`
	Results           []DailyExportResult `json:"results"`
}
