package sync

// The normalizer rewrites the heterogeneous shapes legacy devices still send
// into the one canonical flat record shape. Every rule applies independently;
// an already-flat record passes through untouched, so normalization is
// idempotent across input variants. Unknown fields are preserved: devices in
// the field ship firmware ahead of this service.

var testCenterFields = []string{"facility_name", "branch_name", "location_code"}

var addressFields = []string{"address_1", "address_2", "address_city", "address_state", "address_pincode"}

var diagnosticsFields = []string{"diagnostic_category", "diagnostic_code", "diagnostic_name"}

// NormalizeRecord returns a canonical copy of one raw record document.
func NormalizeRecord(raw map[string]interface{}) map[string]interface{} {
	record := cloneDocument(raw)

	if testCenter, ok := asDocument(record["test_center"]); ok {
		copyPresentFields(record, testCenter, testCenterFields)
		delete(record, "test_center")
	}

	if patientDetails, ok := asDocument(record["patient_details"]); ok {
		if address, ok := asDocument(patientDetails["address"]); ok {
			flattened := cloneDocument(patientDetails)
			copyPresentFields(flattened, address, addressFields)
			delete(flattened, "address")
			record["patient_details"] = flattened
		}
	}

	switch observations := record["observations"].(type) {
	case []interface{}:
		normalized := make([]interface{}, 0, len(observations))
		for _, observation := range observations {
			normalized = append(normalized, normalizeObservation(observation))
		}
		record["observations"] = normalized
	case map[string]interface{}:
		// A single observation object becomes a one-element sequence.
		record["observations"] = []interface{}{normalizeObservation(observations)}
	}

	return record
}

func normalizeObservation(value interface{}) interface{} {
	observation, ok := asDocument(value)
	if !ok {
		return value
	}

	normalized := cloneDocument(observation)
	if diagnostics, ok := asDocument(normalized["diagnostics"]); ok {
		copyPresentFields(normalized, diagnostics, diagnosticsFields)
		delete(normalized, "diagnostics")
	}
	return normalized
}

func copyPresentFields(dst, src map[string]interface{}, fields []string) {
	for _, field := range fields {
		if value, ok := src[field]; ok {
			dst[field] = value
		}
	}
}

func cloneDocument(document map[string]interface{}) map[string]interface{} {
	clone := make(map[string]interface{}, len(document))
	for key, value := range document {
		clone[key] = value
	}
	return clone
}

func asDocument(value interface{}) (map[string]interface{}, bool) {
	document, ok := value.(map[string]interface{})
	return document, ok
}

func asString(value interface{}) string {
	text, _ := value.(string)
	return text
}
