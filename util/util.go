package util

// Collection names
const (
	SearchHistoryCollection = "medication_searches"
	MedicationCollection    = "pbs_medications"
)

// Cache key prefixes
const (
	PBSSearchKey = "PBS_SEARCH_"
)

// Error messages
const (
	EMPTY_SEARCH_QUERY     = "Search query cannot be empty"
	HISTORY_FETCH_FAILED   = "Failed to retrieve search history"
	HISTORY_CLEAR_FAILED   = "Failed to clear search history"
	DATABASE_NOT_CONNECTED = "Database is not connected"
	CACHE_NOT_CONNECTED    = "Cache is not connected"
)

func SuccessResponse(data interface{}) map[string]interface{} {
	return map[string]interface{}{
		"status": "success",
		"data":   data,
	}
}

func FailedResponse(err error) map[string]interface{} {
	return map[string]interface{}{
		"status": "failed",
		"error":  err.Error(),
	}
}
