package models

import (
	"time"

	"github.com/google/uuid"
)

// Search types accepted by the API.
const (
	SearchTypePBS     = "pbs"
	SearchTypeGoogle  = "google_search"
	SearchTypeUnified = "unified"
)

// MedicationSearch is one entry in the search history log.
type MedicationSearch struct {
	ID         string    `json:"id" bson:"id"`
	Query      string    `json:"query" bson:"query"`
	SearchType string    `json:"search_type" bson:"search_type"`
	Timestamp  time.Time `json:"timestamp" bson:"timestamp"`
}

// MedicationSearchCreate is the request body for the search endpoints.
type MedicationSearchCreate struct {
	Query      string `json:"query"`
	SearchType string `json:"search_type"`
}

func NewMedicationSearch(query string, searchType string) MedicationSearch {
	return MedicationSearch{
		ID:         uuid.NewString(),
		Query:      query,
		SearchType: searchType,
		Timestamp:  time.Now().UTC(),
	}
}
