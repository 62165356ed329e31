package models

import "time"

// PBSMedication is a reference record from the Pharmaceutical Benefits
// Scheme dataset. Records are read-only, the app never mutates them.
type PBSMedication struct {
	PBSCode          string   `json:"pbs_code,omitempty" bson:"pbs_code,omitempty"`
	DrugName         string   `json:"drug_name" bson:"drug_name"`
	ActiveIngredient string   `json:"active_ingredient,omitempty" bson:"active_ingredient,omitempty"`
	Manufacturer     string   `json:"manufacturer,omitempty" bson:"manufacturer,omitempty"`
	ATCCode          string   `json:"atc_code,omitempty" bson:"atc_code,omitempty"`
	DDDAmount        string   `json:"ddd_amount,omitempty" bson:"ddd_amount,omitempty"`
	FormStrength     string   `json:"form_strength,omitempty" bson:"form_strength,omitempty"`
	Restrictions     []string `json:"restrictions,omitempty" bson:"restrictions,omitempty"`
	PrescriberType   string   `json:"prescriber_type,omitempty" bson:"prescriber_type,omitempty"`
}

type GoogleSearchResult struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
	Source  string `json:"source"`
}

type UnifiedSearchResult struct {
	Query           string               `json:"query"`
	PBSResults      []PBSMedication      `json:"pbs_results"`
	WebResults      []GoogleSearchResult `json:"web_results"`
	SearchTimestamp time.Time            `json:"search_timestamp"`
}

// GoogleSearchInfo describes the client-side search widget: the hosted
// engine id and the Australian health domains it is scoped to.
type GoogleSearchInfo struct {
	Message        string   `json:"message"`
	SearchEngineID string   `json:"search_engine_id,omitempty"`
	Domains        []string `json:"domains"`
}
