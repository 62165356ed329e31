package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchMedicalSites_NoCredentials(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("GOOGLE_CSE_ID", "")

	client := &GoogleSearchClient{}
	results := client.SearchMedicalSites(context.Background(), "Paracetamol")

	require.Len(t, results, 3)
	assert.Equal(t, "NPS", results[0].Source)
	assert.Equal(t, "TGA", results[1].Source)
	assert.Equal(t, "Health.gov.au", results[2].Source)
	for _, r := range results {
		assert.Contains(t, r.Title, "Paracetamol")
		assert.Contains(t, r.Link, "q=Paracetamol")
		assert.NotEmpty(t, r.Snippet)
	}
}

func TestMockWebResults_EscapesQuery(t *testing.T) {
	results := mockWebResults("insulin glargine")

	require.NotEmpty(t, results)
	assert.Contains(t, results[0].Link, "q=insulin+glargine")
}

func TestDetermineSource(t *testing.T) {
	cases := map[string]string{
		"https://www.tga.gov.au/alerts":               "TGA",
		"https://www.nps.org.au/medicine-finder":      "NPS",
		"https://www.pbs.gov.au/medicine/item/1234A":  "PBS",
		"https://www.health.gov.au/topics/medicines":  "Health.gov.au",
		"https://www.medicinesafety.gov.au/report":    "Medicine Safety",
		"https://www.healthdirect.gov.au/paracetamol": "Australian Health",
		"https://en.wikipedia.org/wiki/Paracetamol":   "Australian Health",
	}
	for link, want := range cases {
		assert.Equal(t, want, determineSource(link), link)
	}
}

func TestGoogleInfo(t *testing.T) {
	t.Setenv("GOOGLE_CSE_ID", "cse-test-id")

	info := GoogleInfo()

	assert.Equal(t, "cse-test-id", info.SearchEngineID)
	assert.Contains(t, info.Domains, "tga.gov.au")
	assert.Contains(t, info.Domains, "nps.org.au")
	assert.NotEmpty(t, info.Message)
}
