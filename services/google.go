package services

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"

	"MediSearchAU/config"
	"MediSearchAU/models"

	customsearch "google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"
)

const googleResultLimit = 10

// TargetDomains are the Australian health sites the hosted search engine
// is scoped to.
var TargetDomains = []string{
	"tga.gov.au",
	"nps.org.au",
	"pbs.gov.au",
	"health.gov.au",
	"medicinesafety.gov.au",
}

// GoogleSearchClient wraps Google Custom Search scoped to Australian
// medical sites. Without credentials it serves static fallback results.
type GoogleSearchClient struct {
	APIKey string
	CSEID  string
}

var googleClient = &GoogleSearchClient{}

func (g *GoogleSearchClient) credentials() (string, string) {
	apiKey, cseID := g.APIKey, g.CSEID
	if apiKey == "" {
		apiKey = config.GoogleAPIKey()
	}
	if cseID == "" {
		cseID = config.GoogleCSEID()
	}
	return apiKey, cseID
}

/*
* Bail out to the static fallback when credentials are missing
* Run the custom search and classify each hit by its source site
* Any API failure degrades to the fallback, never to an error
 */
func (g *GoogleSearchClient) SearchMedicalSites(ctx context.Context, query string) []models.GoogleSearchResult {
	apiKey, cseID := g.credentials()
	if apiKey == "" || cseID == "" {
		log.Println("Google API credentials not configured, serving fallback results")
		return mockWebResults(query)
	}

	svc, err := customsearch.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		log.Println("Error creating custom search service: ", err)
		return mockWebResults(query)
	}

	resp, err := svc.Cse.List().Cx(cseID).Q(query).Num(googleResultLimit).Context(ctx).Do()
	if err != nil {
		log.Println("Google search failed: ", err)
		return mockWebResults(query)
	}

	results := []models.GoogleSearchResult{}
	for _, item := range resp.Items {
		results = append(results, models.GoogleSearchResult{
			Title:   item.Title,
			Link:    item.Link,
			Snippet: item.Snippet,
			Source:  determineSource(item.Link),
		})
	}
	return results
}

// determineSource maps a result link to the publishing organisation.
func determineSource(link string) string {
	switch {
	case strings.Contains(link, "tga.gov.au"):
		return "TGA"
	case strings.Contains(link, "nps.org.au"):
		return "NPS"
	case strings.Contains(link, "pbs.gov.au"):
		return "PBS"
	case strings.Contains(link, "medicinesafety.gov.au"):
		return "Medicine Safety"
	case strings.Contains(link, "health.gov.au"):
		return "Health.gov.au"
	default:
		return "Australian Health"
	}
}

func mockWebResults(query string) []models.GoogleSearchResult {
	escaped := url.QueryEscape(query)
	return []models.GoogleSearchResult{
		{
			Title:   fmt.Sprintf("NPS Medicine Finder - %s Information", query),
			Link:    "https://www.nps.org.au/medicine-finder?q=" + escaped,
			Snippet: fmt.Sprintf("Find comprehensive information about %s including uses, side effects, interactions and safety information from NPS MedicineWise.", query),
			Source:  "NPS",
		},
		{
			Title:   fmt.Sprintf("TGA - Therapeutic Goods Administration - %s", query),
			Link:    "https://www.tga.gov.au/search?q=" + escaped,
			Snippet: fmt.Sprintf("Australian government information about %s regulation, safety alerts and product information from the Therapeutic Goods Administration.", query),
			Source:  "TGA",
		},
		{
			Title:   fmt.Sprintf("Australian Government Department of Health - %s", query),
			Link:    "https://www.health.gov.au/search?q=" + escaped,
			Snippet: fmt.Sprintf("Official government health information about %s including guidelines, policy and health professional resources.", query),
			Source:  "Health.gov.au",
		},
	}
}

// GoogleInfo is the static descriptor the client-side widget needs to
// render the hosted search box.
func GoogleInfo() models.GoogleSearchInfo {
	return models.GoogleSearchInfo{
		Message:        "Web search runs client-side through the hosted Google Programmable Search widget",
		SearchEngineID: config.GoogleCSEID(),
		Domains:        TargetDomains,
	}
}
