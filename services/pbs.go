package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"MediSearchAU/config"
	"MediSearchAU/config/db"
	"MediSearchAU/config/redis"
	"MediSearchAU/models"
	"MediSearchAU/util"

	"github.com/tidwall/gjson"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	pbsResultLimit = 10
	pbsFetchLimit  = 50
	pbsCacheTTL    = time.Hour
)

// PBSClient queries the PBS data API. A zero value uses the configured
// base URL and a 30 second timeout.
type PBSClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

var pbsClient = &PBSClient{}

func (p *PBSClient) baseURL() string {
	if p.BaseURL != "" {
		return p.BaseURL
	}
	return config.PBSAPIBaseURL()
}

func (p *PBSClient) httpClient() *http.Client {
	if p.HTTPClient != nil {
		return p.HTTPClient
	}
	return &http.Client{Timeout: 30 * time.Second}
}

/*
* Check the cache for a previous lookup of the same query
* Run the upstream search with the local-store fallback
* Cache the outcome only when the upstream was reachable
 */
func (p *PBSClient) SearchMedications(ctx context.Context, query string) []models.PBSMedication {
	key := util.PBSSearchKey + strings.ToLower(strings.TrimSpace(query))

	cached := []models.PBSMedication{}
	if err := redis.GetCache(ctx, key, &cached); err == nil {
		return cached
	}

	medications, upstreamOK := p.lookup(ctx, query)
	if upstreamOK {
		if err := redis.SetCache(ctx, key, medications, pbsCacheTTL); err != nil {
			log.Println("Error caching PBS results: ", err)
		}
	}
	return medications
}

/*
* Fetch the latest schedule code, then the AMT items matching the query
* On any upstream failure or an empty reply, fall back to the local store
* Sort by relevance then name
* The reachable flag gates caching, an outage result is never cached
 */
func (p *PBSClient) lookup(ctx context.Context, query string) ([]models.PBSMedication, bool) {
	medications, upstreamOK := p.searchUpstream(ctx, query)
	if !upstreamOK || len(medications) == 0 {
		medications = searchLocalStore(ctx, query)
	}
	sortMedications(medications, query)
	return medications, upstreamOK
}

// searchUpstream hits the live PBS data API. ok is false when the API
// could not be reached or parsed, which sends the caller to the fallback.
func (p *PBSClient) searchUpstream(ctx context.Context, query string) ([]models.PBSMedication, bool) {
	scheduleCode, ok := p.latestScheduleCode(ctx)
	if !ok {
		return nil, false
	}

	params := url.Values{}
	params.Set("schedule_code", scheduleCode)
	params.Set("limit", strconv.Itoa(pbsFetchLimit))
	params.Set("search", strings.ToLower(query))

	body, err := p.get(ctx, "/amt-items", params)
	if err != nil {
		log.Println("PBS AMT items request failed: ", err)
		return nil, false
	}

	queryLower := strings.ToLower(query)
	medications := []models.PBSMedication{}
	for _, item := range gjson.GetBytes(body, "results").Array() {
		if len(medications) >= pbsResultLimit {
			break
		}
		drugName := item.Get("medicine_name").String()
		genericName := item.Get("generic_name").String()
		if !strings.Contains(strings.ToLower(drugName), queryLower) &&
			!strings.Contains(strings.ToLower(genericName), queryLower) {
			continue
		}
		name := drugName
		if name == "" {
			name = genericName
		}
		medications = append(medications, models.PBSMedication{
			PBSCode:          item.Get("pbs_code").String(),
			DrugName:         name,
			ActiveIngredient: item.Get("active_ingredient").String(),
			Manufacturer:     item.Get("manufacturer").String(),
			ATCCode:          item.Get("atc_code").String(),
			FormStrength:     item.Get("form_and_strength").String(),
			PrescriberType:   item.Get("prescriber_type").String(),
		})
	}
	return medications, true
}

func (p *PBSClient) latestScheduleCode(ctx context.Context) (string, bool) {
	params := url.Values{}
	params.Set("limit", "1")
	body, err := p.get(ctx, "/schedules", params)
	if err != nil {
		log.Println("PBS schedules request failed: ", err)
		return "", false
	}
	code := gjson.GetBytes(body, "results.0.schedule_code")
	if !code.Exists() {
		log.Println("PBS schedules response carried no schedule_code")
		return "", false
	}
	return code.String(), true
}

func (p *PBSClient) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL()+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := p.httpClient().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pbs api returned status %d for %s", resp.StatusCode, path)
	}
	return io.ReadAll(resp.Body)
}

// searchLocalStore runs a case-insensitive substring match over the
// seeded reference collection. Errors are logged, not surfaced: an empty
// slice is the no-match signal.
func searchLocalStore(ctx context.Context, query string) []models.PBSMedication {
	coll := db.OpenCollections(util.MedicationCollection)
	pattern := regexp.QuoteMeta(strings.TrimSpace(query))
	filter := bson.M{
		"$or": []bson.M{
			{"drug_name": bson.M{"$regex": pattern, "$options": "i"}},
			{"active_ingredient": bson.M{"$regex": pattern, "$options": "i"}},
		},
	}
	medications := []models.PBSMedication{}
	if err := db.FindAllInto(ctx, coll, filter, nil, &medications); err != nil {
		log.Println("Error searching local medication store: ", err)
		return []models.PBSMedication{}
	}
	return medications
}

// sortMedications orders matches with drug-name hits ahead of hits only
// in the active ingredient, ties broken alphabetically by drug name.
func sortMedications(medications []models.PBSMedication, query string) {
	queryLower := strings.ToLower(strings.TrimSpace(query))
	rank := func(m models.PBSMedication) int {
		if strings.Contains(strings.ToLower(m.DrugName), queryLower) {
			return 0
		}
		return 1
	}
	sort.SliceStable(medications, func(i, j int) bool {
		ri, rj := rank(medications[i]), rank(medications[j])
		if ri != rj {
			return ri < rj
		}
		return strings.ToLower(medications[i].DrugName) < strings.ToLower(medications[j].DrugName)
	})
}
