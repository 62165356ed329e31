package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"MediSearchAU/config/db"
	"MediSearchAU/config/redis"
	"MediSearchAU/models"
	"MediSearchAU/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// historyReadLimit caps a single history read, the UI slices further.
const historyReadLimit = 50

/*
* Reject empty or whitespace-only queries before anything is logged
* Append the query to the history log, best effort
* Run the PBS lookup, an empty result set is not an error
 */
func SearchPBS(c *gin.Context, data models.MedicationSearchCreate) ([]models.PBSMedication, error) {
	query := strings.TrimSpace(data.Query)
	if query == "" {
		return nil, errors.New(util.EMPTY_SEARCH_QUERY)
	}
	logSearch(c, query, models.SearchTypePBS)
	return pbsClient.SearchMedications(c, query), nil
}

/*
* Reject empty or whitespace-only queries before anything is logged
* Append the query to the history log, best effort
* Search the Australian medical sites through Google Custom Search
 */
func SearchGoogle(c *gin.Context, data models.MedicationSearchCreate) ([]models.GoogleSearchResult, error) {
	query := strings.TrimSpace(data.Query)
	if query == "" {
		return nil, errors.New(util.EMPTY_SEARCH_QUERY)
	}
	logSearch(c, query, models.SearchTypeGoogle)
	return googleClient.SearchMedicalSites(c, query), nil
}

/*
* Reject empty or whitespace-only queries before anything is logged
* One history entry for the whole unified call, not one per leg
* Combine the PBS lookup with the web search into a single result
 */
func SearchUnified(c *gin.Context, data models.MedicationSearchCreate) (models.UnifiedSearchResult, error) {
	query := strings.TrimSpace(data.Query)
	if query == "" {
		return models.UnifiedSearchResult{}, errors.New(util.EMPTY_SEARCH_QUERY)
	}
	logSearch(c, query, models.SearchTypeUnified)

	return models.UnifiedSearchResult{
		Query:           query,
		PBSResults:      pbsClient.SearchMedications(c, query),
		WebResults:      googleClient.SearchMedicalSites(c, query),
		SearchTimestamp: time.Now().UTC(),
	}, nil
}

// GetHistory returns the most recent searches, newest first.
func GetHistory(c *gin.Context) ([]models.MedicationSearch, error) {
	coll := db.OpenCollections(util.SearchHistoryCollection)
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(historyReadLimit)

	history := []models.MedicationSearch{}
	if err := db.FindAllInto(c, coll, bson.M{}, opts, &history); err != nil {
		log.Println("Error fetching search history: ", err)
		return nil, errors.New(util.HISTORY_FETCH_FAILED)
	}
	return history, nil
}

/*
* Collect the logged queries and drop their cached PBS lookups
* Cache deletes are best effort, the clear still succeeds without them
* Drop every entry from the history log
 */
func ClearHistory(c *gin.Context) (string, error) {
	coll := db.OpenCollections(util.SearchHistoryCollection)

	entries := []models.MedicationSearch{}
	if err := db.FindAllInto(c, coll, bson.M{}, nil, &entries); err != nil {
		log.Println("Error fetching history before clear: ", err)
	}
	dropped := map[string]bool{}
	for _, entry := range entries {
		key := util.PBSSearchKey + strings.ToLower(entry.Query)
		if dropped[key] {
			continue
		}
		dropped[key] = true
		if err := redis.DeleteCache(c, key); err != nil {
			log.Println("Error dropping cached PBS lookup: ", err)
		}
	}

	deleted, err := db.DeleteMany(c, coll, bson.M{})
	if err != nil {
		log.Println("Error clearing search history: ", err)
		return "", errors.New(util.HISTORY_CLEAR_FAILED)
	}
	log.Println("Cleared history entries: ", deleted.DeletedCount)
	return "Cleared successfully", nil
}

// logSearch appends one history entry. The write is not transactional
// with the lookup, a failure is logged and the request continues.
func logSearch(c *gin.Context, query string, searchType string) {
	entry := models.NewMedicationSearch(query, searchType)
	coll := db.OpenCollections(util.SearchHistoryCollection)
	if _, err := db.CreateOne(c, coll, entry); err != nil {
		log.Println("Error logging search to history: ", err)
	}
}
