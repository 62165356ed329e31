package jobs

import (
	"context"
	"errors"
	"log"

	"MediSearchAU/config/db"
	"MediSearchAU/models"
	"MediSearchAU/util"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// historyRetention is how many history entries the nightly prune keeps.
const historyRetention = 500

func StartDailyScheduler() {
	c := cron.New()

	// Runs every day at 00:20 AM
	c.AddFunc("20 0 * * *", func() {
		log.Println("Running daily search history prune...")
		PruneSearchHistory()
	})

	c.Start()
}

/*
* Count the history log, nothing to do under the retention cap
* Fetch the entries beyond the cap, oldest side of the sort
* Delete them by id
 */
func PruneSearchHistory() {
	ctx := context.Background()
	coll := db.OpenCollections(util.SearchHistoryCollection)

	count, err := db.CountDocuments(ctx, coll, nil)
	if err != nil {
		log.Println("Error counting search history: ", err)
		return
	}
	if count <= historyRetention {
		return
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetSkip(historyRetention)
	stale, err := db.FindAll(ctx, coll, nil, opts)
	if err != nil {
		log.Println("Error fetching stale history entries: ", err)
		return
	}

	ids := []string{}
	for _, doc := range stale {
		id, ok := doc["id"].(string)
		if !ok {
			log.Println("History entry without id: ", doc)
			continue
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return
	}

	deleted, err := db.DeleteMany(ctx, coll, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		log.Println("Error pruning search history: ", err)
		return
	}
	log.Println("Pruned history entries: ", deleted.DeletedCount)
}

// SeedReferenceMedications loads the fallback record store used when the
// live PBS API is unreachable. Inserts are idempotent on pbs_code.
func SeedReferenceMedications() {
	coll := db.OpenCollections(util.MedicationCollection)

	staticMedications := []models.PBSMedication{
		{
			PBSCode:          "1234A",
			DrugName:         "Paracetamol 500mg Tablets",
			ActiveIngredient: "Paracetamol",
			Manufacturer:     "Various",
			ATCCode:          "N02BE01",
			FormStrength:     "500mg tablet",
			PrescriberType:   "General Practitioner",
		},
		{
			PBSCode:          "5678B",
			DrugName:         "Aspirin 100mg Tablets",
			ActiveIngredient: "Acetylsalicylic acid",
			Manufacturer:     "Various",
			ATCCode:          "B01AC06",
			FormStrength:     "100mg tablet",
			PrescriberType:   "General Practitioner",
		},
		{
			PBSCode:          "9012C",
			DrugName:         "Insulin Human Injection",
			ActiveIngredient: "Human insulin",
			Manufacturer:     "Novo Nordisk",
			ATCCode:          "A10AB01",
			FormStrength:     "100 units/mL injection",
			PrescriberType:   "Endocrinologist",
		},
	}

	for _, medication := range staticMedications {

		filter := bson.M{
			"pbs_code": medication.PBSCode,
		}

		existing := make(map[string]interface{})
		err := db.FindOne(context.Background(), coll, filter, existing)
		if err == nil {
			continue
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			log.Println("Error checking reference medication: ", err)
			continue
		}

		_, err = db.CreateOne(context.Background(), coll, medication)
		if err != nil {
			log.Println("Error inserting reference medication: ", err)
		}
	}
}
