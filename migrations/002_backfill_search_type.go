package migrations

import (
	"context"
	"log"

	"MediSearchAU/config/db"
	"MediSearchAU/models"
	"MediSearchAU/util"

	"go.mongodb.org/mongo-driver/bson"
)

func BackfillSearchType() {
	ctx := context.Background()
	coll := db.OpenCollections(util.SearchHistoryCollection)
	result, err := db.UpdateMany(
		ctx,
		coll,
		bson.M{"search_type": bson.M{"$exists": false}},
		bson.M{"$set": bson.M{"search_type": models.SearchTypeUnified}},
	)
	if err != nil {
		log.Fatal("Migration failed:", err)
	}
	log.Printf("Migration applied: %d documents updated\n", result.ModifiedCount)
}
