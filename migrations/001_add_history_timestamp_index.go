package migrations

import (
	"context"
	"log"

	"MediSearchAU/config/db"
	"MediSearchAU/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func AddHistoryTimestampIndex() {
	ctx := context.Background()
	coll := db.OpenCollections(util.SearchHistoryCollection)
	if coll == nil {
		log.Fatal("Migration failed: database is not connected")
	}
	name, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "timestamp", Value: -1}},
	})
	if err != nil {
		log.Fatal("Migration failed:", err)
	}
	log.Printf("Migration applied: index %s created\n", name)
}
