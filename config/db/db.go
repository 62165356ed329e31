package db

import (
	"context"
	"errors"
	"log"
	"time"

	"MediSearchAU/config"
	"MediSearchAU/util"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	client   *mongo.Client
	database *mongo.Database
)

// Connect establishes the Mongo connection used by the rest of the app.
func Connect(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	c, err := mongo.Connect(ctx, options.Client().ApplyURI(config.MongoURL()))
	if err != nil {
		log.Println("Error connecting to mongo: ", err)
		return err
	}
	if err := c.Ping(ctx, readpref.Primary()); err != nil {
		log.Println("Error pinging mongo: ", err)
		return err
	}
	client = c
	database = c.Database(config.DBName())
	return nil
}

func Disconnect(ctx context.Context) {
	if client == nil {
		return
	}
	if err := client.Disconnect(ctx); err != nil {
		log.Println("Error disconnecting mongo: ", err)
	}
	client = nil
	database = nil
}

// Bind points the package at an already constructed client. The test
// suite uses it to attach a mock deployment; Bind(nil, "") detaches.
func Bind(c *mongo.Client, name string) {
	client = c
	if c == nil {
		database = nil
		return
	}
	database = c.Database(name)
}

// OpenCollections returns the named collection, or nil when not connected.
func OpenCollections(name string) *mongo.Collection {
	if database == nil {
		return nil
	}
	return database.Collection(name)
}

func Ping(ctx context.Context) error {
	if client == nil {
		return errors.New(util.DATABASE_NOT_CONNECTED)
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return client.Ping(ctx, readpref.Primary())
}

func FindOne(ctx context.Context, coll *mongo.Collection, filter interface{}, result interface{}) error {
	if coll == nil {
		return errors.New(util.DATABASE_NOT_CONNECTED)
	}
	return coll.FindOne(ctx, filter).Decode(result)
}

func FindAll(ctx context.Context, coll *mongo.Collection, filter interface{}, opts *options.FindOptions) ([]map[string]interface{}, error) {
	if coll == nil {
		return nil, errors.New(util.DATABASE_NOT_CONNECTED)
	}
	if filter == nil {
		filter = map[string]interface{}{}
	}
	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := []map[string]interface{}{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// FindAllInto decodes every matching document into out, which must be a
// pointer to a slice.
func FindAllInto(ctx context.Context, coll *mongo.Collection, filter interface{}, opts *options.FindOptions, out interface{}) error {
	if coll == nil {
		return errors.New(util.DATABASE_NOT_CONNECTED)
	}
	if filter == nil {
		filter = map[string]interface{}{}
	}
	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)
	return cursor.All(ctx, out)
}

func CreateOne(ctx context.Context, coll *mongo.Collection, doc interface{}) (*mongo.InsertOneResult, error) {
	if coll == nil {
		return nil, errors.New(util.DATABASE_NOT_CONNECTED)
	}
	return coll.InsertOne(ctx, doc)
}

func UpdateMany(ctx context.Context, coll *mongo.Collection, filter interface{}, update interface{}) (*mongo.UpdateResult, error) {
	if coll == nil {
		return nil, errors.New(util.DATABASE_NOT_CONNECTED)
	}
	return coll.UpdateMany(ctx, filter, update)
}

func DeleteMany(ctx context.Context, coll *mongo.Collection, filter interface{}) (*mongo.DeleteResult, error) {
	if coll == nil {
		return nil, errors.New(util.DATABASE_NOT_CONNECTED)
	}
	return coll.DeleteMany(ctx, filter)
}

func CountDocuments(ctx context.Context, coll *mongo.Collection, filter interface{}) (int64, error) {
	if coll == nil {
		return 0, errors.New(util.DATABASE_NOT_CONNECTED)
	}
	if filter == nil {
		filter = map[string]interface{}{}
	}
	return coll.CountDocuments(ctx, filter)
}
