package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"MediSearchAU/config"
	"MediSearchAU/util"

	goredis "github.com/redis/go-redis/v9"
)

var client *goredis.Client

// Connect initialises the Redis client. A failed ping is logged but not
// fatal, the app runs without its cache.
func Connect(ctx context.Context) error {
	opts, err := goredis.ParseURL(config.RedisURL())
	if err != nil {
		log.Println("Error parsing redis url: ", err)
		return err
	}
	c := goredis.NewClient(opts)
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := c.Ping(ctx).Err(); err != nil {
		log.Println("Error pinging redis: ", err)
		return err
	}
	client = c
	return nil
}

func Disconnect() {
	if client == nil {
		return
	}
	if err := client.Close(); err != nil {
		log.Println("Error closing redis: ", err)
	}
	client = nil
}

func Ping(ctx context.Context) error {
	if client == nil {
		return errors.New(util.CACHE_NOT_CONNECTED)
	}
	return client.Ping(ctx).Err()
}

func SetCache(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if client == nil {
		return errors.New(util.CACHE_NOT_CONNECTED)
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return client.Set(ctx, key, payload, ttl).Err()
}

func GetCache(ctx context.Context, key string, out interface{}) error {
	if client == nil {
		return errors.New(util.CACHE_NOT_CONNECTED)
	}
	payload, err := client.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}
	return json.Unmarshal(payload, out)
}

func DeleteCache(ctx context.Context, key string) error {
	if client == nil {
		return errors.New(util.CACHE_NOT_CONNECTED)
	}
	return client.Del(ctx, key).Err()
}
