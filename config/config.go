package config

import (
	"os"
	"strings"
)

// Get returns the env value for key, or fallback when unset.
func Get(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func MongoURL() string {
	return Get("MONGO_URL", "mongodb://localhost:27017")
}

func DBName() string {
	return Get("DB_NAME", "medical_search")
}

func RedisURL() string {
	return Get("REDIS_URL", "redis://localhost:6379/0")
}

func Port() string {
	return Get("PORT", "8001")
}

// CORSOrigins splits CORS_ORIGINS on commas, trimming whitespace.
// Defaults to allowing every origin.
func CORSOrigins() []string {
	raw := Get("CORS_ORIGINS", "*")
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			origins = append(origins, p)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return origins
}

func GoogleAPIKey() string {
	return os.Getenv("GOOGLE_API_KEY")
}

func GoogleCSEID() string {
	return os.Getenv("GOOGLE_CSE_ID")
}

func PBSAPIBaseURL() string {
	return Get("PBS_API_BASE_URL", "https://data-api.health.gov.au/pbs/api/v3")
}

func RunMigrations() bool {
	return strings.EqualFold(os.Getenv("RUN_MIGRATIONS"), "true")
}
