package services

import (
	"log"
	"time"

	"MediSearchAU/config"
	"MediSearchAU/config/db"
	"MediSearchAU/config/redis"

	"github.com/gin-gonic/gin"
)

// Health reports reachability of the backing services. A dead database
// degrades the overall status, a cold cache or missing Google
// credentials do not.
func Health(c *gin.Context) map[string]interface{} {
	status := "healthy"

	database := "connected"
	if err := db.Ping(c); err != nil {
		log.Println("Health check mongo ping failed: ", err)
		database = "disconnected"
		status = "error"
	}

	cache := "connected"
	if err := redis.Ping(c); err != nil {
		cache = "disconnected"
	}

	googleSearch := "not_configured"
	if config.GoogleAPIKey() != "" && config.GoogleCSEID() != "" {
		googleSearch = "configured"
	}

	return map[string]interface{}{
		"status": status,
		"services": map[string]string{
			"database":      database,
			"cache":         cache,
			"pbs_api":       "available",
			"google_search": googleSearch,
		},
		"timestamp": time.Now().UTC(),
	}
}
