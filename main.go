package main

import (
	"context"
	"log"

	"MediSearchAU/config"
	"MediSearchAU/config/db"
	"MediSearchAU/config/redis"
	"MediSearchAU/jobs"
	"MediSearchAU/migrations"
	"MediSearchAU/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var (
	startServer = startHTTPServer
	isTest      = false
)

func main() {
	run()
}

func run() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error in loading the ENV")
	}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.CORSOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	routes.Routes(r)

	if !isTest {
		ctx := context.Background()
		if err := db.Connect(ctx); err != nil {
			log.Println("Mongo unavailable, history and fallback lookups degraded: ", err)
		}
		if err := redis.Connect(ctx); err != nil {
			log.Println("Redis unavailable, running without the PBS result cache")
		}
		if config.RunMigrations() {
			migrations.AddHistoryTimestampIndex()
			migrations.BackfillSearchType()
		}
		jobs.SeedReferenceMedications()
		jobs.StartDailyScheduler()
	}

	startServer(r)
}

func startHTTPServer(r *gin.Engine) {
	if err := r.Run(":" + config.Port()); err != nil {
		log.Fatal("Server failed: ", err)
	}
}
