package main

import (
	"log"
	"time"

	"github.com/interview-hub/interview-hub/db"
	"github.com/interview-hub/interview-hub/internal/auth"
	"github.com/interview-hub/interview-hub/internal/config"
	"github.com/interview-hub/interview-hub/internal/router"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()

	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	auth.InitJWT(cfg.JWTSecret, time.Duration(cfg.JWTExpirationHours)*time.Hour)

	if err := db.ConnectDatabase(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if cfg.SeedDB {
		if err := db.SeedDatabase(db.DB); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	r := router.NewRouter()

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
