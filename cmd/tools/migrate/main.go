package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/config"
	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if cfg.DB.DSN == "" {
		log.Fatal("DB_DSN environment variable is required")
	}

	db, err := storage.Open(cfg.DB.DSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate: %v", err)
	}
	log.Println("migration complete")
}
