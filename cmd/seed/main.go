package main

import (
	"context"
	"log"
	"waste_tracker/internal/platform/config"
	"waste_tracker/internal/platform/database"
	"waste_tracker/internal/seeds"
)

func main() {
	config.Load()
	database.Connect()
	defer database.Close()

	if err := seeds.SeedAll(context.Background(), database.DB); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Println("Seeding complete.")
}
