package main

import (
	log "github.com/sirupsen/logrus"

	"thunai_backend/internals/configs"
	database "thunai_backend/internals/databases"
	"thunai_backend/internals/databases/seeder"
)

// Deploy-time migration + seed. Run once per deployment:
//
//	go run ./cmd/seed
func main() {
	configs.LoadEnv()
	database.ConnectDB()

	if err := database.Migrate(database.DB); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	if err := seeder.Seed(database.DB); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
	log.Info("migration and seed complete")
}
