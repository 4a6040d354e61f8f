// Command seed populates the database with demo data.
package main

import (
	"flag"
	"log"

	"jobhive/internal/config"
	"jobhive/internal/database"
	"jobhive/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 25, "Number of users to create")
	numJobs := flag.Int("jobs", 80, "Number of job listings to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumUsers:    *numUsers,
		NumJobs:     *numJobs,
		ShouldClean: *shouldClean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Done. Log in as test@example.com with password: password123")
}
