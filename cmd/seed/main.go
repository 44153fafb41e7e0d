// Command main runs the database seeder for Slide.
package main

import (
	"flag"
	"log"

	"github.com/0xvictorb/slide-alpha-sub000/internal/config"
	"github.com/0xvictorb/slide-alpha-sub000/internal/database"
	"github.com/0xvictorb/slide-alpha-sub000/internal/seed"
)

func main() {
	// Parse command line flags
	numUsers := flag.Int("users", 20, "Number of users to create")
	numContent := flag.Int("content", 100, "Number of content items to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	fixturesPath := flag.String("fixtures", "", "YAML fixture file with pinned demo accounts")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")
	log.Printf("Target: %d users, %d content items, clean=%v\n", *numUsers, *numContent, *shouldClean)

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumUsers:    *numUsers,
		NumContent:  *numContent,
		VideoRatio:  cfg.FeedVideoRatio,
		ShouldClean: *shouldClean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	if *fixturesPath != "" {
		fx, err := seed.LoadFixtures(*fixturesPath)
		if err != nil {
			log.Fatalf("Failed to load fixtures: %v", err)
		}
		if err := fx.Apply(db); err != nil {
			log.Fatalf("Failed to apply fixtures: %v", err)
		}
		log.Printf("Applied fixtures from %s", *fixturesPath)
	}
}
