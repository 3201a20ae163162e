package main

import (
	"log"
	"os"

	"travel-agency-be/internal/model"
	"travel-agency-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM Migration...")

	// 3. Pre-Migration: Extensions & Enums (Things GORM AutoMigrate doesn't do)
	log.Println("Step 1: Setting up Extensions and Enums...")

	setupSQL := []string{
		// Extensions
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,

		// Enums (Idempotent creation)
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'application_status') THEN CREATE TYPE application_status AS ENUM ('new', 'in_review', 'contacted', 'won', 'lost', 'spam'); END IF; END $$;`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'contact_status') THEN CREATE TYPE contact_status AS ENUM ('new', 'read', 'answered', 'spam'); END IF; END $$;`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'contact_subject') THEN CREATE TYPE contact_subject AS ENUM ('general', 'booking', 'support', 'partnership', 'other'); END IF; END $$;`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'preferred_contact') THEN CREATE TYPE preferred_contact AS ENUM ('phone', 'whatsapp', 'telegram', 'email'); END IF; END $$;`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'tour_status') THEN CREATE TYPE tour_status AS ENUM ('draft', 'published', 'archived'); END IF; END $$;`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'tour_difficulty') THEN CREATE TYPE tour_difficulty AS ENUM ('easy', 'moderate', 'hard'); END IF; END $$;`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'video_provider') THEN CREATE TYPE video_provider AS ENUM ('youtube', 'vimeo', 'file'); END IF; END $$;`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate All Models
	log.Println("Step 2: Running AutoMigrate...")

	models := []interface{}{
		&model.Country{},
		&model.City{},

		&model.TourCategory{},
		&model.TourTag{},
		&model.Tour{},
		&model.TourTagLink{},
		&model.TourStop{},
		&model.ItineraryDay{},
		&model.TourImage{},
		&model.TourVideo{},
		&model.TourDeparture{},

		&model.Application{},
		&model.ApplicationAttachment{},
		&model.ContactMessage{},

		&model.SiteSettings{},
		&model.Page{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	log.Println("Success: Database migration completed via GORM.")
}
