package main

import (
	"context"
	"flag"
	"log"

	"travel-agency-be/internal/config"
	"travel-agency-be/internal/importer"
	"travel-agency-be/internal/pkg/logger"
	"travel-agency-be/internal/repository/unitofwork"
	"travel-agency-be/pkg/database"

	"github.com/fatih/color"
)

func main() {
	filePath := flag.String("file", "", "path to the GeoNames countryInfo.txt file")
	deactivateMissing := flag.Bool("deactivate-missing", false, "deactivate countries absent from the file")
	reactivate := flag.Bool("reactivate", false, "re-enable previously deactivated countries present in the file")
	flag.Parse()

	if *filePath == "" {
		log.Fatal("Error: -file is required")
	}

	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Error: Failed to connect to database: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	imp := importer.NewCountryImporter(uowFactory, sysLogger)
	result, err := imp.Run(context.Background(), *filePath, importer.CountryOptions{
		DeactivateMissing: *deactivateMissing,
		Reactivate:        *reactivate,
	})
	if err != nil {
		color.Red("Import failed: %v", err)
		log.Fatal(err)
	}

	color.Green("Country import finished")
	color.Cyan("  created:     %d", result.Created)
	color.Cyan("  updated:     %d", result.Updated)
	color.Yellow("  skipped:     %d", result.Skipped)
	color.Magenta("  deactivated: %d", result.Deactivated)
}
