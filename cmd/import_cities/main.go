package main

import (
	"context"
	"flag"
	"log"
	"strings"

	"travel-agency-be/internal/config"
	"travel-agency-be/internal/importer"
	"travel-agency-be/internal/pkg/logger"
	"travel-agency-be/internal/repository/unitofwork"
	"travel-agency-be/pkg/database"

	"github.com/fatih/color"
)

func main() {
	filePath := flag.String("file", "", "path to the GeoNames cities file (e.g. cities15000.txt)")
	minPop := flag.Int64("min-pop", importer.DefaultMinPopulation, "minimum population to import")
	countries := flag.String("countries", "", "comma-separated ISO2 codes to restrict the import to")
	deactivateMissing := flag.Bool("deactivate-missing", false, "deactivate cities absent from the file (scoped to -countries when given)")
	reactivate := flag.Bool("reactivate", false, "re-enable previously deactivated cities present in the file")
	flag.Parse()

	if *filePath == "" {
		log.Fatal("Error: -file is required")
	}

	var isoFilter []string
	for _, code := range strings.Split(*countries, ",") {
		if code = strings.TrimSpace(code); code != "" {
			isoFilter = append(isoFilter, strings.ToUpper(code))
		}
	}

	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Error: Failed to connect to database: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	imp := importer.NewCityImporter(uowFactory, sysLogger)
	result, err := imp.Run(context.Background(), *filePath, importer.CityOptions{
		MinPopulation:     *minPop,
		IsoFilter:         isoFilter,
		DeactivateMissing: *deactivateMissing,
		Reactivate:        *reactivate,
	})
	if err != nil {
		color.Red("Import failed: %v", err)
		log.Fatal(err)
	}

	color.Green("City import finished")
	color.Cyan("  created:          %d", result.Created)
	color.Cyan("  updated:          %d", result.Updated)
	color.Yellow("  skipped (filter): %d", result.SkippedFilter)
	color.Yellow("  skipped (pop):    %d", result.SkippedPop)
	color.Yellow("  skipped (ctry):   %d", result.SkippedCountry)
	color.Yellow("  skipped (parse):  %d", result.SkippedParse)
	color.Magenta("  deactivated:      %d", result.Deactivated)
}
