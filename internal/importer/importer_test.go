package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"travel-agency-be/internal/repository/unitofwork"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// nopLogger satisfies logger.ILogger for tests.
type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// Minimal sqlite-friendly schema for the reference tables.
	schema := []string{
		`CREATE TABLE countries (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			iso2 TEXT NOT NULL UNIQUE,
			iso3 TEXT,
			"numeric" INTEGER,
			m49 INTEGER,
			phone_code TEXT,
			region TEXT,
			subregion TEXT,
			capital TEXT,
			currency TEXT,
			tz_primary TEXT,
			lat REAL,
			lng REAL,
			created_at DATETIME,
			updated_at DATETIME,
			is_active BOOLEAN NOT NULL DEFAULT 1,
			is_deleted BOOLEAN NOT NULL DEFAULT 0
		);`,
		`CREATE TABLE cities (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			ascii_name TEXT,
			country_id TEXT NOT NULL,
			admin1 TEXT,
			admin2 TEXT,
			tz TEXT,
			population INTEGER,
			lat REAL,
			lng REAL,
			geoname_id INTEGER UNIQUE,
			created_at DATETIME,
			updated_at DATETIME,
			is_active BOOLEAN NOT NULL DEFAULT 1,
			is_deleted BOOLEAN NOT NULL DEFAULT 0
		);`,
	}
	for _, stmt := range schema {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("create schema: %v", err)
		}
	}
	return db
}

func newTestFactory(t *testing.T) (unitofwork.RepositoryFactory, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return unitofwork.NewRepositoryFactory(db), db
}

func writeTempFile(t *testing.T, name string, lines []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

// countryLine builds a GeoNames countryInfo.txt row (19 tab-separated cols).
func countryLine(iso2, iso3, numeric, name, capital, continent, currency, phone string) string {
	cols := make([]string, 19)
	cols[0] = iso2
	cols[1] = iso3
	cols[2] = numeric
	cols[3] = "FIPS"
	cols[4] = name
	cols[5] = capital
	cols[6] = "447400"
	cols[7] = "33000000"
	cols[8] = continent
	cols[9] = ".xx"
	cols[10] = currency
	cols[11] = "Currency"
	cols[12] = phone
	cols[16] = "1512440"
	return strings.Join(cols, "\t")
}

// cityLine builds a GeoNames cities15000.txt row (19 tab-separated cols).
func cityLine(geonameID, name, lat, lng, iso2, admin1, population, tz string) string {
	cols := make([]string, 19)
	cols[0] = geonameID
	cols[1] = name
	cols[2] = name
	cols[4] = lat
	cols[5] = lng
	cols[6] = "P"
	cols[7] = "PPLC"
	cols[8] = iso2
	cols[10] = admin1
	cols[14] = population
	cols[17] = tz
	cols[18] = "2025-01-01"
	return strings.Join(cols, "\t")
}
