package importer

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"travel-agency-be/internal/entity"
	"travel-agency-be/internal/pkg/logger"
	"travel-agency-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// GeoNames countryInfo.txt columns (tab separated, `#` comments):
// 0 ISO, 1 ISO3, 2 ISO-Numeric, 3 fips, 4 Country, 5 Capital, 6 Area,
// 7 Population, 8 Continent, 9 tld, 10 CurrencyCode, 11 CurrencyName,
// 12 Phone, 13 Postal Code Format, 14 Postal Code Regex, 15 Languages,
// 16 geonameid, 17 neighbours, 18 EquivalentFipsCode

var continentNames = map[string]string{
	"AF": "Africa",
	"AS": "Asia",
	"EU": "Europe",
	"NA": "North America",
	"OC": "Oceania",
	"SA": "South America",
	"AN": "Antarctica",
}

type CountryOptions struct {
	// DeactivateMissing flips is_active=false on countries absent from the file.
	DeactivateMissing bool
	// Reactivate forces is_active=true on every country the file touches.
	Reactivate bool
}

type CountryResult struct {
	Created     int
	Updated     int
	Skipped     int
	Deactivated int
}

// CountryImporter upserts countries from a GeoNames country master file,
// keyed on the uppercased ISO2 code. The whole run is one transaction.
type CountryImporter struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewCountryImporter(uowFactory unitofwork.RepositoryFactory, logger logger.ILogger) *CountryImporter {
	return &CountryImporter{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

func (imp *CountryImporter) Run(ctx context.Context, filePath string, opts CountryOptions) (*CountryResult, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open country file: %w", err)
	}
	defer file.Close()

	uow := imp.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	result, err := imp.runInTx(ctx, uow, file, opts)
	if err != nil {
		_ = uow.Rollback()
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return result, nil
}

func (imp *CountryImporter) runInTx(ctx context.Context, uow unitofwork.UnitOfWork, file *os.File, opts CountryOptions) (*CountryResult, error) {
	repo := uow.CountryRepository()

	existing, err := repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	byIso2 := make(map[string]*entity.Country, len(existing))
	for _, c := range existing {
		byIso2[c.Iso2] = c
	}

	result := &CountryResult{}
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		row := strings.Split(line, "\t")
		if len(row) < 17 {
			result.Skipped++
			continue
		}

		iso2 := strings.ToUpper(cleanStr(row[0]))
		name := cleanStr(row[4])
		if iso2 == "" || name == "" {
			result.Skipped++
			continue
		}

		numeric := intOrNil(row[2])
		var iso3 *string
		if v := strings.ToUpper(cleanStr(row[1])); v != "" {
			iso3 = &v
		}

		country, exists := byIso2[iso2]
		if !exists {
			country = &entity.Country{Id: uuid.New(), Iso2: iso2}
			country.IsActive = true
		}

		country.Name = name
		country.Iso3 = iso3
		country.Numeric = numeric
		// UN M49 usually matches the ISO numeric code
		country.M49 = numeric
		country.PhoneCode = cleanStr(row[12])
		country.Region = continentNames[cleanStr(row[8])]
		country.Subregion = ""
		country.Capital = cleanStr(row[5])
		country.Currency = cleanStr(row[10])
		// countryInfo.txt carries no coordinates
		country.Lat = nil
		country.Lng = nil

		if opts.Reactivate {
			country.IsActive = true
		}

		if exists {
			if err := repo.Update(ctx, country); err != nil {
				return nil, err
			}
			result.Updated++
		} else {
			if err := repo.Create(ctx, country); err != nil {
				return nil, err
			}
			byIso2[iso2] = country
			result.Created++
		}
		seen[iso2] = true
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan country file: %w", err)
	}

	if opts.DeactivateMissing {
		var missing []string
		for _, c := range existing {
			if !seen[c.Iso2] {
				missing = append(missing, c.Iso2)
			}
		}
		if len(missing) > 0 {
			n, err := repo.DeactivateByIso2(ctx, missing)
			if err != nil {
				return nil, err
			}
			result.Deactivated = int(n)
			imp.logger.Warn("importer", "deactivated countries missing from import", map[string]interface{}{
				"count": n,
			})
		}
	}

	return result, nil
}
