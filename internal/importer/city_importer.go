package importer

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"travel-agency-be/internal/entity"
	"travel-agency-be/internal/pkg/logger"
	"travel-agency-be/internal/repository/specification"
	"travel-agency-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// GeoNames cities*.txt columns (0-based):
// 0 geonameid, 1 name, 2 asciiname, 3 alternatenames, 4 latitude,
// 5 longitude, 6 feature class, 7 feature code, 8 country code (ISO2),
// 9 cc2, 10 admin1 code, 11 admin2 code, 12 admin3, 13 admin4,
// 14 population, 15 elevation, 16 dem, 17 timezone, 18 modification date

const DefaultMinPopulation = 15000

type CityOptions struct {
	MinPopulation int64
	// IsoFilter restricts the run to the listed ISO2 codes; empty means all.
	IsoFilter []string
	// DeactivateMissing sweeps pre-existing cities absent from this run,
	// scoped to IsoFilter when one is given.
	DeactivateMissing bool
	Reactivate        bool
}

type CityResult struct {
	Created        int
	Updated        int
	SkippedFilter  int
	SkippedCountry int
	SkippedPop     int
	SkippedParse   int
	Deactivated    int
}

// CityImporter upserts cities from a GeoNames city master file keyed on the
// external geoname id. Countries must already be imported; each row resolves
// its country through an ISO2 lookup. One transaction per run.
type CityImporter struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewCityImporter(uowFactory unitofwork.RepositoryFactory, logger logger.ILogger) *CityImporter {
	return &CityImporter{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

func (imp *CityImporter) Run(ctx context.Context, filePath string, opts CityOptions) (*CityResult, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open city file: %w", err)
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

func (imp *CityImporter) runInTx(ctx context.Context, uow unitofwork.UnitOfWork, file *os.File, opts CityOptions) (*CityResult, error) {
	countryRepo := uow.CountryRepository()
	cityRepo := uow.CityRepository()

	isoFilter := make(map[string]bool, len(opts.IsoFilter))
	for _, code := range opts.IsoFilter {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code != "" {
			isoFilter[code] = true
		}
	}

	countries, err := countryRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	byIso2 := make(map[string]*entity.Country, len(countries))
	for _, c := range countries {
		byIso2[c.Iso2] = c
	}

	// Filter codes without a stored country can never produce a row; warn
	// up front instead of failing the run.
	if len(isoFilter) > 0 {
		var unknown []string
		for code := range isoFilter {
			if _, ok := byIso2[code]; !ok {
				unknown = append(unknown, code)
			}
		}
		if len(unknown) > 0 {
			sort.Strings(unknown)
			imp.logger.Warn("importer", "filter countries not found in storage", map[string]interface{}{
				"codes": strings.Join(unknown, ","),
			})
		}
	}

	// The missing-sweep compares against the pre-existing set, scoped the
	// same way the run itself is scoped.
	existingSpecs := []specification.Specification{}
	if len(isoFilter) > 0 {
		var countryIds []uuid.UUID
		for code := range isoFilter {
			if c, ok := byIso2[code]; ok {
				countryIds = append(countryIds, c.Id)
			}
		}
		if len(countryIds) == 0 {
			countryIds = []uuid.UUID{uuid.Nil}
		}
		existingSpecs = append(existingSpecs, specification.ByCountryIDs{CountryIDs: countryIds})
	}
	existingIds, err := cityRepo.GeonameIDs(ctx, existingSpecs...)
	if err != nil {
		return nil, err
	}
	existingSet := make(map[int64]bool, len(existingIds))
	for _, id := range existingIds {
		existingSet[id] = true
	}

	result := &CityResult{}
	seen := make(map[int64]bool)

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		row := strings.Split(line, "\t")
		if len(row) < 19 {
			result.SkippedParse++
			continue
		}

		geonameId, err := strconv.ParseInt(strings.TrimSpace(row[0]), 10, 64)
		if err != nil {
			result.SkippedParse++
			continue
		}

		name := cleanStr(row[1])
		asciiName := cleanStr(row[2])
		lat := floatOrNil(row[4])
		lng := floatOrNil(row[5])
		iso2 := strings.ToUpper(cleanStr(row[8]))
		admin1 := cleanStr(row[10])
		admin2 := cleanStr(row[11])
		population := int64OrZero(row[14])
		tz := cleanStr(row[17])

		// Skip reasons are mutually exclusive and checked in a fixed
		// order: filter, then population, then country resolution.
		if len(isoFilter) > 0 && !isoFilter[iso2] {
			result.SkippedFilter++
			continue
		}
		if population < opts.MinPopulation {
			result.SkippedPop++
			continue
		}
		country, ok := byIso2[iso2]
		if !ok {
			result.SkippedCountry++
			continue
		}

		city, err := cityRepo.FindOne(ctx, specification.ByGeonameID{GeonameID: geonameId})
		if err != nil {
			return nil, err
		}
		isCreate := city == nil
		if isCreate {
			gid := geonameId
			city = &entity.City{Id: uuid.New(), GeonameId: &gid}
			city.IsActive = true
		}

		pop := population
		city.Name = name
		city.AsciiName = asciiName
		city.CountryId = country.Id
		city.Admin1 = admin1
		city.Admin2 = admin2
		city.Tz = tz
		city.Population = &pop
		city.Lat = lat
		city.Lng = lng

		if opts.Reactivate {
			city.IsActive = true
			city.IsDeleted = false
		}

		if isCreate {
			if err := cityRepo.Create(ctx, city); err != nil {
				return nil, err
			}
			result.Created++
		} else {
			if err := cityRepo.Update(ctx, city); err != nil {
				return nil, err
			}
			result.Updated++
		}
		seen[geonameId] = true
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan city file: %w", err)
	}

	if opts.DeactivateMissing {
		var missing []int64
		for id := range existingSet {
			if !seen[id] {
				missing = append(missing, id)
			}
		}
		if len(missing) > 0 {
			n, err := cityRepo.DeactivateByGeonameIDs(ctx, missing)
			if err != nil {
				return nil, err
			}
			result.Deactivated = int(n)
			imp.logger.Warn("importer", "deactivated cities missing from import", map[string]interface{}{
				"count": n,
			})
		}
	}

	return result, nil
}
