package importer

import (
	"context"
	"testing"

	"travel-agency-be/internal/repository/specification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCountries(t *testing.T, imp *CountryImporter) {
	t.Helper()
	path := writeTempFile(t, "countryInfo.txt", []string{
		countryLine("UZ", "UZB", "860", "Uzbekistan", "Tashkent", "AS", "UZS", "998"),
		countryLine("KZ", "KAZ", "398", "Kazakhstan", "Astana", "AS", "KZT", "7"),
	})
	_, err := imp.Run(context.Background(), path, CountryOptions{})
	require.NoError(t, err)
}

func TestCityImporter_SkipClassification(t *testing.T) {
	factory, _ := newTestFactory(t)
	seedCountries(t, NewCountryImporter(factory, nopLogger{}))
	imp := NewCityImporter(factory, nopLogger{})
	ctx := context.Background()

	path := writeTempFile(t, "cities15000.txt", []string{
		cityLine("1512569", "Tashkent", "41.264", "69.216", "UZ", "13", "2571668", "Asia/Tashkent"),
		cityLine("1216265", "Samarkand", "39.654", "66.959", "UZ", "12", "388000", "Asia/Samarkand"),
		// below the population floor
		cityLine("1512470", "Zomin", "39.96", "68.39", "UZ", "06", "11800", "Asia/Tashkent"),
		// country never imported
		cityLine("1526384", "Bishkek", "42.87", "74.59", "KG", "01", "1074075", "Asia/Bishkek"),
		// filtered out by iso filter
		cityLine("1526273", "Astana", "51.18", "71.44", "KZ", "05", "1350228", "Asia/Almaty"),
		// unparseable geoname id
		cityLine("not-a-number", "Ghost", "0", "0", "UZ", "01", "999999", "UTC"),
		"short\trow",
	})

	result, err := imp.Run(ctx, path, CityOptions{
		MinPopulation: DefaultMinPopulation,
		IsoFilter:     []string{"uz", "KG"},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 0, result.Updated)
	assert.Equal(t, 1, result.SkippedFilter, "KZ row is outside the filter")
	assert.Equal(t, 1, result.SkippedPop)
	assert.Equal(t, 1, result.SkippedCountry, "KG has no stored country")
	assert.Equal(t, 2, result.SkippedParse)

	uow := factory.NewUnitOfWork(ctx)
	tashkent, err := uow.CityRepository().FindOne(ctx, specification.ByGeonameID{GeonameID: 1512569})
	require.NoError(t, err)
	require.NotNil(t, tashkent)
	assert.Equal(t, "Tashkent", tashkent.Name)
	assert.Equal(t, "Asia/Tashkent", tashkent.Tz)
	require.NotNil(t, tashkent.Population)
	assert.Equal(t, int64(2571668), *tashkent.Population)
}

func TestCityImporter_UpsertByGeonameID(t *testing.T) {
	factory, _ := newTestFactory(t)
	seedCountries(t, NewCountryImporter(factory, nopLogger{}))
	imp := NewCityImporter(factory, nopLogger{})
	ctx := context.Background()

	first := writeTempFile(t, "a.txt", []string{
		cityLine("1512569", "Toshkent", "41.264", "69.216", "UZ", "13", "2400000", "Asia/Tashkent"),
	})
	_, err := imp.Run(ctx, first, CityOptions{MinPopulation: DefaultMinPopulation})
	require.NoError(t, err)

	uow := factory.NewUnitOfWork(ctx)
	before, err := uow.CityRepository().FindOne(ctx, specification.ByGeonameID{GeonameID: 1512569})
	require.NoError(t, err)
	require.NotNil(t, before)

	second := writeTempFile(t, "b.txt", []string{
		cityLine("1512569", "Tashkent", "41.264", "69.216", "UZ", "13", "2571668", "Asia/Tashkent"),
	})
	result, err := imp.Run(ctx, second, CityOptions{MinPopulation: DefaultMinPopulation})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Created)
	assert.Equal(t, 1, result.Updated)

	after, err := uow.CityRepository().FindOne(ctx, specification.ByGeonameID{GeonameID: 1512569})
	require.NoError(t, err)
	require.NotNil(t, after)
	assert.Equal(t, before.Id, after.Id)
	assert.Equal(t, "Tashkent", after.Name)
	require.NotNil(t, after.Population)
	assert.Equal(t, int64(2571668), *after.Population)

	count, err := uow.CityRepository().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestCityImporter_SweepScopedToFilter(t *testing.T) {
	factory, _ := newTestFactory(t)
	seedCountries(t, NewCountryImporter(factory, nopLogger{}))
	imp := NewCityImporter(factory, nopLogger{})
	ctx := context.Background()

	full := writeTempFile(t, "full.txt", []string{
		cityLine("1512569", "Tashkent", "41.264", "69.216", "UZ", "13", "2571668", "Asia/Tashkent"),
		cityLine("1216265", "Samarkand", "39.654", "66.959", "UZ", "12", "388000", "Asia/Samarkand"),
		cityLine("1526273", "Astana", "51.18", "71.44", "KZ", "05", "1350228", "Asia/Almaty"),
	})
	_, err := imp.Run(ctx, full, CityOptions{MinPopulation: DefaultMinPopulation})
	require.NoError(t, err)

	// Samarkand drops out of the UZ-scoped revision. Astana is outside the
	// filter and must survive the sweep untouched.
	partial := writeTempFile(t, "partial.txt", []string{
		cityLine("1512569", "Tashkent", "41.264", "69.216", "UZ", "13", "2571668", "Asia/Tashkent"),
	})
	result, err := imp.Run(ctx, partial, CityOptions{
		MinPopulation:     DefaultMinPopulation,
		IsoFilter:         []string{"UZ"},
		DeactivateMissing: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Deactivated)

	uow := factory.NewUnitOfWork(ctx)
	samarkand, err := uow.CityRepository().FindOne(ctx, specification.ByGeonameID{GeonameID: 1216265})
	require.NoError(t, err)
	require.NotNil(t, samarkand)
	assert.False(t, samarkand.IsActive)

	astana, err := uow.CityRepository().FindOne(ctx, specification.ByGeonameID{GeonameID: 1526273})
	require.NoError(t, err)
	require.NotNil(t, astana)
	assert.True(t, astana.IsActive)
}

func TestCityImporter_ReactivateRestoresDeactivatedRows(t *testing.T) {
	factory, _ := newTestFactory(t)
	seedCountries(t, NewCountryImporter(factory, nopLogger{}))
	imp := NewCityImporter(factory, nopLogger{})
	ctx := context.Background()

	full := writeTempFile(t, "full.txt", []string{
		cityLine("1512569", "Tashkent", "41.264", "69.216", "UZ", "13", "2571668", "Asia/Tashkent"),
		cityLine("1216265", "Samarkand", "39.654", "66.959", "UZ", "12", "388000", "Asia/Samarkand"),
	})
	_, err := imp.Run(ctx, full, CityOptions{MinPopulation: DefaultMinPopulation})
	require.NoError(t, err)

	partial := writeTempFile(t, "partial.txt", []string{
		cityLine("1512569", "Tashkent", "41.264", "69.216", "UZ", "13", "2571668", "Asia/Tashkent"),
	})
	_, err = imp.Run(ctx, partial, CityOptions{
		MinPopulation:     DefaultMinPopulation,
		DeactivateMissing: true,
	})
	require.NoError(t, err)

	_, err = imp.Run(ctx, full, CityOptions{
		MinPopulation: DefaultMinPopulation,
		Reactivate:    true,
	})
	require.NoError(t, err)

	uow := factory.NewUnitOfWork(ctx)
	samarkand, err := uow.CityRepository().FindOne(ctx, specification.ByGeonameID{GeonameID: 1216265})
	require.NoError(t, err)
	require.NotNil(t, samarkand)
	assert.True(t, samarkand.IsActive)
	assert.False(t, samarkand.IsDeleted)
}
