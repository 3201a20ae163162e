package importer

import (
	"context"
	"testing"

	"travel-agency-be/internal/repository/specification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountryImporter_CreatesAndClassifies(t *testing.T) {
	factory, _ := newTestFactory(t)
	imp := NewCountryImporter(factory, nopLogger{})
	ctx := context.Background()

	path := writeTempFile(t, "countryInfo.txt", []string{
		"# GeoNames country info",
		"",
		countryLine("UZ", "UZB", "860", "Uzbekistan", "Tashkent", "AS", "UZS", "998"),
		countryLine("KZ", "KAZ", "398", "Kazakhstan", "Astana", "AS", "KZT", "7"),
		"XX\tshort\trow",
		countryLine("", "ZZZ", "999", "No Code", "", "EU", "EUR", "1"),
	})

	result, err := imp.Run(ctx, path, CountryOptions{})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 0, result.Updated)
	assert.Equal(t, 2, result.Skipped)
	assert.Equal(t, 0, result.Deactivated)

	uow := factory.NewUnitOfWork(ctx)
	uz, err := uow.CountryRepository().FindOne(ctx, specification.ByIso2{Iso2: "UZ"})
	require.NoError(t, err)
	require.NotNil(t, uz)
	assert.Equal(t, "Uzbekistan", uz.Name)
	assert.Equal(t, "Asia", uz.Region)
	assert.Equal(t, "Tashkent", uz.Capital)
	assert.Equal(t, "UZS", uz.Currency)
	require.NotNil(t, uz.Iso3)
	assert.Equal(t, "UZB", *uz.Iso3)
	require.NotNil(t, uz.Numeric)
	assert.Equal(t, 860, *uz.Numeric)
	assert.True(t, uz.IsActive)
}

func TestCountryImporter_RerunIsIdempotent(t *testing.T) {
	factory, _ := newTestFactory(t)
	imp := NewCountryImporter(factory, nopLogger{})
	ctx := context.Background()

	path := writeTempFile(t, "countryInfo.txt", []string{
		countryLine("UZ", "UZB", "860", "Uzbekistan", "Tashkent", "AS", "UZS", "998"),
	})

	first, err := imp.Run(ctx, path, CountryOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, first.Created)

	second, err := imp.Run(ctx, path, CountryOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, second.Created)
	assert.Equal(t, 1, second.Updated)

	uow := factory.NewUnitOfWork(ctx)
	count, err := uow.CountryRepository().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestCountryImporter_UpsertPreservesIdentity(t *testing.T) {
	factory, _ := newTestFactory(t)
	imp := NewCountryImporter(factory, nopLogger{})
	ctx := context.Background()

	first := writeTempFile(t, "a.txt", []string{
		countryLine("UZ", "UZB", "860", "Uzbekstan", "Tashkent", "AS", "UZS", "998"),
	})
	_, err := imp.Run(ctx, first, CountryOptions{})
	require.NoError(t, err)

	uow := factory.NewUnitOfWork(ctx)
	before, err := uow.CountryRepository().FindOne(ctx, specification.ByIso2{Iso2: "UZ"})
	require.NoError(t, err)
	require.NotNil(t, before)

	// Name fixed in a later file revision.
	second := writeTempFile(t, "b.txt", []string{
		countryLine("UZ", "UZB", "860", "Uzbekistan", "Tashkent", "AS", "UZS", "998"),
	})
	_, err = imp.Run(ctx, second, CountryOptions{})
	require.NoError(t, err)

	after, err := uow.CountryRepository().FindOne(ctx, specification.ByIso2{Iso2: "UZ"})
	require.NoError(t, err)
	require.NotNil(t, after)
	assert.Equal(t, before.Id, after.Id)
	assert.Equal(t, "Uzbekistan", after.Name)
}

func TestCountryImporter_DeactivateMissingSweep(t *testing.T) {
	factory, _ := newTestFactory(t)
	imp := NewCountryImporter(factory, nopLogger{})
	ctx := context.Background()

	full := writeTempFile(t, "full.txt", []string{
		countryLine("UZ", "UZB", "860", "Uzbekistan", "Tashkent", "AS", "UZS", "998"),
		countryLine("KZ", "KAZ", "398", "Kazakhstan", "Astana", "AS", "KZT", "7"),
	})
	_, err := imp.Run(ctx, full, CountryOptions{})
	require.NoError(t, err)

	// KZ disappears from the next revision.
	partial := writeTempFile(t, "partial.txt", []string{
		countryLine("UZ", "UZB", "860", "Uzbekistan", "Tashkent", "AS", "UZS", "998"),
	})
	result, err := imp.Run(ctx, partial, CountryOptions{DeactivateMissing: true})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Deactivated)

	uow := factory.NewUnitOfWork(ctx)
	kz, err := uow.CountryRepository().FindOne(ctx, specification.ByIso2{Iso2: "KZ"})
	require.NoError(t, err)
	require.NotNil(t, kz)
	assert.False(t, kz.IsActive)

	// Without Reactivate a later full import keeps KZ inactive.
	_, err = imp.Run(ctx, full, CountryOptions{})
	require.NoError(t, err)
	kz, err = uow.CountryRepository().FindOne(ctx, specification.ByIso2{Iso2: "KZ"})
	require.NoError(t, err)
	assert.False(t, kz.IsActive)

	// Reactivate flips it back.
	_, err = imp.Run(ctx, full, CountryOptions{Reactivate: true})
	require.NoError(t, err)
	kz, err = uow.CountryRepository().FindOne(ctx, specification.ByIso2{Iso2: "KZ"})
	require.NoError(t, err)
	assert.True(t, kz.IsActive)
}

func TestCountryImporter_MissingFileAborts(t *testing.T) {
	factory, _ := newTestFactory(t)
	imp := NewCountryImporter(factory, nopLogger{})

	_, err := imp.Run(context.Background(), "/nonexistent/countryInfo.txt", CountryOptions{})
	require.Error(t, err)

	uow := factory.NewUnitOfWork(context.Background())
	count, err := uow.CountryRepository().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
