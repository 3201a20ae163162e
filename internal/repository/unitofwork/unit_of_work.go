package unitofwork

import (
	"context"

	"travel-agency-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	CountryRepository() contract.CountryRepository
	CityRepository() contract.CityRepository

	TourRepository() contract.TourRepository
	TourCategoryRepository() contract.TourCategoryRepository
	TourTagRepository() contract.TourTagRepository
	TourDepartureRepository() contract.TourDepartureRepository
	TourContentRepository() contract.TourContentRepository

	ApplicationRepository() contract.ApplicationRepository
	ContactMessageRepository() contract.ContactMessageRepository

	SiteSettingsRepository() contract.SiteSettingsRepository
	PageRepository() contract.PageRepository
}
