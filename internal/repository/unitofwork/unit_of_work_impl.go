package unitofwork

import (
	"context"
	"fmt"

	"travel-agency-be/internal/repository/contract"
	"travel-agency-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // active transaction, nil outside Begin/Commit
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{db: db}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) CountryRepository() contract.CountryRepository {
	return implementation.NewCountryRepository(u.getDB())
}

func (u *UnitOfWorkImpl) CityRepository() contract.CityRepository {
	return implementation.NewCityRepository(u.getDB())
}

func (u *UnitOfWorkImpl) TourRepository() contract.TourRepository {
	return implementation.NewTourRepository(u.getDB())
}

func (u *UnitOfWorkImpl) TourCategoryRepository() contract.TourCategoryRepository {
	return implementation.NewTourCategoryRepository(u.getDB())
}

func (u *UnitOfWorkImpl) TourTagRepository() contract.TourTagRepository {
	return implementation.NewTourTagRepository(u.getDB())
}

func (u *UnitOfWorkImpl) TourDepartureRepository() contract.TourDepartureRepository {
	return implementation.NewTourDepartureRepository(u.getDB())
}

func (u *UnitOfWorkImpl) TourContentRepository() contract.TourContentRepository {
	return implementation.NewTourContentRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ApplicationRepository() contract.ApplicationRepository {
	return implementation.NewApplicationRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ContactMessageRepository() contract.ContactMessageRepository {
	return implementation.NewContactMessageRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SiteSettingsRepository() contract.SiteSettingsRepository {
	return implementation.NewSiteSettingsRepository(u.getDB())
}

func (u *UnitOfWorkImpl) PageRepository() contract.PageRepository {
	return implementation.NewPageRepository(u.getDB())
}
