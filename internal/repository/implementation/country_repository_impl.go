package implementation

import (
	"context"
	"errors"

	"travel-agency-be/internal/entity"
	"travel-agency-be/internal/mapper"
	"travel-agency-be/internal/model"
	"travel-agency-be/internal/repository/contract"
	"travel-agency-be/internal/repository/specification"

	"gorm.io/gorm"
)

type CountryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CountryMapper
}

func NewCountryRepository(db *gorm.DB) contract.CountryRepository {
	return &CountryRepositoryImpl{
		db:     db,
		mapper: mapper.NewCountryMapper(),
	}
}

func (r *CountryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CountryRepositoryImpl) Create(ctx context.Context, country *entity.Country) error {
	m := r.mapper.ToModel(country)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*country = *r.mapper.ToEntity(m)
	return nil
}

func (r *CountryRepositoryImpl) Update(ctx context.Context, country *entity.Country) error {
	m := r.mapper.ToModel(country)
	// Save updates every column including zero values
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*country = *r.mapper.ToEntity(m)
	return nil
}

func (r *CountryRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Country, error) {
	var m model.Country
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CountryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Country, error) {
	var models []*model.Country
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *CountryRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Country{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *CountryRepositoryImpl) DeactivateByIso2(ctx context.Context, codes []string) (int64, error) {
	if len(codes) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Model(&model.Country{}).
		Where("iso2 IN ?", codes).
		Update("is_active", false)
	return res.RowsAffected, res.Error
}
