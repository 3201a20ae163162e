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

type CityRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CityMapper
}

func NewCityRepository(db *gorm.DB) contract.CityRepository {
	return &CityRepositoryImpl{
		db:     db,
		mapper: mapper.NewCityMapper(),
	}
}

func (r *CityRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CityRepositoryImpl) Create(ctx context.Context, city *entity.City) error {
	m := r.mapper.ToModel(city)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*city = *r.mapper.ToEntity(m)
	return nil
}

func (r *CityRepositoryImpl) Update(ctx context.Context, city *entity.City) error {
	m := r.mapper.ToModel(city)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*city = *r.mapper.ToEntity(m)
	return nil
}

func (r *CityRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.City, error) {
	var m model.City
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CityRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.City, error) {
	var models []*model.City
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *CityRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.City{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *CityRepositoryImpl) GeonameIDs(ctx context.Context, specs ...specification.Specification) ([]int64, error) {
	var ids []int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.City{}), specs...)
	if err := query.Where("geoname_id IS NOT NULL").Pluck("geoname_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *CityRepositoryImpl) DeactivateByGeonameIDs(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Model(&model.City{}).
		Where("geoname_id IN ?", ids).
		Update("is_active", false)
	return res.RowsAffected, res.Error
}
