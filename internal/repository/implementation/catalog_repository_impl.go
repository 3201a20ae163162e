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

// Category, tag and departure repositories share the tour mapper.

type TourCategoryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TourMapper
}

func NewTourCategoryRepository(db *gorm.DB) contract.TourCategoryRepository {
	return &TourCategoryRepositoryImpl{db: db, mapper: mapper.NewTourMapper()}
}

func (r *TourCategoryRepositoryImpl) Create(ctx context.Context, category *entity.TourCategory) error {
	m := r.mapper.CategoryToModel(category)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*category = *r.mapper.CategoryToEntity(m)
	return nil
}

func (r *TourCategoryRepositoryImpl) Update(ctx context.Context, category *entity.TourCategory) error {
	m := r.mapper.CategoryToModel(category)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*category = *r.mapper.CategoryToEntity(m)
	return nil
}

func (r *TourCategoryRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TourCategory, error) {
	var m model.TourCategory
	query := r.db.WithContext(ctx)
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.CategoryToEntity(&m), nil
}

func (r *TourCategoryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TourCategory, error) {
	var models []*model.TourCategory
	query := r.db.WithContext(ctx)
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	categories := make([]*entity.TourCategory, len(models))
	for i, m := range models {
		categories[i] = r.mapper.CategoryToEntity(m)
	}
	return categories, nil
}

type TourTagRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TourMapper
}

func NewTourTagRepository(db *gorm.DB) contract.TourTagRepository {
	return &TourTagRepositoryImpl{db: db, mapper: mapper.NewTourMapper()}
}

func (r *TourTagRepositoryImpl) Create(ctx context.Context, tag *entity.TourTag) error {
	m := r.mapper.TagToModel(tag)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*tag = *r.mapper.TagToEntity(m)
	return nil
}

func (r *TourTagRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TourTag, error) {
	var m model.TourTag
	query := r.db.WithContext(ctx)
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.TagToEntity(&m), nil
}

func (r *TourTagRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TourTag, error) {
	var models []*model.TourTag
	query := r.db.WithContext(ctx)
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	tags := make([]*entity.TourTag, len(models))
	for i, m := range models {
		tags[i] = r.mapper.TagToEntity(m)
	}
	return tags, nil
}

type TourDepartureRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TourMapper
}

func NewTourDepartureRepository(db *gorm.DB) contract.TourDepartureRepository {
	return &TourDepartureRepositoryImpl{db: db, mapper: mapper.NewTourMapper()}
}

func (r *TourDepartureRepositoryImpl) Create(ctx context.Context, departure *entity.TourDeparture) error {
	m := r.mapper.DepartureToModel(departure)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*departure = *r.mapper.DepartureToEntity(m)
	return nil
}

func (r *TourDepartureRepositoryImpl) Update(ctx context.Context, departure *entity.TourDeparture) error {
	m := r.mapper.DepartureToModel(departure)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*departure = *r.mapper.DepartureToEntity(m)
	return nil
}

func (r *TourDepartureRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TourDeparture, error) {
	var models []*model.TourDeparture
	query := r.db.WithContext(ctx)
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	departures := make([]*entity.TourDeparture, len(models))
	for i, m := range models {
		departures[i] = r.mapper.DepartureToEntity(m)
	}
	return departures, nil
}
