package implementation

import (
	"context"
	"errors"

	"travel-agency-be/internal/entity"
	"travel-agency-be/internal/mapper"
	"travel-agency-be/internal/model"
	"travel-agency-be/internal/repository/contract"
	"travel-agency-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TourRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TourMapper
}

func NewTourRepository(db *gorm.DB) contract.TourRepository {
	return &TourRepositoryImpl{
		db:     db,
		mapper: mapper.NewTourMapper(),
	}
}

func (r *TourRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TourRepositoryImpl) Create(ctx context.Context, tour *entity.Tour) error {
	m := r.mapper.ToModel(tour)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	tags := tour.Tags
	*tour = *r.mapper.ToEntity(m)
	tour.Tags = tags
	return nil
}

func (r *TourRepositoryImpl) Update(ctx context.Context, tour *entity.Tour) error {
	m := r.mapper.ToModel(tour)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	tags := tour.Tags
	*tour = *r.mapper.ToEntity(m)
	tour.Tags = tags
	return nil
}

func (r *TourRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Tour, error) {
	var m model.Tour
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TourRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Tour, error) {
	var models []*model.Tour
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *TourRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Tour{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *TourRepositoryImpl) TagsFor(ctx context.Context, tourId uuid.UUID) ([]*entity.TourTag, error) {
	var models []*model.TourTag
	err := r.db.WithContext(ctx).
		Joins("JOIN tour_tag_links ON tour_tag_links.tag_id = tour_tags.id").
		Where("tour_tag_links.tour_id = ?", tourId).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	tags := make([]*entity.TourTag, len(models))
	for i, t := range models {
		tags[i] = r.mapper.TagToEntity(t)
	}
	return tags, nil
}

func (r *TourRepositoryImpl) ReplaceTags(ctx context.Context, tourId uuid.UUID, tagIds []uuid.UUID) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("tour_id = ?", tourId).Delete(&model.TourTagLink{}).Error; err != nil {
		return err
	}
	for _, tagId := range tagIds {
		link := model.TourTagLink{TourId: tourId, TagId: tagId}
		if err := db.Create(&link).Error; err != nil {
			return err
		}
	}
	return nil
}
