package implementation

import (
	"context"

	"travel-agency-be/internal/entity"
	"travel-agency-be/internal/mapper"
	"travel-agency-be/internal/model"
	"travel-agency-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TourContentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TourMapper
}

func NewTourContentRepository(db *gorm.DB) contract.TourContentRepository {
	return &TourContentRepositoryImpl{
		db:     db,
		mapper: mapper.NewTourMapper(),
	}
}

func (r *TourContentRepositoryImpl) CreateStop(ctx context.Context, stop *entity.TourStop) error {
	m := r.mapper.StopToModel(stop)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*stop = *r.mapper.StopToEntity(m)
	return nil
}

func (r *TourContentRepositoryImpl) CreateItineraryDay(ctx context.Context, day *entity.ItineraryDay) error {
	m := r.mapper.ItineraryDayToModel(day)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*day = *r.mapper.ItineraryDayToEntity(m)
	return nil
}

func (r *TourContentRepositoryImpl) CreateImage(ctx context.Context, image *entity.TourImage) error {
	m := r.mapper.ImageToModel(image)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*image = *r.mapper.ImageToEntity(m)
	return nil
}

func (r *TourContentRepositoryImpl) CreateVideo(ctx context.Context, video *entity.TourVideo) error {
	m := r.mapper.VideoToModel(video)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*video = *r.mapper.VideoToEntity(m)
	return nil
}

func (r *TourContentRepositoryImpl) StopsFor(ctx context.Context, tourId uuid.UUID) ([]*entity.TourStop, error) {
	var models []*model.TourStop
	err := r.db.WithContext(ctx).
		Where("tour_id = ? AND is_active = ? AND is_deleted = ?", tourId, true, false).
		Order("\"order\"").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	stops := make([]*entity.TourStop, len(models))
	for i, m := range models {
		stops[i] = r.mapper.StopToEntity(m)
	}
	return stops, nil
}

func (r *TourContentRepositoryImpl) ItineraryFor(ctx context.Context, tourId uuid.UUID) ([]*entity.ItineraryDay, error) {
	var models []*model.ItineraryDay
	err := r.db.WithContext(ctx).
		Where("tour_id = ? AND is_active = ? AND is_deleted = ?", tourId, true, false).
		Order("day_number").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	days := make([]*entity.ItineraryDay, len(models))
	for i, m := range models {
		days[i] = r.mapper.ItineraryDayToEntity(m)
	}
	return days, nil
}

func (r *TourContentRepositoryImpl) ImagesFor(ctx context.Context, tourId uuid.UUID) ([]*entity.TourImage, error) {
	var models []*model.TourImage
	err := r.db.WithContext(ctx).
		Where("tour_id = ? AND is_active = ? AND is_deleted = ?", tourId, true, false).
		Order("\"order\"").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	images := make([]*entity.TourImage, len(models))
	for i, m := range models {
		images[i] = r.mapper.ImageToEntity(m)
	}
	return images, nil
}

func (r *TourContentRepositoryImpl) VideosFor(ctx context.Context, tourId uuid.UUID) ([]*entity.TourVideo, error) {
	var models []*model.TourVideo
	err := r.db.WithContext(ctx).
		Where("tour_id = ? AND is_active = ? AND is_deleted = ?", tourId, true, false).
		Order("\"order\"").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	videos := make([]*entity.TourVideo, len(models))
	for i, m := range models {
		videos[i] = r.mapper.VideoToEntity(m)
	}
	return videos, nil
}
