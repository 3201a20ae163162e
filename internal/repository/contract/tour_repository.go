package contract

import (
	"context"

	"travel-agency-be/internal/entity"
	"travel-agency-be/internal/repository/specification"

	"github.com/google/uuid"
)

type TourRepository interface {
	Create(ctx context.Context, tour *entity.Tour) error
	Update(ctx context.Context, tour *entity.Tour) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Tour, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Tour, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	TagsFor(ctx context.Context, tourId uuid.UUID) ([]*entity.TourTag, error)
	ReplaceTags(ctx context.Context, tourId uuid.UUID, tagIds []uuid.UUID) error
}

type TourCategoryRepository interface {
	Create(ctx context.Context, category *entity.TourCategory) error
	Update(ctx context.Context, category *entity.TourCategory) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TourCategory, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TourCategory, error)
}

type TourTagRepository interface {
	Create(ctx context.Context, tag *entity.TourTag) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TourTag, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TourTag, error)
}

type TourDepartureRepository interface {
	Create(ctx context.Context, departure *entity.TourDeparture) error
	Update(ctx context.Context, departure *entity.TourDeparture) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TourDeparture, error)
}

// TourContentRepository covers the per-tour detail collections: route stops,
// day-by-day itinerary and media.
type TourContentRepository interface {
	CreateStop(ctx context.Context, stop *entity.TourStop) error
	CreateItineraryDay(ctx context.Context, day *entity.ItineraryDay) error
	CreateImage(ctx context.Context, image *entity.TourImage) error
	CreateVideo(ctx context.Context, video *entity.TourVideo) error
	StopsFor(ctx context.Context, tourId uuid.UUID) ([]*entity.TourStop, error)
	ItineraryFor(ctx context.Context, tourId uuid.UUID) ([]*entity.ItineraryDay, error)
	ImagesFor(ctx context.Context, tourId uuid.UUID) ([]*entity.TourImage, error)
	VideosFor(ctx context.Context, tourId uuid.UUID) ([]*entity.TourVideo, error)
}
