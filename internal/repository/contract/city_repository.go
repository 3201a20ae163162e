package contract

import (
	"context"

	"travel-agency-be/internal/entity"
	"travel-agency-be/internal/repository/specification"
)

type CityRepository interface {
	Create(ctx context.Context, city *entity.City) error
	Update(ctx context.Context, city *entity.City) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.City, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.City, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// GeonameIDs projects the geoname_id column for the matched rows,
	// skipping rows where it is NULL.
	GeonameIDs(ctx context.Context, specs ...specification.Specification) ([]int64, error)
	// DeactivateByGeonameIDs flips is_active=false for the given external ids.
	DeactivateByGeonameIDs(ctx context.Context, ids []int64) (int64, error)
}
