package contract

import (
	"context"

	"travel-agency-be/internal/entity"
	"travel-agency-be/internal/repository/specification"
)

type CountryRepository interface {
	Create(ctx context.Context, country *entity.Country) error
	Update(ctx context.Context, country *entity.Country) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Country, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Country, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// DeactivateByIso2 flips is_active=false for the given codes in one update.
	DeactivateByIso2(ctx context.Context, codes []string) (int64, error)
}
