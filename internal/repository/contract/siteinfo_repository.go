package contract

import (
	"context"

	"travel-agency-be/internal/entity"
	"travel-agency-be/internal/repository/specification"
)

type SiteSettingsRepository interface {
	// Get returns the singleton row for the given key, nil when absent.
	Get(ctx context.Context, singletonKey string) (*entity.SiteSettings, error)
	Upsert(ctx context.Context, settings *entity.SiteSettings) error
}

type PageRepository interface {
	Create(ctx context.Context, page *entity.Page) error
	Update(ctx context.Context, page *entity.Page) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Page, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Page, error)
}
