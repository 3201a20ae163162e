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

type SiteSettingsRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SiteInfoMapper
}

func NewSiteSettingsRepository(db *gorm.DB) contract.SiteSettingsRepository {
	return &SiteSettingsRepositoryImpl{
		db:     db,
		mapper: mapper.NewSiteInfoMapper(),
	}
}

func (r *SiteSettingsRepositoryImpl) Get(ctx context.Context, singletonKey string) (*entity.SiteSettings, error) {
	var m model.SiteSettings
	err := r.db.WithContext(ctx).Where("singleton_key = ?", singletonKey).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.SettingsToEntity(&m), nil
}

func (r *SiteSettingsRepositoryImpl) Upsert(ctx context.Context, settings *entity.SiteSettings) error {
	var existing model.SiteSettings
	err := r.db.WithContext(ctx).Where("singleton_key = ?", settings.SingletonKey).First(&existing).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	m := r.mapper.SettingsToModel(settings)
	if err == nil {
		m.Id = existing.Id
		m.CreatedAt = existing.CreatedAt
		err = r.db.WithContext(ctx).Save(m).Error
	} else {
		err = r.db.WithContext(ctx).Create(m).Error
	}
	if err != nil {
		return err
	}
	*settings = *r.mapper.SettingsToEntity(m)
	return nil
}

type PageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SiteInfoMapper
}

func NewPageRepository(db *gorm.DB) contract.PageRepository {
	return &PageRepositoryImpl{
		db:     db,
		mapper: mapper.NewSiteInfoMapper(),
	}
}

func (r *PageRepositoryImpl) Create(ctx context.Context, page *entity.Page) error {
	m := r.mapper.PageToModel(page)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*page = *r.mapper.PageToEntity(m)
	return nil
}

func (r *PageRepositoryImpl) Update(ctx context.Context, page *entity.Page) error {
	m := r.mapper.PageToModel(page)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*page = *r.mapper.PageToEntity(m)
	return nil
}

func (r *PageRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Page, error) {
	var m model.Page
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
	return r.mapper.PageToEntity(&m), nil
}

func (r *PageRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Page, error) {
	var models []*model.Page
	query := r.db.WithContext(ctx)
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.PagesToEntities(models), nil
}
