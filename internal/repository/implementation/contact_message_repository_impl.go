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

type ContactMessageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ContactMessageMapper
}

func NewContactMessageRepository(db *gorm.DB) contract.ContactMessageRepository {
	return &ContactMessageRepositoryImpl{
		db:     db,
		mapper: mapper.NewContactMessageMapper(),
	}
}

func (r *ContactMessageRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ContactMessageRepositoryImpl) Create(ctx context.Context, message *entity.ContactMessage) error {
	m := r.mapper.ToModel(message)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*message = *r.mapper.ToEntity(m)
	return nil
}

func (r *ContactMessageRepositoryImpl) Update(ctx context.Context, message *entity.ContactMessage) error {
	m := r.mapper.ToModel(message)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*message = *r.mapper.ToEntity(m)
	return nil
}

func (r *ContactMessageRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ContactMessage, error) {
	var m model.ContactMessage
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ContactMessageRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ContactMessage, error) {
	var models []*model.ContactMessage
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ContactMessageRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ContactMessage{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
