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

type ApplicationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ApplicationMapper
}

func NewApplicationRepository(db *gorm.DB) contract.ApplicationRepository {
	return &ApplicationRepositoryImpl{
		db:     db,
		mapper: mapper.NewApplicationMapper(),
	}
}

func (r *ApplicationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ApplicationRepositoryImpl) Create(ctx context.Context, application *entity.Application) error {
	m := r.mapper.ToModel(application)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	attachments := application.Attachments
	*application = *r.mapper.ToEntity(m)
	application.Attachments = attachments
	return nil
}

func (r *ApplicationRepositoryImpl) Update(ctx context.Context, application *entity.Application) error {
	m := r.mapper.ToModel(application)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	attachments := application.Attachments
	*application = *r.mapper.ToEntity(m)
	application.Attachments = attachments
	return nil
}

func (r *ApplicationRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Application, error) {
	var m model.Application
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ApplicationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Application, error) {
	var models []*model.Application
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ApplicationRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Application{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ApplicationRepositoryImpl) CreateAttachment(ctx context.Context, attachment *entity.ApplicationAttachment) error {
	m := r.mapper.AttachmentToModel(attachment)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*attachment = *r.mapper.AttachmentToEntity(m)
	return nil
}

func (r *ApplicationRepositoryImpl) AttachmentsFor(ctx context.Context, applicationId uuid.UUID) ([]*entity.ApplicationAttachment, error) {
	var models []*model.ApplicationAttachment
	err := r.db.WithContext(ctx).
		Where("application_id = ?", applicationId).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	attachments := make([]*entity.ApplicationAttachment, len(models))
	for i, m := range models {
		attachments[i] = r.mapper.AttachmentToEntity(m)
	}
	return attachments, nil
}
