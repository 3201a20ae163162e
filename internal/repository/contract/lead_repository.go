package contract

import (
	"context"

	"travel-agency-be/internal/entity"
	"travel-agency-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ApplicationRepository interface {
	Create(ctx context.Context, application *entity.Application) error
	Update(ctx context.Context, application *entity.Application) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Application, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Application, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	CreateAttachment(ctx context.Context, attachment *entity.ApplicationAttachment) error
	AttachmentsFor(ctx context.Context, applicationId uuid.UUID) ([]*entity.ApplicationAttachment, error)
}

type ContactMessageRepository interface {
	Create(ctx context.Context, message *entity.ContactMessage) error
	Update(ctx context.Context, message *entity.ContactMessage) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ContactMessage, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ContactMessage, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
