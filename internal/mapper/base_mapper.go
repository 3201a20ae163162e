package mapper

import (
	"travel-agency-be/internal/entity"
	"travel-agency-be/internal/model"
)

func baseToEntity(b model.Base) entity.Base {
	return entity.Base{
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
		IsActive:  b.IsActive,
		IsDeleted: b.IsDeleted,
	}
}

func baseToModel(b entity.Base) model.Base {
	return model.Base{
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
		IsActive:  b.IsActive,
		IsDeleted: b.IsDeleted,
	}
}
