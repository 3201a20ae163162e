package model

import "time"

// Base is embedded by every content table. Rows are soft-deleted by flag,
// never removed, so there is no gorm.DeletedAt here.
type Base struct {
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
	IsActive  bool      `gorm:"not null;default:true;index"`
	IsDeleted bool      `gorm:"not null;default:false;index"`
}
