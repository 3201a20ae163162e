package entity

import "time"

// Base carries the lifecycle fields shared by every content entity.
// Soft delete never removes a row; it only flips the two flags.
type Base struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	IsActive  bool
	IsDeleted bool
}

func (b *Base) SoftDelete() {
	b.IsDeleted = true
	b.IsActive = false
	b.UpdatedAt = time.Now()
}
