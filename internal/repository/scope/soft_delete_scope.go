package scope

import "gorm.io/gorm"

// VisibleOnly hides rows flipped by SoftDelete. The is_deleted flag is the
// authoritative "removed" dimension; is_active alone only disables.
func VisibleOnly(db *gorm.DB) *gorm.DB {
	return db.Where("is_deleted = ?", false)
}

// PublicOnly is the visibility applied to every public read endpoint.
func PublicOnly(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ? AND is_deleted = ?", true, false)
}
