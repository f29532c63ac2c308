package models

// Role is static reference data seeded once at startup.
// Names: super_admin, admin, editor, viewer.
type Role struct {
	ID          int64  `gorm:"primaryKey"`
	Name        string `gorm:"size:50;uniqueIndex;not null"`
	Description string `gorm:"size:255"`

	Users []User `gorm:"foreignKey:RoleID"`
}
