package models

import "time"

type User struct {
	ID             int64  `gorm:"primaryKey"`
	Username       string `gorm:"size:100;uniqueIndex;not null"`
	HashedPassword string `gorm:"size:255;not null"`
	RoleID         int64  `gorm:"index;not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Role *Role `gorm:"foreignKey:RoleID"`
}
