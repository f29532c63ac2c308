package models

import "time"

type Movie struct {
	ID        int64  `gorm:"primaryKey"`
	Title     string `gorm:"size:255;index;not null"`
	Hero      string `gorm:"size:255"`
	Heroine   string `gorm:"size:255"`
	Genre     string `gorm:"size:100"`
	Year      int    `gorm:"index"`
	Rating    float64
	CreatedBy int64 `gorm:"index;not null"` // set once at creation, never updated
	CreatedAt time.Time
	UpdatedAt time.Time

	Creator     *User             `gorm:"foreignKey:CreatedBy"`
	Assignments []MovieAssignment `gorm:"foreignKey:MovieID"`
	Files       []MovieFile       `gorm:"foreignKey:MovieID"`
}
