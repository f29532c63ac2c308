package models

import "time"

// MovieAssignment grants one user access to one movie. At most one row may
// exist per (movie_id, user_id) pair. AssignedBy records who created the
// grant; auto-assignments record the movie creator.
type MovieAssignment struct {
	ID         int64  `gorm:"primaryKey"`
	MovieID    int64  `gorm:"uniqueIndex:idx_movie_user;not null"`
	UserID     int64  `gorm:"uniqueIndex:idx_movie_user;index;not null"`
	AssignedBy *int64 `gorm:"index"`
	CreatedAt  time.Time

	Movie    *Movie `gorm:"foreignKey:MovieID"`
	Assignee *User  `gorm:"foreignKey:UserID"`
	Assigner *User  `gorm:"foreignKey:AssignedBy"`
}
