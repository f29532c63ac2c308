package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"movievault/internal/authz"
	"movievault/internal/models"
)

type AssignmentStore struct {
	db *gorm.DB
}

func NewAssignmentStore(db *gorm.DB) *AssignmentStore { return &AssignmentStore{db: db} }

func (s *AssignmentStore) IsAssigned(ctx context.Context, movieID, userID int64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.MovieAssignment{}).
		Where("movie_id = ? AND user_id = ?", movieID, userID).
		Count(&count).Error
	return count > 0, err
}

// Assign creates the (movie, user) grant. The check-then-insert runs in a
// transaction and the unique index on the pair backs it up, so of two racing
// calls exactly one succeeds and the other fails with ErrDuplicateAssignment.
func (s *AssignmentStore) Assign(ctx context.Context, movieID, userID, assignedBy int64) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.MovieAssignment{}).
			Where("movie_id = ? AND user_id = ?", movieID, userID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateAssignment
		}
		by := assignedBy
		return tx.Create(&models.MovieAssignment{
			MovieID:    movieID,
			UserID:     userID,
			AssignedBy: &by,
		}).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateAssignment
	}
	return err
}

// Unassign removes the grant. Removing an absent pair fails with
// ErrNotAssigned, never silently succeeds.
func (s *AssignmentStore) Unassign(ctx context.Context, movieID, userID int64) error {
	res := s.db.WithContext(ctx).
		Where("movie_id = ? AND user_id = ?", movieID, userID).
		Delete(&models.MovieAssignment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotAssigned
	}
	return nil
}

func (s *AssignmentStore) MovieIDsFor(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := s.db.WithContext(ctx).Model(&models.MovieAssignment{}).
		Where("user_id = ?", userID).
		Pluck("movie_id", &ids).Error
	return ids, err
}

// List applies the visibility scope to the assignment table.
func (s *AssignmentStore) List(ctx context.Context, scope authz.AssignmentScope) ([]models.MovieAssignment, error) {
	q := s.db.WithContext(ctx).Model(&models.MovieAssignment{}).
		Preload("Movie").Preload("Assignee.Role").Preload("Assigner")
	switch {
	case scope.All:
	case scope.AdminID != 0:
		q = q.
			Joins("JOIN movies ON movies.id = movie_assignments.movie_id").
			Joins("JOIN users assignees ON assignees.id = movie_assignments.user_id").
			Joins("JOIN roles assignee_roles ON assignee_roles.id = assignees.role_id").
			Where("movies.created_by = ? OR movie_assignments.assigned_by = ? OR assignee_roles.name <> ?",
				scope.AdminID, scope.AdminID, string(authz.RoleSuperAdmin))
	default:
		q = q.Where("movie_assignments.user_id = ?", scope.AssigneeID)
	}
	var rows []models.MovieAssignment
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
