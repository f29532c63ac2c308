package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"movievault/internal/authz"
	"movievault/internal/models"
)

type MovieStore struct {
	db *gorm.DB
}

func NewMovieStore(db *gorm.DB) *MovieStore { return &MovieStore{db: db} }

// Create inserts the movie and its auto-assignment batch in one transaction:
// a super_admin creator grants every super_admin user, any other creator
// grants every admin and super_admin user. A partial batch never commits.
func (s *MovieStore) Create(ctx context.Context, m *models.Movie, creator authz.Identity) error {
	m.CreatedBy = creator.UserID
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		roleNames := []string{string(authz.RoleSuperAdmin)}
		if creator.Role != authz.RoleSuperAdmin {
			roleNames = append(roleNames, string(authz.RoleAdmin))
		}
		var userIDs []int64
		if err := tx.Model(&models.User{}).
			Joins("JOIN roles ON roles.id = users.role_id").
			Where("roles.name IN ?", roleNames).
			Pluck("users.id", &userIDs).Error; err != nil {
			return err
		}
		if len(userIDs) == 0 {
			return nil
		}
		rows := make([]models.MovieAssignment, 0, len(userIDs))
		for _, uid := range userIDs {
			by := creator.UserID
			rows = append(rows, models.MovieAssignment{MovieID: m.ID, UserID: uid, AssignedBy: &by})
		}
		return tx.Create(&rows).Error
	})
}

func (s *MovieStore) ByID(ctx context.Context, id int64) (*models.Movie, error) {
	var movie models.Movie
	if err := s.db.WithContext(ctx).Preload("Creator.Role").First(&movie, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &movie, nil
}

func (s *MovieStore) scoped(ctx context.Context, scope authz.MovieScope) *gorm.DB {
	q := s.db.WithContext(ctx).Model(&models.Movie{})
	if scope.All {
		return q
	}
	assigned := s.db.Model(&models.MovieAssignment{}).
		Select("movie_id").
		Where("user_id = ?", scope.AssignedTo)
	if scope.AnyNonSuperAdminCreator {
		return q.
			Joins("LEFT JOIN users creators ON creators.id = movies.created_by").
			Joins("LEFT JOIN roles creator_roles ON creator_roles.id = creators.role_id").
			Where("movies.id IN (?) OR movies.created_by = ? OR creator_roles.name <> ?",
				assigned, scope.AssignedTo, string(authz.RoleSuperAdmin))
	}
	return q.Where("movies.id IN (?)", assigned)
}

func (s *MovieStore) List(ctx context.Context, scope authz.MovieScope) ([]models.Movie, error) {
	var movies []models.Movie
	if err := s.scoped(ctx, scope).Find(&movies).Error; err != nil {
		return nil, err
	}
	return movies, nil
}

func (s *MovieStore) ListByYear(ctx context.Context, scope authz.MovieScope, year int) ([]models.Movie, error) {
	var movies []models.Movie
	if err := s.scoped(ctx, scope).Where("movies.year = ?", year).Find(&movies).Error; err != nil {
		return nil, err
	}
	return movies, nil
}

func (s *MovieStore) ListByRating(ctx context.Context, scope authz.MovieScope, rating float64) ([]models.Movie, error) {
	var movies []models.Movie
	if err := s.scoped(ctx, scope).Where("movies.rating = ?", rating).Find(&movies).Error; err != nil {
		return nil, err
	}
	return movies, nil
}

// Update rewrites the descriptive attributes. CreatedBy is immutable and
// never part of the update set.
func (s *MovieStore) Update(ctx context.Context, id int64, attrs *models.Movie) (*models.Movie, error) {
	var movie models.Movie
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&movie, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		return tx.Model(&movie).Updates(map[string]any{
			"title":   attrs.Title,
			"hero":    attrs.Hero,
			"heroine": attrs.Heroine,
			"genre":   attrs.Genre,
			"year":    attrs.Year,
			"rating":  attrs.Rating,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

// Delete removes the movie together with its assignments and file rows in one
// transaction, and returns the file paths so the caller can clean the disk
// after commit.
func (s *MovieStore) Delete(ctx context.Context, id int64) ([]string, error) {
	var paths []string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.MovieFile{}).Where("movie_id = ?", id).Pluck("filepath", &paths).Error; err != nil {
			return err
		}
		if err := tx.Where("movie_id = ?", id).Delete(&models.MovieFile{}).Error; err != nil {
			return err
		}
		if err := tx.Where("movie_id = ?", id).Delete(&models.MovieAssignment{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Movie{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}
