package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"movievault/internal/authz"
	"movievault/internal/models"
)

type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore { return &UserStore{db: db} }

func (s *UserStore) ByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Preload("Role").First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserStore) ByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Preload("Role").Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user. The username uniqueness check runs in the same
// transaction as the insert; concurrent registrations of the same name are
// additionally fenced by the unique index.
func (s *UserStore) Create(ctx context.Context, username, hashedPassword string, roleID int64) (*models.User, error) {
	user := models.User{
		Username:       username,
		HashedPassword: hashedPassword,
		RoleID:         roleID,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateUsername
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateUsername
		}
		return nil, err
	}
	return &user, nil
}

// List applies the visibility scope to the user table.
func (s *UserStore) List(ctx context.Context, scope authz.UserScope) ([]models.User, error) {
	q := s.db.WithContext(ctx).Preload("Role").
		Joins("JOIN roles ON roles.id = users.role_id")
	if !scope.All {
		q = q.Where("roles.name IN ?", scope.RoleNames)
		if scope.SelfID != 0 {
			q = q.Where("users.id = ?", scope.SelfID)
		}
	}
	var users []models.User
	if err := q.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UserUpdate carries the optional fields of a partial update. Only fields
// explicitly set are applied.
type UserUpdate struct {
	Username *string
	RoleID   *int64
}

func (s *UserStore) Update(ctx context.Context, id int64, upd UserUpdate) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		fields := map[string]any{}
		if upd.Username != nil {
			var count int64
			if err := tx.Model(&models.User{}).
				Where("username = ? AND id <> ?", *upd.Username, id).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return ErrDuplicateUsername
			}
			fields["username"] = *upd.Username
		}
		if upd.RoleID != nil {
			fields["role_id"] = *upd.RoleID
		}
		if len(fields) == 0 {
			return nil
		}
		return tx.Model(&user).Updates(fields).Error
	})
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Preload("Role").First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete removes the user and cascades to their assignment rows. Assignments
// granted by the user survive with assigned_by cleared.
func (s *UserStore) Delete(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.MovieAssignment{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.MovieAssignment{}).
			Where("assigned_by = ?", id).
			Update("assigned_by", nil).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.User{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
