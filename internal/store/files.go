package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"movievault/internal/models"
)

type FileStore struct {
	db *gorm.DB
}

func NewFileStore(db *gorm.DB) *FileStore { return &FileStore{db: db} }

func (s *FileStore) Create(ctx context.Context, f *models.MovieFile) error {
	return s.db.WithContext(ctx).Create(f).Error
}

func (s *FileStore) ByID(ctx context.Context, id int64) (*models.MovieFile, error) {
	var file models.MovieFile
	if err := s.db.WithContext(ctx).First(&file, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &file, nil
}

// ListByMovie returns the movie's files, optionally filtered by source tag.
func (s *FileStore) ListByMovie(ctx context.Context, movieID int64, source string) ([]models.MovieFile, error) {
	q := s.db.WithContext(ctx).Where("movie_id = ?", movieID)
	if source != "" {
		q = q.Where("source = ?", source)
	}
	var files []models.MovieFile
	if err := q.Find(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}

func (s *FileStore) Delete(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Delete(&models.MovieFile{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
