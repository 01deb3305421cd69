package repositories

import (
	"errors"
	"fmt"

	"bioskop/internal/apperrors"
	"bioskop/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMMovieRepository is a GORM implementation of MovieRepository.
type GORMMovieRepository struct {
	db *gorm.DB
}

// NewGORMMovieRepository creates a new instance of GORMMovieRepository.
func NewGORMMovieRepository(db *gorm.DB) *GORMMovieRepository {
	return &GORMMovieRepository{
		db: db,
	}
}

// GetAll retrieves all movies with their actors.
func (r *GORMMovieRepository) GetAll() ([]models.Movie, error) {
	var movies []models.Movie
	if err := r.db.Preload("Actors").Find(&movies).Error; err != nil {
		return nil, fmt.Errorf("failed to get all movies: %w", err)
	}
	return movies, nil
}

// GetByID retrieves a single movie by its ID, actors included.
func (r *GORMMovieRepository) GetByID(id string) (*models.Movie, error) {
	var movie models.Movie
	if err := r.db.Preload("Actors").First(&movie, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("movie with ID %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get movie by ID %s: %w", id, err)
	}
	return &movie, nil
}

// Create inserts a new movie and its actors. The unique index on title is
// the sole authority on duplicate titles.
func (r *GORMMovieRepository) Create(movie *models.Movie) error {
	if movie.ID == "" {
		movie.ID = uuid.New().String()
	}
	if err := r.db.Create(movie).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("movie with title %q: %w", movie.Title, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to create movie: %w", err)
	}
	return nil
}

// Update saves the movie row and replaces its actor set. Runs inside a
// transaction so the actor swap and the row update land together.
func (r *GORMMovieRepository) Update(movie *models.Movie) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("movie_id = ?", movie.ID).Delete(&models.Actor{}).Error; err != nil {
			return fmt.Errorf("failed to replace actors for movie %s: %w", movie.ID, err)
		}
		for i := range movie.Actors {
			movie.Actors[i].ID = 0
			movie.Actors[i].MovieID = movie.ID
		}
		res := tx.Save(movie)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("movie with ID %s: %w", movie.ID, apperrors.ErrNotFound)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("movie with title %q: %w", movie.Title, apperrors.ErrDuplicate)
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to update movie %s: %w", movie.ID, err)
	}
	return nil
}

// Delete removes a movie and its actor rows.
func (r *GORMMovieRepository) Delete(id string) error {
	res := r.db.Select("Actors").Delete(&models.Movie{ID: id})
	if res.Error != nil {
		return fmt.Errorf("failed to delete movie %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("movie with ID %s: %w", id, apperrors.ErrNotFound)
	}
	return nil
}
