package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"bioskop/internal/apperrors"
	"bioskop/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMReviewRepository is a GORM implementation of ReviewRepository.
type GORMReviewRepository struct {
	db *gorm.DB
}

// NewGORMReviewRepository creates a new instance of GORMReviewRepository.
func NewGORMReviewRepository(db *gorm.DB) *GORMReviewRepository {
	return &GORMReviewRepository{
		db: db,
	}
}

// Create inserts a new review. The composite unique index on
// (movie_id, username) is the sole authority on duplicate reviews; a
// constraint violation surfaces as ErrDuplicate and never touches the
// existing row.
func (r *GORMReviewRepository) Create(review *models.Review) error {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	if err := r.db.Create(review).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("review by %s for movie %s: %w", review.Username, review.MovieID, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// GetAll retrieves all reviews.
func (r *GORMReviewRepository) GetAll() ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to get all reviews: %w", err)
	}
	return reviews, nil
}

// GetByMovieID retrieves all reviews for a movie.
func (r *GORMReviewRepository) GetByMovieID(movieID string) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.Find(&reviews, "movie_id = ?", movieID).Error; err != nil {
		return nil, fmt.Errorf("failed to get reviews for movie %s: %w", movieID, err)
	}
	return reviews, nil
}

// Delete removes a review by its ID.
func (r *GORMReviewRepository) Delete(id string) error {
	res := r.db.Delete(&models.Review{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete review %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("review with ID %s: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

// AverageForMovie computes the mean rating across a movie's reviews at read
// time. A movie with no reviews yields nil, never zero.
func (r *GORMReviewRepository) AverageForMovie(movieID string) (*float64, error) {
	var avg sql.NullFloat64
	err := r.db.Model(&models.Review{}).
		Where("movie_id = ?", movieID).
		Select("AVG(rating)").
		Scan(&avg).Error
	if err != nil {
		return nil, fmt.Errorf("failed to average ratings for movie %s: %w", movieID, err)
	}
	if !avg.Valid {
		return nil, nil
	}
	value := avg.Float64
	return &value, nil
}
