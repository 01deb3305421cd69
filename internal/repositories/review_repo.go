package repositories

import "bioskop/internal/models"

// ReviewRepository defines the interface for review data access.
// AverageForMovie returns nil (not zero) when the movie has no reviews.
type ReviewRepository interface {
	Create(review *models.Review) error
	GetAll() ([]models.Review, error)
	GetByMovieID(movieID string) ([]models.Review, error)
	Delete(id string) error
	AverageForMovie(movieID string) (*float64, error)
}
