package repositories

import (
	"fmt"
	"sync"

	"bioskop/internal/apperrors"
	"bioskop/internal/models"

	"github.com/google/uuid"
)

// MockReviewRepository is an in-memory implementation of ReviewRepository.
// The (movieID, username) uniqueness is enforced the same way the store's
// composite index does it.
type MockReviewRepository struct {
	reviews map[string]models.Review
	mu      sync.RWMutex
}

// NewMockReviewRepository creates a new instance of MockReviewRepository.
func NewMockReviewRepository() *MockReviewRepository {
	return &MockReviewRepository{
		reviews: make(map[string]models.Review),
	}
}

// Create adds a new review, rejecting a second review for the same
// (movie, username) pair.
func (r *MockReviewRepository) Create(review *models.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.reviews {
		if existing.MovieID == review.MovieID && existing.Username == review.Username {
			return fmt.Errorf("review by %s for movie %s: %w", review.Username, review.MovieID, apperrors.ErrDuplicate)
		}
	}
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	r.reviews[review.ID] = *review
	return nil
}

// GetAll returns all reviews.
func (r *MockReviewRepository) GetAll() ([]models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reviewList := make([]models.Review, 0, len(r.reviews))
	for _, rev := range r.reviews {
		reviewList = append(reviewList, rev)
	}
	return reviewList, nil
}

// GetByMovieID returns all reviews for a movie.
func (r *MockReviewRepository) GetByMovieID(movieID string) ([]models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reviewList := make([]models.Review, 0)
	for _, rev := range r.reviews {
		if rev.MovieID == movieID {
			reviewList = append(reviewList, rev)
		}
	}
	return reviewList, nil
}

// Delete removes a review by its ID.
func (r *MockReviewRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.reviews[id]; !ok {
		return fmt.Errorf("review with ID %s: %w", id, apperrors.ErrNotFound)
	}
	delete(r.reviews, id)
	return nil
}

// AverageForMovie computes the mean rating for a movie, nil when it has no
// reviews.
func (r *MockReviewRepository) AverageForMovie(movieID string) (*float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var sum, count float64
	for _, rev := range r.reviews {
		if rev.MovieID == movieID {
			sum += float64(rev.Rating)
			count++
		}
	}
	if count == 0 {
		return nil, nil
	}
	avg := sum / count
	return &avg, nil
}
