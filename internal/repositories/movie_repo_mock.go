package repositories

import (
	"fmt"
	"sync"

	"bioskop/internal/apperrors"
	"bioskop/internal/models"

	"github.com/google/uuid"
)

// MockMovieRepository is an in-memory implementation of MovieRepository.
// It mirrors the store's title uniqueness so service tests exercise the same
// conflict paths as the GORM implementation.
type MockMovieRepository struct {
	movies map[string]models.Movie
	mu     sync.RWMutex
}

// NewMockMovieRepository creates a new instance of MockMovieRepository.
func NewMockMovieRepository() *MockMovieRepository {
	return &MockMovieRepository{
		movies: make(map[string]models.Movie),
	}
}

// GetAll returns all movies.
func (r *MockMovieRepository) GetAll() ([]models.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	movieList := make([]models.Movie, 0, len(r.movies))
	for _, m := range r.movies {
		movieList = append(movieList, m)
	}
	return movieList, nil
}

// GetByID returns a movie by its ID.
func (r *MockMovieRepository) GetByID(id string) (*models.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	movie, ok := r.movies[id]
	if !ok {
		return nil, fmt.Errorf("movie with ID %s: %w", id, apperrors.ErrNotFound)
	}
	return &movie, nil
}

// Create adds a new movie, rejecting duplicate titles.
func (r *MockMovieRepository) Create(movie *models.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.movies {
		if existing.Title == movie.Title {
			return fmt.Errorf("movie with title %q: %w", movie.Title, apperrors.ErrDuplicate)
		}
	}
	if movie.ID == "" {
		movie.ID = uuid.New().String()
	}
	r.movies[movie.ID] = *movie
	return nil
}

// Update replaces an existing movie, rejecting a retitle onto another movie.
func (r *MockMovieRepository) Update(movie *models.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.movies[movie.ID]; !ok {
		return fmt.Errorf("movie with ID %s: %w", movie.ID, apperrors.ErrNotFound)
	}
	for id, existing := range r.movies {
		if id != movie.ID && existing.Title == movie.Title {
			return fmt.Errorf("movie with title %q: %w", movie.Title, apperrors.ErrDuplicate)
		}
	}
	r.movies[movie.ID] = *movie
	return nil
}

// Delete removes a movie by its ID.
func (r *MockMovieRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.movies[id]; !ok {
		return fmt.Errorf("movie with ID %s: %w", id, apperrors.ErrNotFound)
	}
	delete(r.movies, id)
	return nil
}
