package repositories

import "bioskop/internal/models"

// MovieRepository defines the interface for movie catalog data access.
// Update replaces the movie row and its actor set with the supplied record;
// callers merge partial changes before handing the record over.
type MovieRepository interface {
	GetAll() ([]models.Movie, error)
	GetByID(id string) (*models.Movie, error)
	Create(movie *models.Movie) error
	Update(movie *models.Movie) error
	Delete(id string) error
}
