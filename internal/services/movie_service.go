package services

import (
	"fmt"

	"bioskop/internal/apperrors"
	"bioskop/internal/models"
	"bioskop/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// MovieWithRating annotates a catalog listing entry with its average rating.
type MovieWithRating struct {
	models.Movie
	AvgRating *float64 `json:"avgRating"`
}

// MovieWithReviews is the catalog read composed with the review engine's
// derived data: movie fields first, then avgRating, then reviews. The
// reviews key is always present, an empty array when the movie has none.
type MovieWithReviews struct {
	models.Movie
	AvgRating *float64        `json:"avgRating"`
	Reviews   []models.Review `json:"reviews"`
}

// MovieUpdate carries a partial update: nil fields are left untouched,
// supplied actors replace the previous cast.
type MovieUpdate struct {
	Title       *string        `json:"title"`
	ReleaseYear *int           `json:"releaseYear"`
	Genre       *string        `json:"genre"`
	Actors      []models.Actor `json:"actors"`
	ImageURL    *string        `json:"imageUrl"`
}

// MovieService handles business logic for the movie catalog.
type MovieService struct {
	movieRepo       repositories.MovieRepository
	reviews         *ReviewService
	validate        *validator.Validate
	defaultImageURL string
}

// NewMovieService creates a new MovieService.
func NewMovieService(movieRepo repositories.MovieRepository, reviews *ReviewService, defaultImageURL string) *MovieService {
	return &MovieService{
		movieRepo:       movieRepo,
		reviews:         reviews,
		validate:        validator.New(),
		defaultImageURL: defaultImageURL,
	}
}

// CreateMovie validates and stores a new movie. At least one actor is
// required, the genre must be one of the catalog's genres, and a missing
// image URL gets the configured default. Duplicate titles surface as
// apperrors.ErrDuplicate from the store's unique index.
func (s *MovieService) CreateMovie(movie *models.Movie) error {
	if err := s.validate.Struct(movie); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if !models.ValidGenre(movie.Genre) {
		return fmt.Errorf("%w: genre %q is not one of %v", apperrors.ErrValidation, movie.Genre, models.Genres)
	}
	if movie.ImageURL == "" {
		movie.ImageURL = s.defaultImageURL
	}

	return s.movieRepo.Create(movie)
}

// GetAllMovies retrieves all movies.
func (s *MovieService) GetAllMovies() ([]models.Movie, error) {
	return s.movieRepo.GetAll()
}

// GetAllMoviesWithRatings retrieves all movies, each annotated with its
// average rating.
func (s *MovieService) GetAllMoviesWithRatings() ([]MovieWithRating, error) {
	movies, err := s.movieRepo.GetAll()
	if err != nil {
		return nil, err
	}

	annotated := make([]MovieWithRating, 0, len(movies))
	for _, movie := range movies {
		avg, err := s.reviews.AverageRating(movie.ID)
		if err != nil {
			return nil, err
		}
		annotated = append(annotated, MovieWithRating{Movie: movie, AvgRating: avg})
	}
	return annotated, nil
}

// GetMovieByID retrieves a single movie by its ID.
func (s *MovieService) GetMovieByID(id string) (*models.Movie, error) {
	return s.movieRepo.GetByID(id)
}

// GetMovieWithReviews joins a movie with its average rating and full review
// list. This is the one place catalog data and aggregation merge.
func (s *MovieService) GetMovieWithReviews(id string) (*MovieWithReviews, error) {
	movie, err := s.movieRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	avg, err := s.reviews.AverageRating(id)
	if err != nil {
		return nil, err
	}
	reviews, err := s.reviews.ListReviews(id)
	if err != nil {
		return nil, err
	}

	return &MovieWithReviews{
		Movie:     *movie,
		AvgRating: avg,
		Reviews:   reviews,
	}, nil
}

// UpdateMovie applies a partial update: only supplied fields change. The
// merged record is re-validated before the write so an update cannot push a
// movie outside the catalog invariants.
func (s *MovieService) UpdateMovie(id string, update MovieUpdate) (*models.Movie, error) {
	movie, err := s.movieRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		movie.Title = *update.Title
	}
	if update.ReleaseYear != nil {
		movie.ReleaseYear = *update.ReleaseYear
	}
	if update.Genre != nil {
		movie.Genre = *update.Genre
	}
	if update.Actors != nil {
		movie.Actors = update.Actors
	}
	if update.ImageURL != nil {
		movie.ImageURL = *update.ImageURL
	}

	if err := s.validate.Struct(movie); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if !models.ValidGenre(movie.Genre) {
		return nil, fmt.Errorf("%w: genre %q is not one of %v", apperrors.ErrValidation, movie.Genre, models.Genres)
	}

	if err := s.movieRepo.Update(movie); err != nil {
		return nil, err
	}
	return movie, nil
}

// DeleteMovie removes a movie by its ID.
func (s *MovieService) DeleteMovie(id string) error {
	return s.movieRepo.Delete(id)
}
