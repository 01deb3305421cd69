package services

import (
	"fmt"
	"log"
	"math"

	"bioskop/internal/apperrors"
	"bioskop/internal/models"
	"bioskop/internal/repositories"
	"bioskop/pkg/rabbitmq"

	"github.com/go-playground/validator/v10"
)

// AnalyticsPublisher publishes review events to the analytics pipeline.
type AnalyticsPublisher interface {
	PublishReviewPosted(event rabbitmq.ReviewEvent) error
}

// ReviewService enforces the review invariants: one review per (movie, user),
// ratings in [0,5], and a derived average that is never cached.
type ReviewService struct {
	reviewRepo repositories.ReviewRepository
	movieRepo  repositories.MovieRepository
	analytics  AnalyticsPublisher
	validate   *validator.Validate
}

// NewReviewService creates a new ReviewService. analytics may be nil, which
// disables event publishing.
func NewReviewService(reviewRepo repositories.ReviewRepository, movieRepo repositories.MovieRepository, analytics AnalyticsPublisher) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		movieRepo:  movieRepo,
		analytics:  analytics,
		validate:   validator.New(),
	}
}

// SubmitReview validates and stores a review. The referenced movie must
// exist; the store's composite unique index decides duplicates. After a
// successful insert a review_posted event is published on a separate
// goroutine — its failure is logged and swallowed, never surfaced to the
// caller and never rolling the review back.
func (s *ReviewService) SubmitReview(movieID, username string, rating int, text string) (*models.Review, error) {
	review := &models.Review{
		MovieID:    movieID,
		Username:   username,
		Rating:     rating,
		ReviewText: text,
	}
	if err := s.validate.Struct(review); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	movie, err := s.movieRepo.GetByID(movieID)
	if err != nil {
		return nil, err
	}

	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}

	if s.analytics != nil {
		event := rabbitmq.ReviewEvent{
			MovieTitle: movie.Title,
			Genre:      movie.Genre,
			Username:   username,
		}
		go func() {
			if err := s.analytics.PublishReviewPosted(event); err != nil {
				log.Printf("Warning: failed to publish review_posted event for movie %q: %v", event.MovieTitle, err)
			}
		}()
	}

	return review, nil
}

// AverageRating returns the mean rating for a movie rounded to one decimal
// place, or nil when the movie has no reviews.
func (s *ReviewService) AverageRating(movieID string) (*float64, error) {
	avg, err := s.reviewRepo.AverageForMovie(movieID)
	if err != nil {
		return nil, err
	}
	if avg == nil {
		return nil, nil
	}
	rounded := math.Round(*avg*10) / 10
	return &rounded, nil
}

// ListReviews returns all reviews, or only a movie's reviews when movieID is
// non-empty. The result is never nil.
func (s *ReviewService) ListReviews(movieID string) ([]models.Review, error) {
	var reviews []models.Review
	var err error
	if movieID != "" {
		reviews, err = s.reviewRepo.GetByMovieID(movieID)
	} else {
		reviews, err = s.reviewRepo.GetAll()
	}
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	return reviews, nil
}

// DeleteReview removes a review by its ID.
func (s *ReviewService) DeleteReview(id string) error {
	return s.reviewRepo.Delete(id)
}
