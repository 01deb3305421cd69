package services_test

import (
	"encoding/json"
	"testing"

	"bioskop/internal/apperrors"
	"bioskop/internal/models"
	"bioskop/internal/repositories"
	"bioskop/internal/services"

	"github.com/stretchr/testify/assert"
)

const testDefaultImage = "https://example.com/default.jpg"

func newMovieService() (*services.MovieService, *repositories.MockMovieRepository, *services.ReviewService) {
	movieRepo := repositories.NewMockMovieRepository()
	reviewService := services.NewReviewService(repositories.NewMockReviewRepository(), movieRepo, nil)
	movieService := services.NewMovieService(movieRepo, reviewService, testDefaultImage)
	return movieService, movieRepo, reviewService
}

func TestMovieService_CreateMovie(t *testing.T) {
	movieService, _, _ := newMovieService()

	movie := &models.Movie{
		Title:       "X",
		ReleaseYear: 2000,
		Genre:       "Drama",
		Actors:      []models.Actor{{ActorName: "A", CharacterName: "B"}},
	}
	err := movieService.CreateMovie(movie)
	assert.NoError(t, err)
	assert.NotEmpty(t, movie.ID)
	// Missing image URL gets the configured default.
	assert.Equal(t, testDefaultImage, movie.ImageURL)

	// Same title again: the store's uniqueness wins.
	err = movieService.CreateMovie(&models.Movie{
		Title:       "X",
		ReleaseYear: 2010,
		Genre:       "Comedy",
		Actors:      []models.Actor{{ActorName: "C", CharacterName: "D"}},
	})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestMovieService_CreateMovie_Validation(t *testing.T) {
	movieService, _, _ := newMovieService()

	cases := []struct {
		name  string
		movie models.Movie
	}{
		{"no actors", models.Movie{Title: "X", ReleaseYear: 2000, Genre: "Drama"}},
		{"actor missing character name", models.Movie{Title: "X", ReleaseYear: 2000, Genre: "Drama",
			Actors: []models.Actor{{ActorName: "A"}}}},
		{"year too early", models.Movie{Title: "X", ReleaseYear: 1899, Genre: "Drama",
			Actors: []models.Actor{{ActorName: "A", CharacterName: "B"}}}},
		{"year too late", models.Movie{Title: "X", ReleaseYear: 2101, Genre: "Drama",
			Actors: []models.Actor{{ActorName: "A", CharacterName: "B"}}}},
		{"unknown genre", models.Movie{Title: "X", ReleaseYear: 2000, Genre: "Musical",
			Actors: []models.Actor{{ActorName: "A", CharacterName: "B"}}}},
		{"empty title", models.Movie{ReleaseYear: 2000, Genre: "Drama",
			Actors: []models.Actor{{ActorName: "A", CharacterName: "B"}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			movie := tc.movie
			assert.ErrorIs(t, movieService.CreateMovie(&movie), apperrors.ErrValidation)
		})
	}
}

func TestMovieService_UpdateMovie_MergesFields(t *testing.T) {
	movieService, _, _ := newMovieService()

	movie := &models.Movie{
		Title:       "X",
		ReleaseYear: 2000,
		Genre:       "Drama",
		Actors:      []models.Actor{{ActorName: "A", CharacterName: "B"}},
		ImageURL:    "https://example.com/x.jpg",
	}
	assert.NoError(t, movieService.CreateMovie(movie))

	// Only the supplied field changes; everything else is untouched.
	newYear := 2005
	updated, err := movieService.UpdateMovie(movie.ID, services.MovieUpdate{ReleaseYear: &newYear})
	assert.NoError(t, err)
	assert.Equal(t, 2005, updated.ReleaseYear)
	assert.Equal(t, "X", updated.Title)
	assert.Equal(t, "Drama", updated.Genre)
	assert.Equal(t, "https://example.com/x.jpg", updated.ImageURL)
	assert.Len(t, updated.Actors, 1)

	// Supplied actors replace the previous cast.
	updated, err = movieService.UpdateMovie(movie.ID, services.MovieUpdate{
		Actors: []models.Actor{
			{ActorName: "C", CharacterName: "D"},
			{ActorName: "E", CharacterName: "F"},
		},
	})
	assert.NoError(t, err)
	assert.Len(t, updated.Actors, 2)

	// A merged record is re-validated.
	badYear := 1800
	_, err = movieService.UpdateMovie(movie.ID, services.MovieUpdate{ReleaseYear: &badYear})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	badGenre := "Musical"
	_, err = movieService.UpdateMovie(movie.ID, services.MovieUpdate{Genre: &badGenre})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestMovieService_UpdateMovie_NotFoundAndConflict(t *testing.T) {
	movieService, _, _ := newMovieService()

	newTitle := "Y"
	_, err := movieService.UpdateMovie("missing-id", services.MovieUpdate{Title: &newTitle})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	first := &models.Movie{Title: "X", ReleaseYear: 2000, Genre: "Drama",
		Actors: []models.Actor{{ActorName: "A", CharacterName: "B"}}}
	second := &models.Movie{Title: "Y", ReleaseYear: 2001, Genre: "Comedy",
		Actors: []models.Actor{{ActorName: "C", CharacterName: "D"}}}
	assert.NoError(t, movieService.CreateMovie(first))
	assert.NoError(t, movieService.CreateMovie(second))

	// Retitling onto an existing title is a conflict.
	takenTitle := "X"
	_, err = movieService.UpdateMovie(second.ID, services.MovieUpdate{Title: &takenTitle})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestMovieService_DeleteMovie(t *testing.T) {
	movieService, _, _ := newMovieService()

	movie := &models.Movie{Title: "X", ReleaseYear: 2000, Genre: "Drama",
		Actors: []models.Actor{{ActorName: "A", CharacterName: "B"}}}
	assert.NoError(t, movieService.CreateMovie(movie))

	assert.NoError(t, movieService.DeleteMovie(movie.ID))
	assert.ErrorIs(t, movieService.DeleteMovie(movie.ID), apperrors.ErrNotFound)

	_, err := movieService.GetMovieByID(movie.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestMovieService_GetMovieWithReviews(t *testing.T) {
	movieService, _, reviewService := newMovieService()

	movie := &models.Movie{Title: "X", ReleaseYear: 2000, Genre: "Drama",
		Actors: []models.Actor{{ActorName: "A", CharacterName: "B"}}}
	assert.NoError(t, movieService.CreateMovie(movie))

	// No reviews yet: a nil average and an empty (not nil) review list.
	composed, err := movieService.GetMovieWithReviews(movie.ID)
	assert.NoError(t, err)
	assert.Equal(t, movie.ID, composed.ID)
	assert.Nil(t, composed.AvgRating)
	assert.NotNil(t, composed.Reviews)
	assert.Empty(t, composed.Reviews)

	_, err = reviewService.SubmitReview(movie.ID, "ann", 4, "ok")
	assert.NoError(t, err)
	_, err = reviewService.SubmitReview(movie.ID, "bob", 3, "fine")
	assert.NoError(t, err)

	composed, err = movieService.GetMovieWithReviews(movie.ID)
	assert.NoError(t, err)
	if assert.NotNil(t, composed.AvgRating) {
		assert.InDelta(t, 3.5, *composed.AvgRating, 0.001)
	}
	assert.Len(t, composed.Reviews, 2)

	_, err = movieService.GetMovieWithReviews("missing-id")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestMovieWithReviews_JSONShape(t *testing.T) {
	movieService, _, _ := newMovieService()

	movie := &models.Movie{Title: "X", ReleaseYear: 2000, Genre: "Drama",
		Actors: []models.Actor{{ActorName: "A", CharacterName: "B"}}}
	assert.NoError(t, movieService.CreateMovie(movie))

	// A zero-review composed read still serializes every key of the stable
	// shape: avgRating null, reviews an empty array, never omitted.
	composed, err := movieService.GetMovieWithReviews(movie.ID)
	assert.NoError(t, err)

	encoded, err := json.Marshal(composed)
	assert.NoError(t, err)

	var decoded map[string]interface{}
	assert.NoError(t, json.Unmarshal(encoded, &decoded))

	avg, present := decoded["avgRating"]
	assert.True(t, present)
	assert.Nil(t, avg)

	reviews, present := decoded["reviews"]
	assert.True(t, present)
	assert.Equal(t, []interface{}{}, reviews)
}

func TestMovieService_GetAllMoviesWithRatings(t *testing.T) {
	movieService, _, reviewService := newMovieService()

	rated := &models.Movie{Title: "Rated", ReleaseYear: 2000, Genre: "Drama",
		Actors: []models.Actor{{ActorName: "A", CharacterName: "B"}}}
	unrated := &models.Movie{Title: "Unrated", ReleaseYear: 2001, Genre: "Comedy",
		Actors: []models.Actor{{ActorName: "C", CharacterName: "D"}}}
	assert.NoError(t, movieService.CreateMovie(rated))
	assert.NoError(t, movieService.CreateMovie(unrated))

	_, err := reviewService.SubmitReview(rated.ID, "ann", 5, "great")
	assert.NoError(t, err)

	annotated, err := movieService.GetAllMoviesWithRatings()
	assert.NoError(t, err)
	assert.Len(t, annotated, 2)

	byTitle := make(map[string]*float64)
	for _, m := range annotated {
		byTitle[m.Title] = m.AvgRating
	}
	if assert.NotNil(t, byTitle["Rated"]) {
		assert.InDelta(t, 5.0, *byTitle["Rated"], 0.001)
	}
	assert.Nil(t, byTitle["Unrated"])
}
