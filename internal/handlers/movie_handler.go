package handlers

import (
	"errors"
	"log"

	"bioskop/internal/apperrors"
	"bioskop/internal/models"
	"bioskop/internal/services"

	"github.com/gofiber/fiber/v2"
)

// MovieHandler handles HTTP requests for the movie catalog.
type MovieHandler struct {
	service *services.MovieService
}

// NewMovieHandler creates a new MovieHandler.
func NewMovieHandler(service *services.MovieService) *MovieHandler {
	return &MovieHandler{
		service: service,
	}
}

// RegisterRoutes registers the movie routes with the Fiber app.
func (h *MovieHandler) RegisterRoutes(router fiber.Router) {
	movieRoutes := router.Group("/movies")
	movieRoutes.Get("/", h.HandleGetMovies)
	movieRoutes.Get("/:id", h.HandleGetMovieByID)
	movieRoutes.Post("/", h.HandleCreateMovie)
	movieRoutes.Put("/:id", h.HandleUpdateMovie)
	movieRoutes.Delete("/:id", h.HandleDeleteMovie)
}

// HandleGetMovies lists the catalog. With ?reviews=true each movie is
// annotated with its average rating.
func (h *MovieHandler) HandleGetMovies(c *fiber.Ctx) error {
	if c.QueryBool("reviews") {
		movies, err := h.service.GetAllMoviesWithRatings()
		if err != nil {
			log.Printf("Error getting movies with ratings: %v", err)
			return storeFault(c, "Could not retrieve movies")
		}
		return c.JSON(movies)
	}

	movies, err := h.service.GetAllMovies()
	if err != nil {
		log.Printf("Error getting all movies: %v", err)
		return storeFault(c, "Could not retrieve movies")
	}
	return c.JSON(movies)
}

// HandleGetMovieByID retrieves a single movie. With ?reviews=true the
// response carries the average rating and the full review list after the
// movie fields.
func (h *MovieHandler) HandleGetMovieByID(c *fiber.Ctx) error {
	movieID := c.Params("id")

	if c.QueryBool("reviews") {
		movie, err := h.service.GetMovieWithReviews(movieID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return movieNotFound(c)
			}
			log.Printf("Error getting movie %s with reviews: %v", movieID, err)
			return storeFault(c, "Could not retrieve movie")
		}
		return c.JSON(movie)
	}

	movie, err := h.service.GetMovieByID(movieID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return movieNotFound(c)
		}
		log.Printf("Error getting movie by ID %s: %v", movieID, err)
		return storeFault(c, "Could not retrieve movie")
	}
	return c.JSON(movie)
}

// HandleCreateMovie adds a movie to the catalog.
func (h *MovieHandler) HandleCreateMovie(c *fiber.Ctx) error {
	var movie models.Movie
	if err := c.BodyParser(&movie); err != nil {
		log.Printf("Error parsing movie request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	if err := h.service.CreateMovie(&movie); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "All fields including at least one actor are required",
			})
		}
		if errors.Is(err, apperrors.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"success": false,
				"message": "A movie with this title already exists.",
			})
		}
		log.Printf("Error creating movie: %v", err)
		return storeFault(c, "Could not create movie")
	}

	return c.Status(fiber.StatusCreated).JSON(movie)
}

// HandleUpdateMovie applies a partial update; only supplied fields change.
func (h *MovieHandler) HandleUpdateMovie(c *fiber.Ctx) error {
	movieID := c.Params("id")

	var update services.MovieUpdate
	if err := c.BodyParser(&update); err != nil {
		log.Printf("Error parsing movie update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	movie, err := h.service.UpdateMovie(movieID, update)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return movieNotFound(c)
		}
		if errors.Is(err, apperrors.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid movie fields",
			})
		}
		if errors.Is(err, apperrors.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"success": false,
				"message": "A movie with this title already exists.",
			})
		}
		log.Printf("Error updating movie %s: %v", movieID, err)
		return storeFault(c, "Could not update movie")
	}

	return c.JSON(movie)
}

// HandleDeleteMovie removes a movie from the catalog.
func (h *MovieHandler) HandleDeleteMovie(c *fiber.Ctx) error {
	movieID := c.Params("id")

	if err := h.service.DeleteMovie(movieID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return movieNotFound(c)
		}
		log.Printf("Error deleting movie %s: %v", movieID, err)
		return storeFault(c, "Could not delete movie")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Movie deleted successfully",
	})
}

func movieNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"success": false,
		"message": "Movie not found",
	})
}

// storeFault is the 500 boundary: internal detail stays in the operator log,
// the client sees only a generic message.
func storeFault(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}
