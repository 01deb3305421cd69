package handlers

import (
	"errors"
	"log"

	"bioskop/internal/apperrors"
	"bioskop/internal/models"
	"bioskop/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ReviewHandler handles HTTP requests for reviews.
type ReviewHandler struct {
	service *services.ReviewService
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(service *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		service: service,
	}
}

// RegisterRoutes registers the review routes with the Fiber app.
func (h *ReviewHandler) RegisterRoutes(router fiber.Router) {
	reviewRoutes := router.Group("/reviews")
	reviewRoutes.Get("/", h.HandleGetReviews)
	reviewRoutes.Post("/", h.HandleCreateReview)
	reviewRoutes.Delete("/:id", h.HandleDeleteReview)
}

// ReviewRequest represents the request body for posting a review. The author
// comes from the authenticated user, never from the body.
type ReviewRequest struct {
	MovieID string `json:"movieId"`
	Rating  int    `json:"rating"`
	Text    string `json:"text"`
}

// HandleCreateReview posts a review as the authenticated user.
func (h *ReviewHandler) HandleCreateReview(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Authentication failed.",
		})
	}

	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing review request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	review, err := h.service.SubmitReview(req.MovieID, user.Username, req.Rating, req.Text)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "A movie id, a rating between 0 and 5, and review text are required.",
			})
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			return movieNotFound(c)
		}
		if errors.Is(err, apperrors.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"success": false,
				"message": "You have already reviewed this movie.",
			})
		}
		log.Printf("Error creating review: %v", err)
		return storeFault(c, "Could not create review")
	}

	return c.Status(fiber.StatusCreated).JSON(review)
}

// HandleGetReviews lists reviews, optionally filtered by ?movieId=.
func (h *ReviewHandler) HandleGetReviews(c *fiber.Ctx) error {
	reviews, err := h.service.ListReviews(c.Query("movieId"))
	if err != nil {
		log.Printf("Error getting reviews: %v", err)
		return storeFault(c, "Could not retrieve reviews")
	}
	return c.JSON(reviews)
}

// HandleDeleteReview removes a review by its ID.
func (h *ReviewHandler) HandleDeleteReview(c *fiber.Ctx) error {
	reviewID := c.Params("id")

	if err := h.service.DeleteReview(reviewID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Review not found",
			})
		}
		log.Printf("Error deleting review %s: %v", reviewID, err)
		return storeFault(c, "Could not delete review")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Review deleted successfully",
	})
}
