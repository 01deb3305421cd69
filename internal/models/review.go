package models

import "time"

// Review is a single user's review of a movie. The composite unique index on
// (movie_id, username) makes the store the authority on the
// one-review-per-user-per-movie rule: a second insert fails, it never
// updates the first.
type Review struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	MovieID    string    `json:"movieId" gorm:"uniqueIndex:idx_reviews_movie_user;type:varchar(36)" validate:"required"`
	Username   string    `json:"username" gorm:"uniqueIndex:idx_reviews_movie_user;type:varchar(100)" validate:"required"`
	Rating     int       `json:"rating" validate:"min=0,max=5"`
	ReviewText string    `json:"reviewText" validate:"required"`
	CreatedAt  time.Time `json:"-"`
}
