package models

import "time"

// Genres is the fixed set of genres a movie may carry.
var Genres = []string{
	"Action", "Adventure", "Comedy", "Drama", "Fantasy",
	"Horror", "Mystery", "Thriller", "Western", "Science Fiction",
}

// ValidGenre reports whether g is one of the catalog's genres.
func ValidGenre(g string) bool {
	for _, genre := range Genres {
		if g == genre {
			return true
		}
	}
	return false
}

// Actor is a cast entry on a movie.
type Actor struct {
	ID            uint   `json:"-" gorm:"primaryKey"`
	MovieID       string `json:"-" gorm:"index;type:varchar(36)"`
	ActorName     string `json:"actorName" validate:"required"`
	CharacterName string `json:"characterName" validate:"required"`
}

// Movie represents a catalog entry. Title carries a unique index; the store
// is the authority on title uniqueness.
type Movie struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title       string    `json:"title" gorm:"uniqueIndex;type:varchar(255)" validate:"required,min=1,max=255"`
	ReleaseYear int       `json:"releaseYear" validate:"required,gte=1900,lte=2100"`
	Genre       string    `json:"genre" validate:"required"`
	Actors      []Actor   `json:"actors" gorm:"constraint:OnDelete:CASCADE" validate:"required,min=1,dive"`
	ImageURL    string    `json:"imageUrl"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}
