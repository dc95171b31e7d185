package models

import (
	"time"
)

// Rating is one user's star rating for one recipe. A user has at most one
// row per recipe; resubmitting overwrites the value in place.
type Rating struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	RecipeID  string    `json:"recipe_id" gorm:"not null;size:191;uniqueIndex:uk_ratings_recipe_user"`
	UserID    string    `json:"user_id" gorm:"not null;size:191;uniqueIndex:uk_ratings_recipe_user"`
	Rating    float64   `json:"rating" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

// AverageRating is the cached per-recipe summary, recomputed in full on
// every rating write. Derived from Rating rows, never authoritative.
type AverageRating struct {
	RecipeID        string  `json:"recipe_id" gorm:"primaryKey;size:191"`
	AverageRating   float64 `json:"average_rating" gorm:"not null;default:0"`
	NumberOfRatings int     `json:"number_of_ratings" gorm:"not null;default:0"`
}
