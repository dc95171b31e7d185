package models

import (
	"time"
)

// Category is a forum category. CategoryID is the human-facing sequential
// identifier allocated by the sequence repository, not a database auto-increment.
type Category struct {
	CategoryID       int       `json:"category_id" gorm:"primaryKey;autoIncrement:false"`
	Title            string    `json:"category_title" gorm:"not null;size:255"`
	Subtitle         string    `json:"category_subtitle" gorm:"not null;size:255"`
	NumberOfPosts    int       `json:"number_of_posts" gorm:"not null;default:0"`
	NumberOfComments int       `json:"number_of_comments" gorm:"not null;default:0"`
	CreatedAt        time.Time `json:"time_creation"`
}
