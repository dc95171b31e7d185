package models

import (
	"time"
)

type Post struct {
	PostID           int       `json:"post_id" gorm:"primaryKey;autoIncrement:false"`
	CategoryID       int       `json:"category_id" gorm:"not null;index"`
	AuthorID         string    `json:"author_id" gorm:"not null;index;size:191"`
	Title            string    `json:"post_title" gorm:"not null;size:255"`
	Content          string    `json:"content" gorm:"not null;type:text"`
	NumberOfComments int       `json:"number_of_comments" gorm:"not null;default:0"`
	CreatedAt        time.Time `json:"time_publication"`
}
