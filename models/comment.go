package models

import (
	"time"
)

// Comment rows do not store the category; the owning category is resolved
// through the post when counters are adjusted.
type Comment struct {
	CommentID int       `json:"comment_id" gorm:"primaryKey;autoIncrement:false"`
	PostID    int       `json:"post_id" gorm:"not null;index"`
	AuthorID  string    `json:"author_id" gorm:"not null;index;size:191"`
	Content   string    `json:"content" gorm:"not null;type:text"`
	CreatedAt time.Time `json:"time_publication"`
}
