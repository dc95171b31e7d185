package models

import (
	"time"
)

// User roles. Banned users keep their data but fail every role gate.
const (
	RoleBasic  = "Basic"
	RoleAdmin  = "Admin"
	RoleBanned = "Banned"
)

type User struct {
	ID               string       `json:"id" gorm:"primaryKey;size:191"`
	Username         string       `json:"username" gorm:"uniqueIndex;not null;size:50"`
	Email            string       `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password         string       `json:"-" gorm:"not null;size:255"`
	Role             string       `json:"role" gorm:"not null;default:'Basic';size:20"`
	Gender           string       `json:"gender" gorm:"size:20"`
	NumberOfPosts    int          `json:"number_of_posts" gorm:"default:0"`
	NumberOfComments int          `json:"number_of_comments" gorm:"default:0"`
	Favorites        FavoriteList `json:"favorites" gorm:"type:json"`
	WeekPlan         WeekPlan     `json:"week_plan" gorm:"type:json"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

// FavoriteEntry is one saved recipe on a user's favorites list.
type FavoriteEntry struct {
	RecipeID  string    `json:"recipe_id"`
	AddedDate time.Time `json:"added_date"`
}
