package services

import (
	"errors"
	"math"
	"testing"

	"recipehub-api/models"
)

func TestSubmitRatingOverwritesInPlace(t *testing.T) {
	db := newTestDB(t)
	svc := NewRatingService(db)
	user := createTestUser(t, db, "alice")

	if err := svc.SubmitRating("abc123", user.ID, 3.0); err != nil {
		t.Fatalf("first SubmitRating failed: %v", err)
	}
	if err := svc.SubmitRating("abc123", user.ID, 4.5); err != nil {
		t.Fatalf("second SubmitRating failed: %v", err)
	}

	var ratings []models.Rating
	if err := db.Where("recipe_id = ?", "abc123").Find(&ratings).Error; err != nil {
		t.Fatalf("listing ratings failed: %v", err)
	}
	if len(ratings) != 1 {
		t.Fatalf("got %d rating rows, want 1", len(ratings))
	}
	if ratings[0].Rating != 4.5 {
		t.Errorf("rating = %v, want 4.5", ratings[0].Rating)
	}

	summary, err := svc.GetAverage("abc123")
	if err != nil {
		t.Fatalf("GetAverage failed: %v", err)
	}
	if summary.AverageRating != 4.5 || summary.NumberOfRatings != 1 {
		t.Errorf("summary = (%v, %d), want (4.5, 1)", summary.AverageRating, summary.NumberOfRatings)
	}
}

func TestSubmitRatingRejectsInvalidValues(t *testing.T) {
	db := newTestDB(t)
	svc := NewRatingService(db)
	user := createTestUser(t, db, "alice")

	for _, value := range []float64{2.3, 0.0, 0.25, 5.5, -1} {
		if err := svc.SubmitRating("abc123", user.ID, value); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("SubmitRating(%v): got %v, want ErrInvalidArgument", value, err)
		}
	}

	if err := svc.SubmitRating("abc123", user.ID, 2.5); err != nil {
		t.Errorf("SubmitRating(2.5) failed: %v", err)
	}
}

func TestGetAverageWithoutRatingsIsZeroValue(t *testing.T) {
	db := newTestDB(t)
	svc := NewRatingService(db)

	summary, err := svc.GetAverage("never-rated")
	if err != nil {
		t.Fatalf("GetAverage failed: %v", err)
	}
	if summary.AverageRating != 0 || summary.NumberOfRatings != 0 {
		t.Errorf("summary = (%v, %d), want (0, 0)", summary.AverageRating, summary.NumberOfRatings)
	}
}

func TestAverageOfThreeUsersAndRecalculateAll(t *testing.T) {
	db := newTestDB(t)
	svc := NewRatingService(db)

	values := []float64{5, 4, 3}
	for i, value := range values {
		user := createTestUser(t, db, []string{"alice", "bob", "carol"}[i])
		if err := svc.SubmitRating("abc123", user.ID, value); err != nil {
			t.Fatalf("SubmitRating(%v) failed: %v", value, err)
		}
	}

	summary, err := svc.GetAverage("abc123")
	if err != nil {
		t.Fatalf("GetAverage failed: %v", err)
	}
	if math.Abs(summary.AverageRating-4.0) > 1e-9 {
		t.Errorf("average = %v, want 4.0", summary.AverageRating)
	}
	if summary.NumberOfRatings != 3 {
		t.Errorf("number of ratings = %d, want 3", summary.NumberOfRatings)
	}

	// The repair sweep must be a no-op on a consistent table.
	if err := svc.RecalculateAll(); err != nil {
		t.Fatalf("RecalculateAll failed: %v", err)
	}
	after, err := svc.GetAverage("abc123")
	if err != nil {
		t.Fatalf("GetAverage failed: %v", err)
	}
	if *after != *summary {
		t.Errorf("summary changed after RecalculateAll: %+v -> %+v", summary, after)
	}
}

func TestGetUserRating(t *testing.T) {
	db := newTestDB(t)
	svc := NewRatingService(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	if err := svc.SubmitRating("abc123", alice.ID, 3.5); err != nil {
		t.Fatalf("SubmitRating failed: %v", err)
	}

	rating, summary, err := svc.GetUserRating("abc123", alice.ID)
	if err != nil {
		t.Fatalf("GetUserRating failed: %v", err)
	}
	if rating.Rating != 3.5 {
		t.Errorf("user rating = %v, want 3.5", rating.Rating)
	}
	if summary == nil || summary.NumberOfRatings != 1 {
		t.Errorf("summary = %+v, want 1 rating", summary)
	}

	if _, _, err := svc.GetUserRating("abc123", bob.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound for user without a rating", err)
	}
}

func TestGetTopRatedOrderAndLimit(t *testing.T) {
	db := newTestDB(t)
	svc := NewRatingService(db)

	users := []*models.User{
		createTestUser(t, db, "alice"),
		createTestUser(t, db, "bob"),
	}
	// recipe-a: avg 2.5, recipe-b: avg 5.0, recipe-c: avg 4.0
	ratings := map[string][]float64{
		"recipe-a": {2, 3},
		"recipe-b": {5, 5},
		"recipe-c": {3.5, 4.5},
	}
	for recipeID, values := range ratings {
		for i, value := range values {
			if err := svc.SubmitRating(recipeID, users[i].ID, value); err != nil {
				t.Fatalf("SubmitRating failed: %v", err)
			}
		}
	}

	top, err := svc.GetTopRated(2)
	if err != nil {
		t.Fatalf("GetTopRated failed: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("got %d summaries, want 2", len(top))
	}
	if top[0].RecipeID != "recipe-b" || top[1].RecipeID != "recipe-c" {
		t.Errorf("order = [%s, %s], want [recipe-b, recipe-c]", top[0].RecipeID, top[1].RecipeID)
	}
}
