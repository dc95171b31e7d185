package services

import (
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"recipehub-api/models"
	"recipehub-api/utils"
)

// DefaultTopRatedLimit caps the top-rated listing.
const DefaultTopRatedLimit = 20

// RatingService keeps the per-recipe AverageRating summaries consistent
// with the raw Rating rows. The summary is a pure function of the rating
// table, recomputed with a full scan on every write rather than maintained
// incrementally; that stays correct when an existing rating is overwritten
// in place.
type RatingService struct {
	db *gorm.DB
}

func NewRatingService(db *gorm.DB) *RatingService {
	return &RatingService{db: db}
}

// SubmitRating records value as the user's rating for the recipe,
// overwriting any previous rating by the same user, then recomputes the
// recipe's summary. Values must lie in [0.5, 5.0] in steps of 0.5.
func (s *RatingService) SubmitRating(recipeID, userID string, value float64) error {
	if !utils.IsValidRating(value) {
		return fmt.Errorf("rating %v must be between 0.5 and 5 in increments of 0.5: %w", value, ErrInvalidArgument)
	}

	var existing models.Rating
	err := s.db.Where("recipe_id = ? AND user_id = ?", recipeID, userID).First(&existing).Error
	switch {
	case err == nil:
		if err := s.db.Model(&existing).UpdateColumn("rating", value).Error; err != nil {
			return fmt.Errorf("updating rating: %w", err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		rating := models.Rating{RecipeID: recipeID, UserID: userID, Rating: value}
		if err := s.db.Create(&rating).Error; err != nil {
			return fmt.Errorf("creating rating: %w", err)
		}
	default:
		return fmt.Errorf("looking up rating: %w", err)
	}

	if err := s.recomputeAverage(recipeID); err != nil {
		return err
	}

	slog.Info("rating submitted", "recipe_id", recipeID, "rating", value)
	return nil
}

// recomputeAverage rescans every rating for the recipe and upserts the
// summary. Zero ratings leaves any existing summary untouched; ratings are
// never deleted, so a recipe losing its last rating is not a supported path.
func (s *RatingService) recomputeAverage(recipeID string) error {
	var ratings []models.Rating
	if err := s.db.Where("recipe_id = ?", recipeID).Find(&ratings).Error; err != nil {
		return fmt.Errorf("scanning ratings: %w", err)
	}
	if len(ratings) == 0 {
		return nil
	}

	var total float64
	for _, r := range ratings {
		total += r.Rating
	}
	average := total / float64(len(ratings))

	var summary models.AverageRating
	err := s.db.First(&summary, "recipe_id = ?", recipeID).Error
	switch {
	case err == nil:
		return s.db.Model(&summary).Updates(map[string]interface{}{
			"average_rating":    average,
			"number_of_ratings": len(ratings),
		}).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		summary = models.AverageRating{
			RecipeID:        recipeID,
			AverageRating:   average,
			NumberOfRatings: len(ratings),
		}
		return s.db.Create(&summary).Error
	default:
		return fmt.Errorf("loading summary: %w", err)
	}
}

// GetAverage returns the cached summary, or a zero-value summary when the
// recipe has no ratings yet. Never ErrNotFound.
func (s *RatingService) GetAverage(recipeID string) (*models.AverageRating, error) {
	var summary models.AverageRating
	err := s.db.First(&summary, "recipe_id = ?", recipeID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.AverageRating{RecipeID: recipeID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// GetUserRating returns the user's own rating row plus the cached summary.
// ErrNotFound when the user has not rated the recipe; the summary may be
// nil when no one has.
func (s *RatingService) GetUserRating(recipeID, userID string) (*models.Rating, *models.AverageRating, error) {
	var rating models.Rating
	err := s.db.Where("recipe_id = ? AND user_id = ?", recipeID, userID).First(&rating).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, fmt.Errorf("rating for recipe %s by user %s: %w", recipeID, userID, ErrNotFound)
	}
	if err != nil {
		return nil, nil, err
	}

	var summary models.AverageRating
	if err := s.db.First(&summary, "recipe_id = ?", recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &rating, nil, nil
		}
		return nil, nil, err
	}
	return &rating, &summary, nil
}

// GetTopRated returns summaries sorted descending by average rating,
// capped at limit (DefaultTopRatedLimit when limit <= 0).
func (s *RatingService) GetTopRated(limit int) ([]models.AverageRating, error) {
	if limit <= 0 {
		limit = DefaultTopRatedLimit
	}
	var summaries []models.AverageRating
	err := s.db.Order("average_rating DESC").Limit(limit).Find(&summaries).Error
	return summaries, err
}

// RecalculateAll sweeps every distinct recipe present in the rating table
// and recomputes its summary. Offline consistency repair; idempotent.
func (s *RatingService) RecalculateAll() error {
	var recipeIDs []string
	if err := s.db.Model(&models.Rating{}).Distinct("recipe_id").Pluck("recipe_id", &recipeIDs).Error; err != nil {
		return fmt.Errorf("listing rated recipes: %w", err)
	}

	for _, recipeID := range recipeIDs {
		if err := s.recomputeAverage(recipeID); err != nil {
			return fmt.Errorf("recomputing %s: %w", recipeID, err)
		}
	}

	slog.Info("average ratings recalculated", "recipes", len(recipeIDs))
	return nil
}
