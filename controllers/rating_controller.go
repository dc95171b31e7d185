package controllers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"recipehub-api/services"
)

type RatingController struct {
	ratingService *services.RatingService
	recipeService *services.RecipeService
}

func NewRatingController(ratingService *services.RatingService, recipeService *services.RecipeService) *RatingController {
	return &RatingController{
		ratingService: ratingService,
		recipeService: recipeService,
	}
}

type RateRecipeRequest struct {
	RecipeID string  `json:"recipeId" binding:"required"`
	UserID   string  `json:"userId" binding:"required"`
	Rating   float64 `json:"rating" binding:"required"`
}

func (rc *RatingController) RateRecipe(c *gin.Context) {
	var req RateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := rc.ratingService.SubmitRating(req.RecipeID, req.UserID, req.Rating); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rating submitted successfully"})
}

// GetAverageRating returns the cached summary; a recipe nobody has rated
// yet gets a zero-value summary, not a 404.
func (rc *RatingController) GetAverageRating(c *gin.Context) {
	recipeID := c.Query("recipeId")
	if recipeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Recipe ID is required."})
		return
	}

	summary, err := rc.ratingService.GetAverage(recipeID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (rc *RatingController) GetUserRating(c *gin.Context) {
	recipeID := c.Query("recipeId")
	userID := c.Query("userId")
	if recipeID == "" || userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Recipe ID and User ID are required."})
		return
	}

	rating, summary, err := rc.ratingService.GetUserRating(recipeID, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response := gin.H{"userRating": rating}
	if summary != nil {
		response["averageRating"] = summary.AverageRating
		response["numberOfRatings"] = summary.NumberOfRatings
	} else {
		response["averageRating"] = nil
		response["numberOfRatings"] = 0
	}

	c.JSON(http.StatusOK, response)
}

func (rc *RatingController) RecalculateAllAverageRatings(c *gin.Context) {
	if err := rc.ratingService.RecalculateAll(); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All average ratings recalculated successfully."})
}

// GetTopRatedRecipes joins the highest-rated summaries with the recipe
// details from Edamam. Recipes the upstream API can no longer return are
// skipped rather than failing the whole listing.
func (rc *RatingController) GetTopRatedRecipes(c *gin.Context) {
	summaries, err := rc.ratingService.GetTopRated(services.DefaultTopRatedLimit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if len(summaries) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No top-rated recipes found."})
		return
	}

	topRecipes := make([]gin.H, 0, len(summaries))
	for _, summary := range summaries {
		body, err := rc.recipeService.GetRecipe(summary.RecipeID)
		if err != nil {
			slog.Warn("skipping unfetchable recipe", "recipe_id", summary.RecipeID, "error", err)
			continue
		}

		var payload struct {
			Recipe map[string]interface{} `json:"recipe"`
		}
		if err := json.Unmarshal(body, &payload); err != nil || payload.Recipe == nil {
			slog.Warn("skipping recipe with unexpected payload", "recipe_id", summary.RecipeID)
			continue
		}

		entry := gin.H{}
		for key, value := range payload.Recipe {
			entry[key] = value
		}
		entry["averageRating"] = summary.AverageRating
		entry["numberOfRatings"] = summary.NumberOfRatings
		topRecipes = append(topRecipes, entry)
	}

	c.JSON(http.StatusOK, topRecipes)
}
