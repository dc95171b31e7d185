package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recipehub-api/services"
)

type RecipeController struct {
	recipeService *services.RecipeService
}

func NewRecipeController(recipeService *services.RecipeService) *RecipeController {
	return &RecipeController{recipeService: recipeService}
}

// SearchRecipes proxies the Edamam search endpoint, passing the supported
// filters through.
func (rc *RecipeController) SearchRecipes(c *gin.Context) {
	params := services.RecipeSearchParams{
		Query:       c.Query("q"),
		CuisineType: c.Query("cuisineType"),
		DishType:    c.Query("dishType"),
		MealType:    c.Query("mealType"),
		Health:      c.Query("health"),
		Diet:        c.Query("diet"),
		Ingredients: c.Query("ingr"),
		Calories:    c.Query("calories"),
		Time:        c.Query("time"),
	}

	body, err := rc.recipeService.Search(params)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Data(http.StatusOK, "application/json", body)
}

func (rc *RecipeController) RandomRecipes(c *gin.Context) {
	body, err := rc.recipeService.Random()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching random recipes", "message": err.Error()})
		return
	}

	c.Data(http.StatusOK, "application/json", body)
}

func (rc *RecipeController) GetRecipe(c *gin.Context) {
	recipeID := c.Query("id")
	if recipeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Recipe ID is required"})
		return
	}

	body, err := rc.recipeService.GetRecipe(recipeID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Could not fetch recipe", "recipeId": recipeID})
		return
	}

	c.Data(http.StatusOK, "application/json", body)
}

type FavoriteRequest struct {
	UserID   string `json:"userId" binding:"required"`
	RecipeID string `json:"recipeId" binding:"required"`
}

func (rc *RecipeController) AddFavorite(c *gin.Context) {
	var req FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := rc.recipeService.AddFavorite(req.UserID, req.RecipeID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Recipe added to favorites", "recipeId": req.RecipeID})
}

func (rc *RecipeController) RemoveFavorite(c *gin.Context) {
	var req FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := rc.recipeService.RemoveFavorite(req.UserID, req.RecipeID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Recipe removed from favorites", "recipeId": req.RecipeID})
}

func (rc *RecipeController) GetFavorites(c *gin.Context) {
	userID := c.Query("id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID is required"})
		return
	}

	favorites, err := rc.recipeService.Favorites(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, favorites)
}

type WeekPlanRequest struct {
	UserID   string `json:"userId" binding:"required"`
	RecipeID string `json:"recipeId" binding:"required"`
	Day      string `json:"day" binding:"required"`
}

func (rc *RecipeController) AddToWeekPlan(c *gin.Context) {
	var req WeekPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := rc.recipeService.AddToWeekPlan(req.UserID, req.RecipeID, req.Day); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Recipe added to the week plan", "recipeId": req.RecipeID, "day": req.Day})
}

func (rc *RecipeController) RemoveFromWeekPlan(c *gin.Context) {
	var req WeekPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := rc.recipeService.RemoveFromWeekPlan(req.UserID, req.RecipeID, req.Day); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Recipe removed from the week plan", "recipeId": req.RecipeID, "day": req.Day})
}

func (rc *RecipeController) GetWeekPlan(c *gin.Context) {
	userID := c.Query("uId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID is required"})
		return
	}

	weekPlan, err := rc.recipeService.WeekPlan(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, weekPlan)
}
