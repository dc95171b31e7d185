package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"gorm.io/gorm"

	"recipehub-api/config"
	"recipehub-api/models"
)

// RecipeSearchParams are the Edamam v2 search filters the frontend can set.
// Empty fields are omitted from the outbound query.
type RecipeSearchParams struct {
	Query       string
	CuisineType string
	DishType    string
	MealType    string
	Health      string
	Diet        string
	Ingredients string
	Calories    string
	Time        string
}

// RecipeService proxies recipe lookups to the Edamam API and manages the
// per-user favorites list and weekly meal plan.
type RecipeService struct {
	db      *gorm.DB
	baseURL string
	appID   string
	appKey  string
	client  *http.Client
}

func NewRecipeService(db *gorm.DB, cfg *config.Config) *RecipeService {
	return &RecipeService{
		db:      db,
		baseURL: cfg.EdamamBaseURL,
		appID:   cfg.EdamamAppID,
		appKey:  cfg.EdamamAppKey,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// Search queries the Edamam search endpoint and returns its response body
// untouched; the frontend consumes the upstream shape directly.
func (s *RecipeService) Search(params RecipeSearchParams) (json.RawMessage, error) {
	values := s.baseValues()
	values.Set("q", params.Query)

	optional := map[string]string{
		"cuisineType": params.CuisineType,
		"dishType":    params.DishType,
		"mealType":    params.MealType,
		"health":      params.Health,
		"diet":        params.Diet,
		"ingr":        params.Ingredients,
		"calories":    params.Calories,
		"time":        params.Time,
	}
	for key, value := range optional {
		if value != "" {
			values.Set(key, value)
		}
	}

	return s.get(s.baseURL + "/api/recipes/v2?" + values.Encode())
}

// Random fetches a batch of arbitrary recipes for the landing page.
func (s *RecipeService) Random() (json.RawMessage, error) {
	values := s.baseValues()
	values.Set("q", "random")
	return s.get(s.baseURL + "/api/recipes/v2?" + values.Encode())
}

// GetRecipe fetches a single recipe by its Edamam ID.
func (s *RecipeService) GetRecipe(recipeID string) (json.RawMessage, error) {
	values := s.baseValues()
	return s.get(s.baseURL + "/api/recipes/v2/" + url.PathEscape(recipeID) + "?" + values.Encode())
}

func (s *RecipeService) baseValues() url.Values {
	values := url.Values{}
	values.Set("type", "public")
	values.Set("app_id", s.appID)
	values.Set("app_key", s.appKey)
	return values
}

func (s *RecipeService) get(apiURL string) (json.RawMessage, error) {
	resp, err := s.client.Get(apiURL)
	if err != nil {
		return nil, fmt.Errorf("recipe api request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading recipe api response: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("recipe api: %w", ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("recipe api returned status %d", resp.StatusCode)
	}
	return body, nil
}

// Favorites.

func (s *RecipeService) AddFavorite(userID, recipeID string) error {
	user, err := s.loadUser(userID)
	if err != nil {
		return err
	}

	user.Favorites = append(user.Favorites, models.FavoriteEntry{
		RecipeID:  recipeID,
		AddedDate: time.Now(),
	})
	return s.db.Model(user).Update("favorites", user.Favorites).Error
}

func (s *RecipeService) RemoveFavorite(userID, recipeID string) error {
	user, err := s.loadUser(userID)
	if err != nil {
		return err
	}

	kept := user.Favorites[:0]
	for _, entry := range user.Favorites {
		if entry.RecipeID != recipeID {
			kept = append(kept, entry)
		}
	}
	user.Favorites = kept
	return s.db.Model(user).Update("favorites", user.Favorites).Error
}

func (s *RecipeService) Favorites(userID string) (models.FavoriteList, error) {
	user, err := s.loadUser(userID)
	if err != nil {
		return nil, err
	}
	return user.Favorites, nil
}

// Week plan. Each day bucket is duplicate-free.

func (s *RecipeService) AddToWeekPlan(userID, recipeID, day string) error {
	user, err := s.loadUser(userID)
	if err != nil {
		return err
	}

	bucket, ok := user.WeekPlan.DayBucket(day)
	if !ok {
		return fmt.Errorf("unknown day %q: %w", day, ErrInvalidArgument)
	}
	for _, id := range *bucket {
		if id == recipeID {
			return nil
		}
	}
	*bucket = append(*bucket, recipeID)
	return s.db.Model(user).Update("week_plan", user.WeekPlan).Error
}

func (s *RecipeService) RemoveFromWeekPlan(userID, recipeID, day string) error {
	user, err := s.loadUser(userID)
	if err != nil {
		return err
	}

	bucket, ok := user.WeekPlan.DayBucket(day)
	if !ok {
		return fmt.Errorf("unknown day %q: %w", day, ErrInvalidArgument)
	}
	kept := (*bucket)[:0]
	for _, id := range *bucket {
		if id != recipeID {
			kept = append(kept, id)
		}
	}
	*bucket = kept
	return s.db.Model(user).Update("week_plan", user.WeekPlan).Error
}

func (s *RecipeService) WeekPlan(userID string) (*models.WeekPlan, error) {
	user, err := s.loadUser(userID)
	if err != nil {
		return nil, err
	}
	return &user.WeekPlan, nil
}

func (s *RecipeService) loadUser(userID string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %s: %w", userID, ErrNotFound)
		}
		return nil, err
	}
	return &user, nil
}
