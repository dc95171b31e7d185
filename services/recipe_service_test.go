package services

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"gorm.io/gorm"

	"recipehub-api/config"
)

func newTestRecipeService(t *testing.T, db *gorm.DB, handler http.Handler) *RecipeService {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewRecipeService(db, &config.Config{
		EdamamBaseURL: server.URL,
		EdamamAppID:   "test-app-id",
		EdamamAppKey:  "test-app-key",
	})
}

func TestSearchBuildsEdamamQuery(t *testing.T) {
	db := newTestDB(t)

	var gotPath string
	var gotQuery map[string][]string
	svc := newTestRecipeService(t, db, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"hits":[]}`))
	}))

	body, err := svc.Search(RecipeSearchParams{
		Query:       "chicken",
		CuisineType: "italian",
		Health:      "vegan",
	})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if string(body) != `{"hits":[]}` {
		t.Errorf("body = %s, want upstream response passed through", body)
	}

	if gotPath != "/api/recipes/v2" {
		t.Errorf("path = %s, want /api/recipes/v2", gotPath)
	}
	want := map[string]string{
		"type":        "public",
		"app_id":      "test-app-id",
		"app_key":     "test-app-key",
		"q":           "chicken",
		"cuisineType": "italian",
		"health":      "vegan",
	}
	for key, value := range want {
		if len(gotQuery[key]) != 1 || gotQuery[key][0] != value {
			t.Errorf("query[%s] = %v, want %s", key, gotQuery[key], value)
		}
	}
	// Empty filters are omitted entirely.
	for _, key := range []string{"dishType", "mealType", "diet", "ingr", "calories", "time"} {
		if _, present := gotQuery[key]; present {
			t.Errorf("query contains %s for an unset filter", key)
		}
	}
}

func TestGetRecipeUpstreamStatuses(t *testing.T) {
	db := newTestDB(t)
	svc := newTestRecipeService(t, db, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/recipes/v2/known":
			w.Write([]byte(`{"recipe":{"label":"Carbonara"}}`))
		case "/api/recipes/v2/missing":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))

	if _, err := svc.GetRecipe("known"); err != nil {
		t.Errorf("GetRecipe(known) failed: %v", err)
	}
	if _, err := svc.GetRecipe("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetRecipe(missing): got %v, want ErrNotFound", err)
	}
	if _, err := svc.GetRecipe("broken"); err == nil || errors.Is(err, ErrNotFound) {
		t.Errorf("GetRecipe(broken): got %v, want a non-NotFound error", err)
	}
}

func TestFavoritesLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := newTestRecipeService(t, db, http.NotFoundHandler())
	user := createTestUser(t, db, "alice")

	if err := svc.AddFavorite(user.ID, "recipe-a"); err != nil {
		t.Fatalf("AddFavorite failed: %v", err)
	}
	if err := svc.AddFavorite(user.ID, "recipe-b"); err != nil {
		t.Fatalf("AddFavorite failed: %v", err)
	}
	// Adding the same recipe twice keeps both entries, matching the
	// list-append behaviour the frontend expects.
	if err := svc.AddFavorite(user.ID, "recipe-a"); err != nil {
		t.Fatalf("AddFavorite failed: %v", err)
	}

	favorites, err := svc.Favorites(user.ID)
	if err != nil {
		t.Fatalf("Favorites failed: %v", err)
	}
	if len(favorites) != 3 {
		t.Fatalf("got %d favorites, want 3", len(favorites))
	}
	if favorites[0].AddedDate.IsZero() {
		t.Error("favorite entry has no added date")
	}

	// Removal drops every entry for the recipe.
	if err := svc.RemoveFavorite(user.ID, "recipe-a"); err != nil {
		t.Fatalf("RemoveFavorite failed: %v", err)
	}
	favorites, err = svc.Favorites(user.ID)
	if err != nil {
		t.Fatalf("Favorites failed: %v", err)
	}
	if len(favorites) != 1 || favorites[0].RecipeID != "recipe-b" {
		t.Errorf("favorites = %+v, want only recipe-b", favorites)
	}

	if err := svc.AddFavorite("no-such-user", "recipe-a"); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound for unknown user", err)
	}
}

func TestWeekPlanBucketsAndDedup(t *testing.T) {
	db := newTestDB(t)
	svc := newTestRecipeService(t, db, http.NotFoundHandler())
	user := createTestUser(t, db, "alice")

	if err := svc.AddToWeekPlan(user.ID, "recipe-a", "mon"); err != nil {
		t.Fatalf("AddToWeekPlan failed: %v", err)
	}
	if err := svc.AddToWeekPlan(user.ID, "recipe-b", "mon"); err != nil {
		t.Fatalf("AddToWeekPlan failed: %v", err)
	}
	// Per-day buckets are duplicate-free.
	if err := svc.AddToWeekPlan(user.ID, "recipe-a", "mon"); err != nil {
		t.Fatalf("AddToWeekPlan failed: %v", err)
	}
	// The same recipe may appear on another day.
	if err := svc.AddToWeekPlan(user.ID, "recipe-a", "fri"); err != nil {
		t.Fatalf("AddToWeekPlan failed: %v", err)
	}

	if err := svc.AddToWeekPlan(user.ID, "recipe-a", "caturday"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("got %v, want ErrInvalidArgument for unknown day", err)
	}

	plan, err := svc.WeekPlan(user.ID)
	if err != nil {
		t.Fatalf("WeekPlan failed: %v", err)
	}
	if len(plan.Monday) != 2 {
		t.Errorf("monday = %v, want [recipe-a recipe-b]", plan.Monday)
	}
	if len(plan.Friday) != 1 || plan.Friday[0] != "recipe-a" {
		t.Errorf("friday = %v, want [recipe-a]", plan.Friday)
	}

	if err := svc.RemoveFromWeekPlan(user.ID, "recipe-a", "mon"); err != nil {
		t.Fatalf("RemoveFromWeekPlan failed: %v", err)
	}
	plan, err = svc.WeekPlan(user.ID)
	if err != nil {
		t.Fatalf("WeekPlan failed: %v", err)
	}
	if len(plan.Monday) != 1 || plan.Monday[0] != "recipe-b" {
		t.Errorf("monday = %v, want [recipe-b]", plan.Monday)
	}
	if len(plan.Friday) != 1 {
		t.Errorf("friday = %v, removal must not touch other days", plan.Friday)
	}
}
