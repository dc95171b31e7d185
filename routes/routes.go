package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"recipehub-api/config"
	"recipehub-api/controllers"
	"recipehub-api/middleware"
	"recipehub-api/models"
	"recipehub-api/services"
)

// SetupCORS allows the web frontend to reach the API from another origin.
func SetupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Services
	emailService := services.NewEmailService(cfg)
	forumService := services.NewForumService(db)
	ratingService := services.NewRatingService(db)
	recipeService := services.NewRecipeService(db, cfg)

	// Controllers
	authController := controllers.NewAuthController(db, cfg.JWTSecret, emailService)
	userController := controllers.NewUserController(db)
	categoryController := controllers.NewCategoryController(forumService)
	postController := controllers.NewPostController(forumService)
	commentController := controllers.NewCommentController(forumService)
	recipeController := controllers.NewRecipeController(recipeService)
	ratingController := controllers.NewRatingController(ratingService, recipeService)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "healthy"})
	})

	v1 := r.Group("/api/v1")

	member := middleware.RequireRole(models.RoleAdmin, models.RoleBasic)
	admin := middleware.RequireRole(models.RoleAdmin)

	// Auth routes (public)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/request-password-reset", authController.RequestPasswordReset)
		auth.POST("/reset-password", authController.ResetPassword)
	}

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		protected.POST("/auth/logout", member, authController.Logout)
		protected.POST("/auth/refresh-token", member, authController.RefreshToken)

		users := protected.Group("/users")
		{
			users.GET("/getUserById", userController.GetUserByID)
			users.GET("/findbyusername/:username", member, userController.GetUserByUsername)
			users.GET("/findallusers", admin, userController.GetAllUsers)
			users.POST("/change-password", member, userController.ChangePassword)
			users.PUT("/update-details", admin, userController.UpdateDetails)
			users.PUT("/makeAdmin", admin, userController.MakeAdmin)
			users.PUT("/banUser", admin, userController.BanUser)
			users.DELETE("/deleteUser", admin, userController.DeleteUser)
		}

		categories := protected.Group("/categories")
		{
			categories.POST("/create", admin, categoryController.CreateCategory)
			categories.DELETE("/delete", admin, categoryController.DeleteCategory)
			categories.GET("/getAll", categoryController.GetAllCategories)
		}

		posts := protected.Group("/posts")
		{
			posts.POST("/create", member, postController.CreatePost)
			posts.DELETE("/delete", admin, postController.DeletePost)
			posts.GET("/get", postController.GetPost)
			posts.GET("/search", postController.SearchPosts)
			posts.GET("/getAllByCategoryRecent", postController.GetPostsByCategory)
			posts.GET("/getAll", postController.GetAllPosts)
			posts.GET("/latest", postController.GetLatestPosts)
			posts.GET("/most-commented", postController.GetMostCommentedPosts)
		}

		comments := protected.Group("/comments")
		{
			comments.POST("/create", member, commentController.CreateComment)
			comments.DELETE("/delete", admin, commentController.DeleteComment)
			comments.GET("/getAllCommsByPostRecent", commentController.GetCommentsByPost)
			comments.GET("/getAll", member, commentController.GetAllComments)
		}

		recipes := protected.Group("/recipes")
		{
			recipes.GET("/search", recipeController.SearchRecipes)
			recipes.GET("/random-recipes", recipeController.RandomRecipes)
			recipes.GET("/get", recipeController.GetRecipe)
			recipes.PUT("/addFav", member, recipeController.AddFavorite)
			recipes.DELETE("/delFav", member, recipeController.RemoveFavorite)
			recipes.GET("/getFavs", member, recipeController.GetFavorites)
			recipes.PUT("/addWeekMenu", member, recipeController.AddToWeekPlan)
			recipes.DELETE("/delWeekMenu", member, recipeController.RemoveFromWeekPlan)
			recipes.GET("/getWeekMenu", member, recipeController.GetWeekPlan)

			recipes.POST("/rate", member, ratingController.RateRecipe)
			recipes.GET("/average-rating", ratingController.GetAverageRating)
			recipes.GET("/user-rating", member, ratingController.GetUserRating)
			recipes.GET("/top-rated", ratingController.GetTopRatedRecipes)
			recipes.GET("/recalculate-average-ratings", admin, ratingController.RecalculateAllAverageRatings)
		}
	}
}
