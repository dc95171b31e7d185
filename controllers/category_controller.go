package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"recipehub-api/services"
)

type CategoryController struct {
	forumService *services.ForumService
}

func NewCategoryController(forumService *services.ForumService) *CategoryController {
	return &CategoryController{forumService: forumService}
}

type CreateCategoryRequest struct {
	Title    string `json:"categoryTitle" binding:"required"`
	Subtitle string `json:"categorySubtitle" binding:"required"`
}

func (cc *CategoryController) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := cc.forumService.CreateCategory(req.Title, req.Subtitle)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Category successfully created",
		"category": category.CategoryID,
	})
}

// DeleteCategory cascades: every post in the category and every comment on
// those posts is removed, with counters adjusted along the way.
func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	categoryID, err := strconv.Atoi(c.Query("categoryId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	category, deletedPosts, err := cc.forumService.DeleteCategory(categoryID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Category successfully deleted",
		"category":     category.CategoryID,
		"deletedPosts": deletedPosts,
	})
}

func (cc *CategoryController) GetAllCategories(c *gin.Context) {
	categories, err := cc.forumService.Categories()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
