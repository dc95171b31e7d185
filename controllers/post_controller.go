package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"recipehub-api/services"
)

type PostController struct {
	forumService *services.ForumService
}

func NewPostController(forumService *services.ForumService) *PostController {
	return &PostController{forumService: forumService}
}

type CreatePostRequest struct {
	CategoryID int    `json:"categoryId" binding:"required"`
	AuthorID   string `json:"authorId" binding:"required"`
	Title      string `json:"postTitle" binding:"required"`
	Content    string `json:"content" binding:"required"`
}

func (pc *PostController) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := pc.forumService.CreatePost(req.CategoryID, req.AuthorID, req.Title, req.Content)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Post successfully created", "id": post.PostID})
}

func (pc *PostController) DeletePost(c *gin.Context) {
	postID, err := strconv.Atoi(c.Query("postId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	post, err := pc.forumService.DeletePost(postID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post successfully deleted", "post": post})
}

func (pc *PostController) GetPost(c *gin.Context) {
	postID, err := strconv.Atoi(c.Query("postId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	post, err := pc.forumService.GetPost(postID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": post})
}

func (pc *PostController) SearchPosts(c *gin.Context) {
	query := c.Query("q")
	categoryID, err := strconv.Atoi(c.Query("cId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	posts, err := pc.forumService.SearchPosts(query, categoryID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if len(posts) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No posts found."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (pc *PostController) GetPostsByCategory(c *gin.Context) {
	categoryID, err := strconv.Atoi(c.Query("catId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	posts, err := pc.forumService.PostsByCategory(categoryID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if len(posts) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No posts found for the specified category."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (pc *PostController) GetAllPosts(c *gin.Context) {
	posts, err := pc.forumService.AllPosts()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (pc *PostController) GetLatestPosts(c *gin.Context) {
	posts, err := pc.forumService.LatestPosts()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if len(posts) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No posts found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (pc *PostController) GetMostCommentedPosts(c *gin.Context) {
	posts, err := pc.forumService.MostCommentedPosts()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if len(posts) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No posts found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}
