package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"recipehub-api/services"
)

type CommentController struct {
	forumService *services.ForumService
}

func NewCommentController(forumService *services.ForumService) *CommentController {
	return &CommentController{forumService: forumService}
}

type CreateCommentRequest struct {
	PostID   int    `json:"postId" binding:"required"`
	AuthorID string `json:"authorId" binding:"required"`
	Content  string `json:"content" binding:"required"`
}

func (cc *CommentController) CreateComment(c *gin.Context) {
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := cc.forumService.CreateComment(req.PostID, req.AuthorID, req.Content)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "comment": comment})
}

func (cc *CommentController) DeleteComment(c *gin.Context) {
	commentID, err := strconv.Atoi(c.Query("commentId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment ID"})
		return
	}

	if _, err := cc.forumService.DeleteComment(commentID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Comment successfully deleted."})
}

func (cc *CommentController) GetCommentsByPost(c *gin.Context) {
	postID, err := strconv.Atoi(c.Query("postId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	comments, err := cc.forumService.CommentsByPost(postID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if len(comments) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No comments found for this post."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

func (cc *CommentController) GetAllComments(c *gin.Context) {
	comments, err := cc.forumService.AllComments()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, comments)
}
