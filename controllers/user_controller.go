package controllers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"recipehub-api/models"
	"recipehub-api/utils"
)

type UserController struct {
	db *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{db: db}
}

// GetUserByID returns the username for an opaque user ID. The forum uses
// this to map author IDs on posts and comments to display names.
func (uc *UserController) GetUserByID(c *gin.Context) {
	userID := c.Query("id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID is required"})
		return
	}

	var user models.User
	if err := uc.db.Select("id", "username").First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": user.ID, "username": user.Username})
}

func (uc *UserController) GetUserByUsername(c *gin.Context) {
	username := c.Param("username")

	var user models.User
	if err := uc.db.Where("username = ?", username).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}

func (uc *UserController) GetAllUsers(c *gin.Context) {
	var users []models.User
	if err := uc.db.Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error while fetching users", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, users)
}

type ChangePasswordRequest struct {
	ID          string `json:"id" binding:"required"`
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

func (uc *UserController) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := uc.db.First(&user, "id = ?", req.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Old password is incorrect"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}
	if err := uc.db.Model(&user).Update("password", string(hashedPassword)).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}

type UpdateDetailsRequest struct {
	ID          string `json:"id" binding:"required"`
	NewEmail    string `json:"newEmail"`
	NewUsername string `json:"newUsername"`
}

func (uc *UserController) UpdateDetails(c *gin.Context) {
	var req UpdateDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := uc.db.First(&user, "id = ?", req.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	updates := map[string]interface{}{}
	if req.NewEmail != "" {
		if !utils.IsValidEmail(req.NewEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
			return
		}
		updates["email"] = req.NewEmail
	}
	if req.NewUsername != "" {
		updates["username"] = req.NewUsername
	}

	if len(updates) > 0 {
		if err := uc.db.Model(&user).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user details"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "User details updated successfully", "user": user})
}

type RoleChangeRequest struct {
	ID   string `json:"id" binding:"required"`
	Role string `json:"role"`
}

func (uc *UserController) MakeAdmin(c *gin.Context) {
	var req RoleChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Role != models.RoleAdmin {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role or missing user ID"})
		return
	}

	var user models.User
	if err := uc.db.First(&user, "id = ?", req.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if user.Role == models.RoleAdmin {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User is already an Admin"})
		return
	}

	if err := uc.db.Model(&user).Update("role", models.RoleAdmin).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update role"})
		return
	}

	slog.Info("user promoted to admin", "user_id", user.ID)
	c.JSON(http.StatusOK, gin.H{"message": "User role updated to admin successfully", "user": user})
}

type BanUserRequest struct {
	ID string `json:"id" binding:"required"`
}

func (uc *UserController) BanUser(c *gin.Context) {
	var req BanUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := uc.db.First(&user, "id = ?", req.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if err := uc.db.Model(&user).Update("role", models.RoleBanned).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to ban user"})
		return
	}

	slog.Info("user banned", "user_id", user.ID)
	c.JSON(http.StatusOK, gin.H{"message": "User banned successfully", "id": user.ID})
}

type DeleteUserRequest struct {
	ID string `json:"id" binding:"required"`
}

func (uc *UserController) DeleteUser(c *gin.Context) {
	var req DeleteUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := uc.db.First(&user, "id = ?", req.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if err := uc.db.Delete(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	slog.Info("user deleted", "user_id", req.ID)
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
