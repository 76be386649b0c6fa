package handlers

import (
	"github.com/andamanescapes/travel-backend/internal/models"
	"github.com/andamanescapes/travel-backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ListUsers returns all accounts. Admin only.
func ListUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.Order("id").Find(&users).Error; err != nil {
			utils.JSONError(c, 500, "Failed to fetch users")
			return
		}

		payload := make([]gin.H, 0, len(users))
		for i := range users {
			payload = append(payload, userPayload(&users[i]))
		}

		utils.JSONSuccess(c, 200, payload)
	}
}

// DeleteUser soft-deletes an account. Admin only; admins cannot delete
// themselves.
func DeleteUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")
		targetId := c.Param("id")

		var user models.User
		if err := db.First(&user, targetId).Error; err != nil {
			utils.JSONError(c, 404, "User not found")
			return
		}

		if user.ID == userId {
			utils.JSONError(c, 400, "Cannot delete your own account")
			return
		}

		if err := db.Delete(&user).Error; err != nil {
			utils.JSONError(c, 500, "Failed to delete user")
			return
		}

		utils.JSONSuccess(c, 200, gin.H{"message": "User deleted"})
	}
}

// UpdateProfileInput holds the editable profile fields.
type UpdateProfileInput struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
}

// UpdateProfile lets the caller edit their own name and phone.
func UpdateProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var input UpdateProfileInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, 400, err.Error())
			return
		}

		var user models.User
		if err := db.First(&user, userId).Error; err != nil {
			utils.JSONError(c, 404, "User not found")
			return
		}

		if input.FullName != "" {
			user.FullName = input.FullName
		}
		if input.Phone != "" {
			user.Phone = input.Phone
		}

		if err := db.Save(&user).Error; err != nil {
			utils.JSONError(c, 500, "Failed to update profile")
			return
		}

		utils.JSONSuccess(c, 200, userPayload(&user))
	}
}
