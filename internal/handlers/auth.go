package handlers

import (
	"errors"

	"github.com/andamanescapes/travel-backend/internal/models"
	"github.com/andamanescapes/travel-backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RegisterInput struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func userPayload(user *models.User) gin.H {
	return gin.H{
		"id":       user.ID,
		"fullName": user.FullName,
		"email":    user.Email,
		"phone":    user.Phone,
		"role":     user.Role,
	}
}

func createUser(db *gorm.DB, c *gin.Context, role models.UserRole) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, 400, err.Error())
		return
	}

	user := models.User{
		FullName: input.FullName,
		Email:    input.Email,
		Password: input.Password,
		Phone:    input.Phone,
		Role:     string(role),
	}
	if err := user.HashPassword(); err != nil {
		utils.JSONError(c, 500, "Failed to hash password")
		return
	}

	if result := db.Create(&user); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			utils.JSONError(c, 409, "Email already registered")
			return
		}
		utils.JSONError(c, 500, "Failed to create user: "+result.Error.Error())
		return
	}

	utils.JSONSuccess(c, 201, gin.H{
		"message": "User created successfully",
		"user":    userPayload(&user),
	})
}

// Register creates a regular traveller account.
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		createUser(db, c, models.RoleUser)
	}
}

// AdminRegister creates an admin account. Reachable only behind the admin
// middleware.
func AdminRegister(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		createUser(db, c, models.RoleAdmin)
	}
}

// Login checks credentials and issues a bearer token.
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, 400, err.Error())
			return
		}

		var user models.User
		if result := db.Where("email = ?", input.Email).First(&user); result.Error != nil {
			utils.JSONError(c, 401, "Invalid credentials")
			return
		}

		if err := user.CheckPassword(input.Password); err != nil {
			utils.JSONError(c, 401, "Invalid credentials")
			return
		}

		token, err := utils.GenerateToken(&user)
		if err != nil {
			utils.JSONError(c, 500, "Failed to generate token")
			return
		}

		utils.JSONSuccess(c, 200, gin.H{
			"token": token,
			"user":  userPayload(&user),
		})
	}
}

// GetCurrentUser returns the profile behind the presented token.
func GetCurrentUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var user models.User
		if result := db.First(&user, userId); result.Error != nil {
			utils.JSONError(c, 404, "User not found")
			return
		}

		utils.JSONSuccess(c, 200, userPayload(&user))
	}
}
