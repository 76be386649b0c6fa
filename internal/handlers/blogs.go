package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/andamanescapes/travel-backend/internal/models"
	"github.com/andamanescapes/travel-backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BlogInput struct {
	Title      string `json:"title" binding:"required"`
	Slug       string `json:"slug"`
	Excerpt    string `json:"excerpt" binding:"max=500"`
	Content    string `json:"content" binding:"required"`
	CoverImage string `json:"coverImage"`
	Published  bool   `json:"published"`
}

// GetBlogs lists published blog posts for the public blog pages.
func GetBlogs(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var blogs []models.Blog
		if err := db.Where("published = ?", true).
			Order("published_at DESC").
			Find(&blogs).Error; err != nil {
			utils.JSONError(c, 500, "Failed to fetch blogs")
			return
		}

		utils.JSONSuccess(c, 200, blogs)
	}
}

// GetBlogDrafts lists every post including unpublished drafts. Admin only.
func GetBlogDrafts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var blogs []models.Blog
		if err := db.Order("created_at DESC").Find(&blogs).Error; err != nil {
			utils.JSONError(c, 500, "Failed to fetch blogs")
			return
		}

		utils.JSONSuccess(c, 200, blogs)
	}
}

// lookupError maps a record lookup failure to an HTTP status and message,
// keeping missing records distinct from database failures.
func lookupError(err error, notFoundMsg, failureMsg string) (int, string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 404, notFoundMsg
	}
	return 500, failureMsg
}

// GetBlog resolves a post by numeric id or slug. Unpublished posts are
// hidden from the public route.
func GetBlog(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Param("id")

		var blog models.Blog
		var err error
		if _, convErr := strconv.Atoi(key); convErr == nil {
			err = db.First(&blog, key).Error
		} else {
			err = db.Where("slug = ?", key).First(&blog).Error
		}
		if err != nil {
			status, msg := lookupError(err, "Blog not found", "Failed to fetch blog")
			utils.JSONError(c, status, msg)
			return
		}
		if !blog.Published {
			utils.JSONError(c, 404, "Blog not found")
			return
		}

		utils.JSONSuccess(c, 200, blog)
	}
}

// CreateBlog adds a blog post. Admin only.
func CreateBlog(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var input BlogInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, 400, err.Error())
			return
		}

		slug := input.Slug
		if slug == "" {
			slug = utils.Slugify(input.Title)
		}

		blog := models.Blog{
			Title:      input.Title,
			Slug:       slug,
			Excerpt:    input.Excerpt,
			Content:    input.Content,
			CoverImage: input.CoverImage,
			AuthorID:   userId,
			Published:  input.Published,
		}
		if blog.Published {
			now := time.Now()
			blog.PublishedAt = &now
		}

		if err := db.Create(&blog).Error; err != nil {
			utils.JSONError(c, 500, "Failed to create blog")
			return
		}

		utils.JSONSuccess(c, 201, blog)
	}
}

// UpdateBlog edits a blog post. Admin only.
func UpdateBlog(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var blog models.Blog
		if err := db.First(&blog, c.Param("id")).Error; err != nil {
			utils.JSONError(c, 404, "Blog not found")
			return
		}

		var input BlogInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, 400, err.Error())
			return
		}

		wasPublished := blog.Published

		blog.Title = input.Title
		if input.Slug != "" {
			blog.Slug = input.Slug
		}
		blog.Excerpt = input.Excerpt
		blog.Content = input.Content
		blog.CoverImage = input.CoverImage
		blog.Published = input.Published
		if blog.Published && !wasPublished {
			now := time.Now()
			blog.PublishedAt = &now
		}

		if err := db.Save(&blog).Error; err != nil {
			utils.JSONError(c, 500, "Failed to update blog")
			return
		}

		utils.JSONSuccess(c, 200, blog)
	}
}

// DeleteBlog removes a blog post. Admin only.
func DeleteBlog(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var blog models.Blog
		if err := db.First(&blog, c.Param("id")).Error; err != nil {
			utils.JSONError(c, 404, "Blog not found")
			return
		}

		if err := db.Delete(&blog).Error; err != nil {
			utils.JSONError(c, 500, "Failed to delete blog")
			return
		}

		utils.JSONSuccess(c, 200, gin.H{"message": "Blog deleted"})
	}
}
