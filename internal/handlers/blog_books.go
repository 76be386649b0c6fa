package handlers

import (
	"encoding/json"
	"fmt"

	"github.com/andamanescapes/travel-backend/internal/models"
	"github.com/andamanescapes/travel-backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type BlogBookInput struct {
	Title           string `json:"title" binding:"required"`
	Slug            string `json:"slug"`
	Description     string `json:"description" binding:"max=500"`
	Published       bool   `json:"published"`
	TableOfContents []uint `json:"tableOfContents"`
}

// validateTOC checks that every referenced blog id exists.
func validateTOC(db *gorm.DB, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}

	var count int64
	if err := db.Model(&models.Blog{}).Where("id IN ?", ids).Count(&count).Error; err != nil {
		return err
	}
	if count != int64(len(ids)) {
		return fmt.Errorf("table of contents references unknown blog ids")
	}
	return nil
}

func blogBookFromInput(db *gorm.DB, input BlogBookInput) (models.BlogBook, error) {
	book := models.BlogBook{
		Title:       input.Title,
		Slug:        input.Slug,
		Description: input.Description,
		Published:   input.Published,
	}
	if book.Slug == "" {
		book.Slug = utils.Slugify(input.Title)
	}

	if err := validateTOC(db, input.TableOfContents); err != nil {
		return book, err
	}
	if input.TableOfContents != nil {
		data, err := json.Marshal(input.TableOfContents)
		if err != nil {
			return book, err
		}
		book.TableOfContents = datatypes.JSON(data)
	}

	return book, nil
}

// GetBlogBooks lists published blog books; admins see drafts too when
// calling through the admin route.
func GetBlogBooks(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var books []models.BlogBook
		if err := db.Where("published = ?", true).Order("title").Find(&books).Error; err != nil {
			utils.JSONError(c, 500, "Failed to fetch blog books")
			return
		}

		utils.JSONSuccess(c, 200, books)
	}
}

// GetAllBlogBooks lists every blog book including drafts. Admin only.
func GetAllBlogBooks(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var books []models.BlogBook
		if err := db.Order("title").Find(&books).Error; err != nil {
			utils.JSONError(c, 500, "Failed to fetch blog books")
			return
		}

		utils.JSONSuccess(c, 200, books)
	}
}

// GetBlogBook returns one blog book with its table of contents expanded
// into blog summaries.
func GetBlogBook(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var book models.BlogBook
		if err := db.First(&book, c.Param("id")).Error; err != nil || !book.Published {
			utils.JSONError(c, 404, "Blog book not found")
			return
		}

		var ids []uint
		if len(book.TableOfContents) > 0 {
			if err := json.Unmarshal(book.TableOfContents, &ids); err != nil {
				utils.JSONError(c, 500, "Corrupt table of contents")
				return
			}
		}

		var blogs []models.Blog
		if len(ids) > 0 {
			if err := db.Where("id IN ? AND published = ?", ids, true).Find(&blogs).Error; err != nil {
				utils.JSONError(c, 500, "Failed to fetch chapters")
				return
			}
		}

		// Preserve the table-of-contents order
		byID := make(map[uint]models.Blog, len(blogs))
		for _, b := range blogs {
			byID[b.ID] = b
		}
		chapters := make([]models.Blog, 0, len(ids))
		for _, id := range ids {
			if b, ok := byID[id]; ok {
				chapters = append(chapters, b)
			}
		}

		utils.JSONSuccess(c, 200, gin.H{"book": book, "chapters": chapters})
	}
}

// CreateBlogBook adds a blog book. Admin only.
func CreateBlogBook(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input BlogBookInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, 400, err.Error())
			return
		}

		book, err := blogBookFromInput(db, input)
		if err != nil {
			utils.JSONError(c, 400, err.Error())
			return
		}

		if err := db.Create(&book).Error; err != nil {
			utils.JSONError(c, 500, "Failed to create blog book")
			return
		}

		utils.JSONSuccess(c, 201, book)
	}
}

// UpdateBlogBook edits a blog book. Admin only.
func UpdateBlogBook(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var book models.BlogBook
		if err := db.First(&book, c.Param("id")).Error; err != nil {
			utils.JSONError(c, 404, "Blog book not found")
			return
		}

		var input BlogBookInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, 400, err.Error())
			return
		}

		updated, err := blogBookFromInput(db, input)
		if err != nil {
			utils.JSONError(c, 400, err.Error())
			return
		}
		updated.ID = book.ID
		updated.CreatedAt = book.CreatedAt

		if err := db.Save(&updated).Error; err != nil {
			utils.JSONError(c, 500, "Failed to update blog book")
			return
		}

		utils.JSONSuccess(c, 200, updated)
	}
}

// DeleteBlogBook removes a blog book. Admin only.
func DeleteBlogBook(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var book models.BlogBook
		if err := db.First(&book, c.Param("id")).Error; err != nil {
			utils.JSONError(c, 404, "Blog book not found")
			return
		}

		if err := db.Delete(&book).Error; err != nil {
			utils.JSONError(c, 500, "Failed to delete blog book")
			return
		}

		utils.JSONSuccess(c, 200, gin.H{"message": "Blog book deleted"})
	}
}
