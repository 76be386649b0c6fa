package handlers

import (
	"encoding/json"
	"log"

	"github.com/andamanescapes/travel-backend/internal/catalog"
	"github.com/andamanescapes/travel-backend/internal/models"
	"github.com/andamanescapes/travel-backend/internal/services"
	"github.com/andamanescapes/travel-backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ActivityInput struct {
	Name            string  `json:"name" binding:"required"`
	Destination     string  `json:"destination" binding:"required"`
	Description     string  `json:"description"`
	Duration        string  `json:"duration"`
	Price           float64 `json:"price" binding:"required,gt=0"`
	Category        string  `json:"category"`
	Difficulty      string  `json:"difficulty" binding:"omitempty,oneof=easy moderate challenging"`
	MinParticipants int     `json:"minParticipants" binding:"omitempty,gte=1"`
	MaxParticipants int     `json:"maxParticipants" binding:"omitempty,gte=1,lte=100"`
	MeetingPoint    string  `json:"meetingPoint"`
	Availability    string  `json:"availability" binding:"omitempty,oneof=available unavailable"`
}

// GetActivities lists activities with the catalog filter and pagination
// applied. Responses are cached in Redis keyed by the raw query.
func GetActivities(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		cacheKey := services.CatalogCacheKey("activities", c.Request.URL.RawQuery)

		if cached, err := services.GetCachedCatalog(ctx, cacheKey); err == nil {
			c.Data(200, "application/json", []byte(cached))
			return
		}

		var activities []models.Activity
		if err := db.Order("id").Find(&activities).Error; err != nil {
			utils.JSONError(c, 500, "Failed to fetch activities")
			return
		}

		query := c.Request.URL.Query()
		filtered := catalog.FilterActivities(activities, catalog.FilterFromQuery(query))
		page, size := catalog.PageFromQuery(query)
		result := catalog.Paginate(filtered, page, size)

		body, err := json.Marshal(gin.H{"success": true, "data": result})
		if err != nil {
			utils.JSONError(c, 500, "Failed to encode activities")
			return
		}

		if err := services.SetCachedCatalog(ctx, cacheKey, body); err != nil {
			log.Printf("Failed to cache activity list: %v", err)
		}

		c.Data(200, "application/json", body)
	}
}

// GetActivity returns a single activity by id.
func GetActivity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var activity models.Activity
		if err := db.First(&activity, c.Param("id")).Error; err != nil {
			utils.JSONError(c, 404, "Activity not found")
			return
		}

		utils.JSONSuccess(c, 200, activity)
	}
}

func activityFromInput(input ActivityInput) models.Activity {
	activity := models.Activity{
		Name:            input.Name,
		Destination:     input.Destination,
		Description:     input.Description,
		Duration:        input.Duration,
		Price:           input.Price,
		Category:        input.Category,
		Difficulty:      input.Difficulty,
		MinParticipants: input.MinParticipants,
		MaxParticipants: input.MaxParticipants,
		MeetingPoint:    input.MeetingPoint,
		Availability:    input.Availability,
	}
	if activity.MinParticipants == 0 {
		activity.MinParticipants = 1
	}
	if activity.MaxParticipants == 0 {
		activity.MaxParticipants = 20
	}
	if activity.Availability == "" {
		activity.Availability = string(models.ActivityAvailable)
	}
	return activity
}

// CreateActivity adds an activity to the catalog. Admin only.
func CreateActivity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ActivityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, 400, err.Error())
			return
		}

		activity := activityFromInput(input)
		if activity.MinParticipants > activity.MaxParticipants {
			utils.JSONError(c, 400, "minParticipants cannot exceed maxParticipants")
			return
		}

		if err := db.Create(&activity).Error; err != nil {
			utils.JSONError(c, 500, "Failed to create activity")
			return
		}

		if err := services.InvalidateCatalog(c.Request.Context(), "activities"); err != nil {
			log.Printf("Failed to invalidate activity cache: %v", err)
		}

		utils.JSONSuccess(c, 201, activity)
	}
}

// UpdateActivity edits an existing activity. Admin only.
func UpdateActivity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var activity models.Activity
		if err := db.First(&activity, c.Param("id")).Error; err != nil {
			utils.JSONError(c, 404, "Activity not found")
			return
		}

		var input ActivityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, 400, err.Error())
			return
		}

		updated := activityFromInput(input)
		if updated.MinParticipants > updated.MaxParticipants {
			utils.JSONError(c, 400, "minParticipants cannot exceed maxParticipants")
			return
		}
		updated.ID = activity.ID
		updated.CreatedAt = activity.CreatedAt
		updated.Photos = activity.Photos

		if err := db.Save(&updated).Error; err != nil {
			utils.JSONError(c, 500, "Failed to update activity")
			return
		}

		if err := services.InvalidateCatalog(c.Request.Context(), "activities"); err != nil {
			log.Printf("Failed to invalidate activity cache: %v", err)
		}

		utils.JSONSuccess(c, 200, updated)
	}
}

// DeleteActivity removes an activity from the catalog. Admin only.
func DeleteActivity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var activity models.Activity
		if err := db.First(&activity, c.Param("id")).Error; err != nil {
			utils.JSONError(c, 404, "Activity not found")
			return
		}

		if err := db.Delete(&activity).Error; err != nil {
			utils.JSONError(c, 500, "Failed to delete activity")
			return
		}

		if err := services.InvalidateCatalog(c.Request.Context(), "activities"); err != nil {
			log.Printf("Failed to invalidate activity cache: %v", err)
		}

		utils.JSONSuccess(c, 200, gin.H{"message": "Activity deleted"})
	}
}

// UploadActivityPhoto stores an uploaded photo and appends its URL to the
// activity's photo list. Admin only.
func UploadActivityPhoto(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var activity models.Activity
		if err := db.First(&activity, c.Param("id")).Error; err != nil {
			utils.JSONError(c, 404, "Activity not found")
			return
		}

		file, err := c.FormFile("photo")
		if err != nil {
			utils.JSONError(c, 400, "photo file is required")
			return
		}

		url, err := services.UploadImage(file, "activities")
		if err != nil {
			utils.JSONError(c, 500, "Failed to upload photo: "+err.Error())
			return
		}

		photos, err := appendPhoto(activity.Photos, url)
		if err != nil {
			utils.JSONError(c, 500, "Failed to update photo list")
			return
		}
		activity.Photos = photos

		if err := db.Save(&activity).Error; err != nil {
			utils.JSONError(c, 500, "Failed to save activity")
			return
		}

		if err := services.InvalidateCatalog(c.Request.Context(), "activities"); err != nil {
			log.Printf("Failed to invalidate activity cache: %v", err)
		}

		utils.JSONSuccess(c, 201, gin.H{"url": url, "photos": activity.Photos})
	}
}
