package handlers

import (
	"encoding/json"
	"log"

	"github.com/andamanescapes/travel-backend/internal/catalog"
	"github.com/andamanescapes/travel-backend/internal/models"
	"github.com/andamanescapes/travel-backend/internal/services"
	"github.com/andamanescapes/travel-backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type HotelInput struct {
	Name        string   `json:"name" binding:"required"`
	Location    string   `json:"location" binding:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	Rating      float64  `json:"rating" binding:"omitempty,gte=0,lte=5"`
	Amenities   []string `json:"amenities"`
	RoomTypes   []string `json:"roomTypes"`
}

// GetHotels lists hotels with the catalog filter and pagination applied.
// Responses are cached in Redis keyed by the raw query.
func GetHotels(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		cacheKey := services.CatalogCacheKey("hotels", c.Request.URL.RawQuery)

		if cached, err := services.GetCachedCatalog(ctx, cacheKey); err == nil {
			c.Data(200, "application/json", []byte(cached))
			return
		}

		var hotels []models.Hotel
		if err := db.Order("id").Find(&hotels).Error; err != nil {
			utils.JSONError(c, 500, "Failed to fetch hotels")
			return
		}

		query := c.Request.URL.Query()
		filtered := catalog.FilterHotels(hotels, catalog.FilterFromQuery(query))
		page, size := catalog.PageFromQuery(query)
		result := catalog.Paginate(filtered, page, size)

		body, err := json.Marshal(gin.H{"success": true, "data": result})
		if err != nil {
			utils.JSONError(c, 500, "Failed to encode hotels")
			return
		}

		if err := services.SetCachedCatalog(ctx, cacheKey, body); err != nil {
			log.Printf("Failed to cache hotel list: %v", err)
		}

		c.Data(200, "application/json", body)
	}
}

// GetHotel returns a single hotel by id.
func GetHotel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var hotel models.Hotel
		if err := db.First(&hotel, c.Param("id")).Error; err != nil {
			utils.JSONError(c, 404, "Hotel not found")
			return
		}

		utils.JSONSuccess(c, 200, hotel)
	}
}

func hotelFromInput(input HotelInput) (models.Hotel, error) {
	hotel := models.Hotel{
		Name:        input.Name,
		Location:    input.Location,
		Description: input.Description,
		Price:       input.Price,
		Rating:      input.Rating,
	}

	if input.Amenities != nil {
		data, err := json.Marshal(input.Amenities)
		if err != nil {
			return hotel, err
		}
		hotel.Amenities = datatypes.JSON(data)
	}
	if input.RoomTypes != nil {
		data, err := json.Marshal(input.RoomTypes)
		if err != nil {
			return hotel, err
		}
		hotel.RoomTypes = datatypes.JSON(data)
	}

	return hotel, nil
}

// CreateHotel adds a hotel to the catalog. Admin only.
func CreateHotel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input HotelInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, 400, err.Error())
			return
		}

		hotel, err := hotelFromInput(input)
		if err != nil {
			utils.JSONError(c, 400, "Invalid hotel payload")
			return
		}

		if err := db.Create(&hotel).Error; err != nil {
			utils.JSONError(c, 500, "Failed to create hotel")
			return
		}

		if err := services.InvalidateCatalog(c.Request.Context(), "hotels"); err != nil {
			log.Printf("Failed to invalidate hotel cache: %v", err)
		}

		utils.JSONSuccess(c, 201, hotel)
	}
}

// UpdateHotel edits an existing hotel. Admin only.
func UpdateHotel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var hotel models.Hotel
		if err := db.First(&hotel, c.Param("id")).Error; err != nil {
			utils.JSONError(c, 404, "Hotel not found")
			return
		}

		var input HotelInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, 400, err.Error())
			return
		}

		updated, err := hotelFromInput(input)
		if err != nil {
			utils.JSONError(c, 400, "Invalid hotel payload")
			return
		}
		updated.ID = hotel.ID
		updated.CreatedAt = hotel.CreatedAt
		updated.Photos = hotel.Photos

		if err := db.Save(&updated).Error; err != nil {
			utils.JSONError(c, 500, "Failed to update hotel")
			return
		}

		if err := services.InvalidateCatalog(c.Request.Context(), "hotels"); err != nil {
			log.Printf("Failed to invalidate hotel cache: %v", err)
		}

		utils.JSONSuccess(c, 200, updated)
	}
}

// DeleteHotel removes a hotel from the catalog. Admin only.
func DeleteHotel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var hotel models.Hotel
		if err := db.First(&hotel, c.Param("id")).Error; err != nil {
			utils.JSONError(c, 404, "Hotel not found")
			return
		}

		if err := db.Delete(&hotel).Error; err != nil {
			utils.JSONError(c, 500, "Failed to delete hotel")
			return
		}

		if err := services.InvalidateCatalog(c.Request.Context(), "hotels"); err != nil {
			log.Printf("Failed to invalidate hotel cache: %v", err)
		}

		utils.JSONSuccess(c, 200, gin.H{"message": "Hotel deleted"})
	}
}

// UploadHotelPhoto stores an uploaded photo and appends its URL to the
// hotel's photo list. Admin only.
func UploadHotelPhoto(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var hotel models.Hotel
		if err := db.First(&hotel, c.Param("id")).Error; err != nil {
			utils.JSONError(c, 404, "Hotel not found")
			return
		}

		file, err := c.FormFile("photo")
		if err != nil {
			utils.JSONError(c, 400, "photo file is required")
			return
		}

		url, err := services.UploadImage(file, "hotels")
		if err != nil {
			utils.JSONError(c, 500, "Failed to upload photo: "+err.Error())
			return
		}

		photos, err := appendPhoto(hotel.Photos, url)
		if err != nil {
			utils.JSONError(c, 500, "Failed to update photo list")
			return
		}
		hotel.Photos = photos

		if err := db.Save(&hotel).Error; err != nil {
			utils.JSONError(c, 500, "Failed to save hotel")
			return
		}

		if err := services.InvalidateCatalog(c.Request.Context(), "hotels"); err != nil {
			log.Printf("Failed to invalidate hotel cache: %v", err)
		}

		utils.JSONSuccess(c, 201, gin.H{"url": url, "photos": hotel.Photos})
	}
}

// DeleteHotelPhoto removes a photo URL from the hotel and deletes the
// stored object. Admin only.
func DeleteHotelPhoto(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var hotel models.Hotel
		if err := db.First(&hotel, c.Param("id")).Error; err != nil {
			utils.JSONError(c, 404, "Hotel not found")
			return
		}

		var input struct {
			URL string `json:"url" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, 400, err.Error())
			return
		}

		photos, removed, err := removePhoto(hotel.Photos, input.URL)
		if err != nil {
			utils.JSONError(c, 500, "Failed to update photo list")
			return
		}
		if !removed {
			utils.JSONError(c, 404, "Photo not found")
			return
		}
		hotel.Photos = photos

		if err := db.Save(&hotel).Error; err != nil {
			utils.JSONError(c, 500, "Failed to save hotel")
			return
		}

		if err := services.DeleteImage(input.URL); err != nil {
			log.Printf("Failed to delete stored photo %s: %v", input.URL, err)
		}

		if err := services.InvalidateCatalog(c.Request.Context(), "hotels"); err != nil {
			log.Printf("Failed to invalidate hotel cache: %v", err)
		}

		utils.JSONSuccess(c, 200, gin.H{"photos": hotel.Photos})
	}
}

// appendPhoto adds a URL to a JSON-encoded photo list.
func appendPhoto(photos datatypes.JSON, url string) (datatypes.JSON, error) {
	var list []string
	if len(photos) > 0 {
		if err := json.Unmarshal(photos, &list); err != nil {
			return photos, err
		}
	}
	list = append(list, url)

	data, err := json.Marshal(list)
	if err != nil {
		return photos, err
	}
	return datatypes.JSON(data), nil
}

// removePhoto drops a URL from a JSON-encoded photo list.
func removePhoto(photos datatypes.JSON, url string) (datatypes.JSON, bool, error) {
	var list []string
	if len(photos) > 0 {
		if err := json.Unmarshal(photos, &list); err != nil {
			return photos, false, err
		}
	}

	kept := make([]string, 0, len(list))
	removed := false
	for _, p := range list {
		if p == url {
			removed = true
			continue
		}
		kept = append(kept, p)
	}

	data, err := json.Marshal(kept)
	if err != nil {
		return photos, false, err
	}
	return datatypes.JSON(data), removed, nil
}
