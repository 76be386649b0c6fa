package main

import (
	"log"
	"os"
	"time"

	"github.com/andamanescapes/travel-backend/internal/database"
	"github.com/andamanescapes/travel-backend/internal/handlers"
	"github.com/andamanescapes/travel-backend/internal/middleware"
	"github.com/andamanescapes/travel-backend/internal/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize database
	db, err := database.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Run schema migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Get underlying SQL DB instance
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	// Configure connection pool
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// Initialize Redis
	if err := services.InitRedis(); err != nil {
		log.Fatalf("Failed to initialize Redis: %v", err)
	}

	// Initialize Storage (S3 or local fallback)
	if err := services.InitStorage(); err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	// Initialize WebSocket hub
	hub := services.NewHub()
	go hub.Run()

	// Rate limiter for the auth endpoints
	authLimiter := middleware.NewRateLimiter(rate.Every(12*time.Second), 5)

	// Initialize router
	r := gin.Default()

	// Configure CORS
	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"*"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(config))

	// Serve locally stored uploads
	r.Static("/uploads", "./uploads")

	// Routes
	api := r.Group("/api")
	{
		// Public routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authLimiter.Limit(), handlers.Register(db))
			auth.POST("/login", authLimiter.Limit(), handlers.Login(db))
		}

		api.GET("/hotels", handlers.GetHotels(db))
		api.GET("/hotels/:id", handlers.GetHotel(db))
		api.GET("/activities", handlers.GetActivities(db))
		api.GET("/activities/:id", handlers.GetActivity(db))
		api.GET("/blogs", handlers.GetBlogs(db))
		api.GET("/blogs/:id", handlers.GetBlog(db))
		api.GET("/blog-books", handlers.GetBlogBooks(db))
		api.GET("/blog-books/:id", handlers.GetBlogBook(db))

		// WebSocket connection
		api.GET("/ws", middleware.AuthMiddleware(), handlers.WebSocketHandler(hub))

		// Protected routes
		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/auth/me", handlers.GetCurrentUser(db))
			protected.PUT("/auth/profile", handlers.UpdateProfile(db))

			// Activity bookings
			activityBookings := protected.Group("/activities/bookings")
			{
				activityBookings.POST("", handlers.CreateActivityBooking(db, hub))
				activityBookings.GET("", handlers.GetMyActivityBookings(db))
				activityBookings.PUT("/:id/cancel", handlers.CancelActivityBooking(db, hub))
			}

			// Hotel bookings
			hotelBookings := protected.Group("/bookings/hotel")
			{
				hotelBookings.POST("/", handlers.CreateHotelBooking(db, hub))
				hotelBookings.GET("/", handlers.GetMyHotelBookings(db))
				hotelBookings.PUT("/:id/cancel", handlers.CancelHotelBooking(db, hub))
				hotelBookings.DELETE("/:id", handlers.DeleteHotelBooking(db))
			}

			// Admin routes
			admin := protected.Group("/")
			admin.Use(middleware.AdminMiddleware())
			{
				admin.POST("/auth/admin-register", handlers.AdminRegister(db))
				admin.GET("/auth/users", handlers.ListUsers(db))
				admin.DELETE("/auth/users/:id", handlers.DeleteUser(db))

				admin.POST("/hotels", handlers.CreateHotel(db))
				admin.PUT("/hotels/:id", handlers.UpdateHotel(db))
				admin.DELETE("/hotels/:id", handlers.DeleteHotel(db))
				admin.POST("/hotels/:id/photos", handlers.UploadHotelPhoto(db))
				admin.DELETE("/hotels/:id/photos", handlers.DeleteHotelPhoto(db))

				admin.POST("/activities", handlers.CreateActivity(db))
				admin.PUT("/activities/:id", handlers.UpdateActivity(db))
				admin.DELETE("/activities/:id", handlers.DeleteActivity(db))
				admin.POST("/activities/:id/photos", handlers.UploadActivityPhoto(db))

				admin.GET("/blogs/drafts", handlers.GetBlogDrafts(db))
				admin.POST("/blogs", handlers.CreateBlog(db))
				admin.PUT("/blogs/:id", handlers.UpdateBlog(db))
				admin.DELETE("/blogs/:id", handlers.DeleteBlog(db))

				admin.GET("/blog-books/all", handlers.GetAllBlogBooks(db))
				admin.POST("/blog-books", handlers.CreateBlogBook(db))
				admin.PUT("/blog-books/:id", handlers.UpdateBlogBook(db))
				admin.DELETE("/blog-books/:id", handlers.DeleteBlogBook(db))
			}
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
