package routes

import (
	"os"

	"weddingplanner-backend/config"
	"weddingplanner-backend/controllers"
	"weddingplanner-backend/models"
	"weddingplanner-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	// Uploaded photos are served straight off the blob directory.
	uploadRoot := os.Getenv("UPLOAD_DIR")
	if uploadRoot == "" {
		uploadRoot = "uploads"
	}
	r.Static("/uploads", uploadRoot)

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	{
		// Vendor catalog
		services := api.Group("/services")
		{
			services.POST("", controllers.CreateService)
			services.GET("", controllers.GetServices)
			services.GET("/:id/details", controllers.GetServiceDetails)
		}

		// Appointments
		appointments := api.Group("/appointments")
		{
			appointments.GET("/vendors", controllers.GetVendors)
			appointments.POST("", controllers.BookAppointment)
			appointments.GET("/my", controllers.GetMyAppointments)
		}

		// Invitations
		invitations := api.Group("/invitations")
		{
			invitations.POST("", controllers.SendInvitations)
			invitations.GET("/my", controllers.GetMyInvitations)
			invitations.GET("/:id", controllers.GetInvitation)
		}

		// Guest intake, keyed by invitation id — no login for guests
		api.GET("/weddings/:invitationId", controllers.GetWeddingByInvitation)
		guests := api.Group("/guests")
		{
			guests.POST("/events/:invitationId/photos", controllers.UploadWeddingPhotos)
			guests.POST("/events/:invitationId/parking", controllers.SaveParking)
			guests.GET("/parking/availability", controllers.GetParkingAvailability)
		}

		// Shared wedding album
		api.POST("/guests/events/photos", controllers.UploadGuestPhotos)
		api.GET("/wedding/photos", controllers.GetWeddingAlbum)

		// Feedback: anyone can leave it, only admins read or remove it
		api.POST("/feedback", controllers.CreateFeedback)

		admin := api.Group("")
		admin.Use(utils.AuthMiddleware(), utils.RequireRole(models.RoleAdmin))
		{
			admin.GET("/accounts", controllers.ListAccounts)
			admin.GET("/feedback", controllers.GetFeedback)
			admin.DELETE("/feedback/:id", controllers.DeleteFeedback)
		}
	}

	return r
}
