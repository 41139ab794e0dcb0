package main

import (
	"fmt"
	"log"
	"os"

	"weddingplanner-backend/config"
	"weddingplanner-backend/models"
	"weddingplanner-backend/routes"
	"weddingplanner-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.Account{},
		&models.WeddingService{},
		&models.Venue{},
		&models.DJBand{},
		&models.Chef{},
		&models.CakeBaker{},
		&models.Florist{},
		&models.Waiter{},
		&models.ServicePhoto{},
		&models.ServiceAvailability{},
		&models.Appointment{},
		&models.Invitation{},
		&models.Wedding{},
		&models.WeddingPhoto{},
		&models.GuestParking{},
		&models.GuestPhoto{},
		&models.Feedback{},
		&models.NotificationLog{},
	)
}

func main() {

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	services.NewNotifierService(config.DB).StartScheduler()

	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
