package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"tap/config"
	articulationController "tap/controllers/articulation"
	"tap/database"
	adminRoutes "tap/routers/adminRoutes"
	articulationRoutes "tap/routers/articulationRoutes"
	authRoutes "tap/routers/authRoutes"
	catalogRoutes "tap/routers/catalogRoutes"
	transferRoutes "tap/routers/transferRoutes"
	"tap/similarity"
	"tap/utils"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	// Wire the similarity oracle when a key is configured; the rest of the
	// portal works without it.
	if config.AppConfig.GeminiAPIKey != "" {
		oracle, err := similarity.NewGeminiOracle(context.Background(), config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
		if err != nil {
			log.Printf("Failed to initialize similarity oracle: %v", err)
		} else {
			articulationController.SetOracle(oracle)
		}
	}

	utils.InitializeReviewScheduler()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	catalogRoutes.SetupCatalogRoutes(app)
	articulationRoutes.SetupArticulationRoutes(app)
	transferRoutes.SetupTransferRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
