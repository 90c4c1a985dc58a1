package main

import (
	"log"

	"restaurant-backend/config"
	_ "restaurant-backend/docs"
	"restaurant-backend/middleware"
	"restaurant-backend/routes"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// @title Restaurant Ordering API
// @version 1.0
// @description Backend for restaurant ordering: users, menu, orders, payments and sales.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {

	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Money fields serialize as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true

	db := config.ConnectDB()
	defer db.Close()

	cache := config.ConnectRedis()

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())
	routes.SetupRoutes(router, db, cache)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
