package api

import (
	"net/http"
	"sync"

	"restaurant-backend/config"
	"restaurant-backend/middleware"
	"restaurant-backend/routes"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

var (
	router *gin.Engine
	once   sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		config.LoadConfig()
		decimal.MarshalJSONWithoutQuotes = true

		db := config.ConnectDB()
		cache := config.ConnectRedis()

		router = gin.New()
		router.Use(gin.Recovery())
		router.Use(middleware.CORSMiddleware())
		router.Use(middleware.RequestIDMiddleware())

		routes.SetupRoutes(router, db, cache)
	})
}

func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	router.ServeHTTP(w, r)
}
