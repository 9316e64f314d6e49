package main

import (
	"log"

	"gemstone-admin/config"
	_ "gemstone-admin/docs"
	"gemstone-admin/middleware"
	"gemstone-admin/models"
	"gemstone-admin/routes"

	"github.com/gin-gonic/gin"
)

// @title Gemstone Admin API
// @version 1.0
// @description Admin gateway for the gemstone store dashboard
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {

	config.LoadConfig()
	config.InitLogger()
	defer config.SyncLogger()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	models.InitRedis()
	defer models.CloseRedis()

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router, models.RedisClient)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
