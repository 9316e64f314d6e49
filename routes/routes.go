package routes

import (
	"gemstone-admin/config"
	"gemstone-admin/controllers"
	"gemstone-admin/libs"
	"gemstone-admin/middleware"
	"gemstone-admin/services"
	"gemstone-admin/upstream"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

func SetupRoutes(router *gin.Engine, cache *redis.Client) {
	cfg := config.AppConfig
	api := upstream.NewClient(cfg.UpstreamURL, cfg.UpstreamTimeout, cfg.RetryBaseDelay, config.Logger)

	mailer, err := libs.NewMailer()
	if err != nil {
		config.Logger.Info("mailer disabled", zap.Error(err))
		mailer = nil
	}

	cdn, err := libs.NewCloudinaryService()
	if err != nil {
		config.Logger.Info("direct CDN upload disabled", zap.Error(err))
		cdn = nil
	}

	authCtrl := controllers.NewAuthController(services.NewAuthService(api), mailer)
	productSvc := services.NewProductService(api, cache)
	productCtrl := controllers.NewProductController(productSvc)
	draftCtrl := controllers.NewDraftController(productSvc)
	orderCtrl := controllers.NewOrderController(services.NewOrderService(api))
	consultationCtrl := controllers.NewConsultationController(services.NewConsultationService(api))
	videoCtrl := controllers.NewVideoController(services.NewVideoService(api))
	mediaCtrl := controllers.NewMediaController(services.NewMediaService(api, cdn, cfg.MaxUploadSize))
	analyticsCtrl := controllers.NewAnalyticsController(services.NewAnalyticsService(api, cache))
	settingsCtrl := controllers.NewSettingsController(services.NewSettingsService(cache))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/login", authCtrl.Login)
	router.POST("/auth/forgot-password", authCtrl.ForgotPassword)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/auth/me", authCtrl.Me)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/products", productCtrl.GetProducts)
		admin.POST("/products", productCtrl.CreateProduct)
		admin.GET("/products/export", productCtrl.ExportProducts)
		admin.GET("/products/:id", productCtrl.GetProduct)
		admin.PUT("/products/:id", productCtrl.UpdateProduct)
		admin.DELETE("/products/:id", productCtrl.DeleteProduct)

		admin.GET("/product-drafts/new", draftCtrl.NewDraft)
		admin.GET("/products/:id/draft", draftCtrl.DraftFromProduct)
		admin.POST("/product-drafts/field", draftCtrl.SetField)
		admin.POST("/product-drafts/dimension", draftCtrl.SetDimension)
		admin.POST("/product-drafts/availability", draftCtrl.SetAvailability)
		admin.POST("/product-drafts/images", draftCtrl.AddImage)
		admin.POST("/product-drafts/images/remove", draftCtrl.RemoveImage)
		admin.POST("/product-drafts/images/alt", draftCtrl.SetImageAlt)
		admin.POST("/product-drafts/benefits", draftCtrl.AddBenefit)
		admin.POST("/product-drafts/benefits/remove", draftCtrl.RemoveBenefit)
		admin.POST("/product-drafts/validate", draftCtrl.Validate)

		admin.GET("/orders", orderCtrl.GetOrders)
		admin.GET("/orders/export", orderCtrl.ExportOrders)
		admin.GET("/orders/statuses", orderCtrl.GetStatuses)
		admin.GET("/orders/:id", orderCtrl.GetOrder)
		admin.PUT("/orders/:id/status", orderCtrl.UpdateOrderStatus)

		admin.GET("/consultations", consultationCtrl.GetConsultations)
		admin.GET("/consultations/export", consultationCtrl.ExportConsultations)
		admin.PUT("/consultations/:id/status", consultationCtrl.UpdateConsultationStatus)
		admin.DELETE("/consultations/:id", consultationCtrl.DeleteConsultation)

		admin.GET("/videos", videoCtrl.GetVideos)
		admin.POST("/videos", videoCtrl.CreateVideo)
		admin.DELETE("/videos/:id", videoCtrl.DeleteVideo)

		admin.POST("/media", mediaCtrl.UploadMedia)

		admin.GET("/dashboard", analyticsCtrl.GetAnalytics)
		admin.GET("/analytics", analyticsCtrl.GetAnalytics)
		admin.GET("/analytics/charts", analyticsCtrl.GetCharts)

		admin.GET("/settings", settingsCtrl.GetSettings)
		admin.PUT("/settings", settingsCtrl.SaveSettings)
		admin.PATCH("/settings", settingsCtrl.PatchSetting)
		admin.POST("/settings/reset", settingsCtrl.ResetSettings)
	}
}
