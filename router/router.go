package router

import (
	"context"
	"net/http"
	"time"

	"expensewise/api"
	"expensewise/config"
	_ "expensewise/docs"
	"expensewise/logger"
	"expensewise/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, deps api.Deps) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	if deps.Logger == nil {
		deps.Logger = logger.Default()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.GinMiddleware(deps.Logger))
	r.Use(CORSMiddleware())

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	health := HealthHandler(deps)
	r.GET("/health", health)

	basePath := cfg.Server.BasePath
	if basePath == "" {
		basePath = "/api"
	}
	base := r.Group(basePath)
	base.Use(middleware.WriteRateLimit(cfg.Server.RateLimit.Requests, cfg.Server.RateLimit.Window))
	{
		base.GET("/health", health)
		base.GET("/categories", api.NewCategoryHandler().List)

		transactionHandler := api.NewTransactionHandler(deps)
		transactions := base.Group("/transactions")
		{
			transactions.GET("", transactionHandler.List)
			transactions.POST("", transactionHandler.Create)
			transactions.GET("/:id", transactionHandler.Get)
			transactions.PUT("/:id", transactionHandler.Update)
			transactions.DELETE("/:id", transactionHandler.Delete)
		}

		budgetHandler := api.NewBudgetHandler(deps)
		budgets := base.Group("/budgets")
		{
			budgets.GET("", budgetHandler.List)
			budgets.POST("", budgetHandler.Set)
			budgets.GET("/comparison", budgetHandler.Comparison)
			budgets.PUT("/:id", budgetHandler.Update)
			budgets.DELETE("/:id", budgetHandler.Delete)
		}

		base.GET("/dashboard", api.NewDashboardHandler(deps).Get)

		exportHandler := api.NewExportHandler(deps)
		export := base.Group("/export")
		{
			export.GET("/csv", exportHandler.ExportCSV)
			export.GET("/xlsx", exportHandler.ExportXLSX)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		api.NotFound(c, "Route not found")
	})

	return r
}

// HealthHandler 健康检查，存储不可用时返回 503
func HealthHandler(deps api.Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps.Store != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := deps.Store.Ping(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status": "unavailable",
					"error":  config.SafeErrorMessage(err, "database unavailable"),
				})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
