package router

import (
	"homeledger/api"
	"homeledger/config"
	_ "homeledger/docs"
	"homeledger/logger"
	"homeledger/middleware"
	"homeledger/repository"
	"homeledger/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, db *gorm.DB, log *logger.Logger) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	// CORS 中间件
	r.Use(CORSMiddleware())

	ledgerStore := repository.NewLedgerStore(db)
	memberships := repository.NewMembershipStore(db)
	categories := repository.NewCategoryDirectory(db)
	users := repository.NewUserStore(db)

	accounts := service.NewAccountService(users, func(userID uint, username string) (string, error) {
		return middleware.GenerateToken(userID, username, cfg.JWT.ExpireTime)
	}, log)

	reconciler := service.NewReconciler(ledgerStore, log)
	ledger := service.NewLedgerService(ledgerStore, categories, service.NewScheduler(cfg.Ledger.MaxInstallments), reconciler, log)
	stats := service.NewStatisticsService(ledgerStore, cfg.Ledger.TopExpensesLimit)

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		// 认证相关路由（无需登录）
		authHandler := api.NewAuthHandler(accounts)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", middleware.LoginRateLimit(cfg.Auth), authHandler.Login)
		}

		// 需要 JWT 认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth())
		{
			authorized.GET("/auth/profile", authHandler.GetProfile)
			authorized.PUT("/auth/password", authHandler.ChangePassword)

			// 家庭列表与创建不需要 X-Home-ID
			homeHandler := api.NewHomeHandler(memberships, users)
			authorized.GET("/homes", homeHandler.ListHomes)
			authorized.POST("/homes", homeHandler.CreateHome)

			// 邀请按当前用户查找，不限定家庭
			authorized.GET("/invites", homeHandler.ListInvites)
			authorized.POST("/invites/:id/accept", homeHandler.AcceptInvite)
			authorized.DELETE("/invites/:id", homeHandler.DeclineInvite)

			// 以下路由限定在 X-Home-ID 指定的家庭内
			scoped := authorized.Group("")
			scoped.Use(middleware.HomeScope(memberships))
			{
				scoped.GET("/members", homeHandler.ListMembers)
				scoped.POST("/members", homeHandler.AddMember)
				scoped.POST("/members/invite", homeHandler.Invite)
				scoped.DELETE("/members/:id", homeHandler.RemoveMember)

				categoryHandler := api.NewCategoryHandler(categories)
				scoped.GET("/categories", categoryHandler.List)
				scoped.POST("/categories", categoryHandler.Create)

				transactionHandler := api.NewTransactionHandler(ledger, stats)
				transactions := scoped.Group("/transactions")
				{
					transactions.POST("", transactionHandler.Create)
					transactions.GET("", transactionHandler.List)
					transactions.GET("/total/:type", transactionHandler.TotalByType)
					transactions.GET("/:id", transactionHandler.Get)
					transactions.PUT("/:id", transactionHandler.Update)
					transactions.DELETE("/:id", transactionHandler.Delete)
				}

				installmentHandler := api.NewInstallmentHandler(reconciler)
				scoped.PUT("/installments/:id", installmentHandler.Update)

				statisticsHandler := api.NewStatisticsHandler(stats)
				scoped.GET("/statistics", statisticsHandler.Statistics)
				scoped.GET("/statistics/monthly", statisticsHandler.Monthly)

				// 导出相关
				exportHandler := api.NewExportHandler(stats)
				export := scoped.Group("/export")
				{
					export.GET("/csv", exportHandler.ExportCSV)
					export.GET("/excel", exportHandler.ExportExcel)
				}
			}
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, X-Home-ID, X-Request-ID, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Disposition, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
