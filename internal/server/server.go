// Package server wires services and handlers into the HTTP router.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "budgetbook/internal/docs" // Import swagger docs
	"budgetbook/internal/handlers"
	"budgetbook/internal/middleware"
	"budgetbook/internal/services"
)

// Services bundles every service backed by one database. All services share
// the same StoreLocks so their lock order holds across the process.
type Services struct {
	Taxonomy     services.TaxonomyServicer
	Transactions services.TransactionServicer
	Plans        services.BudgetPlanServicer
	Assets       services.AssetServicer
	Reports      services.ReportServicer
	Goals        services.SavingsGoalServicer
	Audit        services.AuditServicer
}

// NewServices builds the service layer over db.
func NewServices(db *gorm.DB) *Services {
	locks := services.NewStoreLocks()
	return &Services{
		Taxonomy:     services.NewTaxonomyService(db, locks),
		Transactions: services.NewTransactionService(db, locks),
		Plans:        services.NewBudgetPlanService(db, locks),
		Assets:       services.NewAssetService(db, locks),
		Reports:      services.NewReportService(db, locks),
		Goals:        services.NewSavingsGoalService(db),
		Audit:        services.NewAuditService(db),
	}
}

// NewRouter returns the gin engine serving the API. An empty apiKey leaves
// /api/v1 open.
func NewRouter(svc *Services, apiKey string) *gin.Engine {
	taxonomyHandler := handlers.NewTaxonomyHandler(svc.Taxonomy, svc.Audit)
	transactionHandler := handlers.NewTransactionHandler(svc.Transactions, svc.Audit)
	planHandler := handlers.NewPlanHandler(svc.Plans, svc.Audit)
	assetHandler := handlers.NewAssetHandler(svc.Assets, svc.Audit)
	reportHandler := handlers.NewReportHandler(svc.Reports)
	goalHandler := handlers.NewGoalHandler(svc.Goals, svc.Audit)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging("/api/health", "/metrics"))
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-API-Key, X-Household-Member")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	v1.Use(middleware.Metrics())
	v1.Use(middleware.APIKeyAuth(apiKey))
	v1.Use(middleware.HouseholdMember())

	v1.GET("/taxonomy", taxonomyHandler.GetTaxonomy)
	categories := v1.Group("/categories")
	categories.POST("", taxonomyHandler.CreateCategory)
	categories.DELETE("/:id", taxonomyHandler.DeleteCategory)
	categories.POST("/:id/subcategories", taxonomyHandler.CreateSubcategory)
	v1.DELETE("/subcategories/:id", taxonomyHandler.DeleteSubcategory)

	transactions := v1.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.POST("/:id/clear", transactionHandler.ClearTransaction)
	transactions.POST("/:id/unclear", transactionHandler.UnclearTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	plans := v1.Group("/plans")
	plans.GET("/:month", planHandler.GetPlan)
	plans.PUT("/:month", planHandler.SetPlan)
	plans.DELETE("/:month/rows/:id", planHandler.DeletePlanRow)
	plans.POST("/:month/copy", planHandler.CopyPlan)

	assets := v1.Group("/assets")
	assets.POST("/accounts", assetHandler.CreateAccount)
	assets.GET("/accounts", assetHandler.GetAccounts)
	assets.PUT("/accounts/:id", assetHandler.UpdateAccount)
	assets.POST("/accounts/:id/close", assetHandler.CloseAccount)
	assets.PUT("/snapshots/:month", assetHandler.RecordSnapshots)
	assets.GET("/snapshots/:month", assetHandler.GetSnapshots)

	reports := v1.Group("/reports")
	reports.GET("/ytd/:year", reportHandler.GetYearToDate)
	reports.GET("/trends", reportHandler.GetTrends)
	reports.GET("/:month/reconciliation", reportHandler.GetReconciliation)
	reports.GET("/:month/net-worth", reportHandler.GetNetWorth)
	reports.GET("/:month/summary", reportHandler.GetSummary)

	goals := v1.Group("/goals")
	goals.POST("", goalHandler.CreateGoal)
	goals.GET("", goalHandler.GetGoals)
	goals.POST("/:id/contribute", goalHandler.Contribute)
	goals.DELETE("/:id", goalHandler.DeleteGoal)

	return router
}
