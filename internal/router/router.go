package router

import (
	"time"

	"retailpos/internal/config"
	"retailpos/internal/handler"
	"retailpos/internal/middleware"
	"retailpos/internal/model"
	"retailpos/internal/repository"
	"retailpos/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	productSvc := service.NewProductService(productRepo)
	saleSvc := service.NewSaleService(saleRepo, productRepo)
	purchaseSvc := service.NewPurchaseService(purchaseRepo, productRepo, supplierRepo)
	supplierSvc := service.NewSupplierService(supplierRepo, purchaseRepo)
	settingsSvc := service.NewSettingsService(settingRepo)
	reportSvc := service.NewReportService(saleRepo, settingsSvc, cfg.ReceiptDir)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usersH := handler.NewUsersHandler(authSvc)
	productsH := handler.NewProductsHandler(productSvc)
	salesH := handler.NewSalesHandler(saleSvc)
	purchasesH := handler.NewPurchasesHandler(purchaseSvc)
	suppliersH := handler.NewSuppliersHandler(supplierSvc)
	settingsH := handler.NewSettingsHandler(settingsSvc)
	reportsH := handler.NewReportsHandler(reportSvc, productSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db))

	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	anyRole := middleware.RequireRole(model.RoleAdministrator, model.RoleCashier)
	adminOnly := middleware.RequireRole(model.RoleAdministrator)

	v1 := r.Group("/v1", jwtMW)
	{
		v1.PUT("/auth/password", anyRole, authH.ChangePassword)

		// Catalog reads are open to every role (checkout screen), writes are
		// administrator only.
		v1.GET("/products", anyRole, productsH.List)
		v1.GET("/products/search", anyRole, productsH.Search)
		v1.GET("/products/low-stock", anyRole, productsH.ListLowStock)
		v1.GET("/products/barcode/:barcode", anyRole, productsH.GetByBarcode)
		v1.GET("/products/:id", anyRole, productsH.GetByID)
		products := v1.Group("/products", adminOnly)
		{
			products.POST("", productsH.Create)
			products.PUT("/:id", productsH.Update)
			products.DELETE("/:id", productsH.Delete)
			products.PATCH("/:id/stock", productsH.AdjustStock)
		}

		// Sales: any role can sell and read
		v1.POST("/sales", anyRole, salesH.Checkout)
		v1.GET("/sales", anyRole, salesH.List)
		v1.GET("/sales/invoice/:invoice", anyRole, salesH.GetByInvoiceNo)
		v1.GET("/sales/:id", anyRole, salesH.GetByID)
		v1.GET("/sales/:id/receipt", anyRole, reportsH.ReceiptText)
		v1.GET("/sales/:id/receipt.pdf", anyRole, reportsH.ReceiptPDF)

		// Purchases: administrator only
		purchases := v1.Group("/purchases", adminOnly)
		{
			purchases.POST("", purchasesH.Record)
			purchases.GET("", purchasesH.List)
			purchases.GET("/ledger", suppliersH.Ledger)
			purchases.GET("/:id", purchasesH.GetByID)
		}

		suppliers := v1.Group("/suppliers", adminOnly)
		{
			suppliers.POST("", suppliersH.Create)
			suppliers.GET("", suppliersH.List)
			suppliers.GET("/:id", suppliersH.GetByID)
			suppliers.PUT("/:id", suppliersH.Update)
			suppliers.DELETE("/:id", suppliersH.Delete)
		}

		// Settings: readable by every role (receipt rendering), writable by
		// administrators.
		v1.GET("/settings", anyRole, settingsH.Get)
		v1.PUT("/settings", adminOnly, settingsH.Update)

		reports := v1.Group("/reports", adminOnly)
		{
			reports.GET("/sales-summary", reportsH.SalesSummary)
			reports.GET("/top-products", reportsH.TopProducts)
			reports.GET("/low-stock", reportsH.LowStock)
		}

		users := v1.Group("/users", adminOnly)
		{
			users.POST("", usersH.Create)
			users.GET("", usersH.List)
			users.PUT("/:id", usersH.Update)
		}
	}

	return r
}
