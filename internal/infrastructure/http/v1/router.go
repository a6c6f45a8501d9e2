// Package v1 provides HTTP API version 1.
package v1

import (
	"context"

	"github.com/gin-gonic/gin"

	appctx "github.com/anmds2025/roomify/internal/core/context"
	"github.com/anmds2025/roomify/internal/domain/auth"
	"github.com/anmds2025/roomify/internal/domain/billing"
	"github.com/anmds2025/roomify/internal/domain/catalogs/home"
	"github.com/anmds2025/roomify/internal/domain/catalogs/renter"
	"github.com/anmds2025/roomify/internal/domain/catalogs/room"
	"github.com/anmds2025/roomify/internal/domain/documents/contract"
	"github.com/anmds2025/roomify/internal/domain/documents/expense"
	"github.com/anmds2025/roomify/internal/domain/documents/moneyslip"
	"github.com/anmds2025/roomify/internal/domain/reports"
	"github.com/anmds2025/roomify/internal/infrastructure/http/v1/handlers"
	"github.com/anmds2025/roomify/internal/infrastructure/http/v1/middleware"
	"github.com/anmds2025/roomify/internal/infrastructure/metrics"
	"github.com/anmds2025/roomify/internal/infrastructure/storage/postgres"
	"github.com/anmds2025/roomify/internal/infrastructure/storage/postgres/catalog_repo"
	"github.com/anmds2025/roomify/internal/infrastructure/storage/postgres/document_repo"
	"github.com/anmds2025/roomify/internal/infrastructure/storage/postgres/report_repo"
	"github.com/anmds2025/roomify/pkg/logger"
	"github.com/anmds2025/roomify/pkg/numerator"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	// Pool is the database connection pool (health checks, pool stats)
	Pool *postgres.Pool

	// TxManager carries ambient transactions for all repositories
	TxManager *postgres.TxManager

	// Logger for request logging
	Logger *logger.Logger

	// JWTValidator for token validation
	JWTValidator middleware.JWTValidator

	// AuthService for authentication endpoints
	AuthService *auth.Service

	// Numerator for document number generation
	Numerator numerator.Generator

	// Metrics collects HTTP and billing counters
	Metrics *metrics.Metrics

	// Audit records document lifecycle changes; nil disables auditing
	Audit *postgres.AuditService
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	if cfg.Metrics != nil {
		router.Use(middleware.Metrics(cfg.Metrics))
	}
	router.Use(middleware.ErrorHandler())

	// Health endpoints (no auth)
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	if cfg.Metrics != nil {
		router.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	// API v1
	v1 := router.Group("/api/v1")
	{
		registerAuthRoutes(v1, cfg)

		protected := v1.Group("")
		protected.Use(middleware.Auth(cfg.JWTValidator))

		// Shared services: rooms participate in billing, contracts and
		// slips, so one instance is wired everywhere.
		baseHandler := handlers.NewBaseHandler()

		roomRepo := catalog_repo.NewRoomRepo(cfg.TxManager)
		roomService := room.NewService(roomRepo, cfg.TxManager, cfg.Numerator)

		slipRepo := document_repo.NewMoneySlipRepo(cfg.TxManager)
		slipService := moneyslip.NewService(slipRepo, roomService, cfg.Numerator, cfg.TxManager)
		registerSlipHooks(slipService, cfg.Audit)

		registerCatalogRoutes(protected, cfg, baseHandler, roomService)
		registerDocumentRoutes(protected, cfg, baseHandler, roomService, slipService)
		registerBillingRoutes(protected, cfg, baseHandler, roomService, slipService)
		registerReportRoutes(protected, cfg, baseHandler, slipService)
	}

	return router
}

// registerAuthRoutes registers authentication endpoints.
func registerAuthRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.AuthService == nil {
		return
	}

	baseHandler := handlers.NewBaseHandler()
	authHandler := handlers.NewAuthHandler(baseHandler, cfg.AuthService)

	public := rg.Group("/auth")
	{
		public.POST("/login", authHandler.Login)
		public.POST("/refresh", authHandler.Refresh)
	}

	protected := rg.Group("/auth")
	protected.Use(middleware.Auth(cfg.JWTValidator))
	{
		protected.POST("/logout", authHandler.Logout)
		protected.GET("/me", authHandler.Me)

		admin := protected.Group("")
		admin.Use(middleware.RequireAdmin())
		{
			admin.POST("/register", authHandler.Register)
			admin.GET("/users", authHandler.ListUsers)
			admin.POST("/assign-role", authHandler.AssignRole)
			admin.POST("/revoke-role", authHandler.RevokeRole)
			admin.POST("/assign-home", authHandler.AssignHome)
		}
	}
}

// registerCatalogRoutes registers catalog endpoints.
func registerCatalogRoutes(rg *gin.RouterGroup, cfg RouterConfig, baseHandler *handlers.BaseHandler, roomService *room.Service) {
	catalogs := rg.Group("/catalog")

	// --- HOMES ---
	{
		repo := catalog_repo.NewHomeRepo(cfg.TxManager)
		service := home.NewService(repo, cfg.TxManager, cfg.Numerator)
		handler := handlers.NewHomeHandler(baseHandler, service)
		RegisterCatalogRoutes(catalogs.Group("/homes"), handler)
	}

	// --- ROOMS ---
	{
		handler := handlers.NewRoomHandler(baseHandler, roomService)
		group := catalogs.Group("/rooms")
		RegisterCatalogRoutes(group, handler)
		group.GET("/by-home/:homeId", handler.ByHome)
		group.POST("/:id/occupy", middleware.RequireRole(auth.RoleManager), handler.Occupy)
		group.POST("/:id/vacate", middleware.RequireRole(auth.RoleManager), handler.Vacate)
	}

	// --- RENTERS ---
	{
		repo := catalog_repo.NewRenterRepo(cfg.TxManager)
		service := renter.NewService(repo, cfg.TxManager, cfg.Numerator)
		handler := handlers.NewRenterHandler(baseHandler, service)
		group := catalogs.Group("/renters")
		RegisterCatalogRoutes(group, handler)
		group.GET("/by-phone", handler.FindByPhone)
	}
}

// registerDocumentRoutes registers document endpoints.
func registerDocumentRoutes(
	rg *gin.RouterGroup,
	cfg RouterConfig,
	baseHandler *handlers.BaseHandler,
	roomService *room.Service,
	slipService *moneyslip.Service,
) {
	docs := rg.Group("/documents")

	// --- MONEY SLIPS ---
	{
		handler := handlers.NewMoneySlipHandler(baseHandler, slipService, roomService, cfg.Metrics)
		group := docs.Group("/money-slips")
		RegisterDocumentRoutes(group, handler)
		group.POST("/:id/finalize", middleware.RequireRole(auth.RoleManager), handler.Finalize)
		group.POST("/:id/payments", middleware.RequireRole(auth.RoleManager), handler.RecordPayment)
	}

	// --- EXPENSES ---
	{
		repo := document_repo.NewExpenseRepo(cfg.TxManager)
		service := expense.NewService(repo, cfg.Numerator, cfg.TxManager)
		registerExpenseHooks(service, cfg.Audit)

		handler := handlers.NewExpenseHandler(baseHandler, service)
		group := docs.Group("/expenses")
		RegisterDocumentRoutes(group, handler)
		group.POST("/:id/finalize", middleware.RequireRole(auth.RoleManager), handler.Finalize)
	}

	// --- CONTRACTS ---
	{
		repo := document_repo.NewContractRepo(cfg.TxManager)
		service := contract.NewService(repo, roomService, cfg.Numerator, cfg.TxManager)
		registerContractHooks(service, cfg.Audit)

		handler := handlers.NewContractHandler(baseHandler, service)
		group := docs.Group("/contracts")
		RegisterDocumentRoutes(group, handler)
		group.POST("/:id/end", middleware.RequireRole(auth.RoleManager), handler.End)
	}
}

// registerBillingRoutes registers bulk slip run endpoints.
func registerBillingRoutes(
	rg *gin.RouterGroup,
	cfg RouterConfig,
	baseHandler *handlers.BaseHandler,
	roomService *room.Service,
	slipService *moneyslip.Service,
) {
	planner := billing.NewPlanner(slipService)
	handler := handlers.NewBillingHandler(baseHandler, planner, roomService, cfg.Metrics)

	group := rg.Group("/billing")
	group.Use(middleware.RequireRole(auth.RoleManager))
	{
		group.GET("/bulk/seed", handler.Seed)
		group.POST("/bulk", handler.BulkSubmit)
		group.POST("/preview", handler.Preview)
	}
}

// registerReportRoutes registers report endpoints.
func registerReportRoutes(rg *gin.RouterGroup, cfg RouterConfig, baseHandler *handlers.BaseHandler, slipService *moneyslip.Service) {
	repo := report_repo.NewReportRepo(cfg.TxManager)
	service := reports.NewService(repo)
	handler := handlers.NewReportsHandler(baseHandler, service, slipService)

	group := rg.Group("/reports")
	{
		group.GET("/period-summary", handler.GetPeriodSummary)
		group.GET("/period-summary/xlsx", handler.ExportSummaryXLSX)
		group.GET("/monthly-series", handler.GetMonthlySeries)
		group.GET("/debts", handler.GetDebtReport)
		group.GET("/slips/:id/pdf", handler.ExportSlipPDF)
	}
}

// registerSlipHooks wires user stamping and audit logging into the
// money slip lifecycle.
func registerSlipHooks(service *moneyslip.Service, audit *postgres.AuditService) {
	service.Hooks().OnBeforeCreate(func(ctx context.Context, doc *moneyslip.MoneySlip) error {
		stampCreated(ctx, &doc.CreatedBy, &doc.UpdatedBy)
		return nil
	})
	service.Hooks().OnBeforeUpdate(func(ctx context.Context, doc *moneyslip.MoneySlip) error {
		stampUpdated(ctx, &doc.UpdatedBy)
		return nil
	})

	if audit == nil {
		return
	}
	service.Hooks().OnAfterCreate(func(ctx context.Context, doc *moneyslip.MoneySlip) error {
		return audit.LogChange(ctx, "money_slip", doc.ID, postgres.AuditActionCreate, map[string]any{
			"number": doc.Number,
			"room":   doc.RoomCode,
			"period": doc.Period.String(),
			"total":  doc.TotalAmount,
		})
	})
	service.Hooks().OnAfterUpdate(func(ctx context.Context, doc *moneyslip.MoneySlip) error {
		return audit.LogChange(ctx, "money_slip", doc.ID, postgres.AuditActionUpdate, map[string]any{
			"number": doc.Number,
			"total":  doc.TotalAmount,
			"paid":   doc.PaidAmount,
		})
	})
}

func registerExpenseHooks(service *expense.Service, audit *postgres.AuditService) {
	service.Hooks().OnBeforeCreate(func(ctx context.Context, doc *expense.Expense) error {
		stampCreated(ctx, &doc.CreatedBy, &doc.UpdatedBy)
		return nil
	})
	service.Hooks().OnBeforeUpdate(func(ctx context.Context, doc *expense.Expense) error {
		stampUpdated(ctx, &doc.UpdatedBy)
		return nil
	})

	if audit == nil {
		return
	}
	service.Hooks().OnAfterCreate(func(ctx context.Context, doc *expense.Expense) error {
		return audit.LogChange(ctx, "expense", doc.ID, postgres.AuditActionCreate, map[string]any{
			"number": doc.Number,
			"kind":   doc.Kind,
			"amount": doc.Amount,
		})
	})
}

func registerContractHooks(service *contract.Service, audit *postgres.AuditService) {
	service.Hooks().OnBeforeCreate(func(ctx context.Context, doc *contract.Contract) error {
		stampCreated(ctx, &doc.CreatedBy, &doc.UpdatedBy)
		return nil
	})
	service.Hooks().OnBeforeUpdate(func(ctx context.Context, doc *contract.Contract) error {
		stampUpdated(ctx, &doc.UpdatedBy)
		return nil
	})

	if audit == nil {
		return
	}
	service.Hooks().OnAfterCreate(func(ctx context.Context, doc *contract.Contract) error {
		return audit.LogChange(ctx, "contract", doc.ID, postgres.AuditActionCreate, map[string]any{
			"number": doc.Number,
			"room":   doc.RoomID,
			"renter": doc.RenterName,
		})
	})
}

func stampCreated(ctx context.Context, createdBy, updatedBy *string) {
	if userID := appctx.GetUserID(ctx); userID != "" {
		*createdBy = userID
		*updatedBy = userID
	}
}

func stampUpdated(ctx context.Context, updatedBy *string) {
	if userID := appctx.GetUserID(ctx); userID != "" {
		*updatedBy = userID
	}
}
