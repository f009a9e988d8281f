// Package http expone la API REST sobre Fiber: handlers, middleware de auth
// y el registro de rutas con su política de roles.
package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockroom-api/internal/application/auth"
	"github.com/jhoicas/stockroom-api/internal/application/inventory"
	"github.com/jhoicas/stockroom-api/internal/application/usecase"
	"github.com/jhoicas/stockroom-api/internal/domain/entity"
	"github.com/jhoicas/stockroom-api/internal/infrastructure/export"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StockLedger *inventory.StockLedger
	ProductUC   *usecase.ProductUseCase
	LogUC       *usecase.LogUseCase
	ReportUC    *usecase.ReportUseCase
	UserUC      *usecase.UserUseCase
	AuthUC      *auth.AuthUseCase
	Excel       *export.ExcelExporter
	PDF         *export.PDFExporter
	JWTSecret   string
	BarcodeDir  string
}

// Router registra las rutas de la API con su política de roles:
// admin gestiona el catálogo, el historial, los usuarios y los exports;
// staff opera el flujo de escaneo y las mutaciones de cantidad; los
// listados y reportes son de lectura compartida.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	adminOnly := RequireRole(entity.RoleAdmin)
	anyRole := RequireRole(entity.RoleAdmin, entity.RoleStaff)

	// Auth (login público, sesión autenticada)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/session", AuthMiddleware(deps.JWTSecret), authHandler.Session)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.StockLedger, deps.ProductUC, deps.BarcodeDir)
	products.Post("/", adminOnly, productHandler.Create)
	products.Get("/", anyRole, productHandler.List)
	products.Get("/barcode/:sku", anyRole, productHandler.BarcodeImage)
	products.Get("/scan/:barcode", anyRole, productHandler.ScanGet)
	products.Put("/scan/:barcode", anyRole, productHandler.ScanMutate)
	products.Put("/:sku", adminOnly, productHandler.Update)
	products.Patch("/:sku/quantity", anyRole, productHandler.Mutate)
	products.Delete("/:sku", adminOnly, productHandler.Delete)

	// Inventory logs
	logs := protected.Group("/logs")
	logHandler := NewLogHandler(deps.LogUC)
	logs.Get("/", adminOnly, logHandler.Query)
	logs.Delete("/:id", adminOnly, logHandler.Delete)

	// Reports
	reports := protected.Group("/reports", anyRole)
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/category-distribution", reportHandler.CategoryDistribution)
	reports.Get("/low-quantity", reportHandler.LowQuantity)
	reports.Get("/daily-activity", reportHandler.DailyActivity)
	reports.Get("/top-selling", reportHandler.TopSelling)

	// Exports
	exports := protected.Group("/exports", adminOnly)
	exportHandler := NewExportHandler(deps.ProductUC, deps.LogUC, deps.Excel, deps.PDF)
	exports.Get("/products/excel", exportHandler.ProductsExcel)
	exports.Get("/products/pdf", exportHandler.ProductsPDF)
	exports.Get("/logs/excel", exportHandler.LogsExcel)
	exports.Get("/logs/pdf", exportHandler.LogsPDF)

	// Users
	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
}
