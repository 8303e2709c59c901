package http

import (
	nethttp "net/http"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/jhoicas/khohang-api/internal/application/auth"
	"github.com/jhoicas/khohang-api/internal/application/inventory"
	"github.com/jhoicas/khohang-api/internal/application/report"
	"github.com/jhoicas/khohang-api/internal/application/usecase"
	"github.com/jhoicas/khohang-api/internal/domain/entity"
	"github.com/jhoicas/khohang-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	CustomerUC  *usecase.CustomerUseCase
	WarehouseUC *usecase.WarehouseUseCase
	EmployeeUC  *usecase.EmployeeUseCase
	DocumentUC  *inventory.DocumentUseCase
	DetailUC    *inventory.DetailUseCase
	StockUC     *inventory.StockUseCase
	SalaryUC    *report.SalaryUseCase
	DashboardUC *report.DashboardUseCase
	JWTSecret   string
	AppName     string

	// Opcionales: nil / "" desactivan la ruta correspondiente.
	Logger         *logger.Logger
	Requests       RequestObserver
	MetricsHandler nethttp.Handler
	SwaggerFile    string
}

// Router registra middlewares y rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Logger != nil {
		app.Use(RequestLogger(deps.Logger))
	}
	if deps.Requests != nil {
		app.Use(Metrics(deps.Requests))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})
	if deps.MetricsHandler != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.MetricsHandler))
	}
	// Swagger UI: http://localhost:<port>/docs
	if deps.SwaggerFile != "" {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: deps.SwaggerFile,
			Path:     "docs",
			Title:    "Kho Hàng API",
		}))
	}

	const (
		admin       = entity.RoleAdmin
		storekeeper = entity.RoleStorekeeper
		accountant  = entity.RoleAccountant
	)
	anyRole := RequireRole(admin, storekeeper, accountant)
	writeStock := RequireRole(admin, storekeeper)
	writePayroll := RequireRole(admin, accountant)

	api := app.Group("/api")

	// Auth: login público, registro solo admin
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Post("/auth/register", RequireRole(admin), authHandler.Register)

	// Products + existencias
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.StockUC)
	products.Get("/", anyRole, productHandler.List)
	products.Get("/:id", anyRole, productHandler.GetByID)
	products.Get("/:id/stock", anyRole, productHandler.Stock)
	products.Get("/:id/stock/check", anyRole, productHandler.CheckStock)
	products.Get("/:id/stock/export.xlsx", anyRole, productHandler.ExportStock)
	products.Post("/", writeStock, productHandler.Create)
	products.Put("/:id", writeStock, productHandler.Update)
	products.Delete("/:id", writeStock, productHandler.Delete)

	// Customers
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", anyRole, customerHandler.List)
	customers.Get("/:id", anyRole, customerHandler.GetByID)
	customers.Post("/", writeStock, customerHandler.Create)
	customers.Put("/:id", writeStock, customerHandler.Update)
	customers.Delete("/:id", writeStock, customerHandler.Delete)

	// Warehouses
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Get("/", anyRole, warehouseHandler.List)
	warehouses.Get("/:id", anyRole, warehouseHandler.GetByID)
	warehouses.Post("/", writeStock, warehouseHandler.Create)
	warehouses.Put("/:id", writeStock, warehouseHandler.Update)
	warehouses.Delete("/:id", writeStock, warehouseHandler.Delete)

	// Documents: /api/documents/{import|export|transfer|purchase_request}
	documents := protected.Group("/documents/:kind")
	documentHandler := NewDocumentHandler(deps.DocumentUC)
	detailHandler := NewDetailHandler(deps.DetailUC)
	documents.Get("/", anyRole, documentHandler.List)
	documents.Get("/:id", anyRole, documentHandler.Get)
	documents.Get("/:id/pdf", anyRole, documentHandler.PDF)
	documents.Post("/", writeStock, documentHandler.Create)
	documents.Put("/:id", writeStock, documentHandler.Update)
	documents.Delete("/:id", writeStock, documentHandler.Delete)
	documents.Post("/:id/details", writeStock, detailHandler.Add)
	documents.Post("/:id/details/import", writeStock, detailHandler.Import)
	documents.Put("/:id/details/:detailId", writeStock, detailHandler.Update)
	documents.Delete("/:id/details/:detailId", writeStock, detailHandler.Delete)

	// Employees + nómina
	employees := protected.Group("/employees", writePayroll)
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Post("/", employeeHandler.Create)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)

	salaries := protected.Group("/salaries", writePayroll)
	salaryHandler := NewSalaryHandler(deps.SalaryUC)
	salaries.Get("/", salaryHandler.List)
	salaries.Get("/summary", salaryHandler.Summary)
	salaries.Get("/summary/export.xlsx", salaryHandler.Export)
	salaries.Post("/", salaryHandler.Create)
	salaries.Patch("/:id/pay", salaryHandler.MarkPaid)
	salaries.Delete("/:id", salaryHandler.Delete)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", anyRole, dashboardHandler.GetYear)
}
