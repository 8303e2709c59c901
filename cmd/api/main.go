package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/khohang-api/internal/application/auth"
	"github.com/jhoicas/khohang-api/internal/application/inventory"
	"github.com/jhoicas/khohang-api/internal/application/ports"
	"github.com/jhoicas/khohang-api/internal/application/report"
	"github.com/jhoicas/khohang-api/internal/application/usecase"
	"github.com/jhoicas/khohang-api/internal/infrastructure/excel"
	"github.com/jhoicas/khohang-api/internal/infrastructure/lock"
	"github.com/jhoicas/khohang-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/khohang-api/internal/infrastructure/pdf"
	"github.com/jhoicas/khohang-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/khohang-api/internal/interfaces/http"
	"github.com/jhoicas/khohang-api/pkg/config"
	"github.com/jhoicas/khohang-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(cfg.DB.ConnectionString(), "up"); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Msg("migraciones aplicadas")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Bloqueo por documento: Redis si hay REDIS_ADDR, si no en memoria (una sola instancia).
	var locker ports.Locker
	if cfg.Redis.Enabled() {
		rdb, err := lock.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("conexión a Redis")
		}
		defer func() { _ = rdb.Close() }()
		locker = lock.NewRedisLocker(rdb, cfg.Lock.TTL)
		log.Info().Str("addr", cfg.Redis.Addr).Dur("ttl", cfg.Lock.TTL).Msg("bloqueo de documentos en Redis")
	} else {
		locker = lock.NewLocalLocker()
		log.Warn().Msg("REDIS_ADDR vacío: bloqueo de documentos en memoria del proceso")
	}

	recorder := metrics.NewRecorder()
	sheets := excel.NewSheets()
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	salaryRepo := postgres.NewSalaryRepository(pool)
	documentRepo := postgres.NewDocumentRepository(pool)
	detailRepo := postgres.NewDetailRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)
	documentUC := inventory.NewDocumentUseCase(documentRepo, detailRepo, customerRepo, warehouseRepo, pdfGenerator)
	detailUC := inventory.NewDetailUseCase(documentRepo, detailRepo, productRepo, txRunner, locker, sheets, recorder, log)
	stockUC := inventory.NewStockUseCase(productRepo, detailRepo, sheets)
	salaryUC := report.NewSalaryUseCase(salaryRepo, employeeRepo, sheets)
	dashboardUC := report.NewDashboardUseCase(detailRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    8 * 1024 * 1024, // importaciones XLSX
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	deps := httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		CustomerUC:  customerUC,
		WarehouseUC: warehouseUC,
		EmployeeUC:  employeeUC,
		DocumentUC:  documentUC,
		DetailUC:    detailUC,
		StockUC:     stockUC,
		SalaryUC:    salaryUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
		AppName:     cfg.App.Name,
		Logger:      log,
		Requests:    recorder,
	}
	if cfg.Metrics.Enabled {
		deps.MetricsHandler = recorder.Handler()
	}
	if _, err := os.Stat(cfg.Docs.SwaggerFile); err == nil {
		deps.SwaggerFile = cfg.Docs.SwaggerFile
	} else {
		log.Warn().Str("file", cfg.Docs.SwaggerFile).Msg("swagger.json no encontrado, /docs desactivado")
	}
	httpRouter.Router(app, deps)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
