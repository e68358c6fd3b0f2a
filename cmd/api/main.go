package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/hibiken/asynq"

	"github.com/tu-usuario/servitec-crm/internal/application/inventory"
	"github.com/tu-usuario/servitec-crm/internal/application/usecase"
	"github.com/tu-usuario/servitec-crm/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/servitec-crm/internal/interfaces/http"
	"github.com/tu-usuario/servitec-crm/internal/jobs"
	"github.com/tu-usuario/servitec-crm/pkg/config"
	"github.com/tu-usuario/servitec-crm/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	transferRepo := postgres.NewTransferRepository(pool)
	activityRepo := postgres.NewActivityRepository(pool)
	alertRepo := postgres.NewAlertRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	recordActivityUC := inventory.NewRecordActivityUseCase(activityRepo)
	recordPurchaseUC := inventory.NewRecordPurchaseUseCase(txRunner, productRepo)
	createTransferUC := inventory.NewCreateTransferUseCase(txRunner, productRepo, recordActivityUC)
	fulfillInvoiceUC := inventory.NewFulfillInvoiceUseCase(txRunner, productRepo)
	stockMonitorUC := inventory.NewStockMonitorUseCase(productRepo, alertRepo)
	valuationUC := inventory.NewValuationUseCase(productRepo)
	ledgerUC := inventory.NewLedgerUseCase(movementRepo, transferRepo)
	productUC := usecase.NewProductUseCase(productRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Servitec CRM - Inventario",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:      productUC,
		RecordPurchase: recordPurchaseUC,
		CreateTransfer: createTransferUC,
		FulfillInvoice: fulfillInvoiceUC,
		RecordActivity: recordActivityUC,
		StockMonitor:   stockMonitorUC,
		Valuation:      valuationUC,
		Ledger:         ledgerUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	// Worker de alertas: solo si hay Redis configurado. Sin Redis la API funciona
	// igual y el escaneo queda disponible vía POST /api/alerts/scan.
	workerCtx, stopWorker := context.WithCancel(ctx)
	defer stopWorker()
	if cfg.Redis.Addr != "" {
		worker, err := jobs.NewWorker(jobs.WorkerConfig{
			RedisOpts: asynq.RedisClientOpt{
				Addr:     cfg.Redis.Addr,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			},
			Monitor:    stockMonitorUC,
			Logger:     log,
			ScanCron:   cfg.Alerts.ScanCron,
			WindowDays: cfg.Alerts.LowMovingWindowDays,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("configurar worker de alertas")
		}
		go func() {
			if err := worker.Run(workerCtx); err != nil && err != context.Canceled {
				log.Error().Err(err).Msg("worker de alertas finalizado")
			}
		}()
		log.Info().Str("cron", cfg.Alerts.ScanCron).Msg("worker de alertas iniciado")
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stopWorker()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
