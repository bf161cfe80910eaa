package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"personnel-metrics-service/internal/auth"
	"personnel-metrics-service/internal/config"

	employeesHttp "personnel-metrics-service/internal/employees/adapters/http/fiber"
	employeesRepoPg "personnel-metrics-service/internal/employees/adapters/postgres"
	employeesUsecase "personnel-metrics-service/internal/employees/core/usecase"

	recordsHttp "personnel-metrics-service/internal/records/adapters/http/fiber"
	recordsRepoPg "personnel-metrics-service/internal/records/adapters/postgres"
	recordsUsecase "personnel-metrics-service/internal/records/core/usecase"

	reportHttp "personnel-metrics-service/internal/report/adapters/http/fiber"
	reportRepoPg "personnel-metrics-service/internal/report/adapters/postgres"
	reportUsecase "personnel-metrics-service/internal/report/core/usecase"

	uploadHttp "personnel-metrics-service/internal/upload/adapters/http/fiber"
	uploadUsecase "personnel-metrics-service/internal/upload/core/usecase"

	"github.com/gofiber/fiber/v2"
	_ "github.com/lib/pq"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	_ "personnel-metrics-service/docs"
)

func main() {
	// Config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	// DB connection
	db, err := sql.Open("postgres", cfg.PostgresDSN)
	if err != nil {
		logger.Fatal("failed to open postgres", zap.Error(err))
	}
	defer db.Close()

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		logger.Fatal("failed to ping postgres", zap.Error(err))
	}

	// Adapter-level DB wrappers
	employeesDB := employeesRepoPg.NewSQLDB(db)
	recordsDB := recordsRepoPg.NewSQLDB(db)
	reportDB := reportRepoPg.NewSQLDB(db)

	// Repositories
	employeeRepository := employeesRepoPg.NewEmployeeRepository(employeesDB)
	targetRatioRepository := recordsRepoPg.NewTargetRatioRepository(recordsDB)
	dailyIncreaseRepository := recordsRepoPg.NewDailyIncreaseRepository(recordsDB)
	rowReader := reportRepoPg.NewRowReader(reportDB)

	// Usecases
	employeeUC := employeesUsecase.NewEmployeeUseCase(employeeRepository)
	recordUC := recordsUsecase.NewRecordUseCase(targetRatioRepository, dailyIncreaseRepository)
	reportUC := reportUsecase.NewGetReportUseCase(rowReader, cfg.TargetDay(), nil)
	bulkUploadUC := uploadUsecase.NewBulkUploadUseCase(employeeUC, recordUC)

	// HTTP (Fiber) app + handlers
	app := fiber.New()

	// Swagger stays open; everything registered after the middleware
	// needs a token.
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	app.Use(auth.New(cfg.JWTSecret, logger))

	// employees endpoints
	employeesHandler := employeesHttp.NewEmployeeHandler(employeeUC)
	app.Post("/employees", employeesHandler.CreateEmployee)
	app.Get("/employees", employeesHandler.ListEmployees)
	app.Delete("/employees/:id", employeesHandler.DeleteEmployee)

	// records endpoints
	recordsHandler := recordsHttp.NewRecordHandler(recordUC)
	app.Post("/target-ratios", recordsHandler.CreateTargetRatio)
	app.Get("/target-ratios", recordsHandler.ListTargetRatios)
	app.Delete("/target-ratios/:id", recordsHandler.DeleteTargetRatio)
	app.Post("/daily-increases", recordsHandler.CreateDailyIncrease)
	app.Get("/daily-increases", recordsHandler.ListDailyIncreases)
	app.Delete("/daily-increases/:id", recordsHandler.DeleteDailyIncrease)

	// report endpoints
	reportHandler := reportHttp.NewReportHandler(reportUC)
	app.Get("/dashboard", reportHandler.GetDashboard)
	app.Get("/reports/target-ratios", reportHandler.GetTargetRatioReport)
	app.Get("/reports/daily-deltas", reportHandler.GetDailyDeltaReport)
	app.Get("/rows", reportHandler.GetRows)

	// upload endpoint
	uploadHandler := uploadHttp.NewUploadHandler(bulkUploadUC)
	app.Post("/upload/bulk", uploadHandler.BulkUpload)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.HTTPAddr); err != nil {
			logger.Error("fiber stopped", zap.Error(err))
		}
	}()

	logger.Info("server started", zap.String("addr", cfg.HTTPAddr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	logger.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error("fiber shutdown error", zap.Error(err))
	}

	logger.Info("server exiting")
}
