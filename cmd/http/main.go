package main

import (
	"context"
	"livwise-service/internal/app/config"
	"livwise-service/internal/app/delivery/http/middlewares"
	"livwise-service/internal/app/delivery/http/routers"
	"livwise-service/internal/app/drivers/database"
	"livwise-service/internal/app/drivers/logger"
	"livwise-service/internal/app/drivers/messaging"
	"livwise-service/internal/app/drivers/storage"
	"livwise-service/internal/app/services/core/exports"
	"livwise-service/internal/app/services/core/patients"
	"livwise-service/internal/app/services/core/records"
	syncService "livwise-service/internal/app/services/core/sync"
	sharedMessaging "livwise-service/internal/app/services/shared/messaging"
	sharedRedis "livwise-service/internal/app/services/shared/redis"
	sharedStorage "livwise-service/internal/app/services/shared/storage"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	stopWorker := bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         log,
		ZapLogger:      zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	stopWorker()

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) (stopWorker func()) {
	// Shared collaborators
	redisRepository := sharedRedis.NewRedisRepository(bootstrap.Redis)
	minioStorage := sharedStorage.NewMinioStorage(bootstrap.Minio)
	rabbitMQPublisher, err := sharedMessaging.NewRabbitMQPublisher(bootstrap.RabbitMQ)
	if err != nil {
		bootstrap.Logger.Fatalf("Failed to open RabbitMQ channel: %v", err)
	}

	// Middlewares
	appMiddlewares := &middlewares.Middlewares{
		Log:            bootstrap.ZapLogger,
		InternalConfig: bootstrap.InternalConfig,
	}
	bootstrap.Router.Use(appMiddlewares.RequestIDMiddleware)
	bootstrap.Router.Use(appMiddlewares.Logging(bootstrap.ZapLogger))

	// Sync
	blobExtractor := syncService.NewBlobExtractor(
		bootstrap.ZapLogger,
		minioStorage,
		bootstrap.DriverConfig.Minio.BucketName,
	)
	syncRepository := syncService.NewSyncMongoRepository(bootstrap.MongoDB)
	batchEventPublisher := syncService.NewBatchEventPublisher(
		rabbitMQPublisher,
		bootstrap.InternalConfig.Sync.BatchCompletedQueueName,
	)
	syncUsecase := syncService.NewSyncUsecase(
		bootstrap.ZapLogger,
		syncRepository,
		blobExtractor,
		batchEventPublisher,
		bootstrap.InternalConfig,
	)
	syncController := syncService.NewSyncController(bootstrap.ZapLogger, syncUsecase, bootstrap.InternalConfig)

	// Records
	recordRepository := records.NewRecordMongoRepository(bootstrap.MongoDB)
	recordUsecase := records.NewRecordUsecase(
		bootstrap.ZapLogger,
		recordRepository,
		redisRepository,
		bootstrap.InternalConfig,
	)
	recordController := records.NewRecordController(bootstrap.ZapLogger, recordUsecase)

	// Patients
	patientRepository := patients.NewPatientMongoRepository(bootstrap.MongoDB)
	patientUsecase := patients.NewPatientUsecase(bootstrap.ZapLogger, patientRepository)
	patientController := patients.NewPatientController(bootstrap.ZapLogger, patientUsecase)

	// Exports
	exportRepository := exports.NewExportMongoRepository(bootstrap.MongoDB)
	exportUsecase := exports.NewExportUsecase(
		bootstrap.ZapLogger,
		exportRepository,
		minioStorage,
		bootstrap.DriverConfig.Minio.ExportBucketName,
	)
	exportController := exports.NewExportController(bootstrap.ZapLogger, exportUsecase)

	exportWorker := exports.NewWorker(bootstrap.ZapLogger, bootstrap.InternalConfig, exportUsecase)
	stopWorker = exportWorker.Start(context.Background())

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		appMiddlewares,
		syncController,
		recordController,
		patientController,
		exportController,
	)

	return stopWorker
}
