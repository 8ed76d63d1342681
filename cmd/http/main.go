package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"vitalia-service/internal/app/config"
	"vitalia-service/internal/app/delivery/http/middlewares"
	"vitalia-service/internal/app/delivery/http/routers"
	"vitalia-service/internal/app/drivers/database"
	"vitalia-service/internal/app/drivers/logger"
	"vitalia-service/internal/app/drivers/messaging"
	"vitalia-service/internal/app/drivers/storage"
	"vitalia-service/internal/app/services/core/builderdrafts"
	"vitalia-service/internal/app/services/core/documents"
	"vitalia-service/internal/app/services/core/patients"
	"vitalia-service/internal/app/services/core/publiclinks"
	"vitalia-service/internal/app/services/core/questionbank"
	"vitalia-service/internal/app/services/core/questionnaireresponses"
	"vitalia-service/internal/app/services/core/questionnaires"
	"vitalia-service/internal/app/services/shared/locker"
	"vitalia-service/internal/app/services/shared/notifications"
	sharedredis "vitalia-service/internal/app/services/shared/redis"
	sharedstorage "vitalia-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("failed to load timezone", zap.Error(err))
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Minio:          minioClient,
		RabbitMQ:       rabbitMQ,
		Logger:         log,
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
			log.Fatal("server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}

	logrus.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Shared services
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)
	minioStorage := sharedstorage.NewMinioStorage(bootstrap.Minio, bootstrap.DriverConfig.Minio.BucketName)
	notificationQueue, err := notifications.NewService(bootstrap.RabbitMQ, bootstrap.Logger)
	if err != nil {
		bootstrap.Logger.Fatal("failed to set up notification queue", zap.Error(err))
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, redisRepository, bootstrap.InternalConfig)

	// Patient
	patientMongoRepository := patients.NewPatientMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	patientUsecase := patients.NewPatientUsecase(patientMongoRepository)
	patientController := patients.NewPatientController(bootstrap.Logger, patientUsecase)

	// Questionnaire
	questionnaireMongoRepository := questionnaires.NewQuestionnaireMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	questionnaireUsecase := questionnaires.NewQuestionnaireUsecase(questionnaireMongoRepository)
	questionnaireController := questionnaires.NewQuestionnaireController(bootstrap.Logger, questionnaireUsecase)

	// Question bank
	questionBankMongoRepository := questionbank.NewQuestionBankMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	questionBankUsecase := questionbank.NewQuestionBankUsecase(questionBankMongoRepository)
	questionBankController := questionbank.NewQuestionBankController(bootstrap.Logger, questionBankUsecase)

	// Questionnaire responses
	responseMongoRepository := questionnaireresponses.NewResponseMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	responseUsecase := questionnaireresponses.NewResponseUsecase(responseMongoRepository, questionnaireMongoRepository)
	responseController := questionnaireresponses.NewResponseController(bootstrap.Logger, responseUsecase)

	// Public links
	publicLinkMongoRepository := publiclinks.NewPublicLinkMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	publicLinkUsecase := publiclinks.NewPublicLinkUsecase(
		bootstrap.Logger,
		publicLinkMongoRepository,
		responseMongoRepository,
		questionnaireMongoRepository,
		patientMongoRepository,
		lockerService,
		notificationQueue,
		bootstrap.InternalConfig,
	)
	publicLinkController := publiclinks.NewPublicLinkController(bootstrap.Logger, publicLinkUsecase)

	// Builder drafts
	builderDraftUsecase := builderdrafts.NewBuilderDraftUsecase(redisRepository)
	builderDraftController := builderdrafts.NewBuilderDraftController(bootstrap.Logger, builderDraftUsecase)

	// Documents
	documentMongoRepository := documents.NewDocumentMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	documentUsecase := documents.NewDocumentUsecase(documentMongoRepository, patientMongoRepository, minioStorage, bootstrap.InternalConfig)
	documentController := documents.NewDocumentController(bootstrap.Logger, documentUsecase, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		patientController,
		questionnaireController,
		questionBankController,
		publicLinkController,
		responseController,
		builderDraftController,
		documentController,
	)
}
