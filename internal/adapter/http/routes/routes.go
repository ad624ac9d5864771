package routes

import (
	"context"
	"log"
	"strconv"

	_ "mecanica_os/docs" // Swagger docs registration
	"mecanica_os/internal/adapter/http/handlers"
	adaptermessaging "mecanica_os/internal/adapter/messaging"
	"mecanica_os/internal/adapter/persistence/repository"
	"mecanica_os/internal/infrastructure/catalog"
	"mecanica_os/internal/infrastructure/database"
	inframessaging "mecanica_os/internal/infrastructure/messaging"
	"mecanica_os/internal/infrastructure/registry"
	"mecanica_os/internal/infrastructure/stock"
	"mecanica_os/internal/usecase"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.Default()

const PORT = 8080

// Run wires the dependency graph, starts the saga consumer and serves HTTP.
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	orderRepo := repository.NewServiceOrderDynamoRepository(ddb)

	stockGateway, err := stock.NewHTTPStockGateway(os.Getenv("STOCK_SERVICE_URL"))
	if err != nil {
		log.Fatalf("stock gateway not configured: %v", err)
	}
	catalogGateway, err := catalog.NewHTTPCatalogGateway(os.Getenv("CATALOG_SERVICE_URL"))
	if err != nil {
		log.Fatalf("catalog gateway not configured: %v", err)
	}
	vehicleGateway, err := registry.NewHTTPVehicleGateway(os.Getenv("REGISTRY_SERVICE_URL"))
	if err != nil {
		log.Fatalf("vehicle gateway not configured: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}

	brokers := getenvDefault("KAFKA_BROKERS", "localhost:9092")
	producer := inframessaging.NewProducer(brokers, adaptermessaging.TopicOrderEvents)
	publisher := adaptermessaging.NewKafkaOrderPublisher(producer, logger)

	orderUseCase := usecase.NewServiceOrderUseCase(orderRepo, stockGateway, catalogGateway, vehicleGateway, publisher, publisher)
	queryUseCase := usecase.NewOrderQueryUseCase(orderRepo)

	consumer := inframessaging.NewConsumer(brokers, adaptermessaging.TopicSagaEvents, getenvDefault("KAFKA_GROUP_ID", "os-service"))
	sagaConsumer := adaptermessaging.NewSagaConsumer(consumer, orderUseCase, publisher, logger)
	go func() {
		if err := sagaConsumer.Start(context.Background()); err != nil {
			logger.Error("saga consumer stopped", zap.Error(err))
		}
	}()

	orderHandler := handlers.NewServiceOrderHandler(orderUseCase)
	queryHandler := handlers.NewOrderQueryHandler(queryUseCase)
	webhookHandler := handlers.NewSagaWebhookHandler(orderUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addServiceOrderRoutes(v1, orderHandler, queryHandler)
	addWebhookRoutes(v1, webhookHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
