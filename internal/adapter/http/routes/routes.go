package routes

import (
	"context"
	"log"
	"strconv"

	_ "facturacion_movil/docs" // This will be auto-generated
	"facturacion_movil/internal/adapter/http/handlers"
	repository2 "facturacion_movil/internal/adapter/persistence/repository"
	"facturacion_movil/internal/cache"
	"facturacion_movil/internal/infrastructure/database"
	"facturacion_movil/internal/infrastructure/invoicing"
	"facturacion_movil/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
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

	cacheRepo := repository2.NewResponseCacheDynamoRepository(ddb)
	sessionRepo := repository2.NewSessionDynamoRepository(ddb)

	tieredCache := cache.NewTieredCache(cacheRepo)

	sessionUseCase := usecase.NewSessionUseCase(sessionRepo, tieredCache, usecase.FallbackSessionFromEnv())
	if err := sessionUseCase.Initialize(context.Background()); err != nil {
		// Not fatal: Current() serves the fallback identity until a retry.
		log.Printf("[routes] session restore failed, continuing with fallback: %v", err)
	}

	apiClient := invoicing.NewAPIClientFromEnv()

	catalogUseCase := usecase.NewCatalogUseCase(apiClient, tieredCache, sessionUseCase)
	salesUseCase := usecase.NewSalesUseCase(apiClient, tieredCache, sessionUseCase)

	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	documentsHandler := handlers.NewDocumentsHandler(salesUseCase)
	sessionHandler := handlers.NewSessionHandler(sessionUseCase)

	// Rutas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPOSRoutes(v1, catalogHandler, documentsHandler, sessionHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
