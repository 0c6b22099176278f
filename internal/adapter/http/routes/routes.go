package routes

import (
	"context"
	"log"
	"os"

	_ "monauxiliaire/docs" // This will be auto-generated
	"monauxiliaire/internal/adapter/http/handlers"
	repository2 "monauxiliaire/internal/adapter/persistence/repository"
	"monauxiliaire/internal/infrastructure/assistant"
	"monauxiliaire/internal/infrastructure/database"
	"monauxiliaire/internal/usecase"
	"monauxiliaire/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = "8080"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	quoteRepo, contactRepo := buildRepositories()

	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo)
	contactUseCase := usecase.NewContactUseCase(contactRepo)

	var completionGateway interfaces.ICompletionGateway
	gateway, err := assistant.NewOpenRouterGateway(os.Getenv("OPENROUTER_API_KEY"))
	if err != nil {
		// The chat endpoint stays up and answers with its fallback envelope.
		log.Printf("OpenRouter gateway not configured: %v", err)
	} else {
		completionGateway = gateway
	}
	chatUseCase := usecase.NewChatUseCase(completionGateway)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	contactHandler := handlers.NewContactHandler(contactUseCase)
	chatHandler := handlers.NewChatHandler(chatUseCase)

	api := router.Group("/api")
	addPingRoutes(api)
	addFunnelRoutes(api, quoteHandler, contactHandler, chatHandler)
}

// buildRepositories picks the storage backend from STORAGE_BACKEND:
// "memory" (default), "postgres" or "dynamodb".
func buildRepositories() (interfaces.IQuoteRepository, interfaces.IContactRepository) {
	switch backend := os.Getenv("STORAGE_BACKEND"); backend {
	case "postgres":
		db, err := database.NewPostgresDB()
		if err != nil {
			log.Fatalf("failed to initialize postgres: %v", err)
		}
		return repository2.NewQuotePostgresRepository(db), repository2.NewContactPostgresRepository(db)
	case "dynamodb":
		ddb, err := database.NewDynamoDBClient(context.Background())
		if err != nil {
			log.Fatalf("failed to initialize dynamodb: %v", err)
		}
		return repository2.NewQuoteDynamoRepository(ddb), repository2.NewContactDynamoRepository(ddb)
	case "", "memory":
		return repository2.NewQuoteMemoryRepository(), repository2.NewContactMemoryRepository()
	default:
		log.Fatalf("unknown STORAGE_BACKEND %q", backend)
		return nil, nil
	}
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
