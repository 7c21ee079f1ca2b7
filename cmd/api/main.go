package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/nebiyou-tadesse/go-user-service/internal/domain/contract"
	handlerHttp "github.com/nebiyou-tadesse/go-user-service/internal/handler/http"
	"github.com/nebiyou-tadesse/go-user-service/internal/infrastructure/blacklist"
	redisclient "github.com/nebiyou-tadesse/go-user-service/internal/infrastructure/cache"
	"github.com/nebiyou-tadesse/go-user-service/internal/infrastructure/config"
	database "github.com/nebiyou-tadesse/go-user-service/internal/infrastructure/database"
	"github.com/nebiyou-tadesse/go-user-service/internal/infrastructure/external_services"
	"github.com/nebiyou-tadesse/go-user-service/internal/infrastructure/jwt"
	"github.com/nebiyou-tadesse/go-user-service/internal/infrastructure/logger"
	passwordservice "github.com/nebiyou-tadesse/go-user-service/internal/infrastructure/password_service"
	randomgenerator "github.com/nebiyou-tadesse/go-user-service/internal/infrastructure/random_generator"
	"github.com/nebiyou-tadesse/go-user-service/internal/infrastructure/repository/mongodb"
	"github.com/nebiyou-tadesse/go-user-service/internal/infrastructure/uuidgen"
	"github.com/nebiyou-tadesse/go-user-service/internal/infrastructure/validator"
	"github.com/nebiyou-tadesse/go-user-service/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Get MongoDB URI and DB name from environment
	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI environment variable not set")
	}
	dbName := os.Getenv("MONGODB_DB_NAME")
	if dbName == "" {
		log.Fatal("MONGODB_DB_NAME environment variable not set")
	}

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(mongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()

	// Initialize Gin router
	router := gin.Default()

	// Dependency Injection: Repositories
	userCollection := mongoClient.Client.Database(dbName).Collection("users")
	userRepo := mongodb.NewMongoUserRepository(userCollection)
	if err := userRepo.EnsureIndexes(context.Background()); err != nil {
		log.Fatalf("Failed to create user indexes: %v", err)
	}

	// Dependency Injection: Services
	appConfig := config.NewConfig()
	hasher := passwordservice.NewHasher()
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}
	jwtManager := jwt.NewJWTManager(jwtSecret, appConfig.GetAccessTokenExpiry())
	appLogger := logger.NewStdLogger()
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()
	randomGenerator := randomgenerator.NewRandomGenerator()

	mediaStorage, err := external_services.NewCloudinaryService(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		log.Fatalf("Failed to initialize Cloudinary: %v", err)
	}

	// Revocation registry: Redis-backed when REDIS_URL is set (required for
	// multi-instance deployments), in-memory otherwise.
	var tokenBlacklist contract.ITokenBlacklist
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		rdb := redisclient.NewRedisFromURL(context.Background(), redisURL)
		defer redisclient.Close(rdb)
		tokenBlacklist = blacklist.NewRedisBlacklist(rdb)
	} else {
		memBlacklist := blacklist.NewMemoryBlacklist(time.Minute)
		defer memBlacklist.Close()
		tokenBlacklist = memBlacklist
	}

	// Dependency Injection: Usecases
	userUsecase := usecase.NewUserUsecase(userRepo, hasher, jwtManager, tokenBlacklist, mediaStorage, appLogger, appConfig, appValidator, uuidGenerator)

	// Setup API routes
	appRouter := handlerHttp.NewRouter(userUsecase, jwtManager, tokenBlacklist, randomGenerator, appLogger, appConfig)
	appRouter.SetupRoutes(router)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
