package http

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/nebiyou-tadesse/go-user-service/internal/domain/contract"
	"github.com/nebiyou-tadesse/go-user-service/internal/handler/http/middleware"
	"github.com/nebiyou-tadesse/go-user-service/internal/infrastructure/metrics"
	"github.com/nebiyou-tadesse/go-user-service/internal/usecase"
	usecasecontract "github.com/nebiyou-tadesse/go-user-service/internal/usecase/contract"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	userHandler *UserHandler
	authHandler *AuthHandler
	jwtService  usecase.JWTService
	blacklist   contract.ITokenBlacklist
}

func NewRouter(
	userUsecase usecasecontract.IUserUseCase,
	jwtService usecase.JWTService,
	blacklist contract.ITokenBlacklist,
	randomGen contract.IRandomGenerator,
	logger usecasecontract.IAppLogger,
	config usecasecontract.IConfigProvider,
) *Router {
	return &Router{
		userHandler: NewUserHandler(userUsecase),
		authHandler: NewAuthHandler(userUsecase, randomGen, logger, config.GetAppBaseURL()),
		jwtService:  jwtService,
		blacklist:   blacklist,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	// rate limiter configuration
	lmt := tollbooth.NewLimiter(10, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(middleware.RateLimiter(lmt))
	router.Use(metrics.RequestMetrics())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	users := router.Group("/api/v1/users")

	// Public routes (no authentication required)
	users.POST("/register", r.userHandler.CreateUser)
	users.POST("/login", r.userHandler.Login)
	users.GET("/google/login", r.authHandler.HandleGoogleLogin)
	users.GET("/google/callback", r.authHandler.HandleGoogleCallback)

	// Protected routes, all behind the one access-control middleware.
	protected := users.Group("/")
	protected.Use(middleware.AuthMiddleWare(r.jwtService, r.blacklist))
	{
		protected.POST("/logout", r.userHandler.Logout)
		protected.POST("/upload-profile", r.userHandler.UploadProfilePicture)
		protected.POST("/delete-profile", r.userHandler.DeleteProfilePicture)
		protected.POST("/change-password", r.userHandler.ChangePassword)

		protected.GET("/", r.userHandler.ListUsers)
		protected.GET("/email/:email", r.userHandler.GetUserByEmail)
		protected.GET("/:id", r.userHandler.GetUser)
		protected.PUT("/:id", r.userHandler.UpdateUser)
		protected.DELETE("/:id", r.userHandler.DeleteUser)
	}
}
