package routes

import (
	_ "portal_expositor/docs" // generated by swag init
	"portal_expositor/internal/adapter/http/handlers"
	"portal_expositor/internal/adapter/http/middleware"
	"portal_expositor/internal/adapter/persistence/repository"
	"portal_expositor/internal/config"
	"portal_expositor/internal/infrastructure/auth"
	"portal_expositor/internal/infrastructure/cache"
	"portal_expositor/internal/infrastructure/logger"
	"portal_expositor/internal/infrastructure/portalapi"
	"portal_expositor/internal/infrastructure/viacep"
	"portal_expositor/internal/usecase"
	"portal_expositor/pkg/schema"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run will start the server
func Run(cfg config.Config) {
	router := NewRouter(cfg)

	log.Info().Str("port", cfg.Port).Str("portal_api", cfg.PortalAPIURL).Msg("[app][http] listening")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("Failed to startup the application")
	}
}

// NewRouter builds the engine with every dependency wired from cfg.
func NewRouter(cfg config.Config) *gin.Engine {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		schema.Register(v)
	}

	router := gin.New()
	setMiddlewares(router, cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(router, cfg)
	return router
}

func getRoutes(router *gin.Engine, cfg config.Config) {
	api := portalapi.NewClient(cfg.PortalAPIURL, cfg.PortalAPITimeout)
	stallGateway := portalapi.NewStallGateway(api)
	stallFormGateway := portalapi.NewStallFormGateway(api)

	queryCache := cache.NewQueryCache(cfg.QueryStaleTime)
	wizardRepo := repository.NewWizardSessionMemoryRepository(cfg.WizardSessionTTL)

	authUseCase := usecase.NewAuthUseCase(portalapi.NewAuthGateway(api), auth.NewInspector(), queryCache, wizardRepo)
	stallUseCase := usecase.NewStallUseCase(stallGateway, queryCache)
	wizardUseCase := usecase.NewWizardUseCase(wizardRepo, stallUseCase, stallGateway, stallFormGateway, queryCache)
	fairUseCase := usecase.NewFairUseCase(portalapi.NewFairGateway(api), stallUseCase, queryCache)
	profileUseCase := usecase.NewProfileUseCase(portalapi.NewOwnerGateway(api))
	addressUseCase := usecase.NewAddressUseCase(viacep.NewClient(cfg.ViaCEPURL), cfg.CEPDebounce)
	interestUseCase := usecase.NewInterestUseCase(portalapi.NewInterestGateway(api))
	stallFormUseCase := usecase.NewStallFormUseCase(stallFormGateway)

	addPingRoutes(router)

	// Rotas publicas
	v1 := router.Group("/v1")
	authHandler := handlers.NewAuthHandler(authUseCase)
	addAuthRoutes(v1, authHandler)
	addPublicRoutes(v1, handlers.NewInterestHandler(interestUseCase))
	wizardHandler := handlers.NewWizardHandler(wizardUseCase)
	addStallFormRoutes(v1, handlers.NewStallFormHandler(stallFormUseCase), wizardHandler)

	// Rotas autenticadas
	private := v1.Group("", middleware.Auth(authUseCase))
	addSessionRoutes(private, authHandler)
	addStallRoutes(private, handlers.NewStallHandler(stallUseCase), wizardHandler)
	addFairRoutes(private, handlers.NewFairHandler(fairUseCase))
	addProfileRoutes(private, handlers.NewProfileHandler(profileUseCase), handlers.NewAddressHandler(addressUseCase))
}

func setMiddlewares(router *gin.Engine, cfg config.Config) {
	router.Use(middleware.RequestID())
	router.Use(logger.Gin())
	router.Use(logger.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSAllowedOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
		corsConfig.AllowCredentials = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Request-ID", middleware.HeaderDocument}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	router.Use(cors.New(corsConfig))
}
