package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/rafabene/teamboard-backend/docs"
	"github.com/rafabene/teamboard-backend/internal/handlers/dto"
	httphandlers "github.com/rafabene/teamboard-backend/internal/handlers/http"
	"github.com/rafabene/teamboard-backend/internal/handlers/middleware"
	"github.com/rafabene/teamboard-backend/internal/infrastructure/auth"
	"github.com/rafabene/teamboard-backend/internal/infrastructure/config"
	"github.com/rafabene/teamboard-backend/internal/infrastructure/i18n"
	"github.com/rafabene/teamboard-backend/internal/infrastructure/logging"
	"github.com/rafabene/teamboard-backend/internal/infrastructure/notify"
	"github.com/rafabene/teamboard-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/teamboard-backend/internal/services"

	"github.com/rafabene/teamboard-backend/internal/domain/entities"
)

//	@title						TeamBoard API
//	@version					1.0
//	@description				Backend de contas e colaboração em boards
//	@BasePath					/api/v1
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	// Carregar .env em desenvolvimento (ignorado se ausente)
	_ = godotenv.Load()

	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting teamboard backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	if err := postgres.Migrate(db); err != nil {
		logger.Error("failed to run migrations", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	i18nService, err := i18n.NewService("./internal/infrastructure/i18n/locales", "en")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Inicializar repositories
	userRepo := postgres.NewUserRepository(db)
	skillRepo := postgres.NewSkillRepository(db)
	boardRepo := postgres.NewBoardRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Inicializar token manager e hub de notificações
	tokens, err := auth.NewJWTManager(&cfg.JWT)
	if err != nil {
		logger.Error("failed to initialize token manager", "error", err)
		log.Fatal(err)
	}
	hub := notify.NewHub(logger)

	// Inicializar services
	authService := services.NewAuthService(userRepo, uow, tokens, logger)
	userService := services.NewUserService(userRepo, skillRepo, uow, tokens, logger)
	skillService := services.NewSkillService(skillRepo, logger)
	boardService := services.NewBoardService(boardRepo, userRepo, uow, hub, logger)

	// Inicializar handlers
	authHandler := httphandlers.NewAuthHandler(authService)
	profileHandler := httphandlers.NewProfileHandler(userService)
	userHandler := httphandlers.NewUserHandler(userService)
	skillHandler := httphandlers.NewSkillHandler(skillService)
	boardHandler := httphandlers.NewBoardHandler(boardService)
	notificationHandler := httphandlers.NewNotificationHandler(hub, logger)

	// Validações customizadas de binding
	dto.RegisterCustomValidators()

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Middleware global para adicionar base URL ao contexto
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.Server.BaseURL)
		c.Next()
	})

	// Middleware i18n
	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	// Middleware CORS
	corsConfig := cors.DefaultConfig()
	if cfg.CORS.AllowedOrigins == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(cfg.CORS.AllowedOrigins, ",")
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Middleware de autenticação
	authMiddleware := middleware.NewAuthMiddleware(tokens, userRepo)

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth (público)
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}

		// Rotas autenticadas
		authed := v1.Group("")
		authed.Use(authMiddleware.RequireAuth())
		{
			// Profile
			profile := authed.Group("/profile")
			{
				profile.GET("", profileHandler.GetProfile)
				profile.PATCH("", profileHandler.UpdateProfile)
				profile.PATCH("/password", profileHandler.ChangePassword)
				profile.DELETE("", profileHandler.DeactivateMe)
			}

			// Users
			users := authed.Group("/users")
			{
				users.POST("/by-emails", profileHandler.FindUsersByEmails)

				// Administração de usuários
				admin := users.Group("")
				admin.Use(authMiddleware.RequirePermission(entities.PermissionUserWrite))
				{
					admin.GET("", userHandler.ListUsers)
					admin.GET("/:id", userHandler.GetUserByID)
					admin.PATCH("/:id", userHandler.UpdateUserByID)
					admin.DELETE("/:id", userHandler.DeleteUserByID)
				}
			}

			// Skills
			skills := authed.Group("/skills")
			{
				skills.GET("", skillHandler.ListSkills)
				skills.POST("", authMiddleware.RequirePermission(entities.PermissionSkillWrite), skillHandler.CreateSkill)
			}

			// Boards
			boards := authed.Group("/boards")
			{
				boards.POST("", boardHandler.CreateBoard)
				boards.GET("", boardHandler.ListBoards)
				boards.GET("/:id", boardHandler.GetBoard)
				boards.PATCH("/:id", boardHandler.UpdateBoard)
				boards.DELETE("/:id", boardHandler.DeleteBoard)
				boards.POST("/:id/members", boardHandler.InviteMembers)
			}

			// Notificações em tempo real
			authed.GET("/ws/notifications", notificationHandler.Connect)
		}
	}

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
