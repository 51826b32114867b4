package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/starthobby/backend/config"
	"github.com/starthobby/backend/database"
	_ "github.com/starthobby/backend/docs" // Swagger docs
	"github.com/starthobby/backend/internal/controller"
	"github.com/starthobby/backend/internal/logger"
	"github.com/starthobby/backend/internal/model"
	"github.com/starthobby/backend/internal/repository"
	"github.com/starthobby/backend/internal/service"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title StartHobby API
// @version 1.0
// @description Backend for the StartHobby mini-game quiz flow: persists raw answers, generates AI personality profiles and tallies free-text hobbies.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories Layer
		fx.Provide(
			repository.NewSubmissionRepository,
			repository.NewProfileRepository,
			repository.NewHobbyEntryRepository,
			repository.NewUserRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewOpenAIService,
			service.NewResultService,
			service.NewHobbyEntryService,
			service.NewAuthService,
		),

		// API Controllers Layer
		fx.Provide(
			controller.NewResultsController,
			controller.NewHobbyEntryController,
			controller.NewAuthController,
		),

		// Invokers - Functions that are executed by Fx
		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	// Route Gin's request log through zerolog.
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Be more specific in production
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	resultsCtrl *controller.ResultsController,
	hobbyCtrl *controller.HobbyEntryController,
	authCtrl *controller.AuthController,
) {
	api := router.Group("/api/v1")
	{
		results := api.Group("/results")
		results.POST("/finalize", resultsCtrl.Finalize)
		results.GET("/all", resultsCtrl.GetAllResults)
		results.GET("/ai-profile/:email", resultsCtrl.GetAIProfile)

		api.POST("/ai-profile/save", resultsCtrl.SaveProfile)

		api.POST("/hobby-entries", hobbyCtrl.SubmitHobbyEntry)
		api.GET("/hobby-entries", hobbyCtrl.GetTopHobbyEntries)

		auth := api.Group("/auth")
		auth.POST("/signup", authCtrl.Signup)
		auth.POST("/login", authCtrl.Login)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("StartHobby API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Submission{},
		&model.AIProfile{},
		&model.HobbyEntry{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
