package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"moviecatalog/internal/config"
	"moviecatalog/internal/database"
	"moviecatalog/internal/middleware"
	"moviecatalog/internal/modules/auth"
	"moviecatalog/internal/modules/movie"
	"moviecatalog/internal/pkg/jwt"
	"moviecatalog/internal/pkg/logger"
	"moviecatalog/internal/pkg/password"
	"moviecatalog/internal/repository"
	"moviecatalog/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	if err := logger.Setup(cfg.LogLevel); err != nil {
		log.Fatal(err)
	}
	defer zap.L().Sync()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		zap.L().Fatal("database connection failed", zap.Error(err))
	}
	if err := repository.AutoMigrate(db); err != nil {
		zap.L().Fatal("migration failed", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	movieRepo := repository.NewMovieRepository(db)

	// Default roles must exist before the first signup.
	if err := roleRepo.EnsureDefaults(context.Background()); err != nil {
		zap.L().Fatal("role seeding failed", zap.Error(err))
	}

	tokens, err := jwt.New(cfg.JWTSecret, cfg.TokenTTL())
	if err != nil {
		zap.L().Fatal("token service init failed", zap.Error(err))
	}
	hasher := password.NewHasher()
	media := storage.NewManager(cfg.StorageRoot, cfg.MaxImageBytes(), cfg.MaxVideoBytes())

	authService := auth.NewService(userRepo, roleRepo, tokens, hasher)
	authHandler := auth.NewHandler(authService)

	movieService := movie.NewService(movieRepo, media)
	movieHandler := movie.NewHandler(movieService)

	r := gin.New()
	r.Use(
		cors.New(cors.Config{
			AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
			AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		ginzap.Ginzap(zap.L(), time.RFC3339, true),
		ginzap.RecoveryWithZap(zap.L(), true),
	)

	api := r.Group("/api")
	{
		// public
		authHandler.RegisterPublicRoutes(api)

		// protected
		authed := api.Group("/")
		authed.Use(middleware.JWTAuth(tokens))
		{
			authed.GET("/users/:id", middleware.AdminOnly(), authHandler.GetUser)

			movies := authed.Group("/movies")
			{
				read := middleware.RequireAnyRole("USER", "ADMIN")
				movies.GET("", read, movieHandler.List)
				movies.GET("/:id", read, movieHandler.GetByID)
				movies.GET("/:id/download", read, movieHandler.Download)

				movies.POST("", middleware.AdminOnly(), movieHandler.Create)
				movies.PATCH("/:id", middleware.AdminOnly(), movieHandler.Update)
				movies.DELETE("/:id", middleware.AdminOnly(), movieHandler.Delete)
			}
		}
	}

	zap.L().Info("starting server", zap.Int("port", cfg.Port))
	if err := r.Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		zap.L().Fatal("server stopped", zap.Error(err))
	}
}
