package main

import (
	authController "cybertaxi/internal/auth/controller"
	authRepository "cybertaxi/internal/auth/repository"
	authUsecase "cybertaxi/internal/auth/usecase"
	garagesController "cybertaxi/internal/garages/controller"
	garagesRepository "cybertaxi/internal/garages/repository"
	garagesUsecase "cybertaxi/internal/garages/usecase"
	healthController "cybertaxi/internal/health/controller"
	playerController "cybertaxi/internal/player/controller"
	playerRepository "cybertaxi/internal/player/repository"
	playerUsecase "cybertaxi/internal/player/usecase"
	"cybertaxi/internal/service/logger"
	"cybertaxi/internal/service/middleware"
	"cybertaxi/internal/service/router"
	"cybertaxi/internal/session"
	tilesController "cybertaxi/internal/tiles/controller"
	vehiclesController "cybertaxi/internal/vehicles/controller"
	vehiclesRepository "cybertaxi/internal/vehicles/repository"
	vehiclesUsecase "cybertaxi/internal/vehicles/usecase"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	db := middleware.DbConnect()
	redisClient := middleware.RedisConnect()

	jwtToken, err := middleware.NewJwtToken(secret)
	if err != nil {
		log.Fatalf("Failed to create JWT token service: %v", err)
	}

	if err := logger.InitLoggers(); err != nil {
		log.Fatalf("Failed to initialize loggers: %v", err)
	}
	defer func() {
		if err := logger.SyncLoggers(); err != nil {
			log.Printf("Failed to sync loggers: %v", err)
		}
	}()

	tileURL := os.Getenv("TILE_SERVER_URL")
	if tileURL == "" {
		tileURL = "http://localhost:8080"
	}
	fontsDir := os.Getenv("FONTS_DIR")
	if fontsDir == "" {
		fontsDir = "fonts"
	}

	sessions := session.NewRedisStore(redisClient)

	authRepo := authRepository.NewAuthRepository(db)
	authUC := authUsecase.NewAuthUsecase(authRepo)
	authHandler := authController.NewAuthHandler(authUC, jwtToken, sessions)

	playerRepo := playerRepository.NewPlayerRepository(db)
	vehiclesRepo := vehiclesRepository.NewVehiclesRepository(db)
	garagesRepo := garagesRepository.NewGaragesRepository(db)

	playerUC := playerUsecase.NewPlayerUsecase(playerRepo, vehiclesRepo, garagesRepo)
	playerHandler := playerController.NewPlayerHandler(playerUC, jwtToken)

	vehiclesUC := vehiclesUsecase.NewVehiclesUsecase(vehiclesRepo, playerRepo)
	vehiclesHandler := vehiclesController.NewVehiclesHandler(vehiclesUC, jwtToken)

	garagesUC := garagesUsecase.NewGaragesUsecase(garagesRepo, playerRepo)
	garagesHandler := garagesController.NewGaragesHandler(garagesUC, jwtToken)

	tilesHandler, err := tilesController.NewTilesHandler(tileURL, fontsDir)
	if err != nil {
		log.Fatalf("Failed to create tiles handler: %v", err)
	}
	healthHandler := healthController.NewHealthHandler(db, redisClient, tileURL)

	mainRouter := router.SetUpRoutes(authHandler, playerHandler, vehiclesHandler, garagesHandler, tilesHandler, healthHandler)
	mainRouter.Use(middleware.RequestIDMiddleware)
	mainRouter.Use(middleware.RateLimitMiddleware)
	http.Handle("/", middleware.EnableCORS(mainRouter))

	fmt.Printf("Starting HTTP server on address %s\n", os.Getenv("BACKEND_URL"))
	if err := http.ListenAndServe(os.Getenv("BACKEND_URL"), nil); err != nil {
		fmt.Printf("Error on starting server: %s", err)
	}
}
