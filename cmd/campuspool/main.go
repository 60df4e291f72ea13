package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/campuspool/campuspool/internal/pkg/config"
	"github.com/campuspool/campuspool/internal/pkg/database"
	"github.com/campuspool/campuspool/internal/pkg/health"
	"github.com/campuspool/campuspool/internal/pkg/logger"
	"github.com/campuspool/campuspool/internal/pkg/middleware"
	"github.com/campuspool/campuspool/internal/pkg/nats"
	nrpkg "github.com/campuspool/campuspool/internal/pkg/newrelic"
	"github.com/campuspool/campuspool/internal/pkg/server"

	bookingGateway "github.com/campuspool/campuspool/services/bookings/gateway"
	bookingHandler "github.com/campuspool/campuspool/services/bookings/handler"
	bookingRepository "github.com/campuspool/campuspool/services/bookings/repository"
	bookingUsecase "github.com/campuspool/campuspool/services/bookings/usecase"
	chatHandler "github.com/campuspool/campuspool/services/chat/handler"
	"github.com/campuspool/campuspool/services/chat/hub"
	chatRepository "github.com/campuspool/campuspool/services/chat/repository"
	chatUsecase "github.com/campuspool/campuspool/services/chat/usecase"
	ratingHandler "github.com/campuspool/campuspool/services/ratings/handler"
	ratingRepository "github.com/campuspool/campuspool/services/ratings/repository"
	ratingUsecase "github.com/campuspool/campuspool/services/ratings/usecase"
	reportHandler "github.com/campuspool/campuspool/services/reports/handler"
	reportRepository "github.com/campuspool/campuspool/services/reports/repository"
	reportUsecase "github.com/campuspool/campuspool/services/reports/usecase"
	rideGateway "github.com/campuspool/campuspool/services/rides/gateway"
	rideHandler "github.com/campuspool/campuspool/services/rides/handler"
	rideRepository "github.com/campuspool/campuspool/services/rides/repository"
	rideUsecase "github.com/campuspool/campuspool/services/rides/usecase"
	userHandler "github.com/campuspool/campuspool/services/users/handler"
	userRepository "github.com/campuspool/campuspool/services/users/repository"
	userUsecase "github.com/campuspool/campuspool/services/users/usecase"
)

func main() {
	appName := "campuspool"
	configPath := "config/campuspool.env"
	configs := config.InitConfig(configPath)

	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	db := postgresClient.GetDB()

	// repositories
	userRepo := userRepository.NewUserRepository(configs, db)
	rideRepo := rideRepository.NewRideRepository(configs, db)
	bookingRepo := bookingRepository.NewBookingRepository(configs, db)
	ratingRepo := ratingRepository.NewRatingRepository(configs, db)
	reportRepo := reportRepository.NewReportRepository(configs, db)
	messageRepo := chatRepository.NewMessageRepository(configs, db)
	presenceRepo := chatRepository.NewPresenceRepository(redisClient)

	// gateways
	rideGW := rideGateway.NewRideGW(natsClient)
	bookingGW := bookingGateway.NewBookingGW(natsClient)

	// use cases
	userUC := userUsecase.NewUserUC(configs, userRepo)
	rideUC := rideUsecase.NewRideUC(configs, rideRepo, userRepo, rideGW)
	bookingUC := bookingUsecase.NewBookingUC(configs, bookingRepo, rideRepo, userRepo, bookingGW)
	ratingUC := ratingUsecase.NewRatingUC(configs, ratingRepo, rideRepo, bookingRepo, userRepo)
	reportUC := reportUsecase.NewReportUC(configs, reportRepo, userRepo, rideRepo)
	chatUC := chatUsecase.NewChatUC(configs, messageRepo, presenceRepo, hub.NewHub())

	// chat consumes booking confirmations off NATS
	chatNats := chatHandler.NewNatsHandler(chatUC)
	if err := chatNats.Start(natsClient); err != nil {
		zapLogger.Fatal("Failed to start NATS consumers", logger.Err(err))
	}
	defer chatNats.Stop()

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	jwtMiddleware := middleware.JWTAuthMiddleware(configs.JWT)

	healthService := health.NewService()
	healthService.AddChecker("postgres", postgresClient.Ping)
	healthService.AddChecker("redis", func() error {
		return redisClient.GetClient().Ping(redisClient.GetClient().Context()).Err()
	})
	healthService.AddChecker("nats", func() error {
		if !natsClient.IsConnected() {
			return nats.ErrNotConnected
		}
		return nil
	})
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	userHandler.NewUserHandler(userUC).RegisterRoutes(e, jwtMiddleware)
	rideHandler.NewRideHandler(rideUC).RegisterRoutes(e, jwtMiddleware)
	bookingHandler.NewBookingHandler(bookingUC).RegisterRoutes(e, jwtMiddleware)
	ratingHandler.NewRatingHandler(ratingUC).RegisterRoutes(e, jwtMiddleware)
	reportHandler.NewReportHandler(reportUC).RegisterRoutes(e, jwtMiddleware)
	chatHandler.NewHistoryHandler(chatUC).RegisterRoutes(e, jwtMiddleware)
	chatHandler.NewChatWSHandler(chatUC, configs.JWT).RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server shutdown failed", logger.Err(err))
	}
}
