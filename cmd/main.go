package main

import (
	"context"
	"time"

	"github.com/HifricAldar/cloud-computing/config"
	"github.com/HifricAldar/cloud-computing/controllers"
	"github.com/HifricAldar/cloud-computing/pkg/logger"
	"github.com/HifricAldar/cloud-computing/repository"
	"github.com/HifricAldar/cloud-computing/routes"
	"github.com/HifricAldar/cloud-computing/services"
	"github.com/HifricAldar/cloud-computing/utils"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// .env is optional outside local development
	_ = godotenv.Load()

	log := logger.New()
	defer log.Sync()

	cfg := config.Load()

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("database init failed", zap.Error(err))
	}

	ctx := context.Background()

	mailer, err := utils.NewMailer(ctx, cfg.AWSRegion, cfg.SESEmail)
	if err != nil {
		log.Fatal("mailer init failed", zap.Error(err))
	}

	uploader, err := utils.NewUploader(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.CloudfrontURL)
	if err != nil {
		log.Fatal("uploader init failed", zap.Error(err))
	}

	var groupCache *services.GroupCache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		groupCache = services.NewGroupCache(rdb, 10*time.Minute)
	}

	userRepo := repository.NewUserRepository(db)
	otpRepo := repository.NewOtpRepository(db)
	foodRepo := repository.NewFoodRepository(db)
	groupRepo := repository.NewFoodGroupRepository(db)
	rateRepo := repository.NewFoodRateRepository(db)
	historyRepo := repository.NewHistoryRepository(db)
	pointRepo := repository.NewPointRepository(db)

	otpSvc := services.NewOtpService(otpRepo, userRepo, mailer, log)
	userSvc := services.NewUserService(userRepo, otpSvc, cfg.JWTSecret, cfg.JWTExpiry)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	foodSvc := services.NewFoodService(foodRepo, groupRepo, rateRepo, historyRepo, groupCache, log)
	ocrClient := services.NewOCRClient(cfg.OCRServiceURL, log)
	analysisSvc := services.NewAnalysisService(ocrClient, pointRepo, historyRepo, log)
	newsSvc := services.NewNewsService(cfg.NewsAPIURL, log)
	pointSvc := services.NewPointService(pointRepo)

	google := services.NewGoogleProvider(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleCallbackURL)

	r := routes.SetupRouter(
		cfg.JWTSecret,
		controllers.NewUserController(userSvc, otpSvc, authSvc),
		controllers.NewAuthController(google, authSvc),
		controllers.NewFoodController(foodSvc, analysisSvc, newsSvc, uploader),
		controllers.NewPointController(pointSvc),
	)

	log.Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}
