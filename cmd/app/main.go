package main

import (
	"context"
	"fmt"
	"log"

	"gamification-service/config"
	"gamification-service/internal/application/usecase"
	"gamification-service/internal/domain"
	"gamification-service/internal/infrastructure/cache"
	"gamification-service/internal/infrastructure/repository"
	"gamification-service/internal/middleware"
	handlers "gamification-service/internal/transport/http"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// 1. Конфиг
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Подключение к БД
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	// 3. Миграции
	log.Println("Running migrations...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.StreakCalendarEntry{},
		&domain.Badge{},
		&domain.UserBadge{},
		&domain.ChallengeAttempt{},
		&domain.Notification{},
		&domain.LeaderboardEntry{},
	); err != nil {
		log.Fatalf("Failed to migrate DB: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	// 4. Инициализация слоев
	userRepo := repository.NewUserRepository(db)
	streakRepo := repository.NewStreakRepository(db)
	badgeRepo := repository.NewBadgeRepository(db)
	challengeRepo := repository.NewChallengeRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	leaderboardCache := cache.NewLeaderboardCache(rdb)
	leaderboardRepo := repository.NewLeaderboardRepository(db, leaderboardCache)

	if err := badgeRepo.SeedCatalog(context.Background(), usecase.DefaultCatalog()); err != nil {
		log.Fatalf("Failed to seed badge catalog: %v", err)
	}

	notificationUC := usecase.NewNotificationUsecase(notificationRepo)
	streakUC := usecase.NewStreakUsecase(streakRepo, notificationUC)
	xpUC := usecase.NewXPUsecase(userRepo)
	badgeUC := usecase.NewBadgeUsecase(badgeRepo, userRepo, challengeRepo, notificationUC)
	leaderboardUC := usecase.NewLeaderboardUsecase(userRepo, leaderboardRepo)

	limiter := middleware.NewRateLimiter(rdb)

	router := handlers.NewRouter(
		handlers.NewNotificationHandler(notificationUC),
		handlers.NewStreakHandler(streakUC),
		handlers.NewBadgeHandler(badgeUC),
		handlers.NewXPHandler(xpUC),
		handlers.NewLeaderboardHandler(leaderboardUC),
		limiter,
	)

	// 5. Запуск HTTP сервера
	log.Printf("Gamification service running on :%s", cfg.HTTPPort)
	if err := router.Run(":" + cfg.HTTPPort); err != nil {
		log.Fatalf("Failed to serve: %v", err)
	}
}
