package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/captcha-api/internal/config"
	"github.com/yourusername/captcha-api/internal/handler"
	pgRepo "github.com/yourusername/captcha-api/internal/repository/postgres"
	"github.com/yourusername/captcha-api/internal/service"
	"github.com/yourusername/captcha-api/pkg/database"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database)
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	// Применяем миграции
	if err := database.MigrateDB(db, cfg.Database.MigrationsPath); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	// Репозитории, сервисы, обработчики
	captchaRepo := pgRepo.NewCaptchaRepo(db)
	captchaService := service.NewCaptchaService(captchaRepo)
	captchaHandler := handler.NewCaptchaHandler(captchaService)
	healthHandler := handler.NewHealthHandler(db)

	// В production не доверяем заголовкам прокси (защита от IP spoofing),
	// в development доверяем localhost
	var trustedProxies []string
	if gin.Mode() != gin.ReleaseMode {
		trustedProxies = []string{"127.0.0.1", "::1"}
	}

	router := handler.NewRouter(handler.RouterDeps{
		CaptchaHandler: captchaHandler,
		HealthHandler:  healthHandler,
		AllowOrigins:   cfg.CORS.AllowOrigins,
		TrustedProxies: trustedProxies,
	})

	// HTTP сервер с тайм-аутами для защиты от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	// Закрываем пул соединений после остановки сервера
	if sqlDB, err := database.GetSQLDB(db); err != nil {
		log.Printf("Error getting sql.DB for close: %v", err)
	} else if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database: %v", err)
	}

	log.Println("Server exited")
}
