package handler

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/captcha-api/internal/middleware"
)

// RouterDeps содержит всё, что нужно для сборки HTTP-роутера
type RouterDeps struct {
	CaptchaHandler *CaptchaHandler
	HealthHandler  *HealthHandler
	AllowOrigins   []string
	// TrustedProxies: nil - не доверять заголовкам прокси
	TrustedProxies []string
}

// NewRouter собирает gin.Engine со всеми middleware и маршрутами
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), middleware.RequestID())

	if err := router.SetTrustedProxies(deps.TrustedProxies); err != nil {
		log.Printf("Warning: failed to set trusted proxies: %v", err)
	}

	if len(deps.AllowOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     deps.AllowOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
			ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	router.GET("/", deps.HealthHandler.Root)
	router.GET("/healthz", deps.HealthHandler.Ready)

	captchas := router.Group("/captcha")
	{
		captchas.POST("/", deps.CaptchaHandler.CreateCaptcha)
		captchas.GET("/:id", middleware.ExtractUintParam("id", "captchaID"), deps.CaptchaHandler.GetCaptcha)
	}

	return router
}
