package router

import (
	"fmt"
	"strings"

	"github.com/carvedrock/storefront/internal/cache"
	"github.com/carvedrock/storefront/internal/config"
	publichandlers "github.com/carvedrock/storefront/internal/http/handlers/public"
	"github.com/carvedrock/storefront/internal/logger"
	"github.com/carvedrock/storefront/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "crf"
	}
	cartWriteRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:cart", redisPrefix),
		WindowSeconds: cfg.Security.CartRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.CartRateLimit.MaxRequests,
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))
	r.Use(SessionMiddleware(cfg.Session))

	// 静态文件服务（商品图片）
	r.Static("/images", "./images")

	apiV1 := r.Group("/api/v1")
	{
		apiV1.GET("/products", publicHandler.GetProducts)
		apiV1.GET("/products/:id", publicHandler.GetProductByID)

		cart := apiV1.Group("/cart")
		{
			cart.GET("", publicHandler.GetCart)
			cart.GET("/events", publicHandler.StreamCartEvents)

			limited := cart.Use(RateLimitMiddleware(cache.Client(), cartWriteRule, KeyBySession))
			{
				limited.POST("/items", publicHandler.AddCartItem)
				limited.DELETE("/items/:product_id", publicHandler.DeleteCartItem)
				limited.DELETE("", publicHandler.ClearCart)
			}
		}
	}

	return r
}
