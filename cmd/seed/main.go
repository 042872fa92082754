package main

import (
	"time"

	"github.com/carvedrock/storefront/internal/config"
	"github.com/carvedrock/storefront/internal/logger"
	"github.com/carvedrock/storefront/internal/models"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if !cfg.Database.Configured() {
		stdLog.Fatalf("未配置数据库 DSN，seed 仅在数据库模式下可用")
	}
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 灌入商品目录
	if err := models.SeedProducts(models.DB); err != nil {
		stdLog.Fatalf("Failed to seed products: %v", err)
	}
	var productCount int64
	if err := models.DB.Model(&models.Product{}).Count(&productCount).Error; err != nil {
		stdLog.Fatalf("Failed to count products: %v", err)
	}
	stdLog.Printf("Products in catalog: %d", productCount)

	// 灌入演示购物车数据，已有数据时跳过
	var cartCount int64
	if err := models.DB.Model(&models.CartItem{}).Count(&cartCount).Error; err != nil {
		stdLog.Fatalf("Failed to count cart items: %v", err)
	}
	if cartCount > 0 {
		stdLog.Printf("Cart items already exist, skipped: %d", cartCount)
		return
	}
	items := models.FixtureCartItems(time.Now().UTC())
	if err := models.DB.Create(&items).Error; err != nil {
		stdLog.Fatalf("Failed to seed cart items: %v", err)
	}
	stdLog.Printf("Seeded demo cart items: %d", len(items))
}
