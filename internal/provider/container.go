package provider

import (
	"time"

	"github.com/carvedrock/storefront/internal/cache"
	"github.com/carvedrock/storefront/internal/config"
	"github.com/carvedrock/storefront/internal/logger"
	"github.com/carvedrock/storefront/internal/models"
	"github.com/carvedrock/storefront/internal/queue"
	"github.com/carvedrock/storefront/internal/repository"
	"github.com/carvedrock/storefront/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	ProductRepo repository.ProductRepository
	CartRepo    repository.CartRepository

	// Services
	ProductService *service.ProductService
	CartService    *service.CartService
	CartEvents     *service.CartEvents
}

// NewContainer 初始化容器。数据库已配置时使用关系型仓库，
// 否则商品走示例目录、购物车走进程内存储
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	if c.Config.Database.Configured() {
		db := models.DB
		c.ProductRepo = repository.NewProductRepository(db)
		c.CartRepo = repository.NewCartRepository(db)
		return
	}
	logger.Infow("provider_no_database_configured", "product_store", "sample", "cart_store", "memory")
	c.ProductRepo = repository.NewSampleProductRepository()
	c.CartRepo = repository.NewMemoryCartRepository()
}

func (c *Container) initServices() {
	cacheTTL := time.Duration(c.Config.Catalog.CacheTTLSeconds) * time.Second
	c.CartEvents = service.NewCartEvents()
	c.ProductService = service.NewProductService(c.ProductRepo, cacheTTL)
	c.CartService = service.NewCartService(c.CartRepo, c.CartEvents)
}
