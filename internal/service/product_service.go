package service

import (
	"context"
	"strings"
	"time"

	"github.com/carvedrock/storefront/internal/cache"
	"github.com/carvedrock/storefront/internal/constants"
	"github.com/carvedrock/storefront/internal/logger"
	"github.com/carvedrock/storefront/internal/models"
	"github.com/carvedrock/storefront/internal/repository"
)

// ProductService 商品目录服务，只读
type ProductService struct {
	productRepo repository.ProductRepository
	cacheTTL    time.Duration
}

// NewProductService 创建商品服务
func NewProductService(productRepo repository.ProductRepository, cacheTTL time.Duration) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		cacheTTL:    cacheTTL,
	}
}

// List 按分类获取商品列表，分类为空返回全部。
// 启用 Redis 时走短 TTL 缓存，缓存失败仅记录日志不影响请求
func (s *ProductService) List(ctx context.Context, category string) ([]models.Product, error) {
	cacheKey := s.cacheKey(category)
	if s.cacheTTL > 0 {
		var cached []models.Product
		hit, err := cache.GetJSON(ctx, cacheKey, &cached)
		if err != nil {
			logger.Warnw("product_cache_read_failed", "key", cacheKey, "error", err)
		} else if hit {
			return cached, nil
		}
	}

	products, err := s.productRepo.GetByCategory(category)
	if err != nil {
		return nil, err
	}

	if s.cacheTTL > 0 {
		if err := cache.SetJSON(ctx, cacheKey, products, s.cacheTTL); err != nil {
			logger.Warnw("product_cache_write_failed", "key", cacheKey, "error", err)
		}
	}
	return products, nil
}

// GetByID 根据 ID 获取商品，不存在返回 nil
func (s *ProductService) GetByID(id uint) (*models.Product, error) {
	return s.productRepo.GetByID(id)
}

func (s *ProductService) cacheKey(category string) string {
	normalized := strings.ToLower(strings.TrimSpace(category))
	if normalized == "" {
		return constants.CacheKeyProductsAll
	}
	return constants.CacheKeyProductsPrefix + normalized
}
