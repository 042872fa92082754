package public

import (
	"github.com/carvedrock/storefront/internal/provider"
	"github.com/carvedrock/storefront/internal/service"
)

// Handler 前台接口处理器
type Handler struct {
	ProductService *service.ProductService
	CartService    *service.CartService
	CartEvents     *service.CartEvents
}

// New 创建前台处理器
func New(c *provider.Container) *Handler {
	return &Handler{
		ProductService: c.ProductService,
		CartService:    c.CartService,
		CartEvents:     c.CartEvents,
	}
}
