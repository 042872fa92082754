package service

import (
	"context"
	"time"

	"github.com/carvedrock/storefront/internal/logger"
	"github.com/carvedrock/storefront/internal/models"
	"github.com/carvedrock/storefront/internal/repository"
)

// CartService 购物车服务。解析调用方身份、读写购物车、
// 并在每次变更后通过 CartEvents 通知订阅者
type CartService struct {
	cartRepo repository.CartRepository
	events   *CartEvents
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, events *CartEvents) *CartService {
	return &CartService{
		cartRepo: cartRepo,
		events:   events,
	}
}

// GetCart 获取当前身份的购物车
func (s *CartService) GetCart(id Identity) ([]models.CartItem, error) {
	if id.SessionKey == "" && !id.Authenticated() {
		return nil, ErrMissingSessionKey
	}
	if err := s.adoptSessionCart(id); err != nil {
		return nil, err
	}
	return s.cartRepo.GetCart(id.SessionKey, id.UserKey())
}

// AddToCart 把商品加入购物车。已存在的商品累加数量，
// 新商品快照名称与单价后追加，保存后广播变更
func (s *CartService) AddToCart(ctx context.Context, id Identity, product *models.Product, quantity int) error {
	if product == nil {
		return ErrProductNotAvailable
	}
	if id.SessionKey == "" && !id.Authenticated() {
		return ErrMissingSessionKey
	}
	if err := s.adoptSessionCart(id); err != nil {
		return err
	}

	cart, err := s.cartRepo.GetCart(id.SessionKey, id.UserKey())
	if err != nil {
		return err
	}

	found := false
	for i := range cart {
		if cart[i].ProductID == product.ID {
			cart[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		cart = append(cart, models.CartItem{
			UserID:      id.CartKey(),
			ProductID:   product.ID,
			ProductName: product.Name,
			Price:       product.Price,
			Quantity:    quantity,
			AddedAt:     time.Now().UTC(),
		})
	}

	if err := s.cartRepo.SaveCart(id.SessionKey, id.UserKey(), cart); err != nil {
		return err
	}
	return s.events.Publish(ctx)
}

// RemoveFromCart 从购物车移除商品。商品不存在时静默返回，不保存也不广播
func (s *CartService) RemoveFromCart(ctx context.Context, id Identity, productID uint) error {
	if id.SessionKey == "" && !id.Authenticated() {
		return ErrMissingSessionKey
	}
	if err := s.adoptSessionCart(id); err != nil {
		return err
	}

	cart, err := s.cartRepo.GetCart(id.SessionKey, id.UserKey())
	if err != nil {
		return err
	}

	index := -1
	for i := range cart {
		if cart[i].ProductID == productID {
			index = i
			break
		}
	}
	if index < 0 {
		return nil
	}

	cart = append(cart[:index], cart[index+1:]...)
	if err := s.cartRepo.SaveCart(id.SessionKey, id.UserKey(), cart); err != nil {
		return err
	}
	return s.events.Publish(ctx)
}

// ClearCart 清空购物车并广播，购物车本就为空时同样广播
func (s *CartService) ClearCart(ctx context.Context, id Identity) error {
	if id.SessionKey == "" && !id.Authenticated() {
		return ErrMissingSessionKey
	}
	if err := s.adoptSessionCart(id); err != nil {
		return err
	}
	if err := s.cartRepo.ClearCart(id.SessionKey, id.UserKey()); err != nil {
		return err
	}
	return s.events.Publish(ctx)
}

// PruneStale 清理超过保留期的购物车项，返回删除数量
func (s *CartService) PruneStale(olderThan time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-olderThan)
	removed, err := s.cartRepo.DeleteAddedBefore(cutoff)
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		logger.Infow("cart_prune_completed", "removed", removed, "cutoff", cutoff)
	}
	return removed, nil
}

// adoptSessionCart 身份升级时迁移购物车：会话 key 下的存量项在
// 用户 key 首次可解析的访问中并入用户购物车，商品冲突时数量合并
func (s *CartService) adoptSessionCart(id Identity) error {
	if !id.Authenticated() || id.SessionKey == "" {
		return nil
	}
	return s.cartRepo.MoveCart(id.SessionKey, id.UserKey())
}
