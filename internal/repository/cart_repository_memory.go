package repository

import (
	"sync"
	"time"

	"github.com/carvedrock/storefront/internal/models"
)

// MemoryCartRepository 进程内购物车仓库。无数据库模式使用，重启后数据丢失。
// 实例由 provider 注入而非包级全局，并发访问由互斥锁保护
type MemoryCartRepository struct {
	mu     sync.Mutex
	carts  map[string][]models.CartItem
	nextID uint
}

// NewMemoryCartRepository 创建内存购物车仓库
func NewMemoryCartRepository() *MemoryCartRepository {
	return &MemoryCartRepository{
		carts: make(map[string][]models.CartItem),
	}
}

// GetCart 获取购物车项，始终返回副本，调用方修改不会影响存储
func (r *MemoryCartRepository) GetCart(sessionKey, userKey string) ([]models.CartItem, error) {
	key := ResolveCartKey(sessionKey, userKey)
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]models.CartItem, len(r.carts[key]))
	copy(items, r.carts[key])
	return items, nil
}

// SaveCart 整体替换购物车。未持久化的项分配自增 ID 并回写到调用方切片，
// 与关系型实现保持同一契约
func (r *MemoryCartRepository) SaveCart(sessionKey, userKey string, items []models.CartItem) error {
	key := ResolveCartKey(sessionKey, userKey)
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range items {
		if items[i].ID == 0 {
			r.nextID++
			items[i].ID = r.nextID
			items[i].UserID = key
		}
	}
	stored := make([]models.CartItem, len(items))
	copy(stored, items)
	r.carts[key] = stored
	return nil
}

// ClearCart 清空购物车，幂等
func (r *MemoryCartRepository) ClearCart(sessionKey, userKey string) error {
	key := ResolveCartKey(sessionKey, userKey)
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, key)
	return nil
}

// MoveCart 迁移购物车分区，商品冲突时数量合并
func (r *MemoryCartRepository) MoveCart(fromKey, toKey string) error {
	if fromKey == "" || toKey == "" || fromKey == toKey {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	fromItems := r.carts[fromKey]
	if len(fromItems) == 0 {
		return nil
	}
	toItems := r.carts[toKey]
	for _, item := range fromItems {
		merged := false
		for i := range toItems {
			if toItems[i].ProductID == item.ProductID {
				toItems[i].Quantity += item.Quantity
				merged = true
				break
			}
		}
		if !merged {
			item.UserID = toKey
			toItems = append(toItems, item)
		}
	}
	r.carts[toKey] = toItems
	delete(r.carts, fromKey)
	return nil
}

// DeleteAddedBefore 按保留期清理过期购物车项
func (r *MemoryCartRepository) DeleteAddedBefore(cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var removed int64
	for key, items := range r.carts {
		kept := items[:0]
		for _, item := range items {
			if item.AddedAt.Before(cutoff) {
				removed++
				continue
			}
			kept = append(kept, item)
		}
		if len(kept) == 0 {
			delete(r.carts, key)
			continue
		}
		r.carts[key] = kept
	}
	return removed, nil
}
