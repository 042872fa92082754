package repository

import (
	"time"

	"github.com/carvedrock/storefront/internal/models"

	"gorm.io/gorm"
)

// CartRepository 购物车数据访问接口。所有操作以 sessionKey/userKey 解析出的
// 分区 key 寻址：userKey 非空时优先，否则退回 sessionKey。
// 购物车不存在不视为错误，返回空列表
type CartRepository interface {
	GetCart(sessionKey, userKey string) ([]models.CartItem, error)
	// SaveCart 写入整个购物车。ID 为 0 的项执行插入并把生成的 ID 回写到
	// 调用方切片中；ID 非 0 的项仅更新数量
	SaveCart(sessionKey, userKey string, items []models.CartItem) error
	// ClearCart 清空购物车，幂等
	ClearCart(sessionKey, userKey string) error
	// MoveCart 把 fromKey 下的购物车迁移到 toKey，商品冲突时数量合并
	MoveCart(fromKey, toKey string) error
	// DeleteAddedBefore 删除加入时间早于 cutoff 的所有购物车项，返回删除行数
	DeleteAddedBefore(cutoff time.Time) (int64, error)
}

// ResolveCartKey 解析购物车分区 key：userKey 非空时覆盖 sessionKey
func ResolveCartKey(sessionKey, userKey string) string {
	if userKey != "" {
		return userKey
	}
	return sessionKey
}

// GormCartRepository GORM 实现
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// GetCart 获取购物车项
func (r *GormCartRepository) GetCart(sessionKey, userKey string) ([]models.CartItem, error) {
	key := ResolveCartKey(sessionKey, userKey)
	items := make([]models.CartItem, 0)
	if err := r.db.Where("user_id = ?", key).Order("id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// SaveCart 保存购物车，整体替换该分区的存量项集合。
// 插入与更新在同一事务内执行，中途失败不留半成品
func (r *GormCartRepository) SaveCart(sessionKey, userKey string, items []models.CartItem) error {
	key := ResolveCartKey(sessionKey, userKey)
	return r.db.Transaction(func(tx *gorm.DB) error {
		keepIDs := make([]uint, 0, len(items))
		for i := range items {
			if items[i].ID != 0 {
				keepIDs = append(keepIDs, items[i].ID)
			}
		}
		// 不在新集合中的存量项一并删除
		query := tx.Where("user_id = ?", key)
		if len(keepIDs) > 0 {
			query = query.Where("id NOT IN ?", keepIDs)
		}
		if err := query.Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		for i := range items {
			if items[i].ID == 0 {
				items[i].UserID = key
				if err := tx.Create(&items[i]).Error; err != nil {
					return err
				}
				continue
			}
			// 已持久化的项除数量外视为不可变
			if err := tx.Model(&models.CartItem{}).
				Where("id = ?", items[i].ID).
				Update("quantity", items[i].Quantity).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ClearCart 清空购物车
func (r *GormCartRepository) ClearCart(sessionKey, userKey string) error {
	key := ResolveCartKey(sessionKey, userKey)
	return r.db.Where("user_id = ?", key).Delete(&models.CartItem{}).Error
}

// MoveCart 迁移购物车分区。fromKey 下的项归属改为 toKey，
// toKey 已有同一商品时合并数量并删除来源项
func (r *GormCartRepository) MoveCart(fromKey, toKey string) error {
	if fromKey == "" || toKey == "" || fromKey == toKey {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		var fromItems []models.CartItem
		if err := tx.Where("user_id = ?", fromKey).Find(&fromItems).Error; err != nil {
			return err
		}
		if len(fromItems) == 0 {
			return nil
		}
		var toItems []models.CartItem
		if err := tx.Where("user_id = ?", toKey).Find(&toItems).Error; err != nil {
			return err
		}
		existing := make(map[uint]*models.CartItem, len(toItems))
		for i := range toItems {
			existing[toItems[i].ProductID] = &toItems[i]
		}
		for i := range fromItems {
			target, ok := existing[fromItems[i].ProductID]
			if !ok {
				if err := tx.Model(&models.CartItem{}).
					Where("id = ?", fromItems[i].ID).
					Update("user_id", toKey).Error; err != nil {
					return err
				}
				continue
			}
			if err := tx.Model(&models.CartItem{}).
				Where("id = ?", target.ID).
				Update("quantity", target.Quantity+fromItems[i].Quantity).Error; err != nil {
				return err
			}
			if err := tx.Delete(&models.CartItem{}, fromItems[i].ID).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteAddedBefore 按保留期清理过期购物车项
func (r *GormCartRepository) DeleteAddedBefore(cutoff time.Time) (int64, error) {
	result := r.db.Where("added_at < ?", cutoff).Delete(&models.CartItem{})
	return result.RowsAffected, result.Error
}
