package models

import (
	"time"
)

// CartItem 购物车项。UserID 为分区 key：已登录用户为 provider+principal，匿名访客为会话 key。
// ProductName 与 Price 在加入购物车时快照，之后仅 Quantity 可变
type CartItem struct {
	ID          uint      `gorm:"primarykey" json:"id"`                               // 主键，0 表示尚未持久化
	UserID      string    `gorm:"type:varchar(128);index" json:"user_id"`             // 分区 key
	ProductID   uint      `gorm:"not null" json:"product_id"`                         // 商品ID
	ProductName string    `gorm:"type:varchar(100);not null" json:"product_name"`     // 商品名称快照
	Price       Money     `gorm:"type:decimal(10,2);not null;default:0" json:"price"` // 单价快照
	Quantity    int       `gorm:"not null" json:"quantity"`                           // 数量
	AddedAt     time.Time `gorm:"index" json:"added_at"`                              // 加入时间
}

// TableName 指定表名
func (CartItem) TableName() string {
	return "cart_items"
}
