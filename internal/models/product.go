package models

// Product 商品表。目录数据加载后视为只读
type Product struct {
	ID          uint   `gorm:"primarykey" json:"id"`                             // 主键
	Name        string `gorm:"type:varchar(100);not null" json:"name"`           // 商品名称
	Description string `gorm:"type:varchar(500)" json:"description"`             // 商品描述
	Category    string `gorm:"type:varchar(100);index" json:"category"`          // 分类
	ImageURL    string `gorm:"type:varchar(200)" json:"image_url"`               // 图片地址
	Price       Money  `gorm:"type:decimal(10,2);not null;default:0" json:"price"` // 价格
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
