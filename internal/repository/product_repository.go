package repository

import (
	"errors"
	"strings"

	"github.com/carvedrock/storefront/internal/models"

	"gorm.io/gorm"
)

// ProductRepository 商品数据访问接口。目录对核心逻辑只读，
// 商品不存在返回 nil 而非错误
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	// GetByCategory 按分类过滤，分类为空返回全部，匹配不区分大小写
	GetByCategory(category string) ([]models.Product, error)
}

// GormProductRepository GORM 实现
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓库
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// GetAll 获取全部商品
func (r *GormProductRepository) GetAll() ([]models.Product, error) {
	products := make([]models.Product, 0)
	if err := r.db.Order("id asc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// GetByID 根据 ID 获取商品
func (r *GormProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// GetByCategory 按分类获取商品
func (r *GormProductRepository) GetByCategory(category string) ([]models.Product, error) {
	if strings.TrimSpace(category) == "" {
		return r.GetAll()
	}
	products := make([]models.Product, 0)
	if err := r.db.Where("LOWER(category) = LOWER(?)", category).Order("id asc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
