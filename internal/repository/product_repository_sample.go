package repository

import (
	"strings"

	"github.com/carvedrock/storefront/internal/models"
)

// SampleProductRepository 固定示例目录实现，无数据库模式使用
type SampleProductRepository struct {
	products []models.Product
}

// NewSampleProductRepository 创建示例商品仓库
func NewSampleProductRepository() *SampleProductRepository {
	return &SampleProductRepository{products: models.SampleProducts()}
}

// GetAll 获取全部商品
func (r *SampleProductRepository) GetAll() ([]models.Product, error) {
	products := make([]models.Product, len(r.products))
	copy(products, r.products)
	return products, nil
}

// GetByID 根据 ID 获取商品
func (r *SampleProductRepository) GetByID(id uint) (*models.Product, error) {
	for _, product := range r.products {
		if product.ID == id {
			p := product
			return &p, nil
		}
	}
	return nil, nil
}

// GetByCategory 按分类获取商品
func (r *SampleProductRepository) GetByCategory(category string) ([]models.Product, error) {
	if strings.TrimSpace(category) == "" {
		return r.GetAll()
	}
	products := make([]models.Product, 0)
	for _, product := range r.products {
		if strings.EqualFold(product.Category, category) {
			products = append(products, product)
		}
	}
	return products, nil
}
