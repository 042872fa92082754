package models

import (
	"time"

	"github.com/carvedrock/storefront/internal/constants"

	"gorm.io/gorm"
)

// SampleProducts 无数据库模式下的固定示例目录
func SampleProducts() []Product {
	return []Product{
		{ID: 1, Name: "Sample Product 1", Description: "Sample Product Description 1", ImageURL: "images/products/no-sign_red.png", Price: NewMoneyFromString("9.99"), Category: constants.CategoryClothing},
		{ID: 2, Name: "Sample Product 2", Description: "Sample Product Description 2", ImageURL: "images/products/no-sign_red.png", Price: NewMoneyFromString("19.99"), Category: constants.CategoryClothing},
		{ID: 3, Name: "Sample Product 3", Description: "Sample Product Description 3", ImageURL: "images/products/no-sign_red.png", Price: NewMoneyFromString("29.99"), Category: constants.CategoryClothing},
		{ID: 4, Name: "Sample Product 4", Description: "Sample Product Description 4", ImageURL: "images/products/no-sign_red.png", Price: NewMoneyFromString("39.99"), Category: constants.CategoryFootwear},
		{ID: 5, Name: "Sample Product 5", Description: "Sample Product Description 5", ImageURL: "images/products/no-sign_red.png", Price: NewMoneyFromString("49.99"), Category: constants.CategoryFootwear},
		{ID: 6, Name: "Sample Product 6", Description: "Sample Product Description 6", ImageURL: "images/products/no-sign_red.png", Price: NewMoneyFromString("59.99"), Category: constants.CategoryFootwear},
		{ID: 7, Name: "Sample Product 7", Description: "Sample Product Description 7", ImageURL: "images/products/no-sign_red.png", Price: NewMoneyFromString("69.99"), Category: constants.CategoryEquipment},
		{ID: 8, Name: "Sample Product 8", Description: "Sample Product Description 8", ImageURL: "images/products/no-sign_red.png", Price: NewMoneyFromString("79.99"), Category: constants.CategoryEquipment},
		{ID: 9, Name: "Sample Product 9", Description: "Sample Product Description 9", ImageURL: "images/products/no-sign_red.png", Price: NewMoneyFromString("89.99"), Category: constants.CategoryEquipment},
	}
}

// FixtureProducts 数据库模式首次启动时灌入的目录数据
func FixtureProducts() []Product {
	return []Product{
		{Name: "PeakPulse Hiking Boots", Description: "Durable brown leather hiking boots with rugged soles, perfect for tough trails. Features ankle support and breathable lining.", Category: constants.CategoryFootwear, ImageURL: "images/products/boots/shutterstock_66842440.jpg", Price: NewMoneyFromString("79.99")},
		{Name: "TrailTrek Hiking Sandals", Description: "Lightweight tan hiking sandals with ventilated design and adjustable straps, ideal for warm-weather adventures.", Category: constants.CategoryFootwear, ImageURL: "images/products/boots/shutterstock_222721876.jpg", Price: NewMoneyFromString("59.99")},
		{Name: "SummitStrider Trail Shoes", Description: "Sturdy gray trail shoes with pink accents, offering excellent grip and flexibility for all-terrain hikes.", Category: constants.CategoryFootwear, ImageURL: "images/products/boots/shutterstock_1121278055.jpg", Price: NewMoneyFromString("69.99")},
		{Name: "ClimbForce Climbing Shoes", Description: "Precision-fit climbing shoes with sticky rubber soles, designed for enhanced grip on rocky surfaces.", Category: constants.CategoryFootwear, ImageURL: "images/products/boots/shutterstock_475046062.jpg", Price: NewMoneyFromString("89.99")},
		{Name: "PeakLock Carabiner", Description: "Lightweight gold carabiner with screw-lock gate, rated for 23kN, ideal for secure climbing connections.", Category: constants.CategoryEquipment, ImageURL: "images/products/climbing gear/shutterstock_362174360.jpg", Price: NewMoneyFromString("19.99")},
		{Name: "SafePeak Helmet White", Description: "Ventilated white climbing helmet with adjustable straps, offering lightweight protection for all-day comfort.", Category: constants.CategoryEquipment, ImageURL: "images/products/climbing gear/shutterstock_569026084.jpg", Price: NewMoneyFromString("49.99")},
		{Name: "SafePeak Helmet Yellow", Description: "Bright yellow climbing helmet with durable shell and ventilation, perfect for visibility and safety on climbs.", Category: constants.CategoryEquipment, ImageURL: "images/products/climbing gear/shutterstock_569026084.jpg", Price: NewMoneyFromString("49.99")},
		{Name: "SafePeak Helmet Red", Description: "Red climbing helmet with integrated headlamp, designed for caving and night climbs with impact resistance.", Category: constants.CategoryEquipment, ImageURL: "images/products/climbing gear/shutterstock_64998481.jpg", Price: NewMoneyFromString("59.99")},
		{Name: "ClimbSafe Gear Set", Description: "Complete climbing kit with belay device, figure-eight descender, quickdraws, and carabiners for secure ascents.", Category: constants.CategoryEquipment, ImageURL: "images/products/climbing gear/shutterstock_279617825.jpg", Price: NewMoneyFromString("99.99")},
		{Name: "IceGrip Crampons", Description: "Durable steel crampons with adjustable straps, designed for secure footing on icy and steep terrain.", Category: constants.CategoryEquipment, ImageURL: "images/products/climbing gear/shutterstock_362683778.jpg", Price: NewMoneyFromString("79.99")},
		{Name: "FrostBite Ice Axe", Description: "Lightweight ice axe with ergonomic grip, perfect for ice climbing and mountaineering stability.", Category: constants.CategoryEquipment, ImageURL: "images/products/climbing gear/shutterstock_236845636.jpg", Price: NewMoneyFromString("89.99")},
		{Name: "PeakPulse Backpack", Description: "50L orange and black climbing backpack with multiple compartments, ideal for carrying gear on long expeditions.", Category: constants.CategoryEquipment, ImageURL: "images/products/climbing gear/shutterstock_48040747.jpg", Price: NewMoneyFromString("129.99")},
	}
}

// FixtureCartItems 演示用购物车数据（cmd/seed 使用）
func FixtureCartItems(now time.Time) []CartItem {
	return []CartItem{
		{UserID: "SampleUser123", ProductID: 1, ProductName: "PeakPulse Hiking Boots", Price: NewMoneyFromString("79.99"), Quantity: 2, AddedAt: now.Add(-24 * time.Hour)},
		{UserID: "SampleUser456", ProductID: 5, ProductName: "PeakLock Carabiner", Price: NewMoneyFromString("19.99"), Quantity: 3, AddedAt: now.Add(-12 * time.Hour)},
		{UserID: "SampleUser789", ProductID: 12, ProductName: "PeakPulse Backpack", Price: NewMoneyFromString("129.99"), Quantity: 1, AddedAt: now.Add(-6 * time.Hour)},
	}
}

// SeedProducts 目录为空时灌入固定商品数据，幂等
func SeedProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	products := FixtureProducts()
	return db.Create(&products).Error
}
