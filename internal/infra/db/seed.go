package db

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"shopcli/internal/domain/model"
)

// Seed はデモ用の初期データを投入する。Resetの直後に呼ぶ前提。
func Seed(gdb *gorm.DB) error {
	products := []model.Product{
		{Name: "Laptop 13\"", Category: "Electronics", Price: decimal.RequireFromString("999.00"), InventoryQty: 10, IsActive: true},
		{Name: "Wireless Mouse", Category: "Electronics", Price: decimal.RequireFromString("24.50"), InventoryQty: 40, IsActive: true},
		{Name: "Coffee Beans 1kg", Category: "Grocery", Price: decimal.RequireFromString("9.99"), InventoryQty: 25, IsActive: true},
		{Name: "Desk Lamp", Category: "Home", Price: decimal.RequireFromString("34.90"), InventoryQty: 15, IsActive: true},
		{Name: "Legacy Webcam", Category: "Electronics", Price: decimal.RequireFromString("19.00"), InventoryQty: 5, IsActive: false},
	}
	if err := gdb.Create(&products).Error; err != nil {
		return err
	}

	customers := []model.Customer{
		{Name: "Alice", Email: "alice@example.com"},
		{Name: "Bob", Email: "bob@example.com"},
	}
	if err := gdb.Create(&customers).Error; err != nil {
		return err
	}

	cards := []model.CreditCard{
		{CustomerID: customers[0].ID, Brand: "Visa", Last4: "4242", ExpMonth: 12, ExpYear: 2028, Nickname: "Alice-Visa"},
		{CustomerID: customers[0].ID, Brand: "Amex", Last4: "0005", ExpMonth: 6, ExpYear: 2027, Nickname: "Alice-Amex"},
		{CustomerID: customers[1].ID, Brand: "Mastercard", Last4: "4444", ExpMonth: 3, ExpYear: 2029, Nickname: "Bob-MC"},
	}
	return gdb.Create(&cards).Error
}
