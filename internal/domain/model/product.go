package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 商品。削除はせず is_active=false で非公開にする。
type Product struct {
	ID       int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string          `gorm:"type:varchar(255);not null" json:"name"`
	Category string          `gorm:"type:varchar(100);not null" json:"category"`
	Price    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`

	//在庫数。0未満にはならない（減算は条件付きUPDATEのみ）。
	InventoryQty int64 `gorm:"not null" json:"inventory_qty"`

	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
