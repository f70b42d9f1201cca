package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	//初期状態。明細を追加できる。
	OrderStatusPending OrderStatus = "PENDING"
	//確定済み（合計 > 0）。終端。
	OrderStatusPaid OrderStatus = "PAID"
	//明細ゼロのまま確定した注文。終端。
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

type Order struct {
	ID         int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID int64 `gorm:"not null;index" json:"customer_id"`

	//支払いに使うカードへの参照。ニックネーム文字列ではなくFKで持つ。
	PaymentCardID int64 `gorm:"not null" json:"payment_card_id"`

	Status OrderStatus `gorm:"type:varchar(20);not null;index" json:"status"`

	//確定時に明細合計で埋める。PENDINGの間はゼロ。
	TotalAmount decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_amount"`

	IdempotencyKey string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"-"`
	CreatedAt      time.Time `gorm:"not null;autoCreateTime" json:"created_at"`

	//FK制約をAutoMigrateに作らせるための参照
	Customer    *Customer   `gorm:"foreignKey:CustomerID" json:"-"`
	PaymentCard *CreditCard `gorm:"foreignKey:PaymentCardID" json:"-"`
}
