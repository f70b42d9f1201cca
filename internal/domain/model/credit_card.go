package model

import "time"

// 登録済みカード。実際の決済には使わない（番号下4桁のみ保持）。
type CreditCard struct {
	ID         int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID int64 `gorm:"not null;index" json:"customer_id"`

	//Visa / Mastercard / Amex など
	Brand string `gorm:"type:varchar(50);not null" json:"brand"`

	Last4    string `gorm:"type:varchar(4);not null" json:"last4"`
	ExpMonth int    `gorm:"not null" json:"exp_month"`
	ExpYear  int    `gorm:"not null" json:"exp_year"`

	//選択用の表示名（Alice-Visa など）。一意。
	Nickname string `gorm:"type:varchar(100);not null;uniqueIndex" json:"nickname"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`

	//FK制約をAutoMigrateに作らせるための参照
	Customer *Customer `gorm:"foreignKey:CustomerID" json:"-"`
}
