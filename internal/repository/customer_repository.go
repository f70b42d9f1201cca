package repository

import (
	"context"

	"shopcli/internal/domain/model"
)

// 顧客の保存・取得を約束。
type CustomerRepository interface {
	//新規顧客作成。メール重複は ErrDuplicate。
	Create(ctx context.Context, c model.Customer) (model.Customer, error)

	FindByID(ctx context.Context, customerID int64) (model.Customer, error)
}

// カードの保存・取得を約束。
type CreditCardRepository interface {
	//カード登録。顧客FK欠損は ErrForeignKey、ニックネーム重複は ErrDuplicate。
	Create(ctx context.Context, card model.CreditCard) (model.CreditCard, error)

	//顧客が持つカード一覧
	ListByCustomerID(ctx context.Context, customerID int64) ([]model.CreditCard, error)

	//ニックネームからその顧客のカードを1件取得
	FindByCustomerAndNickname(ctx context.Context, customerID int64, nickname string) (model.CreditCard, error)
}
