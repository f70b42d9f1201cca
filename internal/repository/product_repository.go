package repository

import (
	"context"
	"errors"

	"shopcli/internal/domain/model"
)

var (
	ErrNotFound = errors.New("not found")

	//一意制約違反（メール、カードのニックネームなど）
	ErrDuplicate = errors.New("duplicate key")

	//外部キー違反（存在しない顧客へのカード登録など）
	ErrForeignKey = errors.New("foreign key violation")
)

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	//公開中の商品を名前順で返す
	ListActive(ctx context.Context) ([]model.Product, error)

	//公開中の商品を名前・カテゴリの部分一致で検索
	SearchActive(ctx context.Context, term string) ([]model.Product, error)

	//IDで商品を1件取得（公開中のみ）
	FindActiveByID(ctx context.Context, id int64) (model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)

	//公開/非公開の切り替え。削除はしない。
	SetActive(ctx context.Context, id int64, isActive bool) error
}

// 在庫の減算だけを約束。チェックと減算は1文で行う。
type InventoryRepository interface {
	// 在庫が足りるときだけ減算。足りなければ false（無変更）。
	DecreaseStockIfEnough(ctx context.Context, productID int64, qty int64) (bool, error)
}
