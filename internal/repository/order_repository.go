package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"shopcli/internal/domain/model"
)

// 注文一覧表示用の行（顧客メール・カード名を結合済み）。
type OrderSummary struct {
	ID           int64
	CustomerMail string
	CardNickname string
	Status       model.OrderStatus
	TotalAmount  decimal.Decimal
	CreatedAt    time.Time
}

type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (int64, error)
	FindByID(ctx context.Context, orderID int64) (model.Order, error)

	//PENDINGの注文だけを確定させる。対象が無ければ false（既に終端か、存在しない）。
	FinalizePending(ctx context.Context, orderID int64, total decimal.Decimal, status model.OrderStatus) (bool, error)

	//新しい順の一覧
	ListSummaries(ctx context.Context) ([]OrderSummary, error)
}

type OrderItemRepository interface {
	Create(ctx context.Context, item *model.OrderItem) error
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error)
}
