package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerr "shopcli/internal/domain/errors"
	"shopcli/internal/domain/model"
	repo "shopcli/internal/repository"
)

// OrderUsecase は注文作成フロー全体を受け持つ。
// 支払い方法ゲート → 明細の逐次追加 → 確定。
type OrderUsecase struct {
	tx     repo.TransactionManager
	cards  repo.CreditCardRepository
	orders repo.OrderRepository
}

func NewOrderUsecase(
	tx repo.TransactionManager,
	cards repo.CreditCardRepository,
	orders repo.OrderRepository,
) *OrderUsecase {
	return &OrderUsecase{tx: tx, cards: cards, orders: orders}
}

// カード選択肢（表示用）。
type CardOption struct {
	ID       int64
	Nickname string
	Brand    string
	Last4    string
}

// ListCardOptions は注文開始のゲート。
// カードが1枚も無ければ ErrNoPaymentMethod（この時点では何も書き込まない）。
func (u *OrderUsecase) ListCardOptions(ctx context.Context, customerID int64) ([]CardOption, error) {
	if customerID <= 0 {
		return nil, fmt.Errorf("invalid customer id")
	}

	cards, err := u.cards.ListByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if len(cards) == 0 {
		return nil, domainerr.ErrNoPaymentMethod
	}

	opts := make([]CardOption, 0, len(cards))
	for _, c := range cards {
		opts = append(opts, CardOption{ID: c.ID, Nickname: c.Nickname, Brand: c.Brand, Last4: c.Last4})
	}
	return opts, nil
}

// StartOrder はニックネームをカードIDに解決してPENDINGの注文を作る。
// ニックネームが解決できない間は注文行を作らない。
func (u *OrderUsecase) StartOrder(ctx context.Context, customerID int64, nickname string) (int64, error) {
	if customerID <= 0 {
		return 0, fmt.Errorf("invalid customer id")
	}
	nickname = strings.TrimSpace(nickname)
	if nickname == "" {
		return 0, domainerr.ErrUnknownCard
	}

	card, err := u.cards.FindByCustomerAndNickname(ctx, customerID, nickname)
	if errors.Is(err, repo.ErrNotFound) {
		return 0, domainerr.ErrUnknownCard
	}
	if err != nil {
		return 0, err
	}

	orderID, err := u.orders.Create(ctx, model.Order{
		CustomerID:     customerID,
		PaymentCardID:  card.ID,
		Status:         model.OrderStatusPending,
		TotalAmount:    decimal.Zero,
		IdempotencyKey: uuid.NewString(),
	})
	if errors.Is(err, repo.ErrForeignKey) {
		return 0, domainerr.ErrUnknownCustomer
	}
	if err != nil {
		return 0, err
	}
	return orderID, nil
}

type AddItemOutput struct {
	ProductName string
	Quantity    int64
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
}

// AddItem は明細1件の追加。商品確認・在庫減算・明細INSERTを
// 1トランザクションで行い、途中で失敗したら何も残さない。
// ErrProductNotFound / InsufficientStockError はループ継続可能なエラー。
func (u *OrderUsecase) AddItem(ctx context.Context, orderID int64, productID int64, qty int64) (AddItemOutput, error) {
	if orderID <= 0 {
		return AddItemOutput{}, fmt.Errorf("invalid order id")
	}
	if productID <= 0 {
		return AddItemOutput{}, domainerr.ErrProductNotFound
	}
	if qty < 1 {
		return AddItemOutput{}, fmt.Errorf("quantity must be >= 1")
	}

	var out AddItemOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err != nil {
			return err
		}
		if o.Status != model.OrderStatusPending {
			return domainerr.ErrOrderFinalized
		}

		//公開中の商品だけが対象
		p, err := r.Products().FindActiveByID(ctx, productID)
		if errors.Is(err, repo.ErrNotFound) {
			return domainerr.ErrProductNotFound
		}
		if err != nil {
			return err
		}

		//在庫チェックと減算は1文（足りなければ無変更でfalse）
		ok, err := r.Inventory().DecreaseStockIfEnough(ctx, productID, qty)
		if err != nil {
			return err
		}
		if !ok {
			return &domainerr.InsufficientStockError{
				ProductID: productID,
				Requested: qty,
				Available: p.InventoryQty,
			}
		}

		//追加時点の価格スナップショット
		lineTotal := p.Price.Mul(decimal.NewFromInt(qty))
		item := model.OrderItem{
			OrderID:   orderID,
			ProductID: productID,
			Quantity:  qty,
			UnitPrice: p.Price,
			LineTotal: lineTotal,
		}
		if err := r.OrderItems().Create(ctx, &item); err != nil {
			return err
		}

		out = AddItemOutput{
			ProductName: p.Name,
			Quantity:    qty,
			UnitPrice:   p.Price,
			LineTotal:   lineTotal,
		}
		return nil
	})

	if err != nil {
		return AddItemOutput{}, err
	}
	return out, nil
}

type FinalizeOutput struct {
	Total  decimal.Decimal
	Status model.OrderStatus
}

// Finalize は明細合計から注文を確定する。PENDING → PAID / CANCELLED の
// 一方向の遷移で、二度目の呼び出しは ErrOrderFinalized。
func (u *OrderUsecase) Finalize(ctx context.Context, orderID int64) (FinalizeOutput, error) {
	if orderID <= 0 {
		return FinalizeOutput{}, fmt.Errorf("invalid order id")
	}

	var out FinalizeOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err != nil {
			return err
		}
		if o.Status != model.OrderStatusPending {
			return domainerr.ErrOrderFinalized
		}

		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return err
		}

		total := decimal.Zero
		for _, it := range items {
			total = total.Add(it.LineTotal)
		}

		//明細ゼロ（合計0）はCANCELLEDで終端にする
		status := model.OrderStatusCancelled
		if total.GreaterThan(decimal.Zero) {
			status = model.OrderStatusPaid
		}

		sealed, err := r.Orders().FinalizePending(ctx, orderID, total, status)
		if err != nil {
			return err
		}
		if !sealed {
			return domainerr.ErrOrderFinalized
		}

		out = FinalizeOutput{Total: total, Status: status}
		return nil
	})

	if err != nil {
		return FinalizeOutput{}, err
	}
	return out, nil
}

// ListOrders は表示用の注文一覧（新しい順）。
func (u *OrderUsecase) ListOrders(ctx context.Context) ([]repo.OrderSummary, error) {
	return u.orders.ListSummaries(ctx)
}
