package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	domainerr "shopcli/internal/domain/errors"
	"shopcli/internal/domain/model"
	repo "shopcli/internal/repository"
)

// =====================
// Mocks
// =====================

type CardRepoMock struct{ mock.Mock }

func (m *CardRepoMock) Create(ctx context.Context, card model.CreditCard) (model.CreditCard, error) {
	args := m.Called(ctx, card)
	c, _ := args.Get(0).(model.CreditCard)
	return c, args.Error(1)
}

func (m *CardRepoMock) ListByCustomerID(ctx context.Context, customerID int64) ([]model.CreditCard, error) {
	args := m.Called(ctx, customerID)
	cards, _ := args.Get(0).([]model.CreditCard)
	return cards, args.Error(1)
}

func (m *CardRepoMock) FindByCustomerAndNickname(ctx context.Context, customerID int64, nickname string) (model.CreditCard, error) {
	args := m.Called(ctx, customerID, nickname)
	c, _ := args.Get(0).(model.CreditCard)
	return c, args.Error(1)
}

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) FinalizePending(ctx context.Context, orderID int64, total decimal.Decimal, status model.OrderStatus) (bool, error) {
	args := m.Called(ctx, orderID, total, status)
	return args.Bool(0), args.Error(1)
}

func (m *OrderRepoMock) ListSummaries(ctx context.Context) ([]repo.OrderSummary, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]repo.OrderSummary)
	return rows, args.Error(1)
}

type OrderItemRepoMock struct{ mock.Mock }

func (m *OrderItemRepoMock) Create(ctx context.Context, item *model.OrderItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *OrderItemRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.OrderItem)
	return items, args.Error(1)
}

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) ListActive(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) SearchActive(ctx context.Context, term string) ([]model.Product, error) {
	args := m.Called(ctx, term)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) FindActiveByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *ProductRepoMock) SetActive(ctx context.Context, id int64, isActive bool) error {
	args := m.Called(ctx, id, isActive)
	return args.Error(0)
}

type InventoryRepoMock struct{ mock.Mock }

func (m *InventoryRepoMock) DecreaseStockIfEnough(ctx context.Context, productID int64, qty int64) (bool, error) {
	args := m.Called(ctx, productID, qty)
	return args.Bool(0), args.Error(1)
}

// TxManagerStub はトランザクションを張らず同じモック束でfnを呼ぶ。
type txReposStub struct {
	orders     *OrderRepoMock
	orderItems *OrderItemRepoMock
	products   *ProductRepoMock
	inventory  *InventoryRepoMock
}

func (r *txReposStub) Orders() repo.OrderRepository         { return r.orders }
func (r *txReposStub) OrderItems() repo.OrderItemRepository { return r.orderItems }
func (r *txReposStub) Products() repo.ProductRepository     { return r.products }
func (r *txReposStub) Inventory() repo.InventoryRepository  { return r.inventory }

type TxManagerStub struct{ repos *txReposStub }

func (m *TxManagerStub) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(m.repos)
}

func newOrderFixture() (*OrderUsecase, *CardRepoMock, *txReposStub) {
	cards := new(CardRepoMock)
	stub := &txReposStub{
		orders:     new(OrderRepoMock),
		orderItems: new(OrderItemRepoMock),
		products:   new(ProductRepoMock),
		inventory:  new(InventoryRepoMock),
	}
	uc := NewOrderUsecase(&TxManagerStub{repos: stub}, cards, stub.orders)
	return uc, cards, stub
}

func assertErrContains(t *testing.T, err error, want string) {
	t.Helper()
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), want)
	}
}

// =====================
// 支払い方法ゲート
// =====================

func TestOrderUsecase_ListCardOptions_NoPaymentMethod(t *testing.T) {
	ctx := context.Background()
	uc, cards, stub := newOrderFixture()

	cards.On("ListByCustomerID", mock.Anything, int64(7)).Return([]model.CreditCard{}, nil)

	_, err := uc.ListCardOptions(ctx, 7)
	assert.ErrorIs(t, err, domainerr.ErrNoPaymentMethod)

	//注文行は一切作られない
	stub.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderUsecase_StartOrder_UnknownNickname(t *testing.T) {
	ctx := context.Background()
	uc, cards, stub := newOrderFixture()

	cards.On("FindByCustomerAndNickname", mock.Anything, int64(1), "Nope").
		Return(model.CreditCard{}, repo.ErrNotFound)

	_, err := uc.StartOrder(ctx, 1, "Nope")
	assert.ErrorIs(t, err, domainerr.ErrUnknownCard)
	stub.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderUsecase_StartOrder_CreatesPendingOrder(t *testing.T) {
	ctx := context.Background()
	uc, cards, stub := newOrderFixture()

	cards.On("FindByCustomerAndNickname", mock.Anything, int64(1), "Alice-Visa").
		Return(model.CreditCard{ID: 11, CustomerID: 1, Nickname: "Alice-Visa"}, nil)

	stub.orders.On("Create", mock.Anything, mock.MatchedBy(func(o model.Order) bool {
		return o.CustomerID == 1 &&
			o.PaymentCardID == 11 &&
			o.Status == model.OrderStatusPending &&
			o.TotalAmount.IsZero() &&
			o.IdempotencyKey != ""
	})).Return(int64(42), nil)

	orderID, err := uc.StartOrder(ctx, 1, "Alice-Visa")
	assert.NoError(t, err)
	assert.Equal(t, int64(42), orderID)

	stub.orders.AssertExpectations(t)
}

// =====================
// 明細追加
// =====================

func TestOrderUsecase_AddItem_SnapshotsPriceAndDecrements(t *testing.T) {
	ctx := context.Background()
	uc, _, stub := newOrderFixture()

	price := decimal.RequireFromString("9.99")

	stub.orders.On("FindByID", mock.Anything, int64(42)).
		Return(model.Order{ID: 42, Status: model.OrderStatusPending}, nil)
	stub.products.On("FindActiveByID", mock.Anything, int64(1)).
		Return(model.Product{ID: 1, Name: "Coffee Beans 1kg", Price: price, InventoryQty: 5, IsActive: true}, nil)
	stub.inventory.On("DecreaseStockIfEnough", mock.Anything, int64(1), int64(3)).
		Return(true, nil)
	stub.orderItems.On("Create", mock.Anything, mock.MatchedBy(func(it *model.OrderItem) bool {
		return it.OrderID == 42 &&
			it.ProductID == 1 &&
			it.Quantity == 3 &&
			it.UnitPrice.Equal(price) &&
			it.LineTotal.Equal(decimal.RequireFromString("29.97"))
	})).Return(nil)

	out, err := uc.AddItem(ctx, 42, 1, 3)
	assert.NoError(t, err)
	assert.Equal(t, "Coffee Beans 1kg", out.ProductName)
	assert.True(t, out.LineTotal.Equal(decimal.RequireFromString("29.97")))

	stub.inventory.AssertExpectations(t)
	stub.orderItems.AssertExpectations(t)
}

func TestOrderUsecase_AddItem_InsufficientStock(t *testing.T) {
	ctx := context.Background()
	uc, _, stub := newOrderFixture()

	stub.orders.On("FindByID", mock.Anything, int64(42)).
		Return(model.Order{ID: 42, Status: model.OrderStatusPending}, nil)
	stub.products.On("FindActiveByID", mock.Anything, int64(1)).
		Return(model.Product{ID: 1, Price: decimal.RequireFromString("9.99"), InventoryQty: 2, IsActive: true}, nil)
	//条件付きUPDATEが空振り＝在庫不足、無変更
	stub.inventory.On("DecreaseStockIfEnough", mock.Anything, int64(1), int64(10)).
		Return(false, nil)

	_, err := uc.AddItem(ctx, 42, 1, 10)

	se, ok := domainerr.AsInsufficientStock(err)
	assert.True(t, ok)
	assert.Equal(t, int64(2), se.Available)
	assert.Equal(t, int64(10), se.Requested)

	stub.orderItems.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderUsecase_AddItem_ProductNotFound(t *testing.T) {
	ctx := context.Background()
	uc, _, stub := newOrderFixture()

	stub.orders.On("FindByID", mock.Anything, int64(42)).
		Return(model.Order{ID: 42, Status: model.OrderStatusPending}, nil)
	stub.products.On("FindActiveByID", mock.Anything, int64(99)).
		Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.AddItem(ctx, 42, 99, 1)
	assert.ErrorIs(t, err, domainerr.ErrProductNotFound)

	stub.inventory.AssertNotCalled(t, "DecreaseStockIfEnough", mock.Anything, mock.Anything, mock.Anything)
	stub.orderItems.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderUsecase_AddItem_InvalidQuantity(t *testing.T) {
	uc, _, _ := newOrderFixture()

	_, err := uc.AddItem(context.Background(), 42, 1, 0)
	assertErrContains(t, err, "quantity")
}

func TestOrderUsecase_AddItem_OrderAlreadyFinalized(t *testing.T) {
	ctx := context.Background()
	uc, _, stub := newOrderFixture()

	stub.orders.On("FindByID", mock.Anything, int64(42)).
		Return(model.Order{ID: 42, Status: model.OrderStatusPaid}, nil)

	_, err := uc.AddItem(ctx, 42, 1, 1)
	assert.ErrorIs(t, err, domainerr.ErrOrderFinalized)
}

// =====================
// 確定
// =====================

func TestOrderUsecase_Finalize_ZeroItemsCancelled(t *testing.T) {
	ctx := context.Background()
	uc, _, stub := newOrderFixture()

	stub.orders.On("FindByID", mock.Anything, int64(42)).
		Return(model.Order{ID: 42, Status: model.OrderStatusPending}, nil)
	stub.orderItems.On("ListByOrderID", mock.Anything, int64(42)).
		Return([]model.OrderItem{}, nil)
	stub.orders.On("FinalizePending", mock.Anything, int64(42),
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.IsZero() }),
		model.OrderStatusCancelled).Return(true, nil)

	out, err := uc.Finalize(ctx, 42)
	assert.NoError(t, err)
	assert.Equal(t, model.OrderStatusCancelled, out.Status)
	assert.True(t, out.Total.IsZero())

	stub.orders.AssertExpectations(t)
}

func TestOrderUsecase_Finalize_SumsLineTotals(t *testing.T) {
	ctx := context.Background()
	uc, _, stub := newOrderFixture()

	items := []model.OrderItem{
		{OrderID: 42, ProductID: 1, Quantity: 3, LineTotal: decimal.RequireFromString("29.97")},
		{OrderID: 42, ProductID: 2, Quantity: 1, LineTotal: decimal.RequireFromString("24.50")},
	}
	want := decimal.RequireFromString("54.47")

	stub.orders.On("FindByID", mock.Anything, int64(42)).
		Return(model.Order{ID: 42, Status: model.OrderStatusPending}, nil)
	stub.orderItems.On("ListByOrderID", mock.Anything, int64(42)).
		Return(items, nil)
	stub.orders.On("FinalizePending", mock.Anything, int64(42),
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) }),
		model.OrderStatusPaid).Return(true, nil)

	out, err := uc.Finalize(ctx, 42)
	assert.NoError(t, err)
	assert.Equal(t, model.OrderStatusPaid, out.Status)
	assert.True(t, out.Total.Equal(want))

	stub.orders.AssertExpectations(t)
}

func TestOrderUsecase_Finalize_Twice(t *testing.T) {
	ctx := context.Background()
	uc, _, stub := newOrderFixture()

	stub.orders.On("FindByID", mock.Anything, int64(42)).
		Return(model.Order{ID: 42, Status: model.OrderStatusPaid}, nil)

	_, err := uc.Finalize(ctx, 42)
	assert.ErrorIs(t, err, domainerr.ErrOrderFinalized)

	stub.orders.AssertNotCalled(t, "FinalizePending", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderUsecase_Finalize_SealRace(t *testing.T) {
	ctx := context.Background()
	uc, _, stub := newOrderFixture()

	//FindByIDの後に他所で確定されたケース：WHERE status=PENDING が空振り
	stub.orders.On("FindByID", mock.Anything, int64(42)).
		Return(model.Order{ID: 42, Status: model.OrderStatusPending}, nil)
	stub.orderItems.On("ListByOrderID", mock.Anything, int64(42)).
		Return([]model.OrderItem{}, nil)
	stub.orders.On("FinalizePending", mock.Anything, int64(42), mock.Anything, model.OrderStatusCancelled).
		Return(false, nil)

	_, err := uc.Finalize(ctx, 42)
	assert.ErrorIs(t, err, domainerr.ErrOrderFinalized)
}
