package errors

import (
	"errors"
	"fmt"
)

// 業務フローで想定しているエラー。
// どれもプロセスを落とす理由にはならず、メニューに戻る。
var (
	//カード未登録。注文行を作る前に弾く。
	ErrNoPaymentMethod = errors.New("no payment method on file")

	//指定ニックネームのカードがその顧客に無い。
	ErrUnknownCard = errors.New("unknown card nickname")

	//商品が存在しないか非公開。明細ループは継続できる。
	ErrProductNotFound = errors.New("product not found")

	//確定済み注文への再確定・明細追加。
	ErrOrderFinalized = errors.New("order already finalized")

	ErrDuplicateEmail    = errors.New("email already registered")
	ErrDuplicateNickname = errors.New("card nickname already in use")
	ErrUnknownCustomer   = errors.New("customer not found")
)

// 在庫不足。現在の在庫数を持ち回って表示に使う。
type InsufficientStockError struct {
	ProductID int64
	Requested int64
	Available int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %d: requested %d, available %d",
		e.ProductID, e.Requested, e.Available)
}

func AsInsufficientStock(err error) (*InsufficientStockError, bool) {
	var se *InsufficientStockError
	ok := errors.As(err, &se)
	return se, ok
}
