package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"shopcli/internal/domain/model"
	repo "shopcli/internal/repository"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) Create(ctx context.Context, order model.Order) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&order).Error; err != nil {
		return 0, translate(err)
	}
	return order.ID, nil
}

func (r *OrderGormRepository) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).Where("id = ?", orderID).First(&o).Error
	if err != nil {
		return model.Order{}, translate(err)
	}
	return o, nil
}

// PENDINGの注文だけを確定させる。
// WHEREに状態を含めるので、二重確定はRowsAffected=0で検出できる。
func (r *OrderGormRepository) FinalizePending(ctx context.Context, orderID int64, total decimal.Decimal, status model.OrderStatus) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ? AND status = ?", orderID, model.OrderStatusPending).
		Updates(map[string]interface{}{
			"total_amount": total,
			"status":       status,
		})

	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// 新しい順の一覧（顧客メール・カード名を結合済み）。
func (r *OrderGormRepository) ListSummaries(ctx context.Context) ([]repo.OrderSummary, error) {
	var rows []repo.OrderSummary
	err := r.db.WithContext(ctx).
		Table("orders").
		Select("orders.id, customers.email AS customer_mail, credit_cards.nickname AS card_nickname, orders.status, orders.total_amount, orders.created_at").
		Joins("JOIN customers ON customers.id = orders.customer_id").
		Joins("JOIN credit_cards ON credit_cards.id = orders.payment_card_id").
		Order("orders.created_at desc").
		Order("orders.id desc").
		Scan(&rows).Error
	if err != nil {
		return []repo.OrderSummary{}, err
	}
	return rows, nil
}
