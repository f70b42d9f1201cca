package repository

import (
	"context"

	"gorm.io/gorm"

	"shopcli/internal/domain/model"
)

type CreditCardGormRepository struct {
	db *gorm.DB
}

func NewCreditCardGormRepository(db *gorm.DB) *CreditCardGormRepository {
	return &CreditCardGormRepository{db: db}
}

// カード登録。ニックネーム重複は repo.ErrDuplicate、
// 顧客FK欠損は repo.ErrForeignKey になる。
func (r *CreditCardGormRepository) Create(ctx context.Context, card model.CreditCard) (model.CreditCard, error) {
	if err := r.db.WithContext(ctx).Create(&card).Error; err != nil {
		return model.CreditCard{}, translate(err)
	}
	return card, nil
}

func (r *CreditCardGormRepository) ListByCustomerID(ctx context.Context, customerID int64) ([]model.CreditCard, error) {
	var cards []model.CreditCard
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("nickname asc").
		Find(&cards).Error
	if err != nil {
		return []model.CreditCard{}, err
	}
	return cards, nil
}

func (r *CreditCardGormRepository) FindByCustomerAndNickname(ctx context.Context, customerID int64, nickname string) (model.CreditCard, error) {
	var card model.CreditCard
	err := r.db.WithContext(ctx).
		Where("customer_id = ? AND nickname = ?", customerID, nickname).
		First(&card).Error
	if err != nil {
		return model.CreditCard{}, translate(err)
	}
	return card, nil
}
