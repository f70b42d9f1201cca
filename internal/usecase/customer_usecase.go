package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domainerr "shopcli/internal/domain/errors"
	"shopcli/internal/domain/model"
	repo "shopcli/internal/repository"
)

type CustomerUsecase struct {
	customers repo.CustomerRepository
	cards     repo.CreditCardRepository
}

func NewCustomerUsecase(customers repo.CustomerRepository, cards repo.CreditCardRepository) *CustomerUsecase {
	return &CustomerUsecase{customers: customers, cards: cards}
}

type RegisterCustomerInput struct {
	Name  string
	Email string
}

// RegisterCustomer は顧客登録。メール重複は ErrDuplicateEmail。
func (u *CustomerUsecase) RegisterCustomer(ctx context.Context, in RegisterCustomerInput) (model.Customer, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)

	if name == "" {
		return model.Customer{}, fmt.Errorf("name required")
	}
	if email == "" || !strings.Contains(email, "@") {
		return model.Customer{}, fmt.Errorf("valid email required")
	}

	c, err := u.customers.Create(ctx, model.Customer{Name: name, Email: email})
	if errors.Is(err, repo.ErrDuplicate) {
		return model.Customer{}, domainerr.ErrDuplicateEmail
	}
	if err != nil {
		return model.Customer{}, err
	}
	return c, nil
}

type RegisterCardInput struct {
	CustomerID int64
	Brand      string
	Last4      string
	ExpMonth   int
	ExpYear    int
	Nickname   string
}

// RegisterCard はカード登録。実決済には使わないので番号は下4桁のみ。
func (u *CustomerUsecase) RegisterCard(ctx context.Context, in RegisterCardInput) (model.CreditCard, error) {
	if in.CustomerID <= 0 {
		return model.CreditCard{}, fmt.Errorf("invalid customer id")
	}
	if strings.TrimSpace(in.Brand) == "" {
		return model.CreditCard{}, fmt.Errorf("brand required")
	}
	last4 := strings.TrimSpace(in.Last4)
	if len(last4) != 4 {
		return model.CreditCard{}, fmt.Errorf("last4 must be 4 digits")
	}
	for _, r := range last4 {
		if r < '0' || r > '9' {
			return model.CreditCard{}, fmt.Errorf("last4 must be 4 digits")
		}
	}
	if in.ExpMonth < 1 || in.ExpMonth > 12 {
		return model.CreditCard{}, fmt.Errorf("exp month must be 1-12")
	}
	if in.ExpYear < 2000 || in.ExpYear > 2100 {
		return model.CreditCard{}, fmt.Errorf("exp year must be YYYY")
	}
	nickname := strings.TrimSpace(in.Nickname)
	if nickname == "" {
		return model.CreditCard{}, fmt.Errorf("nickname required")
	}

	//FK違反をDBまで持ち込まず、先に存在確認して素直なエラーにする
	if _, err := u.customers.FindByID(ctx, in.CustomerID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.CreditCard{}, domainerr.ErrUnknownCustomer
		}
		return model.CreditCard{}, err
	}

	card, err := u.cards.Create(ctx, model.CreditCard{
		CustomerID: in.CustomerID,
		Brand:      strings.TrimSpace(in.Brand),
		Last4:      last4,
		ExpMonth:   in.ExpMonth,
		ExpYear:    in.ExpYear,
		Nickname:   nickname,
	})
	if errors.Is(err, repo.ErrDuplicate) {
		return model.CreditCard{}, domainerr.ErrDuplicateNickname
	}
	if errors.Is(err, repo.ErrForeignKey) {
		return model.CreditCard{}, domainerr.ErrUnknownCustomer
	}
	if err != nil {
		return model.CreditCard{}, err
	}
	return card, nil
}
