package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	domainerr "shopcli/internal/domain/errors"
	"shopcli/internal/domain/model"
	repo "shopcli/internal/repository"
)

type ProductUsecase struct {
	products repo.ProductRepository
}

func NewProductUsecase(products repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{products: products}
}

func (u *ProductUsecase) ListProducts(ctx context.Context) ([]model.Product, error) {
	return u.products.ListActive(ctx)
}

func (u *ProductUsecase) SearchProducts(ctx context.Context, term string) ([]model.Product, error) {
	return u.products.SearchActive(ctx, term)
}

type AddProductInput struct {
	Name         string
	Category     string
	Price        decimal.Decimal
	InventoryQty int64
}

func (u *ProductUsecase) AddProduct(ctx context.Context, in AddProductInput) (model.Product, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.Product{}, fmt.Errorf("name required")
	}
	if in.Price.IsNegative() {
		return model.Product{}, fmt.Errorf("price must be >= 0")
	}
	if in.InventoryQty < 0 {
		return model.Product{}, fmt.Errorf("inventory qty must be >= 0")
	}

	return u.products.Create(ctx, model.Product{
		Name:         strings.TrimSpace(in.Name),
		Category:     strings.TrimSpace(in.Category),
		Price:        in.Price,
		InventoryQty: in.InventoryQty,
		IsActive:     true,
	})
}

// DeactivateProduct は商品を非公開にする。削除はしない。
func (u *ProductUsecase) DeactivateProduct(ctx context.Context, productID int64) error {
	if productID <= 0 {
		return domainerr.ErrProductNotFound
	}
	err := u.products.SetActive(ctx, productID, false)
	if errors.Is(err, repo.ErrNotFound) {
		return domainerr.ErrProductNotFound
	}
	return err
}
