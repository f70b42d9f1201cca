package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	domainerr "shopcli/internal/domain/errors"
	"shopcli/internal/domain/model"
	"shopcli/internal/usecase"
)

func (a *App) renderProducts(header string, products []model.Product) {
	fmt.Fprintf(a.out, "\n-- %s --\n", header)
	for _, p := range products {
		fmt.Fprintf(a.out, "[%d] %s | %s | $%s | stock=%d\n",
			p.ID, p.Name, p.Category, p.Price.StringFixed(2), p.InventoryQty)
	}
	fmt.Fprintln(a.out)
}

func (a *App) listProducts(ctx context.Context) {
	products, err := a.products.ListProducts(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	a.renderProducts("Products", products)
}

func (a *App) searchProducts(ctx context.Context) {
	term, ok := a.p.Line("Search term: ")
	if !ok {
		return
	}
	products, err := a.products.SearchProducts(ctx, term)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	a.renderProducts("Search Results", products)
}

func (a *App) addCustomer(ctx context.Context) {
	name, ok := a.p.Line("Customer name: ")
	if !ok {
		return
	}
	email, ok := a.p.Line("Customer email: ")
	if !ok {
		return
	}

	_, err := a.customers.RegisterCustomer(ctx, usecase.RegisterCustomerInput{Name: name, Email: email})
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Customer added.")
}

func (a *App) addCard(ctx context.Context) {
	customerID, ok := a.p.Int("Customer ID: ")
	if !ok {
		return
	}
	brand, ok := a.p.Line("Brand (Visa/Mastercard/Amex): ")
	if !ok {
		return
	}
	last4, ok := a.p.Line("Last 4 digits: ")
	if !ok {
		return
	}
	expMonth, ok := a.p.Int("Exp month (1-12): ")
	if !ok {
		return
	}
	expYear, ok := a.p.Int("Exp year (YYYY): ")
	if !ok {
		return
	}
	nickname, ok := a.p.Line("Nickname (e.g., Alice-Visa): ")
	if !ok {
		return
	}

	_, err := a.customers.RegisterCard(ctx, usecase.RegisterCardInput{
		CustomerID: customerID,
		Brand:      brand,
		Last4:      last4,
		ExpMonth:   int(expMonth),
		ExpYear:    int(expYear),
		Nickname:   nickname,
	})
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Card added.")
}

func (a *App) addProduct(ctx context.Context) {
	name, ok := a.p.Line("Product name: ")
	if !ok {
		return
	}
	category, ok := a.p.Line("Category: ")
	if !ok {
		return
	}
	price, ok := a.p.Decimal("Price: ")
	if !ok {
		return
	}
	qty, ok := a.p.Int("Inventory qty: ")
	if !ok {
		return
	}

	_, err := a.products.AddProduct(ctx, usecase.AddProductInput{
		Name:         name,
		Category:     category,
		Price:        price,
		InventoryQty: qty,
	})
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Product added.")
}

// 商品は削除せず非公開にする。
func (a *App) deactivateProduct(ctx context.Context) {
	productID, ok := a.p.Int("Product ID: ")
	if !ok {
		return
	}
	if err := a.products.DeactivateProduct(ctx, productID); err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Product deactivated.")
}

// 注文作成。カードゲート → 明細ループ → 確定。
// 明細1件の失敗（商品なし・在庫不足）はループ継続で、注文全体は落とさない。
func (a *App) createOrder(ctx context.Context) {
	customerID, ok := a.p.Int("Customer ID: ")
	if !ok {
		return
	}

	opts, err := a.orders.ListCardOptions(ctx, customerID)
	if errors.Is(err, domainerr.ErrNoPaymentMethod) {
		fmt.Fprintln(a.out, "No credit cards on file. Please add one first.")
		return
	}
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}

	nicknames := make([]string, 0, len(opts))
	for _, o := range opts {
		nicknames = append(nicknames, o.Nickname)
	}
	fmt.Fprintln(a.out, "Available cards: "+strings.Join(nicknames, ", "))

	nickname, ok := a.p.Line("Choose card nickname: ")
	if !ok {
		return
	}

	orderID, err := a.orders.StartOrder(ctx, customerID, nickname)
	if errors.Is(err, domainerr.ErrUnknownCard) {
		fmt.Fprintln(a.out, "Unknown card nickname.")
		return
	}
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}

	for {
		a.listProducts(ctx)
		s, ok := a.p.Line("Product ID to add (or blank to finish): ")
		if !ok || s == "" {
			break
		}
		productID, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			fmt.Fprintln(a.out, "Please enter an integer.")
			continue
		}
		qty, ok := a.p.Int("Quantity: ")
		if !ok {
			break
		}

		added, err := a.orders.AddItem(ctx, orderID, productID, qty)
		if errors.Is(err, domainerr.ErrProductNotFound) {
			fmt.Fprintln(a.out, "Invalid product.")
			continue
		}
		if se, isStock := domainerr.AsInsufficientStock(err); isStock {
			fmt.Fprintf(a.out, "Insufficient stock. Available: %d\n", se.Available)
			continue
		}
		if err != nil {
			fmt.Fprintf(a.out, "Error: %v\n", err)
			continue
		}
		fmt.Fprintf(a.out, "Added %d x %s\n", added.Quantity, added.ProductName)
	}

	fin, err := a.orders.Finalize(ctx, orderID)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Order #%d total = $%s (%s)\n", orderID, fin.Total.StringFixed(2), fin.Status)
}

func (a *App) viewOrders(ctx context.Context) {
	orders, err := a.orders.ListOrders(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "\n-- Orders --")
	for _, o := range orders {
		fmt.Fprintf(a.out, "#%d | %s | %s | %s | %s | $%s\n",
			o.ID, o.CustomerMail, o.CardNickname,
			o.CreatedAt.Format("2006-01-02 15:04:05"), o.Status, o.TotalAmount.StringFixed(2))
	}
	fmt.Fprintln(a.out)
}

// デモクエリ実行。1文ごとのエラーは表示して続行する。
func (a *App) runQueries(ctx context.Context) {
	results, err := a.queries.RunFile(ctx, a.cfg.QueriesPath)
	if err != nil {
		fmt.Fprintf(a.out, "%s not found\n", a.cfg.QueriesPath)
		return
	}

	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(a.out, "Error running statement:\n%s\n%v\n", res.Statement, res.Err)
			continue
		}
		if len(res.Rows) == 0 {
			continue
		}

		fmt.Fprintln(a.out, "\n"+strings.Repeat("-", 50))
		fmt.Fprintln(a.out, res.Statement)
		fmt.Fprintln(a.out, strings.Repeat("-", 50))

		rows := res.Rows
		if len(rows) > 50 {
			rows = rows[:50]
		}
		for _, row := range rows {
			fmt.Fprintf(a.out, "%v\n", row)
		}
	}
}
