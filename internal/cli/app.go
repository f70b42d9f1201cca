package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"gorm.io/gorm"

	"shopcli/internal/config"
	"shopcli/internal/infra/db"
	"shopcli/internal/usecase"
)

// App は番号メニューのループ。usecaseへの薄い変換と表示だけを持つ。
type App struct {
	cfg config.Config
	log *slog.Logger
	gdb *gorm.DB

	p   *Prompter
	out io.Writer

	products  *usecase.ProductUsecase
	customers *usecase.CustomerUsecase
	orders    *usecase.OrderUsecase
	queries   *usecase.QueryBatchUsecase
}

func NewApp(
	cfg config.Config,
	log *slog.Logger,
	gdb *gorm.DB,
	in io.Reader,
	out io.Writer,
	products *usecase.ProductUsecase,
	customers *usecase.CustomerUsecase,
	orders *usecase.OrderUsecase,
	queries *usecase.QueryBatchUsecase,
) *App {
	return &App{
		cfg:       cfg,
		log:       log,
		gdb:       gdb,
		p:         NewPrompter(in, out),
		out:       out,
		products:  products,
		customers: customers,
		orders:    orders,
		queries:   queries,
	}
}

func (a *App) printMenu() {
	fmt.Fprint(a.out, `
==== E-Commerce CLI ====
1) Initialize & seed database
2) List products
3) Search products
4) Add customer
5) Add credit card
6) Add product (staff)
7) Create order
8) View orders
9) Run demo queries
10) Deactivate product (staff)
0) Quit
`)
}

// Run はメニューを回し続ける。どの操作のエラーも致命ではなく、
// 表示してメニューに戻る。入力が尽きたら終了。
func (a *App) Run() error {
	for {
		a.printMenu()
		choice, ok := a.p.Line("Choose: ")
		if !ok {
			return nil
		}

		//操作ごとに独立したスコープ
		ctx := context.Background()

		switch choice {
		case "1":
			a.initStore(ctx)
		case "2":
			a.listProducts(ctx)
		case "3":
			a.searchProducts(ctx)
		case "4":
			a.addCustomer(ctx)
		case "5":
			a.addCard(ctx)
		case "6":
			a.addProduct(ctx)
		case "7":
			a.createOrder(ctx)
		case "8":
			a.viewOrders(ctx)
		case "9":
			a.runQueries(ctx)
		case "10":
			a.deactivateProduct(ctx)
		case "0":
			fmt.Fprintln(a.out, "Bye!")
			return nil
		default:
			fmt.Fprintln(a.out, "Invalid option.")
		}
	}
}

// 破壊的初期化：既存テーブルを捨てて作り直し、デモデータを入れる。
func (a *App) initStore(ctx context.Context) {
	if err := db.Reset(a.gdb); err != nil {
		a.log.Error("store reset failed", "err", err)
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	if err := db.Seed(a.gdb); err != nil {
		a.log.Error("seed failed", "err", err)
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	a.log.Info("store initialized", "driver", a.cfg.DBDriver)
	fmt.Fprintln(a.out, "Database initialized and seeded.")
}
