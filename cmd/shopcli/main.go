package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"shopcli/internal/cli"
	"shopcli/internal/config"
	"shopcli/internal/infra/db"
	infraRepo "shopcli/internal/infra/repository"
	"shopcli/internal/logger"
	"shopcli/internal/usecase"
)

func main() {
	//.env は任意（無ければ環境変数とデフォルトで動く）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)

	//DB接続
	gdb, err := db.Connect(cfg)
	if err != nil {
		log.Error("db connect failed", "driver", cfg.DBDriver, "err", err)
		os.Exit(1)
	}
	if err := db.AutoMigrate(gdb); err != nil {
		log.Error("automigrate failed", "err", err)
		os.Exit(1)
	}

	//Repository（GORM実装）生成
	productRepo := infraRepo.NewProductGormRepository(gdb)
	customerRepo := infraRepo.NewCustomerGormRepository(gdb)
	cardRepo := infraRepo.NewCreditCardGormRepository(gdb)
	orderRepo := infraRepo.NewOrderGormRepository(gdb)
	txManager := infraRepo.NewTxManagerGorm(gdb)
	runner := infraRepo.NewStatementRunnerGorm(gdb)

	//Usecase生成
	productUC := usecase.NewProductUsecase(productRepo)
	customerUC := usecase.NewCustomerUsecase(customerRepo, cardRepo)
	orderUC := usecase.NewOrderUsecase(txManager, cardRepo, orderRepo)
	queryUC := usecase.NewQueryBatchUsecase(runner)

	app := cli.NewApp(cfg, log, gdb, os.Stdin, os.Stdout, productUC, customerUC, orderUC, queryUC)
	if err := app.Run(); err != nil {
		log.Error("cli failed", "err", err)
		os.Exit(1)
	}
}
