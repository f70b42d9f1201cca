package db

import (
	"gorm.io/gorm"

	"shopcli/internal/domain/model"
)

// AutoMigrate は全テーブルを作成する。
func AutoMigrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&model.Customer{},
		&model.CreditCard{},
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
	)
}

// Reset は既存ストアを捨てて作り直す（破壊的初期化）。
func Reset(gdb *gorm.DB) error {
	//FKの都合で子テーブルから落とす
	tables := []any{
		&model.OrderItem{},
		&model.Order{},
		&model.CreditCard{},
		&model.Customer{},
		&model.Product{},
	}
	m := gdb.Migrator()
	for _, t := range tables {
		if !m.HasTable(t) {
			continue
		}
		if err := m.DropTable(t); err != nil {
			return err
		}
	}
	return AutoMigrate(gdb)
}
