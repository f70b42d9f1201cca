package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"shopcli/internal/config"
)

// Connect はDBに接続して *gorm.DB を返す。
// TranslateError で一意制約・FK違反をドライバ非依存のエラーにする。
func Connect(cfg config.Config) (*gorm.DB, error) {
	gc := &gorm.Config{
		TranslateError: true,
		//対話CLIなのでSQLログは出さない
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	}

	if cfg.DBDriver == config.DriverPostgres {
		// DATABASE_URL があれば最優先で使う
		if cfg.DatabaseURL != "" {
			return gorm.Open(postgres.Open(cfg.DatabaseURL), gc)
		}
		dsn := fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresUser,
			cfg.PostgresPassword, cfg.PostgresDB, cfg.PostgresSSLMode,
		)
		return gorm.Open(postgres.Open(dsn), gc)
	}

	//SQLiteはFK enforcementをDSNで有効にする
	dsn := fmt.Sprintf("%s?_foreign_keys=on", cfg.DBPath)
	return gorm.Open(sqlite.Open(dsn), gc)
}
