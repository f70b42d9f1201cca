package repository

import (
	"errors"

	"gorm.io/gorm"

	repo "shopcli/internal/repository"
)

// gormのエラーをドライバ非依存のsentinelへ寄せる。
// TranslateError有効が前提（sqlite/postgres両対応）。
func translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return repo.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return repo.ErrDuplicate
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return repo.ErrForeignKey
	}
	return err
}
