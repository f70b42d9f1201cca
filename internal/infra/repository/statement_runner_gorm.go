package repository

import (
	"context"

	"gorm.io/gorm"
)

type StatementRunnerGorm struct {
	db *gorm.DB
}

func NewStatementRunnerGorm(db *gorm.DB) *StatementRunnerGorm {
	return &StatementRunnerGorm{db: db}
}

// アドホックな1文を実行して行を列名→値のマップで返す。
func (r *StatementRunnerGorm) Query(ctx context.Context, stmt string) ([]map[string]any, error) {
	rows, err := r.db.WithContext(ctx).Raw(stmt).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var out []map[string]any
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		m := make(map[string]any, len(cols))
		for i, c := range cols {
			v := vals[i]
			//[]byteのままだと表示が汚いので文字列へ
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			m[c] = v
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
