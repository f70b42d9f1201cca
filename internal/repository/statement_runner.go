package repository

import "context"

// アドホックなSELECT文を1文実行して行を返す約束。
// デモクエリ用なので結果は列名→値のマップで十分。
type StatementRunner interface {
	Query(ctx context.Context, stmt string) ([]map[string]any, error)
}
