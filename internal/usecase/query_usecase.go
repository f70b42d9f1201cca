package usecase

import (
	"context"
	"os"
	"strings"

	repo "shopcli/internal/repository"
)

// QueryBatchUsecase は外部ファイルの読み取り系SQLをまとめて流す。
// デモ・動作確認用で、1文ごとのエラーは結果に積んで続行する。
type QueryBatchUsecase struct {
	runner repo.StatementRunner
}

func NewQueryBatchUsecase(runner repo.StatementRunner) *QueryBatchUsecase {
	return &QueryBatchUsecase{runner: runner}
}

type StatementResult struct {
	Statement string
	Rows      []map[string]any
	Err       error
}

// RunFile はpathのSQLを";"で区切って順に実行する。
// ファイルが無い・読めない場合だけがエラー（バッチ全体の失敗）。
func (u *QueryBatchUsecase) RunFile(ctx context.Context, path string) ([]StatementResult, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var results []StatementResult
	for _, stmt := range strings.Split(string(raw), ";") {
		s := strings.TrimSpace(stmt)
		if s == "" {
			continue
		}

		rows, err := u.runner.Query(ctx, s)
		results = append(results, StatementResult{Statement: s, Rows: rows, Err: err})
	}
	return results, nil
}
