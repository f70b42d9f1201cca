package usecase

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type runnerStub struct {
	fail map[string]error
}

func (r *runnerStub) Query(ctx context.Context, stmt string) ([]map[string]any, error) {
	if err, ok := r.fail[stmt]; ok {
		return nil, err
	}
	return []map[string]any{{"stmt": stmt}}, nil
}

func TestQueryBatchUsecase_RunFile_SplitsAndContinuesOnError(t *testing.T) {
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "queries.sql")
	sql := "SELECT 1;\n\nSELECT broken;\nSELECT 2;"
	require.NoError(t, os.WriteFile(path, []byte(sql), 0o644))

	stub := &runnerStub{fail: map[string]error{"SELECT broken": errors.New("no such column")}}
	uc := NewQueryBatchUsecase(stub)

	results, err := uc.RunFile(ctx, path)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.NoError(t, results[0].Err)
	//2文目が失敗しても残りは実行される
	assert.Error(t, results[1].Err)
	assert.NoError(t, results[2].Err)
	assert.Equal(t, "SELECT 2", results[2].Statement)
}

func TestQueryBatchUsecase_RunFile_MissingFile(t *testing.T) {
	uc := NewQueryBatchUsecase(&runnerStub{})

	_, err := uc.RunFile(context.Background(), filepath.Join(t.TempDir(), "absent.sql"))
	assert.Error(t, err)
}
