package logger

import (
	"log/slog"
	"os"
)

// New creates a preconfigured slog.Logger.
// 操作ログ（DB初期化、エラーなど）用。画面表示はCLI側でfmtを使う。
func New(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}
