package messaging

import (
	"context"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/market-chat/internal/config"
)

// discardLogger stands in when a context carries no logger.
type discardLogger struct{}

func (discardLogger) AddFuncName(string) {}
func (discardLogger) Info(string)        {}
func (discardLogger) Error(string)       {}
func (discardLogger) Warn(string)        {}

func loggerFrom(ctx context.Context) logger_lib.LoggerInterface {
	if logger := logger_lib.FromContext(ctx, config.KeyLogger); logger != nil {
		return logger
	}
	return discardLogger{}
}
