package providers

import (
	"context"
	"log/slog"
)

// logWithProvider emits a log entry when logger is non-nil, always
// tagging the provider name so decorator logs stay attributable.
func logWithProvider(ctx context.Context, logger *slog.Logger, level slog.Level, provider string, msg string, args ...any) {
	if logger == nil {
		return
	}
	args = append(args, slog.String("provider", provider))
	logger.Log(ctx, level, msg, args...)
}
