package logger

import (
	"context"

	"pressroom/internal/reqctx"

	"go.uber.org/zap"
)

// WithCtx обогащает логгер полями запроса из контекста.
func WithCtx(ctx context.Context) *zap.Logger {
	log := Log
	if log == nil {
		log = zap.NewNop()
	}

	fields := make([]zap.Field, 0, 3)
	if rid, ok := reqctx.GetRequestID(ctx); ok {
		fields = append(fields, zap.String("request_id", rid))
	}
	if userID, ok := reqctx.GetUserID(ctx); ok {
		fields = append(fields, zap.Int("user_id", userID))
	}
	if role, ok := reqctx.GetRole(ctx); ok {
		fields = append(fields, zap.String("role", role))
	}
	if len(fields) == 0 {
		return log
	}
	return log.With(fields...)
}
