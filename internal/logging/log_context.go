package logging

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"
)

type logDataContextKey struct{}

// WithLogData returns a context carrying the given LogData.
func WithLogData(ctx context.Context, logData *LogData) context.Context {
	return context.WithValue(ctx, logDataContextKey{}, logData)
}

// GetLogData extracts the request's LogData from the context. Returns nil
// when the request did not pass through the logging middleware.
func GetLogData(ctx context.Context) *LogData {
	logData, _ := ctx.Value(logDataContextKey{}).(*LogData)
	return logData
}

// Middleware is the huma middleware that attaches a fresh LogData to every
// request and emits one structured line when the handler finishes.
func Middleware(log *logrus.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		logData := NewLogData(log)
		logData.AddData("path", ctx.URL().Path)
		logData.AddData("method", ctx.Method())

		endTimer := logData.AddTiming("duration")
		next(huma.WithValue(ctx, logDataContextKey{}, logData))
		endTimer()

		logData.Log().Info("Handler.Complete")
	}
}
