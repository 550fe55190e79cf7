// Package ctxlog carries a structured logger in a context.
package ctxlog

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Setup installs a JSON logger writing to stderr as the default logger
// and stores it in the returned context.
func Setup(ctx context.Context, app string) context.Context {
	return setup(ctx, os.Stderr, app)
}

func setup(ctx context.Context, w io.Writer, app string) context.Context {
	logger := slog.New(slog.NewJSONHandler(w, nil)).With("app", app)
	slog.SetDefault(logger)

	return Store(ctx, logger)
}

type ctxKey struct{}

var key ctxKey

func Store(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, key, log)
}

func Get(ctx context.Context) *slog.Logger {
	log, ok := ctx.Value(key).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return log
}

func Close(ctx context.Context, name string, closer io.Closer) error {
	logger := Get(ctx)
	err := closer.Close()
	if err != nil {
		logger.Error("failed to close", "closer", name, "error", err)
		return err
	}
	return nil
}

func With(ctx context.Context, kv ...any) context.Context {
	return Store(ctx, Get(ctx).With(kv...))
}
