package ctxlog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

type closerFunc func() error

func (f closerFunc) Close() error {
	return f()
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var lines []map[string]any
	dec := json.NewDecoder(buf)
	for dec.More() {
		var m map[string]any
		require.NoError(t, dec.Decode(&m))
		lines = append(lines, m)
	}
	return lines
}

func TestWith(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	buf := &bytes.Buffer{}
	ctx := setup(context.Background(), buf, "shift")
	ctx = With(ctx, "word", "Rust")

	Get(ctx).Info("shifted", "result", "Must")

	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	require.Equal(t, "shift", lines[0]["app"])
	require.Equal(t, "Rust", lines[0]["word"])
	require.Equal(t, "Must", lines[0]["result"])
	require.Equal(t, "shifted", lines[0]["msg"])
}

func TestGetDefault(t *testing.T) {
	require.Same(t, slog.Default(), Get(context.Background()))
}

func TestClose(t *testing.T) {
	buf := &bytes.Buffer{}
	ctx := Store(context.Background(), slog.New(slog.NewJSONHandler(buf, nil)))

	require.NoError(t, Close(ctx, "ok", closerFunc(func() error { return nil })))
	require.Zero(t, buf.Len())

	errClose := errors.New("boom")
	require.ErrorIs(t, Close(ctx, "jobs file", closerFunc(func() error { return errClose })), errClose)

	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	require.Equal(t, "jobs file", lines[0]["closer"])
	require.Equal(t, "boom", lines[0]["error"])
}
