package log

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

// Тесты меняют slog.Default(), поэтому t.Parallel() не используется.

func newSilent() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFrom_ReturnsDefault_WhenNoLoggerInContext(t *testing.T) {
	old := slog.Default()
	t.Cleanup(func() { slog.SetDefault(old) })

	def := newSilent()
	slog.SetDefault(def)

	require.Equal(t, def, From(context.Background()))
}

func TestIntoAndFrom_RoundTrip(t *testing.T) {
	l := newSilent()
	ctx := Into(context.Background(), l)

	require.Equal(t, l, From(ctx))
}

func TestFrom_IgnoresWrongTypeAndNil(t *testing.T) {
	old := slog.Default()
	t.Cleanup(func() { slog.SetDefault(old) })

	def := newSilent()
	slog.SetDefault(def)

	ctxWrong := context.WithValue(context.Background(), ctxKey{}, "not-a-logger")
	require.Equal(t, def, From(ctxWrong))

	var nilLogger *slog.Logger
	ctxNil := context.WithValue(context.Background(), ctxKey{}, nilLogger)
	require.Equal(t, def, From(ctxNil))
}

func TestWith_AddsAttrsWithoutTouchingParent(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))

	parent := Into(context.Background(), base)
	child := With(parent, "user_id", "u-1")

	From(child).Info("child")
	require.Contains(t, buf.String(), "user_id=u-1")

	buf.Reset()
	From(parent).Info("parent")
	require.NotContains(t, buf.String(), "user_id")
}

func TestWith_NoArgs_ReturnsSameContext(t *testing.T) {
	ctx := Into(context.Background(), newSilent())
	require.Equal(t, ctx, With(ctx))
}
