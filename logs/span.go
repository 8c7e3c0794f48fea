package logs

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
)

// Span identifies one user action. Records logged with a context carrying a span are tagged with it.
type Span string

type spanKey struct{}

var SpanKey spanKey

func SpanOf(ctx context.Context) Span {
	if v, ok := ctx.Value(SpanKey).(Span); ok {
		return v
	}
	return ""
}

func WrapSpan(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	span := SpanOf(ctx)
	if span == "" {
		return err
	}
	return errors.Join(err, fmt.Errorf("span: %s", span))
}

type NewSpan func(ctx context.Context, action string) (context.Context, Span)

func (Module) NewSpan(
	logger Logger,
) NewSpan {
	return func(ctx context.Context, action string) (context.Context, Span) {
		parent := SpanOf(ctx)
		span := Span(rand.Text())
		ctx = context.WithValue(ctx, SpanKey, span)

		args := []any{"action", action}
		if parent != "" {
			args = append(args, "parent", parent)
		}
		logger.DebugContext(ctx, "new span", args...)

		return ctx, span
	}
}
