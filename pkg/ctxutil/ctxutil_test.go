package ctxutil

import (
	"context"
	"testing"
)

func TestWithOperator_And_OperatorFromCtx(t *testing.T) {
	t.Parallel()

	ctx := WithOperator(context.Background(), "j.tanaka")

	got, ok := OperatorFromCtx(ctx)
	if !ok {
		t.Fatal("expected ok=true for set operator")
	}
	if got != "j.tanaka" {
		t.Fatalf("expected j.tanaka, got %q", got)
	}
}

func TestOperatorFromCtx_EmptyContext(t *testing.T) {
	t.Parallel()

	got, ok := OperatorFromCtx(context.Background())
	if ok {
		t.Fatal("expected ok=false for empty context")
	}
	if got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestOperatorFromCtx_BlankOperator(t *testing.T) {
	t.Parallel()

	ctx := WithOperator(context.Background(), "   ")
	if _, ok := OperatorFromCtx(ctx); ok {
		t.Fatal("expected ok=false for blank operator")
	}
}

func TestRequestID_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "req-123")
	if got := RequestIDFromCtx(ctx); got != "req-123" {
		t.Fatalf("expected req-123, got %q", got)
	}
}

func TestRequestIDFromCtx_Absent(t *testing.T) {
	t.Parallel()

	if got := RequestIDFromCtx(context.Background()); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}
