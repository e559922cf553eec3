package chain

import (
	"context"
	"strconv"
	"testing"

	"github.com/ib-77/monads/pkg/monad/maybe"
)

func TestStartAndMaybe(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Start(ctx, maybe.Some(5)).Maybe()
	if out.IsNone() || out.Get() != 5 {
		t.Fatalf("expected present 5, got: some=%v, val=%v", out.IsSome(), out.Get())
	}
}

func TestFromValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FromValue(ctx, 7).Maybe()
	if out.IsNone() || out.Get() != 7 {
		t.Fatalf("expected present 7, got: some=%v, val=%v", out.IsSome(), out.Get())
	}
}

func TestFromNillable(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	v := 3
	if out := FromNillable(ctx, &v).Maybe(); out.IsNone() || out.Get() != 3 {
		t.Fatalf("expected present 3")
	}
	if out := FromNillable[int](ctx, nil).Maybe(); out.IsSome() {
		t.Fatalf("expected absent chain from nil pointer")
	}
}

func TestThen_ShortCircuitOnNone(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	called := false
	out := Start(ctx, maybe.None[int]()).
		Then(func(ctx context.Context, v int) maybe.Maybe[int] {
			called = true
			return maybe.Some(v + 1)
		}).
		Maybe()

	if out.IsSome() {
		t.Fatalf("expected absent result")
	}
	if called {
		t.Fatalf("onPresent should not be called when the chain is absent")
	}
}

func TestThen_PresentPath(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FromValue(ctx, 3).
		Then(func(ctx context.Context, v int) maybe.Maybe[int] { return maybe.Some(v * 2) }).
		Maybe()

	if out.IsNone() || out.Get() != 6 {
		t.Fatalf("expected present 6, got: some=%v, val=%v", out.IsSome(), out.Get())
	}
}

func TestMap_And_Filter(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FromValue(ctx, 5).
		Map(func(ctx context.Context, v int) int { return v + 3 }).
		Filter(func(ctx context.Context, v int) bool { return v%2 == 0 }).
		Maybe()
	if out.IsNone() || out.Get() != 8 {
		t.Fatalf("expected present 8, got: some=%v, val=%v", out.IsSome(), out.Get())
	}

	dropped := FromValue(ctx, 5).
		Filter(func(ctx context.Context, v int) bool { return v > 100 }).
		Maybe()
	if dropped.IsSome() {
		t.Fatalf("expected value to be filtered out")
	}
}

func TestEnsure_SideEffects(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	pCalled := false
	aCalled := false
	out := FromValue(ctx, 11).
		Ensure(
			func(ctx context.Context, v int) { pCalled = true },
			func(ctx context.Context) { aCalled = true }).
		Maybe()
	if out.IsNone() || out.Get() != 11 {
		t.Fatalf("expected unchanged present 11")
	}
	if !pCalled || aCalled {
		t.Fatalf("expected present side-effect only; pCalled=%v, aCalled=%v", pCalled, aCalled)
	}

	pCalled = false
	aCalled = false
	Start(ctx, maybe.None[int]()).Ensure(
		func(ctx context.Context, v int) { pCalled = true },
		func(ctx context.Context) { aCalled = true })
	if pCalled || !aCalled {
		t.Fatalf("expected absent side-effect only; pCalled=%v, aCalled=%v", pCalled, aCalled)
	}

	// nil callbacks should be safe
	out2 := FromValue(ctx, 1).Ensure(nil, nil).Maybe()
	if out2.IsNone() || out2.Get() != 1 {
		t.Fatalf("expected unchanged result with nil callbacks")
	}
}

func TestTypeChangingThenAndMap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c := Then(FromValue(ctx, 42), func(ctx context.Context, v int) maybe.Maybe[string] {
		return maybe.Some(strconv.Itoa(v))
	})
	if out := c.Maybe(); out.IsNone() || out.Get() != "42" {
		t.Fatalf("expected %q, got: some=%v, val=%q", "42", out.IsSome(), out.Get())
	}

	lens := Map(c, func(ctx context.Context, s string) int { return len(s) })
	if out := lens.Maybe(); out.IsNone() || out.Get() != 2 {
		t.Fatalf("expected length 2, got: some=%v, val=%v", out.IsSome(), out.Get())
	}
}

func TestFinally_And_GetOrElse(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	got := FromValue(ctx, 3).Finally(
		func(ctx context.Context, v int) int { return v + 100 },
		func(ctx context.Context) int { return -1 },
	)
	if got != 103 {
		t.Fatalf("expected 103, got %d", got)
	}

	absent := Start(ctx, maybe.None[int]()).Finally(
		func(ctx context.Context, v int) int { return v },
		func(ctx context.Context) int { return -1 },
	)
	if absent != -1 {
		t.Fatalf("expected -1 for absent, got %d", absent)
	}

	if got := Start(ctx, maybe.None[int]()).GetOrElse(9); got != 9 {
		t.Fatalf("expected default 9, got %d", got)
	}
}
