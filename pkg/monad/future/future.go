package future

import (
	"context"
	"sync"

	"github.com/ib-77/monads/pkg/monad"
)

// Future is the single-assignment result of a goroutine. It is pending
// until the work function returns, then resolved with either a value or
// an error; the result never changes after resolution.
type Future[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// Go spawns work on its own goroutine and returns the Future that will
// carry its result. A context that is already done resolves the future
// with the context error without running work.
func Go[T any](ctx context.Context, work func(ctx context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		if err := ctx.Err(); err != nil {
			f.err = err
			return
		}
		f.value, f.err = work(ctx)
	}()

	return f
}

// Resolved returns an already-resolved future carrying v.
func Resolved[T any](v T) *Future[T] {
	f := &Future[T]{done: make(chan struct{}), value: v}
	close(f.done)
	return f
}

// Failed returns an already-resolved future carrying err.
func Failed[T any](err error) *Future[T] {
	f := &Future[T]{done: make(chan struct{}), err: err}
	close(f.done)
	return f
}

// Await blocks until the future resolves or ctx is done. It is safe to
// call from multiple goroutines and returns the same result every time.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Done is closed once the future is resolved.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Canceled reports whether the future resolved with a context
// cancellation error. A pending future is not canceled.
func (f *Future[T]) Canceled() bool {
	select {
	case <-f.done:
		return monad.IsCancellationError(f.err)
	default:
		return false
	}
}

// Bind sequences two asynchronous computations: once f resolves, its
// value is fed to next and the returned future's result becomes the
// result of the whole chain. The first error short-circuits.
//
// Bind is a free function because Go methods cannot introduce the new
// type parameter Out.
func Bind[In, Out any](ctx context.Context, f *Future[In],
	next func(ctx context.Context, v In) *Future[Out]) *Future[Out] {

	return Go(ctx, func(ctx context.Context) (Out, error) {
		v, err := f.Await(ctx)
		if err != nil {
			var zero Out
			return zero, err
		}
		return next(ctx, v).Await(ctx)
	})
}

// Map transforms the resolved value with a pure function.
func Map[In, Out any](ctx context.Context, f *Future[In],
	fn func(ctx context.Context, v In) Out) *Future[Out] {

	return Bind(ctx, f, func(ctx context.Context, v In) *Future[Out] {
		return Resolved(fn(ctx, v))
	})
}

// All awaits every future and collects the values in argument order.
// The first error observed is returned.
func All[T any](ctx context.Context, fs ...*Future[T]) ([]T, error) {
	res := make([]T, len(fs))
	errCh := make(chan error, len(fs))
	wg := &sync.WaitGroup{}

	for i, f := range fs {
		i, f := i, f
		wg.Add(1)
		go func() {
			defer wg.Done()

			v, err := f.Await(ctx)
			if err != nil {
				errCh <- err
				return
			}
			res[i] = v
		}()
	}

	wg.Wait()
	close(errCh)

	if err := <-errCh; err != nil {
		return nil, err
	}
	return res, nil
}
