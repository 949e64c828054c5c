// Package fiber implements Fiber, a handle on a computation running
// concurrently on an [Executor].
//
// A fiber started with [Go] runs its task as soon as the executor schedules
// it. Fibers derived from others (with Map, FlatMap, Guard, All or the
// generated ZipN functions) run nothing on their own: they do their work,
// including calling the functions they were given, on the goroutine that
// awaits them. A derived fiber remembers its outcome, so its functions run
// at most once however often it is awaited.
package fiber

import (
	"context"
	"errors"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/grafana/zipgen/internal/runtimex"
	"github.com/grafana/zipgen/result"
)

// Executor runs tasks, usually on another goroutine.
type Executor interface {
	Execute(task func())
}

// ExecutorFunc is an adapter to allow the use of ordinary functions as
// Executor.
type ExecutorFunc func(task func())

// Execute implements Executor by calling f(task).
func (f ExecutorFunc) Execute(task func()) {
	f(task)
}

// Goroutines returns an Executor running every task on a new goroutine.
func Goroutines() Executor {
	return ExecutorFunc(func(task func()) {
		go task()
	})
}

// Pool is an Executor running tasks on at most a fixed number of
// goroutines. Execute blocks while the pool is full.
type Pool struct {
	g errgroup.Group
}

// NewPool returns a Pool running at most limit tasks at once. A negative
// limit means no limit; zero is not allowed.
func NewPool(limit int) *Pool {
	runtimex.PanicIfTrue(limit == 0, "fiber: a pool needs room for at least one task")
	p := &Pool{}
	p.g.SetLimit(limit)
	return p
}

// Execute implements Executor.
func (p *Pool) Execute(task func()) {
	p.g.Go(func() error {
		task()
		return nil
	})
}

// Wait blocks until every task executed so far has returned.
func (p *Pool) Wait() {
	_ = p.g.Wait()
}

// Fiber is a handle on a computation producing a result.Result[T].
type Fiber[T any] struct {
	await  func(ctx context.Context) result.Result[T]
	cancel func()
}

// Go runs task on exec and returns its fiber. The context given to task is
// derived from ctx and is cancelled once task returns, or when the fiber is
// cancelled. A panic in task fails the fiber with a *result.PanicError.
func Go[T any](ctx context.Context, exec Executor, task func(ctx context.Context) result.Result[T]) *Fiber[T] {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	var res result.Result[T]

	exec.Execute(func() {
		defer close(done)
		defer cancel()
		defer result.Recover(&res)
		res = task(ctx)
	})

	return &Fiber[T]{
		await: func(ctx context.Context) result.Result[T] {
			// a completed fiber reports its outcome even to a done context
			select {
			case <-done:
				return res
			default:
			}
			select {
			case <-done:
				return res
			case <-ctx.Done():
				return result.Failure[T](ctx.Err())
			}
		},
		cancel: cancel,
	}
}

// FromResult returns a fiber already completed with r.
func FromResult[T any](r result.Result[T]) *Fiber[T] {
	return &Fiber[T]{
		await:  func(context.Context) result.Result[T] { return r },
		cancel: func() {},
	}
}

// Succeed returns a fiber already completed with v.
func Succeed[T any](v T) *Fiber[T] {
	return FromResult(result.Success(v))
}

// Fail returns a fiber already failed with err.
func Fail[T any](err error) *Fiber[T] {
	return FromResult(result.Failure[T](err))
}

// Await blocks until f completes or ctx is done, whichever happens first. In
// the latter case the failure holds ctx.Err() and f keeps running.
func (f *Fiber[T]) Await(ctx context.Context) result.Result[T] {
	return f.await(ctx)
}

// Cancel cancels the context of the task behind f. For a derived fiber, it
// cancels the fibers it was derived from.
func (f *Fiber[T]) Cancel() {
	f.cancel()
}

// derive returns a fiber running run on the goroutine awaiting it. Awaiters
// take turns, and the outcome is remembered unless it is the failure of an
// awaiting context that ended.
func derive[T any](cancel func(), run func(ctx context.Context) result.Result[T]) *Fiber[T] {
	var (
		sem  = make(chan struct{}, 1)
		done bool
		res  result.Result[T]
	)
	return &Fiber[T]{
		await: func(ctx context.Context) result.Result[T] {
			select {
			case sem <- struct{}{}:
			default:
				select {
				case sem <- struct{}{}:
				case <-ctx.Done():
					return result.Failure[T](ctx.Err())
				}
			}
			defer func() { <-sem }()

			if done {
				return res
			}
			r := run(ctx)
			if err := ctx.Err(); err == nil || !errors.Is(r.Err(), err) {
				done, res = true, r
			}
			return r
		},
		cancel: cancel,
	}
}

// FlatMap returns a fiber awaiting f, then awaiting the fiber fn returns for
// its value. A failure of f completes the returned fiber and fn is not
// called.
func FlatMap[T, R any](f *Fiber[T], fn func(T) *Fiber[R]) *Fiber[R] {
	var next atomic.Pointer[Fiber[R]]
	cancel := func() {
		f.Cancel()
		if n := next.Load(); n != nil {
			n.Cancel()
		}
	}
	return derive(cancel, func(ctx context.Context) result.Result[R] {
		v, err := f.Await(ctx).Get()
		if err != nil {
			return result.Failure[R](err)
		}
		n := fn(v)
		next.Store(n)
		return n.Await(ctx)
	})
}

// Map returns a fiber completing with fn applied to the value of f. A
// failure of f completes the returned fiber and fn is not called.
func Map[T, R any](f *Fiber[T], fn func(T) R) *Fiber[R] {
	return derive(f.Cancel, func(ctx context.Context) result.Result[R] {
		return result.Map(f.Await(ctx), fn)
	})
}

// Guard returns a fiber completing like f, except that a panic while
// awaiting f fails it with a *result.PanicError.
func Guard[T any](f *Fiber[T]) *Fiber[T] {
	return derive(f.Cancel, func(ctx context.Context) (res result.Result[T]) {
		defer result.Recover(&res)
		return f.Await(ctx)
	})
}

// All returns a fiber completing with the values of every fiber of fs, in
// order. The fibers are awaited in order and the first failure completes
// the returned fiber without awaiting the rest.
func All[T any](fs []*Fiber[T]) *Fiber[[]T] {
	cancel := func() {
		for _, f := range fs {
			f.Cancel()
		}
	}
	return derive(cancel, func(ctx context.Context) result.Result[[]T] {
		vs := make([]T, 0, len(fs))
		for _, f := range fs {
			v, err := f.Await(ctx).Get()
			if err != nil {
				return result.Failure[[]T](err)
			}
			vs = append(vs, v)
		}
		return result.Success(vs)
	})
}
