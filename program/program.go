// Package program implements Program, a deferred computation evaluated
// against a state.
//
// Nothing runs when a program is built. Evaluating it with a context and a
// state produces a result.Result, and evaluating it again runs it again.
// The combinators evaluate their operands left to right against the same
// state and stop at the first failure.
package program

import (
	"context"

	"github.com/grafana/zipgen/fiber"
	"github.com/grafana/zipgen/result"
)

// Program is a computation producing a T from a state S.
type Program[S, T any] interface {
	Eval(ctx context.Context, state S) result.Result[T]
}

// Func is an adapter to allow the use of ordinary functions as Program.
type Func[S, T any] func(ctx context.Context, state S) result.Result[T]

// Eval implements Program by calling f(ctx, state).
func (f Func[S, T]) Eval(ctx context.Context, state S) result.Result[T] {
	return f(ctx, state)
}

// FromResult returns a program ignoring its state and producing r.
func FromResult[S, T any](r result.Result[T]) Program[S, T] {
	return Func[S, T](func(context.Context, S) result.Result[T] {
		return r
	})
}

// Success returns a program producing v.
func Success[S, T any](v T) Program[S, T] {
	return FromResult[S](result.Success(v))
}

// Failure returns a program failing with err.
func Failure[S, T any](err error) Program[S, T] {
	return FromResult[S](result.Failure[T](err))
}

// Task returns a program calling fn. A panic in fn fails the program with
// a *result.PanicError.
func Task[S, T any](fn func(ctx context.Context, state S) (T, error)) Program[S, T] {
	return Func[S, T](func(ctx context.Context, state S) result.Result[T] {
		return result.Try(func() (T, error) {
			return fn(ctx, state)
		})
	})
}

// FoldMap returns a program producing onFailure or onSuccess applied to the
// outcome of p. It never fails unless one of them panics.
func FoldMap[S, T, R any](p Program[S, T], onFailure func(error) R, onSuccess func(T) R) Program[S, R] {
	return Func[S, R](func(ctx context.Context, state S) result.Result[R] {
		return result.Success(result.Fold(p.Eval(ctx, state), onFailure, onSuccess))
	})
}

// FlatMap returns a program evaluating p, then the program fn returns for
// its value, against the same state. A failure of p is the failure of the
// returned program and fn is not called.
func FlatMap[S, T, R any](p Program[S, T], fn func(T) Program[S, R]) Program[S, R] {
	return Func[S, R](func(ctx context.Context, state S) result.Result[R] {
		v, err := p.Eval(ctx, state).Get()
		if err != nil {
			return result.Failure[R](err)
		}
		return fn(v).Eval(ctx, state)
	})
}

// Map returns a program producing fn applied to the value of p.
func Map[S, T, R any](p Program[S, T], fn func(T) R) Program[S, R] {
	return Func[S, R](func(ctx context.Context, state S) result.Result[R] {
		return result.Map(p.Eval(ctx, state), fn)
	})
}

// MapError returns a program failing with fn applied to the error of p.
func MapError[S, T any](p Program[S, T], fn func(error) error) Program[S, T] {
	return Func[S, T](func(ctx context.Context, state S) result.Result[T] {
		return result.MapError(p.Eval(ctx, state), fn)
	})
}

// Recover returns a program producing fn applied to the error of p when p
// fails.
func Recover[S, T any](p Program[S, T], fn func(error) T) Program[S, T] {
	return RecoverWith(p, func(err error) Program[S, T] {
		return Success[S](fn(err))
	})
}

// RecoverWith returns a program evaluating the program fn returns for the
// error of p when p fails.
func RecoverWith[S, T any](p Program[S, T], fn func(error) Program[S, T]) Program[S, T] {
	return Func[S, T](func(ctx context.Context, state S) result.Result[T] {
		r := p.Eval(ctx, state)
		if r.IsSuccess() {
			return r
		}
		return fn(r.Err()).Eval(ctx, state)
	})
}

// AndThen returns a program evaluating p, discarding its value, then next.
func AndThen[S, T, R any](p Program[S, T], next Program[S, R]) Program[S, R] {
	return FlatMap(p, func(T) Program[S, R] {
		return next
	})
}

// Guard returns a program evaluating p, except that a panic fails it with a
// *result.PanicError.
func Guard[S, T any](p Program[S, T]) Program[S, T] {
	return Func[S, T](func(ctx context.Context, state S) (res result.Result[T]) {
		defer result.Recover(&res)
		return p.Eval(ctx, state)
	})
}

// Fork returns a program starting p on exec and producing its fiber right
// away. p is evaluated against the state and under the context the forking
// program is evaluated with.
func Fork[S, T any](p Program[S, T], exec fiber.Executor) Program[S, *fiber.Fiber[T]] {
	return Func[S, *fiber.Fiber[T]](func(ctx context.Context, state S) result.Result[*fiber.Fiber[T]] {
		return result.Success(fiber.Go(ctx, exec, func(ctx context.Context) result.Result[T] {
			return p.Eval(ctx, state)
		}))
	})
}

// Join returns a program awaiting f.
func Join[S, T any](f *fiber.Fiber[T]) Program[S, T] {
	return Func[S, T](func(ctx context.Context, _ S) result.Result[T] {
		return f.Await(ctx)
	})
}
