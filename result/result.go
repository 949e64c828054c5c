// Package result implements Result, the outcome of a computation that either
// succeeded with a value or failed with an error.
//
// Results are plain values. Combining them with FlatMap, Map or the
// generated ZipN functions inspects them left to right and stops at the
// first failure, which is carried through unchanged.
package result

import (
	"fmt"

	"github.com/grafana/zipgen/finisher"
	"github.com/grafana/zipgen/internal/runtimex"
)

// Result is either a success holding a value of type T or a failure holding
// a non-nil error. The zero Result is a success holding the zero T.
type Result[T any] struct {
	value T
	err   error
}

// Success returns a successful Result holding v.
func Success[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Failure returns a failed Result holding err. It panics if err is nil.
func Failure[T any](err error) Result[T] {
	runtimex.PanicIfNil(err, "result: Failure called with a nil error")
	return Result[T]{err: err}
}

// Of returns a failure if err is not nil, and a success holding v otherwise.
func Of[T any](v T, err error) Result[T] {
	if err != nil {
		return Failure[T](err)
	}
	return Success(v)
}

// Try calls fn and returns its outcome. A panic in fn is returned as a
// *PanicError failure.
func Try[T any](fn func() (T, error)) (res Result[T]) {
	defer Recover(&res)
	return Of(fn())
}

// Get returns the value and the error of r. The value is the zero T when r
// is a failure.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// IsSuccess reports whether r holds a value.
func (r Result[T]) IsSuccess() bool {
	return r.err == nil
}

// IsFailure reports whether r holds an error.
func (r Result[T]) IsFailure() bool {
	return r.err != nil
}

// Err returns the error of a failure, or nil.
func (r Result[T]) Err() error {
	return r.err
}

// OrElse returns the value of r, or fallback when r is a failure.
func (r Result[T]) OrElse(fallback T) T {
	if r.err != nil {
		return fallback
	}
	return r.value
}

func (r Result[T]) String() string {
	if r.err != nil {
		return fmt.Sprintf("Failure(%v)", r.err)
	}
	return fmt.Sprintf("Success(%v)", r.value)
}

// FlatMap calls fn with the value of r and returns its result. A failure is
// returned unchanged and fn is not called.
func FlatMap[T, R any](r Result[T], fn func(T) Result[R]) Result[R] {
	if r.err != nil {
		return Result[R]{err: r.err}
	}
	return fn(r.value)
}

// Map returns a success holding fn applied to the value of r. A failure is
// returned unchanged and fn is not called.
func Map[T, R any](r Result[T], fn func(T) R) Result[R] {
	if r.err != nil {
		return Result[R]{err: r.err}
	}
	return Success(fn(r.value))
}

// MapError replaces the error of a failure with fn applied to it. A success
// is returned unchanged. fn must not return nil.
func MapError[T any](r Result[T], fn func(error) error) Result[T] {
	if r.err == nil {
		return r
	}
	return Failure[T](fn(r.err))
}

// Fold calls onFailure or onSuccess, depending on r, and returns what it
// returned.
func Fold[T, R any](r Result[T], onFailure func(error) R, onSuccess func(T) R) R {
	if r.err != nil {
		return onFailure(r.err)
	}
	return onSuccess(r.value)
}

// PanicError is the failure a recovered panic is turned into.
type PanicError struct {
	// Value is the value the code panicked with.
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap returns the panic value when it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Recover turns a panic into a *PanicError failure stored in *res. It must
// be deferred directly:
//
//	func f() (res Result[int]) {
//		defer Recover(&res)
//		...
//	}
func Recover[T any](res *Result[T]) {
	if v := recover(); v != nil {
		*res = Failure[T](&PanicError{Value: v})
	}
}

func appendTo[T any]() finisher.Finisher2[[]T, T, []T] {
	return finisher.Of2(func(vs []T, v T) []T {
		return append(vs, v)
	})
}

// Sequence turns a slice of results into a result holding every value, in
// order. The first failure, in slice order, is returned instead when there
// is one.
func Sequence[T any](rs []Result[T]) Result[[]T] {
	acc := Success(make([]T, 0, len(rs)))
	for _, r := range rs {
		if acc.IsFailure() {
			break
		}
		acc = Zip2(acc, r, appendTo[T]())
	}
	return acc
}

// Traverse calls fn on each element of vs, in order, and collects the
// values. It stops at the first failure and returns it; fn is not called
// on the elements after it.
func Traverse[T, R any](vs []T, fn func(T) Result[R]) Result[[]R] {
	acc := Success(make([]R, 0, len(vs)))
	for _, v := range vs {
		if acc.IsFailure() {
			break
		}
		acc = Zip2(acc, fn(v), appendTo[R]())
	}
	return acc
}
