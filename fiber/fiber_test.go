package fiber

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/grafana/zipgen/finisher"
	"github.com/grafana/zipgen/result"
)

// counted returns a completed fiber that counts how often it is awaited.
func counted[T any](r result.Result[T], awaits *atomic.Int32) *Fiber[T] {
	return &Fiber[T]{
		await: func(context.Context) result.Result[T] {
			awaits.Add(1)
			return r
		},
		cancel: func() {},
	}
}

func TestZip2(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	f := Zip2(Succeed(1), Go(ctx, Goroutines(), func(context.Context) result.Result[string] {
		return result.Success("a")
	}), finisher.Of2(func(i int, s string) string {
		return strconv.Itoa(i) + s
	}))
	v, err := f.Await(ctx).Get()
	is.NoErr(err)
	is.Equal(v, "1a")
}

func TestZipShortCircuits(t *testing.T) {
	for _, n := range []int{3, 5} {
		for k := 0; k < n; k++ {
			t.Run(fmt.Sprintf("arity %d failure at %d", n, k), func(t *testing.T) {
				is := is.New(t)
				ctx := context.Background()
				awaits := make([]atomic.Int32, n)
				errs := make([]error, n)
				fs := make([]*Fiber[int], n)
				for i := range fs {
					r := result.Success(i)
					if i >= k {
						// every slot from k on fails, only k must be reported
						errs[i] = fmt.Errorf("slot %d", i)
						r = result.Failure[int](errs[i])
					}
					fs[i] = counted(r, &awaits[i])
				}

				called := 0
				var f *Fiber[int]
				switch n {
				case 3:
					f = Zip3(fs[0], fs[1], fs[2], finisher.Of3(func(a, b, c int) int {
						called++
						return 0
					}))
				case 5:
					f = Zip5(fs[0], fs[1], fs[2], fs[3], fs[4], finisher.Of5(func(a, b, c, d, e int) int {
						called++
						return 0
					}))
				}
				r := f.Await(ctx)
				is.True(r.Err() == errs[k])
				for i := range awaits {
					want := int32(0)
					if i <= k {
						want = 1
					}
					is.Equal(awaits[i].Load(), want) // nothing after the failure is awaited
				}
				is.Equal(called, 0)

				// the outcome is remembered
				is.True(f.Await(ctx).Err() == errs[k])
				is.Equal(awaits[0].Load(), int32(1))
			})
		}
	}
}

func TestZipFinisherOrder(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	exec := NewPool(4)
	letter := func(s string) *Fiber[string] {
		return Go(ctx, exec, func(context.Context) result.Result[string] {
			return result.Success(s)
		})
	}
	f := Zip4(letter("a"), letter("b"), letter("c"), letter("d"), finisher.Of4(func(a, b, c, d string) string {
		return a + b + c + d
	}))
	is.Equal(f.Await(ctx).OrElse(""), "abcd")
	exec.Wait()
}

func TestZipRecoversPanics(t *testing.T) {
	is := is.New(t)
	f := Zip2(Succeed(1), Succeed(2), finisher.Of2(func(a, b int) int {
		panic("boom")
	}))
	var perr *result.PanicError
	is.True(errors.As(f.Await(context.Background()).Err(), &perr))
	is.Equal(perr.Value, "boom")
}

func TestGoRecoversPanics(t *testing.T) {
	is := is.New(t)
	f := Go(context.Background(), Goroutines(), func(context.Context) result.Result[int] {
		panic("task")
	})
	var perr *result.PanicError
	is.True(errors.As(f.Await(context.Background()).Err(), &perr))
}

func TestAwaitContext(t *testing.T) {
	is := is.New(t)
	release := make(chan struct{})
	f := Go(context.Background(), Goroutines(), func(context.Context) result.Result[int] {
		<-release
		return result.Success(42)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	is.True(errors.Is(f.Await(ctx).Err(), context.Canceled))

	close(release)
	is.Equal(f.Await(context.Background()).OrElse(0), 42)
}

func TestCancel(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	started := make(chan struct{})
	f := Go(ctx, Goroutines(), func(ctx context.Context) result.Result[int] {
		close(started)
		<-ctx.Done()
		return result.Failure[int](ctx.Err())
	})
	<-started

	zipped := Zip2(f, Succeed(1), finisher.First2[int, int]())
	zipped.Cancel()
	is.True(errors.Is(zipped.Await(ctx).Err(), context.Canceled))
}

func TestDerivedFibersRunOnce(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	calls := 0
	f := Map(Succeed(2), func(v int) int {
		calls++
		return v * 2
	})
	is.Equal(f.Await(ctx).OrElse(0), 4)
	is.Equal(f.Await(ctx).OrElse(0), 4)
	is.Equal(calls, 1)

	g := FlatMap(f, func(v int) *Fiber[string] {
		calls++
		return Succeed(strconv.Itoa(v))
	})
	is.Equal(g.Await(ctx).OrElse(""), "4")
	is.Equal(g.Await(ctx).OrElse(""), "4")
	is.Equal(calls, 2)
}

func TestAll(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	v, err := All([]*Fiber[int]{Succeed(1), Succeed(2), Succeed(3)}).Await(ctx).Get()
	is.NoErr(err)
	is.Equal(v, []int{1, 2, 3})

	var awaits atomic.Int32
	errBad := errors.New("bad")
	r := All([]*Fiber[int]{Succeed(1), Fail[int](errBad), counted(result.Success(3), &awaits)}).Await(ctx)
	is.True(r.Err() == errBad)
	is.Equal(awaits.Load(), int32(0))
}

func TestPoolLimit(t *testing.T) {
	is := is.New(t)
	p := NewPool(2)
	var running, peak atomic.Int32
	for i := 0; i < 10; i++ {
		p.Execute(func() {
			n := running.Add(1)
			for {
				old := peak.Load()
				if n <= old || peak.CompareAndSwap(old, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			running.Add(-1)
		})
	}
	p.Wait()
	is.True(peak.Load() >= 1)
	is.True(peak.Load() <= 2)
	is.Equal(running.Load(), int32(0))
}

func TestExecutorFunc(t *testing.T) {
	is := is.New(t)
	var ran []int
	inline := ExecutorFunc(func(task func()) { task() })
	for i := 0; i < 3; i++ {
		i := i
		Go(context.Background(), inline, func(context.Context) result.Result[int] {
			ran = append(ran, i)
			return result.Success(i)
		})
	}
	is.Equal(ran, []int{0, 1, 2})
}

func TestOutcomeKeptWhenAwaiterIsCancelled(t *testing.T) {
	is := is.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := 0
	f := Zip2(Succeed(1), Succeed(2), finisher.Of2(func(a, b int) int {
		calls++
		cancel()
		return a + b
	}))
	is.Equal(f.Await(ctx).OrElse(0), 3)
	is.Equal(f.Await(context.Background()).OrElse(0), 3)
	is.Equal(calls, 1) // the finisher ran once
}

func TestCancelledAwaitIsRetried(t *testing.T) {
	is := is.New(t)
	calls := 0
	f := derive(func() {}, func(ctx context.Context) result.Result[int] {
		calls++
		if err := ctx.Err(); err != nil {
			return result.Failure[int](err)
		}
		return result.Success(calls)
	})

	ctx, cancel := context.WithCancel(context.Background())
	entered := false
	g := FlatMap(Succeed(0), func(int) *Fiber[int] {
		entered = true
		cancel()
		return f
	})
	is.True(errors.Is(g.Await(ctx).Err(), context.Canceled))
	is.True(entered)

	// the failure came from the awaiter, so it is not remembered
	is.Equal(f.Await(context.Background()).OrElse(0), 2)
	is.Equal(f.Await(context.Background()).OrElse(0), 2)
}

func TestAwaitHonorsContextWhileAnotherAwaits(t *testing.T) {
	is := is.New(t)
	entered, release := make(chan struct{}), make(chan struct{})
	f := derive(func() {}, func(context.Context) result.Result[int] {
		close(entered)
		<-release
		return result.Success(1)
	})

	first := make(chan result.Result[int], 1)
	go func() {
		first <- f.Await(context.Background())
	}()
	<-entered

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	start := time.Now()
	r := f.Await(ctx)
	is.True(errors.Is(r.Err(), context.DeadlineExceeded))
	is.True(time.Since(start) < 5*time.Second) // returned at its own deadline

	close(release)
	is.Equal((<-first).OrElse(0), 1)
	is.Equal(f.Await(context.Background()).OrElse(0), 1)
}

func TestCompletedFiberIgnoresDoneContext(t *testing.T) {
	is := is.New(t)
	inline := ExecutorFunc(func(task func()) { task() })
	f := Go(context.Background(), inline, func(context.Context) result.Result[int] {
		return result.Success(7)
	})
	m := Map(f, func(v int) int { return v * 2 })
	is.Equal(m.Await(context.Background()).OrElse(0), 14)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for i := 0; i < 100; i++ {
		is.Equal(f.Await(ctx).OrElse(0), 7)
		is.Equal(m.Await(ctx).OrElse(0), 14)
	}
}
