package task

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestOfMapChain(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	tk := Chain(Map(Of(20), func(n int) int { return n + 1 }), func(n int) Task[string] {
		return Of(strconv.Itoa(n * 2))
	})

	require.Equal("42", tk.Run(ctx))
}

func TestTaskIsDeferred(t *testing.T) {
	require := require.New(t)

	runs := 0
	tk := Task[int](func(context.Context) int {
		runs++
		return runs
	})
	mapped := Map(tk, func(n int) int { return n * 10 })
	require.Equal(0, runs)

	require.Equal(10, mapped.Run(context.Background()))
	require.Equal(20, mapped.Run(context.Background()))
}

func TestApSeqOrder(t *testing.T) {
	require := require.New(t)

	var mu sync.Mutex
	order := make([]string, 0)
	record := func(s string) {
		mu.Lock()
		defer mu.Unlock()
		order = append(order, s)
	}

	tf := Task[func(int) int](func(context.Context) func(int) int {
		record("f")
		return func(n int) int { return n + 1 }
	})
	ta := Task[int](func(context.Context) int {
		record("a")
		return 1
	})

	require.Equal(2, ApSeq(tf, ta).Run(context.Background()))
	require.Equal([]string{"f", "a"}, order)
}

func TestApParRunsConcurrently(t *testing.T) {
	require := require.New(t)

	release := make(chan struct{})
	tf := Task[func(int) int](func(context.Context) func(int) int {
		<-release
		return func(n int) int { return n * 3 }
	})
	ta := Task[int](func(context.Context) int {
		close(release)
		return 5
	})

	require.Equal(15, ApPar(tf, ta).Run(context.Background()))
}

func TestDelay(t *testing.T) {
	require := require.New(t)

	start := time.Now()
	require.Equal(1, Delay(20*time.Millisecond, Of(1)).Run(context.Background()))
	require.GreaterOrEqual(time.Since(start), 20*time.Millisecond)
}

func TestDelayStopsWaitingOnCancel(t *testing.T) {
	require := require.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	require.Equal(1, Delay(time.Hour, Of(1)).Run(ctx))
	require.Less(time.Since(start), time.Second)
}

func TestTraverseSliceSeq(t *testing.T) {
	require := require.New(t)

	var mu sync.Mutex
	order := make([]int, 0)
	f := func(n int) Task[string] {
		return func(context.Context) string {
			mu.Lock()
			order = append(order, n)
			mu.Unlock()
			return strconv.Itoa(n)
		}
	}

	res := TraverseSliceSeq([]int{3, 1, 2}, f).Run(context.Background())
	require.Equal([]string{"3", "1", "2"}, res)
	require.Equal([]int{3, 1, 2}, order)
}

func TestTraverseSlicePar(t *testing.T) {
	require := require.New(t)

	var running, peak int32
	f := func(n int) Task[int] {
		return func(context.Context) int {
			cur := atomic.AddInt32(&running, 1)
			for {
				p := atomic.LoadInt32(&peak)
				if cur <= p || atomic.CompareAndSwapInt32(&peak, p, cur) {
					break
				}
			}
			time.Sleep(time.Duration(10*(5-n)) * time.Millisecond)
			atomic.AddInt32(&running, -1)
			return n * n
		}
	}

	res := TraverseSlicePar([]int{1, 2, 3, 4}, f).Run(context.Background())
	require.Equal([]int{1, 4, 9, 16}, res)
	require.Greater(atomic.LoadInt32(&peak), int32(1))
}

func TestSequenceSlicePar(t *testing.T) {
	require := require.New(t)

	res := SequenceSlicePar([]Task[int]{Of(1), Delay(5*time.Millisecond, Of(2)), Of(3)}).Run(context.Background())
	require.Equal([]int{1, 2, 3}, res)
}

func TestApplicative(t *testing.T) {
	require := require.New(t)

	app := Applicative[int, string]()
	require.Equal("x", app.Of("x").Run(context.Background()))
	require.Equal("7", app.Map(Of(7), strconv.Itoa).Run(context.Background()))
}
