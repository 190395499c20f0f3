package flux

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collect drains an effect synchronously. The yield callback locks because
// Merge-built effects yield from several goroutines.
func collect[A any](e Effect[A]) []A {
	if e == nil {
		return nil
	}
	var mu sync.Mutex
	var out []A
	e(context.Background(), func(a A) {
		mu.Lock()
		out = append(out, a)
		mu.Unlock()
	})
	return out
}

func TestOf_YieldsInOrder(t *testing.T) {
	e := Of("a", "b", "c")
	assert.Equal(t, []string{"a", "b", "c"}, collect(e))
}

func TestOf_Empty(t *testing.T) {
	assert.Nil(t, Of[string]())
	assert.Nil(t, None[string]())
}

func TestOf_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var got []int
	Of(1, 2, 3)(ctx, func(a int) { got = append(got, a) })
	assert.Empty(t, got, "cancelled scope must suppress yields")
}

func TestFuture_NotOK(t *testing.T) {
	e := Future(func(ctx context.Context) (int, bool) { return 0, false })
	assert.Empty(t, collect(e))
}

func TestFuture_YieldsOne(t *testing.T) {
	e := Future(func(ctx context.Context) (int, bool) { return 42, true })
	assert.Equal(t, []int{42}, collect(e))
}

func TestMerge_Empty(t *testing.T) {
	assert.Nil(t, Merge[int]())
	assert.Nil(t, Merge[int](nil, nil))
}

func TestMerge_SingleEffectPassthrough(t *testing.T) {
	e := Of(1, 2)
	assert.Equal(t, []int{1, 2}, collect(Merge(e)))
}

func TestMerge_YieldsAllActions(t *testing.T) {
	merged := Merge(Of(1, 2), Of(3), Of(4, 5))

	out := make(chan int, 5)
	merged(context.Background(), func(a int) { out <- a })
	close(out)

	var got []int
	for a := range out {
		got = append(got, a)
	}
	sort.Ints(got)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, got)
}

func TestMapEffect_EmbedsActions(t *testing.T) {
	e := MapEffect(Of(1, 2), func(n int) string {
		return string(rune('a' + n))
	})
	assert.Equal(t, []string{"b", "c"}, collect(e))
}

func TestMapEffect_NilStaysNil(t *testing.T) {
	require.Nil(t, MapEffect[int, string](nil, nil))
}
