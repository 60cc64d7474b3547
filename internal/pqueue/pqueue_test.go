package pqueue

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPopReturnsMinimum(t *testing.T) {
	f := New()
	f.PushOrUpdate("c", 3)
	f.PushOrUpdate("a", 1)
	f.PushOrUpdate("b", 2)

	k, p := f.Pop()
	require.Equal(t, "a", k)
	require.Equal(t, 1.0, p)

	k, p = f.Pop()
	require.Equal(t, "b", k)
	require.Equal(t, 2.0, p)

	k, p = f.Pop()
	require.Equal(t, "c", k)
	require.Equal(t, 3.0, p)

	require.True(t, f.IsEmpty())
}

func TestPushOrUpdate_NeverIncreasesPriority(t *testing.T) {
	f := New()
	f.PushOrUpdate("n", 5)
	f.PushOrUpdate("n", 10) // higher priority, should be ignored
	require.True(t, f.Contains("n"))

	k, p := f.Pop()
	require.Equal(t, "n", k)
	require.Equal(t, 5.0, p)
}

func TestPushOrUpdate_LowersPriorityInPlace(t *testing.T) {
	f := New()
	f.PushOrUpdate("n", 10)
	f.PushOrUpdate("n", 2)

	k, p := f.Pop()
	require.Equal(t, "n", k)
	require.Equal(t, 2.0, p)
}

func TestContains(t *testing.T) {
	f := New()
	require.False(t, f.Contains("x"))
	f.PushOrUpdate("x", 1)
	require.True(t, f.Contains("x"))
	f.Pop()
	require.False(t, f.Contains("x"))
}

func TestHeapInvariant_RandomSequence(t *testing.T) {
	f := New()
	rng := rand.New(rand.NewSource(99))
	n := 500
	priorities := make(map[string]float64)
	for i := 0; i < n; i++ {
		key := string(rune('a' + (i % 26)))
		key += string(rune('A' + (i/26)%26))
		p := rng.Float64() * 1000
		if existing, ok := priorities[key]; !ok || p < existing {
			priorities[key] = p
		}
		f.PushOrUpdate(key, p)
	}

	var last float64 = -1
	for !f.IsEmpty() {
		_, p := f.Pop()
		require.GreaterOrEqual(t, p, last)
		last = p
	}
}
