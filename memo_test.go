package cst

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const idSyntheticMemo ProductionID = 101

// Memoize caches by (production, offset): a second call at the same offset
// must return the cached result without invoking the inner parser again.
func TestMemoize_CachesByOffset(t *testing.T) {
	calls := 0
	counting := Memoize(idSyntheticMemo, func(s Span) (Span, string, error) {
		calls++
		return Tag("x")(s)
	})

	s := NewSpan("x")
	_, v1, err := counting(s)
	require.NoError(t, err)
	require.Equal(t, "x", v1)
	require.Equal(t, 1, calls)

	_, v2, err := counting(s)
	require.NoError(t, err)
	require.Equal(t, "x", v2)
	require.Equal(t, 1, calls, "second call at the same offset must hit the cache")
}

// A failing parse is cached too: retrying at the same offset must not
// re-invoke the inner parser, and must still report the original error.
func TestMemoize_CachesFailureByOffset(t *testing.T) {
	calls := 0
	counting := Memoize(idSyntheticMemo+1, func(s Span) (Span, string, error) {
		calls++
		return Tag("x")(s)
	})

	s := NewSpan("y")
	_, _, err1 := counting(s)
	require.Error(t, err1)
	require.Equal(t, 1, calls)

	_, _, err2 := counting(s)
	require.Error(t, err2)
	require.Equal(t, 1, calls)
}

// A different offset is a different cache key: consuming input and
// re-entering the same production must re-run the inner parser.
func TestMemoize_DistinctOffsetsDoNotShareCache(t *testing.T) {
	calls := 0
	counting := Memoize(idSyntheticMemo+2, func(s Span) (Span, string, error) {
		calls++
		return Tag("a")(s)
	})

	s := NewSpan("aa")
	s1, _, err := counting(s)
	require.NoError(t, err)
	require.Equal(t, 1, calls)

	_, _, err = counting(s1)
	require.NoError(t, err)
	require.Equal(t, 2, calls)
}
