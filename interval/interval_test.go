package interval_test

import (
	"testing"

	"github.com/go-dimval/dimval/domain"
	"github.com/go-dimval/dimval/interval"
	"github.com/stretchr/testify/require"
)

var i64 = domain.Int64{}

func TestNewRejectsEmpty(t *testing.T) {
	_, err := interval.New[int64](i64, interval.At(int64(5)), interval.At(int64(1)))
	require.ErrorIs(t, err, interval.ErrEmptyInterval)
}

func TestIntervalAtSelfIntersection(t *testing.T) {
	a := interval.Closed(int64(5))
	got, ok := interval.Intersect(i64, a, a)
	require.True(t, ok)
	require.True(t, interval.Equal(i64, a, got))
}

func TestTopNotLeftAdjacent(t *testing.T) {
	a := interval.To(int64(5))
	a.End = interval.Top[int64]()
	b := interval.Closed(int64(100))
	require.False(t, interval.IsLeftAdjacent(i64, a, b))
}

func TestIsLeftAdjacentChain(t *testing.T) {
	a := interval.Between(i64, 1, 4)
	b := interval.Between(i64, 5, 9)
	require.True(t, interval.IsLeftAdjacent(i64, a, b))
	require.False(t, interval.IsLeftAdjacent(i64, b, a))
}

func TestMinusNone(t *testing.T) {
	a := interval.Between(i64, 1, 10)
	r := interval.Minus(i64, a, a)
	require.Equal(t, interval.RemainderNone, r.Kind)
}

func TestMinusSingleBothSides(t *testing.T) {
	a := interval.Between(i64, 1, 10)
	// touches left side: remainder is the right tail
	left := interval.Between(i64, 1, 3)
	r := interval.Minus(i64, a, left)
	require.Equal(t, interval.RemainderSingle, r.Kind)
	require.True(t, interval.Equal(i64, interval.Between(i64, 4, 10), r.Left))

	// touches right side: remainder is the left head
	right := interval.Between(i64, 8, 10)
	r = interval.Minus(i64, a, right)
	require.Equal(t, interval.RemainderSingle, r.Kind)
	require.True(t, interval.Equal(i64, interval.Between(i64, 1, 7), r.Left))
}

func TestMinusSplit(t *testing.T) {
	a := interval.Between(i64, 1, 10)
	mid := interval.Between(i64, 4, 6)
	r := interval.Minus(i64, a, mid)
	require.Equal(t, interval.RemainderSplit, r.Kind)
	require.True(t, interval.Equal(i64, interval.Between(i64, 1, 3), r.Left))
	require.True(t, interval.Equal(i64, interval.Between(i64, 7, 10), r.Right))
}

func TestGap(t *testing.T) {
	a := interval.Between(i64, 1, 4)
	b := interval.Between(i64, 10, 12)
	g, ok := interval.Gap(i64, a, b)
	require.True(t, ok)
	require.True(t, interval.Equal(i64, interval.Between(i64, 5, 9), g))

	adjacent := interval.Between(i64, 5, 9)
	_, ok = interval.Gap(i64, a, adjacent)
	require.False(t, ok)
}

func TestUnionRequiresTouching(t *testing.T) {
	a := interval.Between(i64, 1, 4)
	b := interval.Between(i64, 5, 9)
	u, ok := interval.Union(i64, a, b)
	require.True(t, ok)
	require.True(t, interval.Equal(i64, interval.Between(i64, 1, 9), u))

	far := interval.Between(i64, 100, 200)
	_, ok = interval.Union(i64, a, far)
	require.False(t, ok)
}

func TestComplement(t *testing.T) {
	ivs := []interval.Interval[int64]{
		interval.Between(i64, 5, 9),
		interval.Between(i64, 20, 25),
	}
	comp := interval.Complement(i64, ivs)
	require.Len(t, comp, 3)
	require.True(t, interval.Equal(i64, interval.To(int64(4)), comp[0]))
	require.True(t, interval.Equal(i64, interval.Between(i64, 10, 19), comp[1]))
	require.True(t, interval.Equal(i64, interval.From(int64(26)), comp[2]))
}

func TestComplementOfEmptyIsUnbounded(t *testing.T) {
	comp := interval.Complement[int64](i64, nil)
	require.Len(t, comp, 1)
	require.True(t, interval.Equal(i64, interval.Unbounded[int64](), comp[0]))
}

func TestUniqueIntervalsIdempotent(t *testing.T) {
	ivs := []interval.Interval[int64]{
		interval.Between(i64, 1, 10),
		interval.Between(i64, 5, 15),
	}
	once := interval.UniqueIntervals(i64, ivs)
	twice := interval.UniqueIntervals(i64, once)
	require.ElementsMatch(t, once, twice)

	require.True(t, interval.IsDisjoint(i64, once))
	// union of atoms covers [1..15]
	total := interval.Complement(i64, once)
	comp := interval.Complement(i64, total)
	require.Len(t, comp, 1)
	require.True(t, interval.Equal(i64, interval.Between(i64, 1, 15), comp[0]))
}

func TestUniqueIntervalsIsMinimal(t *testing.T) {
	ivs := []interval.Interval[int64]{
		interval.Between(i64, 5, 6),
		interval.Between(i64, 7, 7),
	}
	atoms := interval.UniqueIntervals(i64, ivs)
	require.Len(t, atoms, 2)
}

func TestCompressChainAndGap(t *testing.T) {
	chain := []interval.Labeled[int64, string]{
		{Interval: interval.Between(i64, 1, 5), Value: "a"},
		{Interval: interval.Between(i64, 6, 10), Value: "a"},
		{Interval: interval.Between(i64, 11, 15), Value: "a"},
	}
	out := interval.Compress(i64, chain)
	require.Len(t, out, 1)
	require.True(t, interval.Equal(i64, interval.Between(i64, 1, 15), out[0].Interval))

	nonAdjacent := []interval.Labeled[int64, string]{
		{Interval: interval.Between(i64, 1, 5), Value: "a"},
		{Interval: interval.Between(i64, 7, 10), Value: "a"},
	}
	out = interval.Compress(i64, nonAdjacent)
	require.Len(t, out, 2)
}
