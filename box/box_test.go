package box_test

import (
	"testing"

	"github.com/go-dimval/dimval/box"
	"github.com/go-dimval/dimval/domain"
	"github.com/go-dimval/dimval/interval"
	"github.com/stretchr/testify/require"
)

var i64 = domain.Int64{}

func axis(a, b int64) box.Dim {
	return box.NewAxis[int64](i64, interval.Between(i64, a, b))
}

func TestBoxSubtract2DHole(t *testing.T) {
	// 2-D hole: (-14,14) x (4,7) minus (-6,6) x (5,6).
	o := box.Box{axis(-14, 14), axis(4, 7)}
	x := box.Box{axis(-6, 6), axis(5, 6)}
	pieces := box.Subtract(o, x)

	want := []box.Box{
		{axis(-14, 14), axis(4, 4)},
		{axis(-14, -7), axis(5, 6)},
		{axis(-14, 14), axis(7, 7)},
		{axis(7, 14), axis(5, 6)},
	}
	require.Len(t, pieces, len(want))
	for _, w := range want {
		found := false
		for _, p := range pieces {
			if p.Equal(w) {
				found = true
				break
			}
		}
		require.True(t, found, "missing piece %v", w)
	}
}

func TestBoxSubtractWholeIsNone(t *testing.T) {
	o := box.Box{axis(1, 10)}
	pieces := box.Subtract(o, o)
	require.Empty(t, pieces)
}

func TestLeftAdjacentAxis(t *testing.T) {
	a := box.Box{axis(1, 5), axis(1, 5)}
	b := box.Box{axis(6, 10), axis(1, 5)}
	idx, ok := a.LeftAdjacentAxis(b)
	require.True(t, ok)
	require.Equal(t, 0, idx)

	// differs on axis 1 too -> not adjacent
	c := box.Box{axis(6, 10), axis(6, 10)}
	_, ok = a.LeftAdjacentAxis(c)
	require.False(t, ok)

	// identical everywhere -> not "adjacent"
	_, ok = a.LeftAdjacentAxis(a)
	require.False(t, ok)
}

func TestUniqueDecomposition(t *testing.T) {
	boxes := []box.Box{
		{axis(1, 10)},
		{axis(5, 15)},
	}
	atoms := box.UniqueDecomposition(boxes)
	require.NotEmpty(t, atoms)
	for i := 0; i < len(atoms); i++ {
		for j := i + 1; j < len(atoms); j++ {
			require.False(t, atoms[i].Intersects(atoms[j]))
		}
	}
}

func TestUniqueDecompositionIsMinimal(t *testing.T) {
	boxes := []box.Box{
		{axis(5, 6)},
		{axis(7, 7)},
	}
	atoms := box.UniqueDecomposition(boxes)
	require.Len(t, atoms, 2)
}

func TestBoxString(t *testing.T) {
	b := box.Box{axis(1, 5), axis(10, 20)}
	require.Equal(t, "{[1..5], [10..20]}", b.String())

	single := box.Box{axis(1, 5)}
	require.Equal(t, "[1..5]", single.String())
}
