package store_test

import (
	"testing"

	"github.com/go-dimval/dimval/box"
	"github.com/go-dimval/dimval/interval"
	"github.com/go-dimval/dimval/store"
	"github.com/stretchr/testify/require"
)

func full2D() box.Box {
	return box.Box{
		box.NewAxis[int64](i64, interval.Unbounded[int64]()),
		box.NewAxis[int64](i64, interval.Unbounded[int64]()),
	}
}

func insertAt(b box.Box, k int, d box.Dim) box.Box {
	out := make(box.Box, 0, len(b)+1)
	out = append(out, b[:k]...)
	out = append(out, d)
	out = append(out, b[k:]...)
	return out
}

// TestGetByDimensionIndexAgreesWithGetAt checks the projection agreement
// law: projecting axis k at point v, then reading q, matches reading
// the original store at q with v reinserted at axis k.
func TestGetByDimensionIndexAgreesWithGetAt(t *testing.T) {
	s, err := store.New[string](full2D())
	require.NoError(t, err)
	s.Set(store.Row[string]{Interval: box.Box{ax(0, 9), ax(0, 9)}, Value: "a"})
	s.Set(store.Row[string]{Interval: box.Box{ax(10, 19), ax(0, 9)}, Value: "b"})
	s.Set(store.Row[string]{Interval: box.Box{ax(0, 9), ax(10, 19)}, Value: "c"})

	point := box.Point[int64](i64, 5)
	proj, err := s.GetByDimensionIndex(0, point)
	require.NoError(t, err)

	for _, q := range []box.Dim{ax(0, 0), ax(4, 4), ax(10, 10), ax(15, 15), ax(20, 20)} {
		gotProj, okProj := proj.GetAt(box.Box{q})
		gotSrc, okSrc := s.GetAt(insertAt(box.Box{q}, 0, point))
		require.Equal(t, okSrc, okProj)
		if okSrc {
			require.Equal(t, gotSrc, gotProj)
		}
	}
}

func TestGetByDimensionIndexRejectsOutOfRange(t *testing.T) {
	s, _ := store.New[string](full2D())
	_, err := s.GetByDimensionIndex(2, box.Point[int64](i64, 0))
	require.ErrorIs(t, err, store.ErrInvalidDimension)
	_, err = s.GetByDimensionIndex(-1, box.Point[int64](i64, 0))
	require.ErrorIs(t, err, store.ErrInvalidDimension)
}

func TestFlipReordersAxesAndRoundTrips(t *testing.T) {
	s, err := store.New[string](full2D())
	require.NoError(t, err)
	s.Set(store.Row[string]{Interval: box.Box{ax(0, 9), ax(20, 29)}, Value: "a"})
	s.Set(store.Row[string]{Interval: box.Box{ax(10, 19), ax(30, 39)}, Value: "b"})

	flipped, err := s.Flip([]int{1, 0})
	require.NoError(t, err)

	v, ok := flipped.GetAt(box.Box{ax(25, 25), ax(5, 5)})
	require.True(t, ok)
	require.Equal(t, "a", v)

	back, err := flipped.Flip([]int{1, 0})
	require.NoError(t, err)
	v, ok = back.GetAt(box.Box{ax(5, 5), ax(25, 25)})
	require.True(t, ok)
	require.Equal(t, "a", v)
}

func TestFlipRejectsNonPermutation(t *testing.T) {
	s, _ := store.New[string](full2D())
	_, err := s.Flip([]int{0, 0})
	require.ErrorIs(t, err, store.ErrInvalidPermutation)
	_, err = s.Flip([]int{0})
	require.ErrorIs(t, err, store.ErrInvalidPermutation)
}
