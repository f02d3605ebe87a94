package mvstore_test

import (
	"testing"

	"github.com/go-dimval/dimval/box"
	"github.com/go-dimval/dimval/domain"
	"github.com/go-dimval/dimval/interval"
	"github.com/go-dimval/dimval/mvstore"
	"github.com/stretchr/testify/require"
)

var i64 = domain.Int64{}

func ax(a, b int64) box.Dim { return box.NewAxis[int64](i64, interval.Between(i64, a, b)) }
func fullBox() box.Box      { return box.Box{box.NewAxis[int64](i64, interval.Unbounded[int64]())} }

func TestAddOneExtendsAndCreates(t *testing.T) {
	s, err := mvstore.New[string](fullBox())
	require.NoError(t, err)

	s.AddOne(box.Box{ax(1, 10)}, "a")
	s.AddOne(box.Box{ax(5, 15)}, "b")

	v, ok := s.GetAt(box.Box{ax(7, 7)})
	require.True(t, ok)
	require.Contains(t, v, "a")
	require.Contains(t, v, "b")

	v2, ok2 := s.GetAt(box.Box{ax(2, 2)})
	require.True(t, ok2)
	require.Contains(t, v2, "a")
	require.NotContains(t, v2, "b")
}

func TestRemoveOneDropsEmptyRows(t *testing.T) {
	s, _ := mvstore.New[string](fullBox())
	s.AddOne(box.Box{ax(1, 10)}, "a")
	s.RemoveOne(box.Box{ax(1, 10)}, "a")

	_, ok := s.GetAt(box.Box{ax(5, 5)})
	require.False(t, ok)
}

func TestMergeOneUnionsSets(t *testing.T) {
	a, _ := mvstore.New[string](fullBox())
	a.AddOne(box.Box{ax(1, 10)}, "a")

	b, _ := mvstore.New[string](fullBox())
	b.AddOne(box.Box{ax(5, 15)}, "b")

	merged := a.MergeOne(b)
	v, ok := merged.GetAt(box.Box{ax(7, 7)})
	require.True(t, ok)
	require.Contains(t, v, "a")
	require.Contains(t, v, "b")
}
