package store_test

import (
	"testing"

	"github.com/go-dimval/dimval/box"
	"github.com/go-dimval/dimval/domain"
	"github.com/go-dimval/dimval/interval"
	"github.com/go-dimval/dimval/store"
	"github.com/stretchr/testify/require"
)

var i64 = domain.Int64{}

func ax(a, b int64) box.Dim { return box.NewAxis[int64](i64, interval.Between(i64, a, b)) }
func axFrom(a int64) box.Dim { return box.NewAxis[int64](i64, interval.From(a)) }
func axTo(b int64) box.Dim   { return box.NewAxis[int64](i64, interval.To(b)) }

func fullBox() box.Box { return box.Box{box.NewAxis[int64](i64, interval.Unbounded[int64]())} }

func row(a box.Dim, v string) store.Row[string] { return store.Row[string]{Interval: box.Box{a}, Value: v} }

func TestRepeatedSetCarvesExpectedRows(t *testing.T) {
	s, err := store.New[string](fullBox())
	require.NoError(t, err)

	s.Set(row(axTo(4), "Hello"))
	s.Set(row(ax(5, 15), "to"))
	s.Set(row(axFrom(16), "World"))
	s.Set(row(ax(20, 25), "!"))

	all := s.GetAll()
	require.Len(t, all, 5)
	require.Equal(t, "Hello", all[0].Value)
	require.Equal(t, "to", all[1].Value)
	require.Equal(t, "World", all[2].Value)
	require.True(t, all[2].Interval[0].Equal(ax(16, 19)))
	require.Equal(t, "!", all[3].Value)
	require.Equal(t, "World", all[4].Value)
	require.True(t, all[4].Interval[0].Equal(axFrom(26)))
}

func TestRemoveCarvesRowsAroundTarget(t *testing.T) {
	s, err := store.New[string](fullBox())
	require.NoError(t, err)
	s.Set(row(axTo(4), "Hey"))
	s.Set(row(ax(20, 25), "!"))

	s.Remove(box.Box{ax(1, 19)})
	all := s.GetAll()
	require.Len(t, all, 2)
	require.Equal(t, "Hey", all[0].Value)
	require.True(t, all[0].Interval[0].Equal(axTo(0)))
	require.Equal(t, "!", all[1].Value)
}

func TestDiffRoundTrip(t *testing.T) {
	a, _ := store.New[string](fullBox())
	a.Set(row(axTo(4), "Hey"))
	a.Set(row(ax(20, 25), "!"))

	b, _ := store.New[string](fullBox())
	b.Set(row(axTo(0), "Hey"))
	b.Set(row(ax(20, 25), "!"))

	actions := b.DiffActionsFrom(a)
	require.Len(t, actions, 1)
	require.Equal(t, store.DiffUpdate, actions[0].Kind)

	a.ApplyDiffActions(actions)
	require.ElementsMatch(t, b.GetAll(), a.GetAll())
}

func TestCompressionMergesAdjacentEqualValues(t *testing.T) {
	s, _ := store.New[string](fullBox())
	s.Set(row(axTo(4), "Hello"))
	s.Set(row(ax(5, 5), "World"))
	s.Set(row(ax(6, 6), "World"))
	s.Set(row(ax(7, 7), "Hello"))
	s.Set(row(ax(8, 9), "Hello"))
	s.Set(row(axFrom(10), "Hello"))

	s.CompressAll()
	all := s.GetAll()
	require.Len(t, all, 3)
	require.Equal(t, "Hello", all[0].Value)
	require.True(t, all[0].Interval[0].Equal(axTo(4)))
	require.Equal(t, "World", all[1].Value)
	require.True(t, all[1].Interval[0].Equal(ax(5, 6)))
	require.Equal(t, "Hello", all[2].Value)
	require.True(t, all[2].Interval[0].Equal(axFrom(7)))
}

func TestZipAndZipAll(t *testing.T) {
	a, _ := store.New[string](fullBox())
	a.Set(row(ax(0, 9), "Hello"))
	a.Set(row(ax(12, 20), "World"))

	b, _ := store.New[string](fullBox())
	b.Set(row(ax(-4, -2), "Goodbye"))
	b.Set(row(ax(6, 14), "Cruel"))
	b.Set(row(ax(16, 24), "World"))

	zipped := store.Zip(a, b)
	all := zipped.GetAll()
	require.Len(t, all, 3)

	zippedAll := store.ZipAll(a, b, "<", ">")
	require.True(t, len(zippedAll.GetAll()) >= len(all))
}

func TestUpdateCarvesTwoDHole(t *testing.T) {
	xAx := domain.Int64{}
	full := box.Box{
		box.NewAxis[int64](xAx, interval.Unbounded[int64]()),
		box.NewAxis[int64](xAx, interval.Unbounded[int64]()),
	}
	s, _ := store.New[string](full)
	s.Set(store.Row[string]{Interval: box.Box{ax(-14, 14), ax(4, 7)}, Value: "World"})
	s.Update(store.Row[string]{Interval: box.Box{ax(-6, 6), ax(5, 6)}, Value: "update"})

	all := s.GetAll()
	require.Len(t, all, 5)
}

func TestRowsStayDisjointAfterMutation(t *testing.T) {
	s, _ := store.New[string](fullBox())
	s.Set(row(axTo(4), "Hello"))
	s.Set(row(ax(5, 15), "to"))
	s.Remove(box.Box{ax(6, 10)})

	all := s.GetAll()
	for i := 0; i < len(all); i++ {
		for j := i + 1; j < len(all); j++ {
			require.False(t, all[i].Interval.Intersects(all[j].Interval))
		}
	}
}

func TestGetRequiresSingleCoveringRow(t *testing.T) {
	s, _ := store.New[string](fullBox())
	_, err := s.Get()
	require.ErrorIs(t, err, store.ErrNoSingleValue)

	s.Set(row(box.NewAxis[int64](i64, interval.Unbounded[int64]()), "only"))
	v, err := s.Get()
	require.NoError(t, err)
	require.Equal(t, "only", v)
}

func TestReplaceByKeyNotFound(t *testing.T) {
	s, _ := store.New[string](fullBox())
	err := s.ReplaceByKey(box.Box{ax(1, 1)}, row(ax(1, 5), "x"))
	require.ErrorIs(t, err, store.ErrKeyNotFound)
}

func TestImmutableMutatorsDoNotAffectReceiver(t *testing.T) {
	s, _ := store.New[string](fullBox())
	s.Set(row(axTo(4), "Hello"))

	im := s.ToImmutable()
	im2 := im.Set(row(ax(5, 10), "World"))

	require.Len(t, im.GetAll(), 1)
	require.Len(t, im2.GetAll(), 2)
	require.Len(t, s.GetAll(), 1)
}
