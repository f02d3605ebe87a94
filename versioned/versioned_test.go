package versioned_test

import (
	"testing"
	"time"

	"github.com/go-dimval/dimval/box"
	"github.com/go-dimval/dimval/domain"
	"github.com/go-dimval/dimval/interval"
	"github.com/go-dimval/dimval/store"
	"github.com/go-dimval/dimval/versioned"
	"github.com/stretchr/testify/require"
)

var i64 = domain.Int64{}

func ax(a, b int64) box.Dim { return box.NewAxis[int64](i64, interval.Between(i64, a, b)) }
func userFull() box.Box     { return box.Box{box.NewAxis[int64](i64, interval.Unbounded[int64]())} }

func TestApproveMovesUnapprovedRowToCurrentVersion(t *testing.T) {
	s, err := versioned.New[string](userFull(), 0)
	require.NoError(t, err)

	require.NoError(t, s.IncrementCurrentVersion(""))
	require.NoError(t, s.IncrementCurrentVersion(""))
	require.EqualValues(t, 2, s.CurrentVersion())

	row := store.Row[string]{Interval: box.Box{ax(5, 15)}, Value: "to"}
	s.Set(row, versioned.Unapproved())

	_, ok := s.GetAt(box.Box{ax(10, 10)}, versioned.Current())
	require.False(t, ok)

	_, ok = s.GetAt(box.Box{ax(10, 10)}, versioned.Unapproved())
	require.True(t, ok)

	found := s.Approve(row)
	require.True(t, found)

	v, ok := s.GetAt(box.Box{ax(10, 10)}, versioned.Current())
	require.True(t, ok)
	require.Equal(t, "to", v)
}

func TestSetCurrentVersionBounds(t *testing.T) {
	s, _ := versioned.New[string](userFull(), 0)
	require.ErrorIs(t, s.SetCurrentVersion(-1, ""), versioned.ErrVersionOutOfRange)
}

func TestIncrementCurrentVersionExhausted(t *testing.T) {
	s, _ := versioned.New[string](userFull(), 0)
	require.NoError(t, s.SetCurrentVersion(1<<62, ""))
	// Walking all the way to the unapproved boundary would take far too
	// long to iterate; instead jump to the edge: the boundary itself is
	// out of range, and incrementing from the version just below it is
	// refused.
	err := s.SetCurrentVersion((1<<63 - 1), "")
	require.ErrorIs(t, err, versioned.ErrVersionOutOfRange)
	require.NoError(t, s.SetCurrentVersion((1<<63-2), ""))
	require.ErrorIs(t, s.IncrementCurrentVersion(""), versioned.ErrVersionsExhausted)
}

func TestVersionMetaRecordsCommentAndTimestamp(t *testing.T) {
	s, _ := versioned.New[string](userFull(), 0)

	_, _, ok := s.VersionMeta(1)
	require.False(t, ok)

	before := time.Now()
	require.NoError(t, s.SetCurrentVersion(1, "rollout"))
	after := time.Now()

	comment, ts, ok := s.VersionMeta(1)
	require.True(t, ok)
	require.Equal(t, "rollout", comment)
	require.False(t, ts.Before(before))
	require.False(t, ts.After(after))
}

func TestResetToVersionDropsFutureRows(t *testing.T) {
	s, _ := versioned.New[string](userFull(), 0)
	s.Set(store.Row[string]{Interval: box.Box{ax(1, 10)}, Value: "a"}, versioned.Current())
	require.NoError(t, s.IncrementCurrentVersion(""))
	s.Set(store.Row[string]{Interval: box.Box{ax(1, 10)}, Value: "b"}, versioned.Current())

	s.ResetToVersion(0)
	v, ok := s.GetAt(box.Box{ax(5, 5)}, versioned.Specific(0))
	require.True(t, ok)
	require.Equal(t, "a", v)
}
