package domain_test

import (
	"math"
	"math/big"
	"testing"
	"time"

	"github.com/go-dimval/dimval/domain"
	"github.com/stretchr/testify/require"
)

func TestInt32Bounds(t *testing.T) {
	d := domain.Int32{}
	require.Equal(t, int32(math.MinInt32), d.MinValue())
	require.Equal(t, int32(math.MaxInt32), d.MaxValue())

	_, ok := d.Successor(d.MaxValue())
	require.False(t, ok)
	_, ok = d.Predecessor(d.MinValue())
	require.False(t, ok)

	next, ok := d.Successor(5)
	require.True(t, ok)
	require.Equal(t, int32(6), next)
}

func TestInt64Monotone(t *testing.T) {
	d := domain.Int64{}
	require.Less(t, d.OrderedHash(1), d.OrderedHash(2))
	require.Equal(t, 0, d.Compare(7, 7))
	require.Equal(t, -1, d.Compare(1, 2))
	require.Equal(t, 1, d.Compare(2, 1))
}

func TestBigIntDomain(t *testing.T) {
	d := domain.NewBigInt(big.NewInt(-100), big.NewInt(100))
	v := big.NewInt(99)
	next, ok := d.Successor(v)
	require.True(t, ok)
	require.Equal(t, big.NewInt(100), next)

	_, ok = d.Successor(big.NewInt(100))
	require.False(t, ok)

	require.Panics(t, func() { domain.NewBigInt(big.NewInt(5), big.NewInt(1)) })
}

func TestInstantDomain(t *testing.T) {
	min := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	max := time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)
	d := domain.NewInstant(min, max, time.Hour)

	next, ok := d.Successor(min)
	require.True(t, ok)
	require.Equal(t, min.Add(time.Hour), next)

	_, ok = d.Successor(max)
	require.False(t, ok)
}

func TestLocalDateDomain(t *testing.T) {
	d := domain.NewLocalDate(domain.NewDate(2020, time.January, 1), domain.NewDate(2020, time.January, 31))
	next, ok := d.Successor(domain.NewDate(2020, time.January, 31-1))
	require.True(t, ok)
	require.Equal(t, domain.NewDate(2020, time.January, 31), next)

	require.Less(t, d.OrderedHash(domain.NewDate(2020, time.January, 1)), d.OrderedHash(domain.NewDate(2020, time.January, 2)))
}

func TestEnumDomain(t *testing.T) {
	d := domain.NewEnum([]string{"low", "medium", "high"})
	require.Equal(t, "low", d.MinValue())
	require.Equal(t, "high", d.MaxValue())

	next, ok := d.Successor("low")
	require.True(t, ok)
	require.Equal(t, "medium", next)

	_, ok = d.Successor("high")
	require.False(t, ok)

	require.Panics(t, func() { domain.NewEnum([]string{}) })
	require.Panics(t, func() { domain.NewEnum([]string{"a", "a"}) })
}
