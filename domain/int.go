package domain

import "math"

// Int32 is the domain.Value[int32] instantiation over the full signed
// 32-bit range [math.MinInt32, math.MaxInt32].
type Int32 struct{}

func (Int32) MinValue() int32 { return math.MinInt32 }
func (Int32) MaxValue() int32 { return math.MaxInt32 }

func (Int32) Successor(v int32) (int32, bool) {
	if v == math.MaxInt32 {
		return 0, false
	}
	return v + 1, true
}

func (Int32) Predecessor(v int32) (int32, bool) {
	if v == math.MinInt32 {
		return 0, false
	}
	return v - 1, true
}

func (Int32) OrderedHash(v int32) float64 { return float64(v) }

func (Int32) Compare(a, b int32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Int64 is the domain.Value[int64] instantiation over the full signed
// 64-bit range [math.MinInt64, math.MaxInt64].
type Int64 struct{}

func (Int64) MinValue() int64 { return math.MinInt64 }
func (Int64) MaxValue() int64 { return math.MaxInt64 }

func (Int64) Successor(v int64) (int64, bool) {
	if v == math.MaxInt64 {
		return 0, false
	}
	return v + 1, true
}

func (Int64) Predecessor(v int64) (int64, bool) {
	if v == math.MinInt64 {
		return 0, false
	}
	return v - 1, true
}

func (Int64) OrderedHash(v int64) float64 { return float64(v) }

func (Int64) Compare(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
