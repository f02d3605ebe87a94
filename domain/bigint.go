package domain

import "math/big"

// BigInt is the domain.Value[*big.Int] instantiation. Unlike the fixed
// machine-integer types, *big.Int has no natural bound, so BigInt carries
// an explicit inclusive [Min, Max] window chosen by the caller.
type BigInt struct {
	Min *big.Int
	Max *big.Int
}

// NewBigInt builds a BigInt domain over the inclusive range [min, max].
// Panics if min > max: an invalid bound is a construction-time
// programmer error, not a runtime condition callers recover from.
func NewBigInt(min, max *big.Int) BigInt {
	if min.Cmp(max) > 0 {
		panic("domain: NewBigInt requires min <= max")
	}
	return BigInt{Min: new(big.Int).Set(min), Max: new(big.Int).Set(max)}
}

func (d BigInt) MinValue() *big.Int { return d.Min }
func (d BigInt) MaxValue() *big.Int { return d.Max }

func (d BigInt) Successor(v *big.Int) (*big.Int, bool) {
	if v.Cmp(d.Max) == 0 {
		return nil, false
	}
	return new(big.Int).Add(v, big.NewInt(1)), true
}

func (d BigInt) Predecessor(v *big.Int) (*big.Int, bool) {
	if v.Cmp(d.Min) == 0 {
		return nil, false
	}
	return new(big.Int).Sub(v, big.NewInt(1)), true
}

// OrderedHash converts v to float64 via big.Float, monotone but lossy
// for magnitudes beyond float64 precision — acceptable per contract,
// since the spatial index only needs order preservation, not exactness.
func (d BigInt) OrderedHash(v *big.Int) float64 {
	f := new(big.Float).SetInt(v)
	out, _ := f.Float64()
	return out
}

func (d BigInt) Compare(a, b *big.Int) int { return a.Cmp(b) }
