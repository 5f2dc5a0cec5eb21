// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package float16

import (
	"encoding/binary"
	"math"
	"strconv"

	"golang.org/x/exp/constraints"
)

// BF16FromBits returns the value corresponding to the raw bit
// pattern b. Any pattern is accepted, including non-canonical NaN
// payloads.
func BF16FromBits(b uint16) BF16 {
	return BF16(b)
}

// Bits returns the raw bit pattern of f.
func (f BF16) Bits() uint16 {
	return uint16(f)
}

// BF16FromFloat32 converts value to bfloat16, rounding to
// nearest-even. bfloat16 keeps the float32 exponent range: float32
// subnormals demote to bfloat16 subnormals, and only values within
// half an ulp of the top of the range (float32 values above the
// largest representable bfloat16) round up to ±Inf.
func BF16FromFloat32(value float32) BF16 {
	return BF16(demote(math.Float32bits(value), binary32, bfloat16))
}

// BF16FromFloat64 converts value to bfloat16, rounding to
// nearest-even directly from the 64-bit pattern, never through an
// intermediate float32. Values outside the bfloat16 range saturate to
// ±Inf or flush to ±0.
func BF16FromFloat64(value float64) BF16 {
	return BF16(demote(math.Float64bits(value), binary64, bfloat16))
}

// BF16FromFloat32Lossless converts value to bfloat16 only if no
// information is lost: value must be non-finite or have all truncated
// mantissa bits zero. Otherwise it reports ErrInexact.
func BF16FromFloat32Lossless(value float32) (BF16, error) {
	if !lossless(math.Float32bits(value), binary32, bfloat16) {
		return 0, ErrInexact
	}
	return BF16FromFloat32(value), nil
}

// BF16FromFloat64Lossless is like BF16FromFloat32Lossless for
// float64: value must be non-finite, ±0, or a normal bfloat16 value
// with all truncated mantissa bits zero.
func BF16FromFloat64Lossless(value float64) (BF16, error) {
	if !lossless(math.Float64bits(value), binary64, bfloat16) {
		return 0, ErrInexact
	}
	return BF16FromFloat64(value), nil
}

// BF16FromInt converts an integer of any standard width to bfloat16,
// rounding to nearest-even, as an explicit float32 cast would.
func BF16FromInt[T constraints.Integer](value T) BF16 {
	return BF16FromFloat32(float32(value))
}

// ParseBF16 converts the string s to bfloat16, accepting everything
// strconv.ParseFloat does and returning its errors unchanged.
func ParseBF16(s string) (BF16, error) {
	v, err := strconv.ParseFloat(s, 32)
	return BF16FromFloat32(float32(v)), err
}

// BF16FromBytes decodes a value from its 2-byte representation in the
// given byte order.
func BF16FromBytes(order binary.ByteOrder, b [2]byte) BF16 {
	return BF16(order.Uint16(b[:]))
}

// Bytes returns the 2-byte representation of f in the given byte
// order. Use binary.NativeEndian for the in-memory layout.
func (f BF16) Bytes(order binary.ByteOrder) [2]byte {
	var b [2]byte
	order.PutUint16(b[:], uint16(f))
	return b
}

// Float32 returns the exact float32 representation of f.
func (f BF16) Float32() float32 {
	return math.Float32frombits(promote[uint32](uint16(f), binary32, bfloat16))
}

// Float64 returns the exact float64 representation of f.
func (f BF16) Float64() float64 {
	return math.Float64frombits(promote[uint64](uint16(f), binary64, bfloat16))
}

// String formats f with the shortest decimal representation that
// converts back to the same value.
func (f BF16) String() string {
	return strconv.FormatFloat(float64(f.Float32()), 'g', -1, 32)
}

// IsNaN reports whether f is an IEEE 754 "not-a-number" value.
func (f BF16) IsNaN() bool {
	return f&^BF16SignMask > BF16ExpMask
}

// IsInf reports whether f is an infinity, according to sign. If
// sign > 0, IsInf reports whether f is positive infinity. If sign < 0,
// whether f is negative infinity. If sign == 0, whether f is either.
func (f BF16) IsInf(sign int) bool {
	if f&^BF16SignMask != BF16ExpMask {
		return false
	}
	return sign == 0 || (sign > 0) == (f&BF16SignMask == 0)
}

// IsFinite reports whether f is neither infinite nor NaN.
func (f BF16) IsFinite() bool {
	return f&BF16ExpMask != BF16ExpMask
}

// IsNormal reports whether f is a normal value: neither zero,
// subnormal, infinite, nor NaN.
func (f BF16) IsNormal() bool {
	e := f & BF16ExpMask
	return e != 0 && e != BF16ExpMask
}

// IsSubnormal reports whether f is a subnormal value.
func (f BF16) IsSubnormal() bool {
	return f&BF16ExpMask == 0 && f&BF16MantMask != 0
}

// IsZero reports whether f is +0 or -0.
func (f BF16) IsZero() bool {
	return f&^BF16SignMask == 0
}

// Signbit reports whether the sign bit of f is set.
func (f BF16) Signbit() bool {
	return f&BF16SignMask != 0
}

// Classify returns the floating point class of f.
func (f BF16) Classify() Class {
	switch e, m := f&BF16ExpMask, f&BF16MantMask; {
	case e == 0 && m == 0:
		return ClassZero
	case e == 0:
		return ClassSubnormal
	case e == BF16ExpMask && m == 0:
		return ClassInfinite
	case e == BF16ExpMask:
		return ClassNaN
	default:
		return ClassNormal
	}
}

// Abs returns f with the sign bit cleared.
func (f BF16) Abs() BF16 {
	return f &^ BF16SignMask
}

// Neg returns f with the sign bit flipped.
func (f BF16) Neg() BF16 {
	return f ^ BF16SignMask
}

// CopySign returns a value with the magnitude of f and the sign of
// sign.
func (f BF16) CopySign(sign BF16) BF16 {
	return f&^BF16SignMask | sign&BF16SignMask
}

// Signum returns 1 if f is positive (including +0 and +Inf), -1 if f
// is negative, and f itself if f is NaN.
func (f BF16) Signum() BF16 {
	if f.IsNaN() {
		return f
	}
	if f.Signbit() {
		return BF16NegOne
	}
	return BF16One
}

// Eq reports whether f == g under IEEE semantics: NaN is unequal to
// everything including itself, and +0 equals -0.
func (f BF16) Eq(g BF16) bool {
	if f.IsNaN() || g.IsNaN() {
		return false
	}
	return f == g || (f|g)&^BF16SignMask == 0
}

// Lt reports whether f < g under IEEE semantics. Any comparison
// involving NaN is false.
func (f BF16) Lt(g BF16) bool {
	if f.IsNaN() || g.IsNaN() {
		return false
	}
	switch fNeg, gNeg := f&BF16SignMask != 0, g&BF16SignMask != 0; {
	case !fNeg && !gNeg:
		return f < g
	case fNeg && gNeg:
		return f > g
	case fNeg:
		return (f|g)&^BF16SignMask != 0
	default:
		return false
	}
}

// Le reports whether f <= g under IEEE semantics. Any comparison
// involving NaN is false.
func (f BF16) Le(g BF16) bool {
	if f.IsNaN() || g.IsNaN() {
		return false
	}
	switch fNeg, gNeg := f&BF16SignMask != 0, g&BF16SignMask != 0; {
	case !fNeg && !gNeg:
		return f <= g
	case fNeg && gNeg:
		return f >= g
	case fNeg:
		return true
	default:
		return (f|g)&^BF16SignMask == 0
	}
}

// Gt reports whether f > g under IEEE semantics.
func (f BF16) Gt(g BF16) bool {
	return g.Lt(f)
}

// Ge reports whether f >= g under IEEE semantics.
func (f BF16) Ge(g BF16) bool {
	return g.Le(f)
}

// Cmp compares f and g, returning -1, 0 or +1, and whether the two
// values are ordered at all: ordered is false when either operand is
// NaN.
func (f BF16) Cmp(g BF16) (order int, ordered bool) {
	if f.IsNaN() || g.IsNaN() {
		return 0, false
	}
	switch {
	case f.Lt(g):
		return -1, true
	case g.Lt(f):
		return 1, true
	default:
		return 0, true
	}
}

// TotalCmp compares f and g per the IEEE 754-2008 totalOrder
// predicate. See F16.TotalCmp for the resulting order.
func (f BF16) TotalCmp(g BF16) int {
	l := int16(f)
	r := int16(g)
	l ^= int16(uint16(l>>15) >> 1)
	r ^= int16(uint16(r>>15) >> 1)
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	default:
		return 0
	}
}

// Min returns the smaller of f and g. If one operand is NaN, the
// other is returned.
func (f BF16) Min(g BF16) BF16 {
	if f.IsNaN() {
		return g
	}
	if g.Lt(f) {
		return g
	}
	return f
}

// Max returns the larger of f and g. If one operand is NaN, the other
// is returned.
func (f BF16) Max(g BF16) BF16 {
	if f.IsNaN() {
		return g
	}
	if g.Gt(f) {
		return g
	}
	return f
}

// Clamp restricts f to the interval [lo, hi]. A NaN input stays NaN.
// Clamp panics if lo or hi is NaN or lo > hi.
func (f BF16) Clamp(lo, hi BF16) BF16 {
	if !lo.Le(hi) {
		panic("float16: BF16.Clamp: bounds are NaN or lo > hi")
	}
	switch {
	case f.Lt(lo):
		return lo
	case f.Gt(hi):
		return hi
	default:
		return f
	}
}

// Add returns f+g, computed in float32 and rounded once to bfloat16.
func (f BF16) Add(g BF16) BF16 {
	return BF16FromFloat32(f.Float32() + g.Float32())
}

// Sub returns f-g, computed like Add.
func (f BF16) Sub(g BF16) BF16 {
	return BF16FromFloat32(f.Float32() - g.Float32())
}

// Mul returns f*g, computed like Add.
func (f BF16) Mul(g BF16) BF16 {
	return BF16FromFloat32(f.Float32() * g.Float32())
}

// Div returns f/g, computed like Add.
func (f BF16) Div(g BF16) BF16 {
	return BF16FromFloat32(f.Float32() / g.Float32())
}

// Mod returns the floating-point remainder of f/g with the sign of f,
// computed by math.Mod on the exact float64 representations and
// rounded once.
func (f BF16) Mod(g BF16) BF16 {
	return BF16FromFloat64(math.Mod(f.Float64(), g.Float64()))
}

// SumBF16 folds values with Add, promoting and demoting at every
// step. An empty slice sums to +0.
func SumBF16(values []BF16) BF16 {
	acc := BF16Zero
	for _, v := range values {
		acc = acc.Add(v)
	}
	return acc
}

// ProductBF16 folds values with Mul, promoting and demoting at every
// step. An empty slice multiplies to 1.
func ProductBF16(values []BF16) BF16 {
	acc := BF16One
	for _, v := range values {
		acc = acc.Mul(v)
	}
	return acc
}
