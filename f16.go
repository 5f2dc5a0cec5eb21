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

// F16FromBits returns the value corresponding to the raw bit
// pattern b. Any pattern is accepted, including non-canonical NaN
// payloads.
func F16FromBits(b uint16) F16 {
	return F16(b)
}

// Bits returns the raw bit pattern of f.
func (f F16) Bits() uint16 {
	return uint16(f)
}

// F16FromFloat32 converts value to half precision, rounding to
// nearest-even. The conversion is lossy but total: values too large to
// fit saturate to ±Inf, values below half the smallest subnormal flush
// to ±0, and NaN stays NaN with the sign and top payload bits
// preserved.
func F16FromFloat32(value float32) F16 {
	return F16(demote(math.Float32bits(value), binary32, binary16))
}

// F16FromFloat64 converts value to half precision, rounding to
// nearest-even, with the same saturation behavior as F16FromFloat32.
// The conversion rounds once, directly from the 64-bit pattern.
func F16FromFloat64(value float64) F16 {
	return F16(demote(math.Float64bits(value), binary64, binary16))
}

// F16FromFloat32Lossless converts value to half precision only if no
// information is lost: value must be non-finite, ±0, or a normal
// half-precision value with all truncated mantissa bits zero.
// Otherwise it reports ErrInexact.
func F16FromFloat32Lossless(value float32) (F16, error) {
	if !lossless(math.Float32bits(value), binary32, binary16) {
		return 0, ErrInexact
	}
	return F16FromFloat32(value), nil
}

// F16FromFloat64Lossless is like F16FromFloat32Lossless for float64.
func F16FromFloat64Lossless(value float64) (F16, error) {
	if !lossless(math.Float64bits(value), binary64, binary16) {
		return 0, ErrInexact
	}
	return F16FromFloat64(value), nil
}

// F16FromInt converts an integer of any standard width to half
// precision, rounding to nearest-even, as an explicit float32 cast
// would.
func F16FromInt[T constraints.Integer](value T) F16 {
	return F16FromFloat32(float32(value))
}

// ParseF16 converts the string s to half precision. It accepts
// everything strconv.ParseFloat does and returns its errors unchanged
// (*strconv.NumError wrapping ErrSyntax or ErrRange). Like strconv, an
// out-of-range input yields the saturated value together with
// ErrRange.
func ParseF16(s string) (F16, error) {
	v, err := strconv.ParseFloat(s, 32)
	return F16FromFloat32(float32(v)), err
}

// F16FromBytes decodes a value from its 2-byte representation in the
// given byte order.
func F16FromBytes(order binary.ByteOrder, b [2]byte) F16 {
	return F16(order.Uint16(b[:]))
}

// Bytes returns the 2-byte representation of f in the given byte
// order. Use binary.NativeEndian for the in-memory layout.
func (f F16) Bytes(order binary.ByteOrder) [2]byte {
	var b [2]byte
	order.PutUint16(b[:], uint16(f))
	return b
}

// Float32 returns the exact float32 representation of f. Every half
// precision value, subnormals included, is representable in float32.
func (f F16) Float32() float32 {
	return math.Float32frombits(promote[uint32](uint16(f), binary32, binary16))
}

// Float64 returns the exact float64 representation of f.
func (f F16) Float64() float64 {
	return math.Float64frombits(promote[uint64](uint16(f), binary64, binary16))
}

// String formats f with the shortest decimal representation that
// converts back to the same value.
func (f F16) String() string {
	return strconv.FormatFloat(float64(f.Float32()), 'g', -1, 32)
}

// IsNaN reports whether f is an IEEE 754 "not-a-number" value.
func (f F16) IsNaN() bool {
	return f&^F16SignMask > F16ExpMask
}

// IsInf reports whether f is an infinity, according to sign. If
// sign > 0, IsInf reports whether f is positive infinity. If sign < 0,
// whether f is negative infinity. If sign == 0, whether f is either.
func (f F16) IsInf(sign int) bool {
	if f&^F16SignMask != F16ExpMask {
		return false
	}
	return sign == 0 || (sign > 0) == (f&F16SignMask == 0)
}

// IsFinite reports whether f is neither infinite nor NaN.
func (f F16) IsFinite() bool {
	return f&F16ExpMask != F16ExpMask
}

// IsNormal reports whether f is a normal value: neither zero,
// subnormal, infinite, nor NaN.
func (f F16) IsNormal() bool {
	e := f & F16ExpMask
	return e != 0 && e != F16ExpMask
}

// IsSubnormal reports whether f is a subnormal value.
func (f F16) IsSubnormal() bool {
	return f&F16ExpMask == 0 && f&F16MantMask != 0
}

// IsZero reports whether f is +0 or -0.
func (f F16) IsZero() bool {
	return f&^F16SignMask == 0
}

// Signbit reports whether the sign bit of f is set, including -0 and
// NaNs with a negative sign.
func (f F16) Signbit() bool {
	return f&F16SignMask != 0
}

// Classify returns the floating point class of f.
func (f F16) Classify() Class {
	switch e, m := f&F16ExpMask, f&F16MantMask; {
	case e == 0 && m == 0:
		return ClassZero
	case e == 0:
		return ClassSubnormal
	case e == F16ExpMask && m == 0:
		return ClassInfinite
	case e == F16ExpMask:
		return ClassNaN
	default:
		return ClassNormal
	}
}

// Abs returns f with the sign bit cleared.
func (f F16) Abs() F16 {
	return f &^ F16SignMask
}

// Neg returns f with the sign bit flipped.
func (f F16) Neg() F16 {
	return f ^ F16SignMask
}

// CopySign returns a value with the magnitude of f and the sign of
// sign.
func (f F16) CopySign(sign F16) F16 {
	return f&^F16SignMask | sign&F16SignMask
}

// Signum returns 1 if f is positive (including +0 and +Inf), -1 if f
// is negative, and f itself if f is NaN.
func (f F16) Signum() F16 {
	if f.IsNaN() {
		return f
	}
	if f.Signbit() {
		return F16NegOne
	}
	return F16One
}

// Eq reports whether f == g under IEEE semantics: NaN is unequal to
// everything including itself, and +0 equals -0.
func (f F16) Eq(g F16) bool {
	if f.IsNaN() || g.IsNaN() {
		return false
	}
	return f == g || (f|g)&^F16SignMask == 0
}

// Lt reports whether f < g under IEEE semantics. Any comparison
// involving NaN is false.
func (f F16) Lt(g F16) bool {
	if f.IsNaN() || g.IsNaN() {
		return false
	}
	switch fNeg, gNeg := f&F16SignMask != 0, g&F16SignMask != 0; {
	case !fNeg && !gNeg:
		return f < g
	case fNeg && gNeg:
		return f > g
	case fNeg:
		// Negative against positive: less, unless both are zero.
		return (f|g)&^F16SignMask != 0
	default:
		return false
	}
}

// Le reports whether f <= g under IEEE semantics. Any comparison
// involving NaN is false.
func (f F16) Le(g F16) bool {
	if f.IsNaN() || g.IsNaN() {
		return false
	}
	switch fNeg, gNeg := f&F16SignMask != 0, g&F16SignMask != 0; {
	case !fNeg && !gNeg:
		return f <= g
	case fNeg && gNeg:
		return f >= g
	case fNeg:
		return true
	default:
		return (f|g)&^F16SignMask == 0
	}
}

// Gt reports whether f > g under IEEE semantics.
func (f F16) Gt(g F16) bool {
	return g.Lt(f)
}

// Ge reports whether f >= g under IEEE semantics.
func (f F16) Ge(g F16) bool {
	return g.Le(f)
}

// Cmp compares f and g, returning -1, 0 or +1, and whether the two
// values are ordered at all: ordered is false when either operand is
// NaN.
func (f F16) Cmp(g F16) (order int, ordered bool) {
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
// predicate, a strict total order: -NaN < -Inf < negative normals <
// negative subnormals < -0 < +0 < positive subnormals < positive
// normals < +Inf < NaN.
func (f F16) TotalCmp(g F16) int {
	// Flipping all bits below the sign on negative values turns the
	// sign-magnitude pattern into a plain signed integer whose order
	// matches totalOrder.
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
func (f F16) Min(g F16) F16 {
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
func (f F16) Max(g F16) F16 {
	if f.IsNaN() {
		return g
	}
	if g.Gt(f) {
		return g
	}
	return f
}

// Clamp restricts f to the interval [lo, hi]. A NaN input stays NaN.
// Clamp panics if lo or hi is NaN or lo > hi; that is a contract
// violation, not a recoverable condition.
func (f F16) Clamp(lo, hi F16) F16 {
	if !lo.Le(hi) {
		panic("float16: F16.Clamp: bounds are NaN or lo > hi")
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

// Add returns f+g. The sum is computed in float32 and rounded once to
// half precision; float32 carries enough extra precision that this
// matches native half-precision arithmetic for all inputs.
func (f F16) Add(g F16) F16 {
	return F16FromFloat32(f.Float32() + g.Float32())
}

// Sub returns f-g, computed like Add.
func (f F16) Sub(g F16) F16 {
	return F16FromFloat32(f.Float32() - g.Float32())
}

// Mul returns f*g, computed like Add.
func (f F16) Mul(g F16) F16 {
	return F16FromFloat32(f.Float32() * g.Float32())
}

// Div returns f/g, computed like Add.
func (f F16) Div(g F16) F16 {
	return F16FromFloat32(f.Float32() / g.Float32())
}

// Mod returns the floating-point remainder of f/g with the sign of f,
// computed by math.Mod on the exact float64 representations and
// rounded once.
func (f F16) Mod(g F16) F16 {
	return F16FromFloat64(math.Mod(f.Float64(), g.Float64()))
}

// SumF16 folds values with Add, promoting and demoting at every step,
// so the result matches a running half-precision accumulation rather
// than a single wide sum rounded once. An empty slice sums to +0.
func SumF16(values []F16) F16 {
	acc := F16Zero
	for _, v := range values {
		acc = acc.Add(v)
	}
	return acc
}

// ProductF16 folds values with Mul, promoting and demoting at every
// step. An empty slice multiplies to 1.
func ProductF16(values []F16) F16 {
	acc := F16One
	for _, v := range values {
		acc = acc.Mul(v)
	}
	return acc
}
