// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package float16

import "math/bits"

// format describes the field layout of a binary floating point
// encoding: one sign bit, expBits exponent bits and mantBits mantissa
// bits, packed from most to least significant.
//
// The two narrow formats and the two wide formats share a single
// conversion engine parameterized by their layouts.
type format struct {
	expBits  uint
	mantBits uint
}

var (
	binary16 = format{expBits: 5, mantBits: 10}
	bfloat16 = format{expBits: 8, mantBits: 7}
	binary32 = format{expBits: 8, mantBits: 23}
	binary64 = format{expBits: 11, mantBits: 52}
)

func (f format) bias() int        { return 1<<(f.expBits-1) - 1 }
func (f format) expMask() uint64  { return 1<<f.expBits - 1 }
func (f format) mantMask() uint64 { return 1<<f.mantBits - 1 }
func (f format) signShift() uint  { return f.expBits + f.mantBits }

// wideBits is the bit pattern of a wide (32- or 64-bit) value.
type wideBits interface {
	~uint32 | ~uint64
}

// demote converts a wide bit pattern to the narrow format with IEEE
// round-to-nearest-even semantics. It is a total function: values too
// large for the narrow format saturate to ±Inf, values too small for a
// narrow subnormal saturate to ±0, and NaN inputs stay NaN with the
// top payload bits preserved.
func demote[W wideBits](w W, wide, narrow format) uint16 {
	b := uint64(w)
	sign := uint16(b>>wide.signShift()) << 15
	exp := b >> wide.mantBits & wide.expMask()
	mant := b & wide.mantMask()
	shift := wide.mantBits - narrow.mantBits

	if exp == wide.expMask() {
		if mant == 0 {
			return sign | uint16(narrow.expMask()<<narrow.mantBits)
		}
		// NaN: force the quiet bit so NaN-ness survives truncation.
		quiet := uint16(1) << (narrow.mantBits - 1)
		return sign | uint16(narrow.expMask()<<narrow.mantBits) | quiet | uint16(mant>>shift)
	}

	// Rebias the exponent. A subnormal wide value (exp == 0) carries no
	// hidden bit and shares the minimum wide exponent.
	var m uint64
	var e int
	if exp == 0 {
		m = mant
		e = 1 - wide.bias() + narrow.bias()
	} else {
		m = mant | 1<<wide.mantBits
		e = int(exp) - wide.bias() + narrow.bias()
	}

	if e >= int(narrow.expMask()) {
		return sign | uint16(narrow.expMask()<<narrow.mantBits)
	}

	subnormal := e < 1 || exp == 0
	if subnormal {
		// The exponent deficit is shifted out of the mantissa together
		// with the regular truncation.
		shift += uint(1 - e)
		if shift > wide.mantBits+1 {
			// Below half the smallest narrow subnormal.
			return sign
		}
	}

	keep := m >> shift
	rest := m & (1<<shift - 1)
	half := uint64(1) << (shift - 1)
	if rest > half || (rest == half && keep&1 == 1) {
		// Round up. A carry out of the mantissa field lands in the
		// exponent field, which is exactly what IEEE requires: a full
		// mantissa increments the exponent, possibly up to infinity.
		keep++
	}

	if subnormal {
		return sign | uint16(keep)
	}
	return sign + uint16(uint64(e-1)<<narrow.mantBits) + uint16(keep)
}

// promote converts a narrow bit pattern to the wide format. The
// conversion is exact: both wide formats dominate both narrow formats
// in exponent range and mantissa width.
func promote[W wideBits](n uint16, wide, narrow format) W {
	sign := uint64(n>>15) << wide.signShift()
	exp := uint64(n) >> narrow.mantBits & narrow.expMask()
	mant := uint64(n) & narrow.mantMask()
	shift := wide.mantBits - narrow.mantBits

	switch {
	case exp == narrow.expMask():
		// ±Inf or NaN; payload bits move to the top of the wide
		// mantissa field.
		return W(sign | wide.expMask()<<wide.mantBits | mant<<shift)
	case exp == 0 && mant == 0:
		return W(sign)
	case exp == 0:
		e := bits.Len64(mant) - int(narrow.mantBits) - narrow.bias() + wide.bias()
		if e < 1 {
			// The wide format shares the narrow exponent range
			// (bfloat16 to float32): the value stays subnormal.
			return W(sign | mant<<shift)
		}
		mant = mant << (narrow.mantBits - uint(bits.Len64(mant)) + 1) & narrow.mantMask()
		return W(sign | uint64(e)<<wide.mantBits | mant<<shift)
	default:
		e := int(exp) - narrow.bias() + wide.bias()
		return W(sign | uint64(e)<<wide.mantBits | mant<<shift)
	}
}

// lossless reports whether the wide bit pattern converts to the narrow
// format with no information loss: demoting and promoting it back
// reproduces the input bits exactly. Non-finite values count as
// lossless (payload loss is not counted against losslessness), as does
// signed zero.
func lossless[W wideBits](w W, wide, narrow format) bool {
	b := uint64(w)
	exp := b >> wide.mantBits & wide.expMask()
	if exp == wide.expMask() {
		return true
	}
	if b&(1<<(wide.mantBits-narrow.mantBits)-1) != 0 {
		return false
	}
	if wide.expBits == narrow.expBits {
		// Same exponent range (bfloat16 from float32): subnormals line
		// up and truncation is the only possible loss.
		return true
	}
	if b&(1<<wide.signShift()-1) == 0 {
		return true
	}
	e := int(exp) - wide.bias() + narrow.bias()
	return e >= 1 && e < int(narrow.expMask())
}
