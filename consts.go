// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package float16

// Field masks of the half-precision layout.
const (
	// F16SignMask selects the sign bit.
	F16SignMask F16 = 0x8000
	// F16ExpMask selects the 5 exponent bits.
	F16ExpMask F16 = 0x7C00
	// F16MantMask selects the 10 mantissa bits.
	F16MantMask F16 = 0x03FF
)

// Special and boundary half-precision values, pre-encoded as bit
// patterns. They are fixed lookup values, never computed at runtime.
const (
	// F16Zero is positive zero.
	F16Zero F16 = 0x0000
	// F16NegZero is negative zero.
	F16NegZero F16 = 0x8000
	// F16One is 1.
	F16One F16 = 0x3C00
	// F16NegOne is -1.
	F16NegOne F16 = 0xBC00
	// F16Inf is positive infinity (+∞).
	F16Inf F16 = 0x7C00
	// F16NegInf is negative infinity (-∞).
	F16NegInf F16 = 0xFC00
	// F16NaN is a quiet "not-a-number" value.
	F16NaN F16 = 0x7E00
	// F16Max is the largest finite value: 65504.
	F16Max F16 = 0x7BFF
	// F16Min is the smallest finite value: -65504.
	F16Min F16 = 0xFBFF
	// F16MinPositive is the smallest positive normal value: 2^-14.
	F16MinPositive F16 = 0x0400
	// F16MinPositiveSubnormal is the smallest positive value: 2^-24.
	F16MinPositiveSubnormal F16 = 0x0001
	// F16MaxSubnormal is the largest subnormal value.
	F16MaxSubnormal F16 = 0x03FF
	// F16Epsilon is the difference between 1 and the next larger
	// representable value: 2^-10.
	F16Epsilon F16 = 0x1400
)

// Half-precision encodings of the mathematical constants of the math
// package, each the nearest representable value.
const (
	// F16E is Euler's number (e).
	F16E F16 = 0x4170
	// F16Pi is Archimedes' constant (π).
	F16Pi F16 = 0x4248
	// F16Sqrt2 is √2.
	F16Sqrt2 F16 = 0x3DA8
	// F16Ln2 is the natural logarithm of 2.
	F16Ln2 F16 = 0x398C
	// F16Ln10 is the natural logarithm of 10.
	F16Ln10 F16 = 0x409B
	// F16Log2E is the base-2 logarithm of e.
	F16Log2E F16 = 0x3DC5
	// F16Log10E is the base-10 logarithm of e.
	F16Log10E F16 = 0x36F3
)

// Size parameters of the half-precision format.
const (
	// F16MantissaDigits is the number of significant digits in base 2,
	// the implicit leading bit included.
	F16MantissaDigits = 11
	// F16Digits is the approximate number of significant digits in
	// base 10.
	F16Digits = 3
	// F16MaxExp is the maximum possible power-of-2 exponent.
	F16MaxExp = 16
	// F16MinExp is one greater than the minimum possible normal
	// power-of-2 exponent.
	F16MinExp = -13
)

// Field masks of the bfloat16 layout.
const (
	// BF16SignMask selects the sign bit.
	BF16SignMask BF16 = 0x8000
	// BF16ExpMask selects the 8 exponent bits.
	BF16ExpMask BF16 = 0x7F80
	// BF16MantMask selects the 7 mantissa bits.
	BF16MantMask BF16 = 0x007F
)

// Special and boundary bfloat16 values, pre-encoded as bit patterns.
const (
	// BF16Zero is positive zero.
	BF16Zero BF16 = 0x0000
	// BF16NegZero is negative zero.
	BF16NegZero BF16 = 0x8000
	// BF16One is 1.
	BF16One BF16 = 0x3F80
	// BF16NegOne is -1.
	BF16NegOne BF16 = 0xBF80
	// BF16Inf is positive infinity (+∞).
	BF16Inf BF16 = 0x7F80
	// BF16NegInf is negative infinity (-∞).
	BF16NegInf BF16 = 0xFF80
	// BF16NaN is a quiet "not-a-number" value.
	BF16NaN BF16 = 0x7FC0
	// BF16Max is the largest finite value: about 3.39e38.
	BF16Max BF16 = 0x7F7F
	// BF16Min is the smallest finite value: about -3.39e38.
	BF16Min BF16 = 0xFF7F
	// BF16MinPositive is the smallest positive normal value: 2^-126.
	BF16MinPositive BF16 = 0x0080
	// BF16MinPositiveSubnormal is the smallest positive value: 2^-133.
	BF16MinPositiveSubnormal BF16 = 0x0001
	// BF16MaxSubnormal is the largest subnormal value.
	BF16MaxSubnormal BF16 = 0x007F
	// BF16Epsilon is the difference between 1 and the next larger
	// representable value: 2^-7.
	BF16Epsilon BF16 = 0x3C00
)

// Bfloat16 encodings of the mathematical constants of the math
// package, each the nearest representable value.
const (
	// BF16E is Euler's number (e).
	BF16E BF16 = 0x402E
	// BF16Pi is Archimedes' constant (π).
	BF16Pi BF16 = 0x4049
	// BF16Sqrt2 is √2.
	BF16Sqrt2 BF16 = 0x3FB5
	// BF16Ln2 is the natural logarithm of 2.
	BF16Ln2 BF16 = 0x3F31
	// BF16Ln10 is the natural logarithm of 10.
	BF16Ln10 BF16 = 0x4013
	// BF16Log2E is the base-2 logarithm of e.
	BF16Log2E BF16 = 0x3FB9
	// BF16Log10E is the base-10 logarithm of e.
	BF16Log10E BF16 = 0x3EDE
)

// Size parameters of the bfloat16 format.
const (
	// BF16MantissaDigits is the number of significant digits in
	// base 2, the implicit leading bit included.
	BF16MantissaDigits = 8
	// BF16Digits is the approximate number of significant digits in
	// base 10.
	BF16Digits = 2
	// BF16MaxExp is the maximum possible power-of-2 exponent.
	BF16MaxExp = 128
	// BF16MinExp is one greater than the minimum possible normal
	// power-of-2 exponent.
	BF16MinExp = -125
)
