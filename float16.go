// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package float16 implements the two common 16-bit floating point
// storage formats: IEEE 754-2008 binary16 "half" precision (F16) and
// the truncated-binary32 "brain" format (BF16).
//
// Both types are plain 16-bit bit patterns intended for efficient
// storage where the full range and precision of float32 or float64 is
// not required. Conversions from the wide types use bit-exact,
// deterministic software routines implementing IEEE round-to-nearest-
// even; conversions back to the wide types are always exact.
// Arithmetic is defined by promoting to float32, computing, and
// demoting the result, which matches hardware half-precision results
// for all finite inputs.
//
// All operations are pure functions of value bit patterns: there is no
// shared state, and every operation is safe for concurrent use.
package float16

import "errors"

// ErrInexact is reported by the lossless constructors when the wide
// value has no exact representation in the narrow format.
var ErrInexact = errors.New("float16: inexact conversion")

// F16 is a 16-bit half-precision floating-point value (IEEE 754-2008
// binary16): 1 sign bit, 5 exponent bits and 10 mantissa bits. The
// underlying uint16 is the raw bit pattern.
type F16 uint16

// BF16 is a 16-bit brain floating-point value (bfloat16): 1 sign bit,
// 8 exponent bits and 7 mantissa bits. It keeps the full float32
// exponent range at reduced precision. The underlying uint16 is the
// raw bit pattern.
type BF16 uint16
