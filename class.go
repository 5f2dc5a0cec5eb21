// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package float16

import "fmt"

// Class identifies the floating point class of a 16-bit value.
type Class uint8

const (
	// ClassZero represents positive or negative zero.
	ClassZero Class = iota + 1
	// ClassSubnormal represents a finite nonzero value with a zero
	// exponent field, lacking the implicit leading mantissa bit.
	ClassSubnormal
	// ClassNormal represents a regular finite nonzero value.
	ClassNormal
	// ClassInfinite represents positive or negative infinity.
	ClassInfinite
	// ClassNaN represents a "not-a-number" value.
	ClassNaN
)

var classToString = [...]string{
	ClassZero:      "Zero",
	ClassSubnormal: "Subnormal",
	ClassNormal:    "Normal",
	ClassInfinite:  "Infinite",
	ClassNaN:       "NaN",
}

// Validate returns an error if the Class is not valid, otherwise nil.
func (c Class) Validate() error {
	if c == 0 || c > ClassNaN {
		return fmt.Errorf("invalid Class(%d)", c)
	}
	return nil
}

// String returns a string representation of a Class.
func (c Class) String() string {
	if err := c.Validate(); err != nil {
		return err.Error()
	}
	return classToString[c]
}

// MarshalText satisfies encoding.TextMarshaler interface.
func (c Class) MarshalText() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return []byte(classToString[c]), nil
}

// UnmarshalText satisfies encoding.TextUnmarshaler interface.
func (c *Class) UnmarshalText(text []byte) error {
	switch s := string(text); s {
	case "Zero":
		*c = ClassZero
	case "Subnormal":
		*c = ClassSubnormal
	case "Normal":
		*c = ClassNormal
	case "Infinite":
		*c = ClassInfinite
	case "NaN":
		*c = ClassNaN
	default:
		return fmt.Errorf("failed to text-unmarshal Class from value %q", s)
	}
	return nil
}
