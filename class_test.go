// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package float16

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var allClasses = []Class{
	ClassZero,
	ClassSubnormal,
	ClassNormal,
	ClassInfinite,
	ClassNaN,
}

func TestClass_Validate(t *testing.T) {
	t.Run("valid values", func(t *testing.T) {
		for _, c := range allClasses {
			assert.NoError(t, c.Validate())
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		for _, c := range []Class{0, Class(len(allClasses) + 1), 255} {
			assert.Error(t, c.Validate())
		}
	})
}

func TestClass_String(t *testing.T) {
	testCases := []struct {
		class Class
		want  string
	}{
		{ClassZero, "Zero"},
		{ClassSubnormal, "Subnormal"},
		{ClassNormal, "Normal"},
		{ClassInfinite, "Infinite"},
		{ClassNaN, "NaN"},
	}
	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.class.String())
		})
	}

	t.Run("invalid value", func(t *testing.T) {
		assert.Equal(t, "invalid Class(255)", Class(255).String())
	})
}

func TestClass_MarshalText(t *testing.T) {
	for _, c := range allClasses {
		text, err := c.MarshalText()
		assert.NoError(t, err)
		assert.Equal(t, c.String(), string(text))
	}

	_, err := Class(255).MarshalText()
	assert.Error(t, err)
}

func TestClass_UnmarshalText(t *testing.T) {
	for _, c := range allClasses {
		var got Class
		err := got.UnmarshalText([]byte(c.String()))
		assert.NoError(t, err)
		assert.Equal(t, c, got)
	}

	var got Class
	assert.Error(t, got.UnmarshalText([]byte("bogus")))
}
