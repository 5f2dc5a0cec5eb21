// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package float16_test

import (
	"fmt"
	"log"

	"github.com/nlpodyssey/float16"
)

func ExampleF16FromFloat32() {
	f := float16.F16FromFloat32(12.5)

	fmt.Printf("value = %s\n", f)
	fmt.Printf("bits = %#04x\n", f.Bits())
	fmt.Printf("back = %g\n", f.Float32())

	// Output:
	// value = 12.5
	// bits = 0x4a40
	// back = 12.5
}

func ExampleF16FromFloat32Lossless() {
	f, err := float16.F16FromFloat32Lossless(1.5)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("1.5 fits: %s\n", f)

	_, err = float16.F16FromFloat32Lossless(0.1)
	fmt.Printf("0.1 does not: %v\n", err)

	// Output:
	// 1.5 fits: 1.5
	// 0.1 does not: float16: inexact conversion
}

func ExampleF16_Add() {
	a := float16.F16FromFloat32(1.5)
	b := float16.F16FromFloat32(2.25)

	fmt.Println(a.Add(b))

	// Output:
	// 3.75
}

func ExampleBF16FromFloat32() {
	f := float16.BF16FromFloat32(3.141592653589793)

	fmt.Printf("value = %s\n", f)
	fmt.Printf("bits = %#04x\n", f.Bits())

	// Output:
	// value = 3.140625
	// bits = 0x4049
}

func ExampleF16_Classify() {
	for _, f := range []float16.F16{
		float16.F16Zero,
		float16.F16MinPositiveSubnormal,
		float16.F16One,
		float16.F16Inf,
		float16.F16NaN,
	} {
		fmt.Printf("%s: %s\n", f.Classify(), f)
	}

	// Output:
	// Zero: 0
	// Subnormal: 5.9604645e-08
	// Normal: 1
	// Infinite: +Inf
	// NaN: NaN
}
