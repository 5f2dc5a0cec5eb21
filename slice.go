// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package float16

import "encoding/binary"

// DecodeF16 reinterprets a little-endian byte slab as half precision
// values, two bytes per element. A trailing odd byte is ignored.
func DecodeF16(buf []byte) []F16 {
	out := make([]F16, 0, len(buf)/2)
	for i := 0; i+1 < len(buf); i += 2 {
		out = append(out, F16(binary.LittleEndian.Uint16(buf[i:])))
	}
	return out
}

// EncodeF16 appends the little-endian bytes of each value to a new
// buffer.
func EncodeF16(values []F16) []byte {
	out := make([]byte, 0, len(values)*2)
	for _, v := range values {
		out = binary.LittleEndian.AppendUint16(out, uint16(v))
	}
	return out
}

// DecodeBF16 reinterprets a little-endian byte slab as bfloat16
// values, two bytes per element. A trailing odd byte is ignored.
func DecodeBF16(buf []byte) []BF16 {
	out := make([]BF16, 0, len(buf)/2)
	for i := 0; i+1 < len(buf); i += 2 {
		out = append(out, BF16(binary.LittleEndian.Uint16(buf[i:])))
	}
	return out
}

// EncodeBF16 appends the little-endian bytes of each value to a new
// buffer.
func EncodeBF16(values []BF16) []byte {
	out := make([]byte, 0, len(values)*2)
	for _, v := range values {
		out = binary.LittleEndian.AppendUint16(out, uint16(v))
	}
	return out
}

// F16ToFloat32s promotes each element of src, exactly.
func F16ToFloat32s(src []F16) []float32 {
	out := make([]float32, len(src))
	for i, v := range src {
		out[i] = v.Float32()
	}
	return out
}

// F16FromFloat32s demotes each element of src, rounding to
// nearest-even.
func F16FromFloat32s(src []float32) []F16 {
	out := make([]F16, len(src))
	for i, v := range src {
		out[i] = F16FromFloat32(v)
	}
	return out
}

// BF16ToFloat32s promotes each element of src, exactly.
func BF16ToFloat32s(src []BF16) []float32 {
	out := make([]float32, len(src))
	for i, v := range src {
		out[i] = v.Float32()
	}
	return out
}

// BF16FromFloat32s demotes each element of src, rounding to
// nearest-even.
func BF16FromFloat32s(src []float32) []BF16 {
	out := make([]BF16, len(src))
	for i, v := range src {
		out[i] = BF16FromFloat32(v)
	}
	return out
}
