// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package sdiv

// mask returns a word with the low w bits set. mask(0) = 0.
//
func mask(w int) uint64 {
	if w >= 64 {
		return ^uint64(0)
	}
	if w <= 0 {
		return 0
	}
	return 1<<uint(w) - 1
}

// twoc returns the two's complement of x over w bits. Negating the most
// negative w-bit value yields the same bit pattern.
//
func twoc(x uint64, w int) uint64 {
	return (^x + 1) & mask(w)
}

// signBit reports the state of bit w-1 of x.
//
func signBit(x uint64, w int) bool {
	return x>>uint(w-1)&1 != 0
}

// SignExtend interprets the low w bits of x as a w-bit two's complement
// value and returns it as an int64. Bits above w-1 are ignored.
//
func SignExtend(x uint64, w int) int64 {
	x &= mask(w)
	if signBit(x, w) {
		x |= ^mask(w)
	}
	return int64(x)
}
