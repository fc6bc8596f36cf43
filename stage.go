// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package sdiv

import "math/bits"

// divStep performs one restoring-division step.
//
//	Inputs: a, b
//	Outputs: res, q
//	Function: q = 1, res = a - b  if a >= b
//	          q = 0, res = a      otherwise (restore)
//
// a is the trial value (the partial remainder shifted left by one with the
// next numerator bit in), b the divisor, both over w bits. The subtraction
// is realized as the w-bit addition a + ^b + 1; its carry-out is the
// quotient bit q produced at this stage.
//
// divStep is combinational: no state, same inputs always produce the same
// outputs. Operands wider than w bits are a caller bug. Widths above 64
// clamp to the word size; bits spilled out of the word are the caller's
// to account for.
//
func divStep(a, b uint64, w int) (res, q uint64) {
	s, c := bits.Add64(a, ^b&mask(w), 1)
	if w < 64 {
		c = s >> uint(w) & 1
		s &= mask(w)
	}
	if c == 0 {
		return a, 0
	}
	return s, 1
}
