// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package sdiv

import (
	"github.com/pkg/errors"
)

// ErrWidths is returned by New when the denominator is wider than the
// numerator. The returned Divider is still usable; the error is advisory
// and callers may treat it as a warning.
//
var ErrWidths = errors.New("denominator wider than numerator")

// Config describes a Divider at construction time. Widths are in bits and
// must be in the range 1 to 64. When Signed is set, operands are treated as
// two's complement values and the quotient is sign-corrected.
//
type Config struct {
	NumeratorWidth   int
	DenominatorWidth int
	Signed           bool
}

// slot holds one in-flight division at one pipeline depth.
//
// A slot at depth i carries the N+1 bit partial remainder, the M-i not yet
// consumed numerator bits (next bit to shift in at the top), and the i
// quotient bits gathered so far. The divisor travels with the computation
// since every tick may inject a different one. valid and negQ age through
// the pipeline alongside the data; they are the delay lines that tell the
// output side whether the slot is live and whether the operand signs
// differed.
type slot struct {
	rem   uint64
	num   uint64
	quot  uint64
	div   uint64
	valid bool
	negQ  bool
}

// A Divider is a fully pipelined restoring integer divider. It owns M+1
// pipeline slots, one per depth, and advances all of them by exactly one
// depth per Tick. A Divider is not safe for concurrent use; independent
// instances share no state.
//
type Divider struct {
	m      int // numerator and quotient width
	n      int // denominator and remainder width
	signed bool
	slots  []slot
}

// New builds a Divider for the given configuration.
//
// Widths outside the 1 to 64 range yield a nil Divider and an error. A
// denominator wider than the numerator yields a usable Divider together
// with an error wrapping ErrWidths; results in that configuration are not
// guaranteed meaningful.
//
func New(cfg Config) (*Divider, error) {
	m, n := cfg.NumeratorWidth, cfg.DenominatorWidth
	if m < 1 || m > 64 {
		return nil, errors.Errorf("numerator width %d out of range 1-64", m)
	}
	if n < 1 || n > 64 {
		return nil, errors.Errorf("denominator width %d out of range 1-64", n)
	}
	d := &Divider{m: m, n: n, signed: cfg.Signed, slots: make([]slot, m+1)}
	if n > m {
		return d, errors.Wrapf(ErrWidths, "numerator %d bits, denominator %d bits", m, n)
	}
	return d, nil
}

// Config returns the configuration the Divider was built with.
//
func (d *Divider) Config() Config {
	return Config{NumeratorWidth: d.m, DenominatorWidth: d.n, Signed: d.signed}
}

// Latency returns the number of ticks between injecting an operand pair
// and its result becoming visible: the numerator width plus one.
//
func (d *Divider) Latency() int {
	return d.m + 1
}

// Tick advances the pipeline by one clock tick.
//
// When en is set, the pair (n, d) is injected into the first pipeline slot;
// only the low NumeratorWidth bits of n and the low DenominatorWidth bits
// of d are used. The returned values reflect the injection made Latency()
// ticks earlier: valid reports whether that tick injected anything, q is
// the sign-corrected quotient and r the remainder.
//
// The remainder is always the unsigned magnitude remainder; it is not
// negated when the numerator is negative. Callers wanting the usual
// remainder-follows-dividend convention must negate r themselves.
//
// Division by zero is not detected: the restore never triggers, so the raw
// quotient comes out all ones (sign-corrected like any other quotient) and
// r holds the low bits of the numerator magnitude. Every operand pair,
// including the most negative two's complement values, produces a defined
// result; Tick never panics.
//
func (d *Divider) Tick(en bool, n, dv uint64) (valid bool, q, r uint64) {
	m := d.m

	// Sample the last slot before anything shifts. It still holds the
	// computation injected Latency() ticks ago.
	if out := &d.slots[m]; out.valid {
		valid = true
		q = out.quot & mask(m)
		if out.negQ {
			q = twoc(q, m)
		}
		r = out.rem & mask(d.n)
	}

	// Advance depths M down to 1. Descending order lets a single register
	// bank stand in for the per-tick double buffer: each slot is read
	// before anything overwrites it.
	for i := m; i >= 1; i-- {
		src := &d.slots[i-1]
		bit := src.num >> uint(m-i) & 1
		a := (src.rem<<1 | bit) & mask(d.n+1)
		res, qb := divStep(a, src.div, d.n+1)
		if d.n == 64 && src.rem>>63 != 0 {
			// the trial value's bit 64 spilled out of the word, so the
			// subtraction cannot underflow
			res, qb = a-src.div, 1
		}
		d.slots[i] = slot{
			rem:   res,
			num:   src.num & mask(m-i),
			quot:  src.quot<<1 | qb,
			div:   src.div,
			valid: src.valid,
			negQ:  src.negQ,
		}
	}

	// Load the first slot from this tick's operands, converted to unsigned
	// magnitudes. Negating the most negative value wraps to itself.
	nu, du := n&mask(m), dv&mask(d.n)
	var negQ bool
	if d.signed {
		sn, sd := signBit(nu, m), signBit(du, d.n)
		if sn {
			nu = twoc(nu, m)
		}
		if sd {
			du = twoc(du, d.n)
		}
		negQ = sn != sd
	}
	d.slots[0] = slot{num: nu, div: du, valid: en, negQ: negQ}

	return valid, q, r
}

// Div runs a single division through an otherwise idle pipeline, ticking it
// Latency() times past the injection, and returns the result. Results of
// computations already in flight are discarded.
//
func (d *Divider) Div(n, dv uint64) (q, r uint64) {
	d.Tick(true, n, dv)
	for i := 0; i <= d.m; i++ {
		_, q, r = d.Tick(false, 0, 0)
	}
	return q, r
}

// A Stage is a snapshot of one pipeline slot, exposed for external
// harnesses that want to observe the register contents.
//
type Stage struct {
	Rem   uint64 // partial remainder
	Num   uint64 // unconsumed numerator bits
	Quot  uint64 // quotient bits gathered so far
	Div   uint64 // divisor magnitude
	Valid bool
	Neg   bool // quotient will be negated on the way out
}

// Stage returns a snapshot of the pipeline slot at depth i, which must be
// in the range 0 to Latency()-1.
//
func (d *Divider) Stage(i int) Stage {
	s := &d.slots[i]
	return Stage{Rem: s.rem, Num: s.num, Quot: s.quot, Div: s.div, Valid: s.valid, Neg: s.negQ}
}
