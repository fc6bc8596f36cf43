// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package divtest provides utility functions for testing pipelined
// dividers against a pure reference model.
//
package divtest

import (
	"math/rand"
	"testing"
	"time"

	"github.com/eacrawford02/sdiv"
)

func mask(w int) uint64 {
	if w >= 64 {
		return ^uint64(0)
	}
	return 1<<uint(w) - 1
}

// Model returns a reference model for the given configuration, computed
// with ordinary integer arithmetic on operand magnitudes. It reproduces the
// pipeline's divide-by-zero pattern exactly: an all-ones raw quotient
// (sign-corrected like any other) and the low remainder bits of the
// numerator magnitude.
//
func Model(cfg sdiv.Config) func(n, d uint64) (q, r uint64) {
	mw, nw := cfg.NumeratorWidth, cfg.DenominatorWidth
	return func(n, d uint64) (q, r uint64) {
		nu, du := n&mask(mw), d&mask(nw)
		var neg bool
		if cfg.Signed {
			sn, sd := nu>>uint(mw-1)&1 != 0, du>>uint(nw-1)&1 != 0
			if sn {
				nu = (^nu + 1) & mask(mw)
			}
			if sd {
				du = (^du + 1) & mask(nw)
			}
			neg = sn != sd
		}
		if du == 0 {
			q, r = mask(mw), nu&mask(nw)
		} else {
			q, r = nu/du, nu%du
		}
		if neg {
			q = (^q + 1) & mask(mw)
		}
		return q, r
	}
}

type expected struct {
	q, r  uint64
	valid bool
}

func fail(t *testing.T, tick int, n, d uint64, want, got expected) {
	t.Helper()
	t.Fatalf("tick %d: n=%#x d=%#x\nExpected valid=%v q=%#x r=%#x\nGot valid=%v q=%#x r=%#x",
		tick, n, d, want.valid, want.q, want.r, got.valid, got.q, got.r)
}

// Compare drives an idle divider with corner operands followed by rounds
// random injections, interleaved with random idle ticks, and checks every
// output against the reference model: values, validity, FIFO order and
// exact latency.
//
func Compare(t *testing.T, d *sdiv.Divider, rounds int) {
	t.Helper()
	rand.Seed(time.Now().UnixNano())

	cfg := d.Config()
	model := Model(cfg)
	lat := d.Latency()

	type op struct {
		en   bool
		n, d uint64
	}
	ops := []op{
		{true, 0, 0},
		{true, mask(cfg.NumeratorWidth), mask(cfg.DenominatorWidth)},
		{true, 0, 1},
		{true, 1, 1},
	}
	for i := 0; i < rounds; i++ {
		ops = append(ops, op{rand.Int63()&7 != 0, rand.Uint64(), rand.Uint64()})
	}

	want := make([]expected, len(ops)+lat)
	for i, o := range ops {
		if o.en {
			q, r := model(o.n, o.d)
			want[i+lat] = expected{q, r, true}
		}
	}

	for i := range want {
		var o op
		if i < len(ops) {
			o = ops[i]
		}
		valid, q, r := d.Tick(o.en, o.n, o.d)
		if valid != want[i].valid || q != want[i].q || r != want[i].r {
			j := i - lat
			var src op
			if j >= 0 {
				src = ops[j]
			}
			fail(t, i, src.n, src.d, want[i], expected{q, r, valid})
		}
	}
}

// CompareExhaustive sweeps every operand pair for the divider's widths,
// injecting a new pair on every tick (full throughput, no idle slots), and
// checks all outputs against the reference model. The combined operand
// width must not exceed 16 bits.
//
func CompareExhaustive(t *testing.T, d *sdiv.Divider) {
	t.Helper()

	cfg := d.Config()
	mw, nw := cfg.NumeratorWidth, cfg.DenominatorWidth
	if mw+nw > 16 {
		t.Fatalf("cannot sweep %d+%d operand bits exhaustively", mw, nw)
	}

	model := Model(cfg)
	lat := d.Latency()
	total := 1 << uint(mw+nw)
	pending := make([]expected, lat)

	for i := 0; i < total+lat; i++ {
		// read the expectation recorded lat ticks ago before reusing its slot
		w := pending[i%lat]
		var n, dv uint64
		en := i < total
		if en {
			n, dv = uint64(i)>>uint(nw), uint64(i)&mask(nw)
			q, r := model(n, dv)
			pending[i%lat] = expected{q, r, true}
		} else {
			pending[i%lat] = expected{}
		}
		valid, q, r := d.Tick(en, n, dv)
		if i < lat {
			if valid {
				t.Fatalf("tick %d: valid output from an empty pipeline", i)
			}
			continue
		}
		if valid != w.valid || q != w.q || r != w.r {
			j := uint64(i - lat)
			fail(t, i, j>>uint(nw), j&mask(nw), w, expected{q, r, valid})
		}
	}
}
