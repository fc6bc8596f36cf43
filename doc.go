/*
Package sdiv implements a fixed-latency, fully pipelined restoring integer
divider.

The divider accepts a new (numerator, denominator) pair on every clock tick
and emits the corresponding (quotient, remainder) pair, together with a
validity flag, exactly M+1 ticks later, where M is the numerator width.
Operand widths are fixed at construction time and may differ for numerator
and denominator; both signed (two's complement) and unsigned modes are
supported.

The simulation model is a synchronous single-clock pipeline: each call to
Divider.Tick performs one atomic register update over all pipeline slots,
reading only the state visible at the start of the tick.
*/
package sdiv
