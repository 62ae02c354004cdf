package bitops

// The division primitives mirror the host divide instruction: a zero
// divisor is undefined. Here it panics with the Go runtime's integer divide
// error; callers must guarantee a non-zero divisor.

// DivS16 divides x by y, truncating towards zero. The remainder takes the
// sign of the dividend. DivS16(-32768, -1) wraps to {-32768, 0}.
func DivS16(x, y int16) DivS16Result {
	return DivS16Result{Quot: x / y, Rem: x % y}
}

// DivU16 divides x by y.
func DivU16(x, y uint16) DivU16Result {
	return DivU16Result{Quot: x / y, Rem: x % y}
}

// DivU32 divides x by y.
func DivU32(x, y uint32) DivU32Result {
	return DivU32Result{Quot: x / y, Rem: x % y}
}

// Reconstructs reports whether r satisfies quot*y + rem == x in 16-bit
// two's complement arithmetic.
func (r DivS16Result) Reconstructs(x, y int16) bool {
	return r.Quot*y+r.Rem == x
}

// Reconstructs reports whether r satisfies quot*y + rem == x.
func (r DivU16Result) Reconstructs(x, y uint16) bool {
	return r.Quot*y+r.Rem == x
}

// Reconstructs reports whether r satisfies quot*y + rem == x.
func (r DivU32Result) Reconstructs(x, y uint32) bool {
	return r.Quot*y+r.Rem == x
}
