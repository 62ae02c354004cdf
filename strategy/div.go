package strategy

import "github.com/celestiaorg/go-bitops"

//------------------------------------------------------------------------------
// Division
//
// A zero divisor is undefined for every strategy. The native ones panic like
// the oracle; shift-subtract returns an all-ones quotient and the dividend as
// remainder. Neither is a result to rely on.

// divShiftSubtract is restoring long division, one quotient bit per step.
// The dividend is shifted out of the top while quotient bits are shifted in
// at the bottom, so it ends up holding the quotient.
func divShiftSubtract[T uint16 | uint32](x, y T) (quot, rem T) {
	w := bitops.Width[T]()
	for n := w; n > 0; n-- {
		rem = rem<<1 | x>>(w-1)
		x <<= 1
		if rem >= y {
			rem -= y
			x |= 0x01
		}
	}
	return x, rem
}

func divU16ShiftSubtract(x, y uint16) bitops.DivU16Result {
	q, r := divShiftSubtract(x, y)
	return bitops.DivU16Result{Quot: q, Rem: r}
}

func divU32ShiftSubtract(x, y uint32) bitops.DivU32Result {
	q, r := divShiftSubtract(x, y)
	return bitops.DivU32Result{Quot: q, Rem: r}
}

// signedDiv builds a signed 16-bit division on top of an unsigned one. Both
// operands are made positive, divided, then the quotient is negated when
// exactly one operand was negative and the remainder takes the sign of the
// dividend.
func signedDiv(udiv func(x, y uint16) bitops.DivU16Result) func(x, y int16) bitops.DivS16Result {
	return func(x, y int16) bitops.DivS16Result {
		ux, uy := uint16(x), uint16(y)
		if x < 0 {
			ux = -ux
		}
		if y < 0 {
			uy = -uy
		}
		r := udiv(ux, uy)
		quot, rem := int16(r.Quot), int16(r.Rem)
		if (x < 0) != (y < 0) {
			quot = -quot
		}
		if x < 0 {
			rem = -rem
		}
		return bitops.DivS16Result{Quot: quot, Rem: rem}
	}
}
