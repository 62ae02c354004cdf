// Package bitops holds the reference definitions of the bit-manipulation
// primitives: byte and nibble swaps, population count, trailing/leading
// zero counts, find-first-set, rotates, bit reflection, simultaneous
// quotient/remainder division and string comparison.
//
// These are the oracle. They favour obviousness over speed and every
// alternative implementation in package strategy is checked against them.
package bitops

import "math/bits"

//------------------------------------------------------------------------------
// Datatypes and Constants

// Unsigned is the set of fixed widths the primitives are defined for.
type Unsigned interface {
	uint8 | uint16 | uint32
}

// Width returns the number of bits in T.
func Width[T Unsigned]() uint8 {
	var zero T
	return uint8(bits.OnesCount64(uint64(^zero)))
}

// Ones returns the all-ones value of T.
func Ones[T Unsigned]() T {
	var zero T
	return ^zero
}

// DivS16Result is the quotient and remainder of a signed 16-bit division.
type DivS16Result struct {
	Quot int16
	Rem  int16
}

// DivU16Result is the quotient and remainder of an unsigned 16-bit division.
type DivU16Result struct {
	Quot uint16
	Rem  uint16
}

// DivU32Result is the quotient and remainder of an unsigned 32-bit division.
type DivU32Result struct {
	Quot uint32
	Rem  uint32
}
