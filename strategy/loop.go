package strategy

import "github.com/celestiaorg/go-bitops"

//------------------------------------------------------------------------------
// Shift loop strategies
//
// One bit per iteration. Smallest code, cost grows with the width (or with
// the answer, for the zero counts).

func popCountLoop[T bitops.Unsigned](value T) uint8 {
	var c uint8
	for value != 0 {
		// Add the bit about to be shifted off.
		c += uint8(value & 0x01)
		value >>= 1
	}
	return c
}

func ctzLoop[T bitops.Unsigned](value T) uint8 {
	// A sentinel one just above the top bit ends the scan even when value is
	// all zeroes.
	v := uint64(value) | 1<<bitops.Width[T]()
	var c uint8
	for v&0x01 == 0 {
		v >>= 1
		c++
	}
	return c
}

func clzLoop[T bitops.Unsigned](value T) uint8 {
	// The sentinel one enters from below as the value is shifted left.
	top := uint64(1) << bitops.Width[T]()
	v := uint64(value)<<1 | 0x01
	var c uint8
	for v&top == 0 {
		v <<= 1
		c++
	}
	return c
}

func rotateLeftLoop[T bitops.Unsigned](value T, count uint) T {
	w := bitops.Width[T]()
	for count &= uint(w - 1); count > 0; count-- {
		value = value<<1 | value>>(w-1)
	}
	return value
}

func rotateRightLoop[T bitops.Unsigned](value T, count uint) T {
	w := bitops.Width[T]()
	for count &= uint(w - 1); count > 0; count-- {
		value = value>>1 | value<<(w-1)
	}
	return value
}

func reflectLoop[T bitops.Unsigned](value T) T {
	var r T
	for n := bitops.Width[T](); n > 0; n-- {
		// Shift off the low bit of value into the low bit of the result.
		r <<= 1
		if value&0x01 != 0 {
			r |= 0x01
		}
		value >>= 1
	}
	return r
}
