package strategy

import (
	"math/bits"

	"github.com/celestiaorg/go-bitops"
)

//------------------------------------------------------------------------------
// Portable Intrinsics
//
// math/bits functions are compiler intrinsics on most targets. Narrow widths
// are widened to 32 or 64 bits and the result corrected for the width.

func swapNative(v uint8) uint8 {
	return bits.RotateLeft8(v, 4)
}

func bits16ReverseBytes(v uint16) uint16 {
	return bits.ReverseBytes16(v)
}

func bits32ReverseBytes(v uint32) uint32 {
	return bits.ReverseBytes32(v)
}

func popCountNative[T bitops.Unsigned](value T) uint8 {
	return uint8(bits.OnesCount32(uint32(value)))
}

func ctzNative[T bitops.Unsigned](value T) uint8 {
	// The bit just above the width caps the count at the width for zero.
	return uint8(bits.TrailingZeros64(uint64(value) | 1<<bitops.Width[T]()))
}

func clzNative[T bitops.Unsigned](value T) uint8 {
	return uint8(bits.LeadingZeros32(uint32(value))) - (32 - bitops.Width[T]())
}

func rotateLeftNative[T bitops.Unsigned](value T, count uint) T {
	k := int(count & uint(bitops.Width[T]()-1))
	switch v := any(value).(type) {
	case uint8:
		return T(bits.RotateLeft8(v, k))
	case uint16:
		return T(bits.RotateLeft16(v, k))
	default:
		return T(bits.RotateLeft32(uint32(value), k))
	}
}

func rotateRightNative[T bitops.Unsigned](value T, count uint) T {
	// A negative count rotates right.
	k := int(count & uint(bitops.Width[T]()-1))
	switch v := any(value).(type) {
	case uint8:
		return T(bits.RotateLeft8(v, -k))
	case uint16:
		return T(bits.RotateLeft16(v, -k))
	default:
		return T(bits.RotateLeft32(uint32(value), -k))
	}
}

func reflectNative[T bitops.Unsigned](value T) T {
	return T(bits.Reverse32(uint32(value)) >> (32 - bitops.Width[T]()))
}

func divU16Native(x, y uint16) bitops.DivU16Result {
	return bitops.DivU16Result{Quot: x / y, Rem: x % y}
}

func divU32Native(x, y uint32) bitops.DivU32Result {
	// Div32 panics on a zero divisor, the same as the divide instruction.
	quo, rem := bits.Div32(0, x, y)
	return bitops.DivU32Result{Quot: quo, Rem: rem}
}
