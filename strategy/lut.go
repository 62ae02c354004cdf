package strategy

import "github.com/celestiaorg/go-bitops"

//------------------------------------------------------------------------------
// Lookup Tables

// Nibble values with the bits reflected.
var reflectLUT = [16]uint8{
	0, 8, 4, 12, 2, 10, 6, 14, 1, 9, 5, 13, 3, 11, 7, 15,
}

// Count of 1 bits per nibble.
var popCountLUTSmall = [16]uint8{
	0, 1, 1, 2, 1, 2, 2, 3, 1, 2, 2, 3, 2, 3, 3, 4,
}

// Count of 1 bits per distinct 7 most-significant bits of a byte. The least
// significant bit is added separately.
var popCountLUTLarge = [128]uint8{
	0, 1, 1, 2, 1, 2, 2, 3, 1, 2, 2, 3, 2, 3, 3, 4, 1, 2, 2, 3, 2, 3, 3, 4, 2, 3, 3, 4, 3, 4, 4, 5,
	1, 2, 2, 3, 2, 3, 3, 4, 2, 3, 3, 4, 3, 4, 4, 5, 2, 3, 3, 4, 3, 4, 4, 5, 3, 4, 4, 5, 4, 5, 5, 6,
	1, 2, 2, 3, 2, 3, 3, 4, 2, 3, 3, 4, 3, 4, 4, 5, 2, 3, 3, 4, 3, 4, 4, 5, 3, 4, 4, 5, 4, 5, 5, 6,
	2, 3, 3, 4, 3, 4, 4, 5, 3, 4, 4, 5, 4, 5, 5, 6, 3, 4, 4, 5, 4, 5, 5, 6, 4, 5, 5, 6, 5, 6, 6, 7,
}

// Count of trailing 0 bits per nibble. A zero nibble counts all 4.
var ctzLUTSmall = [16]uint8{
	4, 0, 1, 0, 2, 0, 1, 0, 3, 0, 1, 0, 2, 0, 1, 0,
}

// Count of trailing 0 bits for each even byte value, indexed by the byte
// shifted right by one. Odd bytes are handled before the lookup.
var ctzLUTLarge = [128]uint8{
	8, 1, 2, 1, 3, 1, 2, 1, 4, 1, 2, 1, 3, 1, 2, 1, 5, 1, 2, 1, 3, 1, 2, 1, 4, 1, 2, 1, 3, 1, 2, 1,
	6, 1, 2, 1, 3, 1, 2, 1, 4, 1, 2, 1, 3, 1, 2, 1, 5, 1, 2, 1, 3, 1, 2, 1, 4, 1, 2, 1, 3, 1, 2, 1,
	7, 1, 2, 1, 3, 1, 2, 1, 4, 1, 2, 1, 3, 1, 2, 1, 5, 1, 2, 1, 3, 1, 2, 1, 4, 1, 2, 1, 3, 1, 2, 1,
	6, 1, 2, 1, 3, 1, 2, 1, 4, 1, 2, 1, 3, 1, 2, 1, 5, 1, 2, 1, 3, 1, 2, 1, 4, 1, 2, 1, 3, 1, 2, 1,
}

// Count of leading 0 bits per nibble. A zero nibble counts all 4.
var clzLUTSmall = [16]uint8{
	4, 3, 2, 2, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0,
}

// Count of leading 0 bits for each byte value up to and including 127, i.e.
// all bytes without a 1 in the most-significant position.
var clzLUTLarge = [128]uint8{
	8, 7, 6, 6, 5, 5, 5, 5, 4, 4, 4, 4, 4, 4, 4, 4, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3,
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
}

//------------------------------------------------------------------------------
// Nibble (16 entry) table strategies

func popCountSmallLUT[T bitops.Unsigned](value T) uint8 {
	var c uint8
	for shift := uint8(0); shift < bitops.Width[T](); shift += 4 {
		c += popCountLUTSmall[(value>>shift)&0x0F]
	}
	return c
}

func ctzSmallLUT[T bitops.Unsigned](value T) uint8 {
	var c uint8
	for shift := uint8(0); shift < bitops.Width[T](); shift += 4 {
		nibble := (value >> shift) & 0x0F
		c += ctzLUTSmall[nibble]
		if nibble != 0 {
			break
		}
	}
	return c
}

func clzSmallLUT[T bitops.Unsigned](value T) uint8 {
	var c uint8
	for shift := int(bitops.Width[T]()) - 4; shift >= 0; shift -= 4 {
		nibble := (value >> uint(shift)) & 0x0F
		c += clzLUTSmall[nibble]
		if nibble != 0 {
			break
		}
	}
	return c
}

//------------------------------------------------------------------------------
// 7-bit (128 entry) table strategies
//
// Each byte is split into its lowest (or highest) bit, which is handled
// without the table, and the 7 remaining bits, which index it. This halves
// the table compared to a full 256 entry one.

func popCountLargeLUT[T bitops.Unsigned](value T) uint8 {
	var c uint8
	for shift := uint8(0); shift < bitops.Width[T](); shift += 8 {
		b := uint8(value >> shift)
		c += b&0x01 + popCountLUTLarge[b>>1]
	}
	return c
}

func ctzLargeLUT[T bitops.Unsigned](value T) uint8 {
	var c uint8
	for shift := uint8(0); shift < bitops.Width[T](); shift += 8 {
		b := uint8(value >> shift)
		if b&0x01 != 0 {
			return c
		}
		c += ctzLUTLarge[b>>1]
		if b != 0 {
			return c
		}
	}
	return c
}

func clzLargeLUT[T bitops.Unsigned](value T) uint8 {
	var c uint8
	for shift := int(bitops.Width[T]()) - 8; shift >= 0; shift -= 8 {
		b := uint8(value >> uint(shift))
		if b&0x80 != 0 {
			return c
		}
		c += clzLUTLarge[b]
		if b != 0 {
			return c
		}
	}
	return c
}
