package bitops

// Swap exchanges the high and low nibbles of value.
func Swap(value uint8) uint8 {
	return (value&0xF0)>>4 | (value&0x0F)<<4
}

// Bswap16 reverses the byte order of value.
func Bswap16(value uint16) uint16 {
	return (value&0xFF00)>>8 | (value&0x00FF)<<8
}

// Bswap32 reverses the byte order of value.
func Bswap32(value uint32) uint32 {
	return (value&0x000000FF)<<24 | (value&0x0000FF00)<<8 |
		(value&0x00FF0000)>>8 | (value&0xFF000000)>>24
}

// PopCount returns the number of one bits in value.
func PopCount[T Unsigned](value T) uint8 {
	var c uint8
	for value != 0 {
		// Clear the least significant bit set.
		value &= value - 1
		c++
	}
	return c
}

// Ctz returns the number of trailing zero bits in value. Ctz(0) is the
// width of T.
func Ctz[T Unsigned](value T) uint8 {
	if value == 0 {
		return Width[T]()
	}
	var c uint8
	// Set value's trailing 0s to 1s and zero the rest.
	value = (value ^ (value - 1)) >> 1
	for value != 0 {
		value >>= 1
		c++
	}
	return c
}

// Clz returns the number of leading zero bits in value. Clz(0) is the width
// of T.
func Clz[T Unsigned](value T) uint8 {
	if value == 0 {
		return Width[T]()
	}
	var c uint8
	mask := T(1) << (Width[T]() - 1)
	for value&mask == 0 {
		mask >>= 1
		c++
	}
	return c
}

// Ffs returns the one-based position of the lowest set bit in value, or 0
// when no bit is set.
func Ffs[T Unsigned](value T) uint8 {
	if value == 0 {
		return 0
	}
	return Ctz(value) + 1
}

// RotateLeft rotates value left by count bits. The count is reduced modulo
// the width of T.
func RotateLeft[T Unsigned](value T, count uint) T {
	mask := uint(Width[T]() - 1)
	count &= mask
	return value<<count | value>>(-count&mask)
}

// RotateRight rotates value right by count bits. The count is reduced modulo
// the width of T.
func RotateRight[T Unsigned](value T, count uint) T {
	mask := uint(Width[T]() - 1)
	count &= mask
	return value>>count | value<<(-count&mask)
}

// Reflect reverses the order of the bits in value.
func Reflect[T Unsigned](value T) T {
	var r T
	for i := uint8(0); i < Width[T](); i++ {
		r = r<<1 | value&1
		value >>= 1
	}
	return r
}

// ParityEven returns the bit that makes the number of one bits in value
// plus the parity bit even.
func ParityEven[T Unsigned](value T) uint8 {
	return PopCount(value) & 0x01
}

// ParityOdd returns the bit that makes the number of one bits in value plus
// the parity bit odd.
func ParityOdd[T Unsigned](value T) uint8 {
	return ^PopCount(value) & 0x01
}
