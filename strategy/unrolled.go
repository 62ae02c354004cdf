package strategy

//------------------------------------------------------------------------------
// Unrolled strategies
//
// Same per-bit work as the loops with the loop written out, so there is no
// loop counter or back branch. Written per width because the unrolling
// depends on it.

func popCountUnrolled8(v uint8) uint8 {
	return v&1 + v>>1&1 + v>>2&1 + v>>3&1 + v>>4&1 + v>>5&1 + v>>6&1 + v>>7&1
}

func popCountUnrolled16(v uint16) uint8 {
	return popCountUnrolled8(uint8(v)) + popCountUnrolled8(uint8(v>>8))
}

func popCountUnrolled32(v uint32) uint8 {
	return popCountUnrolled16(uint16(v)) + popCountUnrolled16(uint16(v>>16))
}

// The zero counts are unrolled as a fixed sequence of halving tests.

func ctzUnrolled8(v uint8) uint8 {
	if v == 0 {
		return 8
	}
	var n uint8
	if v&0x0F == 0 {
		n += 4
		v >>= 4
	}
	if v&0x03 == 0 {
		n += 2
		v >>= 2
	}
	if v&0x01 == 0 {
		n++
	}
	return n
}

func ctzUnrolled16(v uint16) uint8 {
	if v == 0 {
		return 16
	}
	var n uint8
	if v&0x00FF == 0 {
		n += 8
		v >>= 8
	}
	return n + ctzUnrolled8(uint8(v))
}

func ctzUnrolled32(v uint32) uint8 {
	if v == 0 {
		return 32
	}
	var n uint8
	if v&0x0000FFFF == 0 {
		n += 16
		v >>= 16
	}
	return n + ctzUnrolled16(uint16(v))
}

func clzUnrolled8(v uint8) uint8 {
	if v == 0 {
		return 8
	}
	var n uint8
	if v&0xF0 == 0 {
		n += 4
		v <<= 4
	}
	if v&0xC0 == 0 {
		n += 2
		v <<= 2
	}
	if v&0x80 == 0 {
		n++
	}
	return n
}

func clzUnrolled16(v uint16) uint8 {
	if v == 0 {
		return 16
	}
	var n uint8
	if v&0xFF00 == 0 {
		n += 8
		v <<= 8
	}
	return n + clzUnrolled8(uint8(v>>8))
}

func clzUnrolled32(v uint32) uint8 {
	if v == 0 {
		return 32
	}
	var n uint8
	if v&0xFFFF0000 == 0 {
		n += 16
		v <<= 16
	}
	return n + clzUnrolled16(uint16(v>>16))
}

func reflectUnrolled8(v uint8) uint8 {
	return v<<7 | v<<5&0x40 | v<<3&0x20 | v<<1&0x10 |
		v>>1&0x08 | v>>3&0x04 | v>>5&0x02 | v>>7
}

func reflectUnrolled16(v uint16) uint16 {
	return uint16(reflectUnrolled8(uint8(v)))<<8 | uint16(reflectUnrolled8(uint8(v>>8)))
}

func reflectUnrolled32(v uint32) uint32 {
	return uint32(reflectUnrolled16(uint16(v)))<<16 | uint32(reflectUnrolled16(uint16(v>>16)))
}
