package strategy

//------------------------------------------------------------------------------
// Transpose strategies
//
// Byte and word order swaps done as exchanges of halves. Reflection reuses
// them: reverse the byte order, then reflect each byte with two nibble
// lookups.

func swapTranspose(v uint8) uint8 {
	return v<<4 | v>>4
}

func bswap16Transpose(v uint16) uint16 {
	return v<<8 | v>>8
}

func bswap32Transpose(v uint32) uint32 {
	// Swap the 16-bit halves, then the bytes within each half.
	v = v<<16 | v>>16
	return (v&0x00FF00FF)<<8 | (v>>8)&0x00FF00FF
}

func reflectByteLUT(b uint8) uint8 {
	return reflectLUT[b&0x0F]<<4 | reflectLUT[b>>4]
}

func reflectTranspose8(v uint8) uint8 {
	return reflectByteLUT(v)
}

func reflectTranspose16(v uint16) uint16 {
	v = bswap16Transpose(v)
	return uint16(reflectByteLUT(uint8(v>>8)))<<8 | uint16(reflectByteLUT(uint8(v)))
}

func reflectTranspose32(v uint32) uint32 {
	v = bswap32Transpose(v)
	return uint32(reflectByteLUT(uint8(v>>24)))<<24 |
		uint32(reflectByteLUT(uint8(v>>16)))<<16 |
		uint32(reflectByteLUT(uint8(v>>8)))<<8 |
		uint32(reflectByteLUT(uint8(v)))
}
