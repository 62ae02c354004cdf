package harness

// Curated inputs. Expected outputs are never stored; they always come from
// the bitops reference.

var swapVals8 = []uint8{
	0xAB, 0x00, 0xFF,
}

var swapVals16 = []uint16{
	0xAABB, 0x0000, 0xFFFF, 0xF00F,
}

var swapVals32 = []uint32{
	0xAABBCCDD, 0x00000000, 0xFFFFFFFF, 0x5555AAAA,
}

var popCountVals8 = []uint8{
	0x00, 0x01, 0x03, 0x07, 0x0F, 0x1F, 0x3F, 0x7F,
	0x80, 0xC0, 0xE0, 0xF0, 0xF8, 0xFC, 0xFE, 0xFF,
	0xAA, 0x55, 0x77,
}

var popCountVals16 = []uint16{
	0x0000, 0x0001, 0x0003, 0x0007, 0x000F, 0x001F, 0x003F, 0x007F, 0x00FF,
	0x01FF, 0x03FF, 0x07FF, 0x0FFF, 0x1FFF, 0x3FFF, 0x7FFF, 0x8000, 0xC000,
	0xE000, 0xF000, 0xF800, 0xFC00, 0xFE00, 0xFF00, 0xFF80, 0xFFC0, 0xFFE0,
	0xFFF0, 0xFFF8, 0xFFFC, 0xFFFE, 0xFFFF, 0xAAAA, 0x5555, 0x1234,
}

var popCountVals32 = []uint32{
	0x00000000, 0x00000001, 0x00000003, 0x00000007, 0x0000000F,
	0x0000001F, 0x0000003F, 0x0000007F, 0x000000FF, 0x000001FF,
	0x000003FF, 0x000007FF, 0x00000FFF, 0x00001FFF, 0x00003FFF,
	0x00007FFF, 0x0000FFFF, 0x0001FFFF, 0x0003FFFF, 0x0007FFFF,
	0x000FFFFF, 0x001FFFFF, 0x003FFFFF, 0x007FFFFF, 0x00FFFFFF,
	0x01FFFFFF, 0x03FFFFFF, 0x07FFFFFF, 0x0FFFFFFF, 0x1FFFFFFF,
	0x3FFFFFFF, 0x7FFFFFFF, 0xFFFFFFFF,
}

var countVals8 = []uint8{
	0x00, 0x01, 0x10, 0xFF, 0x0E, 0x0C, 0x08, 0xE0, 0xC0, 0x80, 0x5A, 0x88,
}

var countVals16 = []uint16{
	0x0000, 0x0001, 0x0010, 0x0100, 0x1000, 0xFFFF, 0xFFF0, 0xFF00, 0xF000,
	0x000E, 0x000C, 0x0008, 0x00E0, 0x00C0, 0x0080, 0x0E00, 0x0C00, 0x0800,
	0xE000, 0xC000, 0x8000, 0x1110, 0x8888,
}

var countVals32 = []uint32{
	0x00000000, 0x00000001, 0x00000010, 0x00000100, 0x00001000,
	0x00010000, 0x00100000, 0x01000000, 0x10000000, 0xFFFFFFFF,
	0x80808080, 0x00555500, 0xAA0AA000,
}

var rotateVals8 = []uint8{
	0x80, 0x01, 0xFF, 0x00, 0xDD,
}

var rotateVals16 = []uint16{
	0x8000, 0x0001, 0xFFFF, 0x0000, 0xAABB,
}

var rotateVals32 = []uint32{
	0x80000000, 0x00000001, 0xFFFFFFFF, 0x00000000, 0xAABBCCDD,
}

// rotateOvershoot is how far past the width the rotate count sweep goes, to
// exercise the modulo wrap.
const rotateOvershoot = 3

var reflectVals8 = []uint8{
	0x00, 0x01, 0x80, 0xFF, 0xAB, 0x0F, 0x5A,
}

var reflectVals16 = []uint16{
	0x0000, 0x0001, 0x8000, 0xFFFF, 0xAABB, 0x1234, 0x00FF,
}

var reflectVals32 = []uint32{
	0x00000000, 0x00000001, 0x80000000, 0xFFFFFFFF, 0xAABBCCDD, 0x12345678,
	0x0000FFFF,
}

type divS16Vector struct {
	a, b int16
}

var divS16Vals = []divS16Vector{
	{0, 1},
	{1, 1},
	{1, 2},
	{-1, 1},
	{-1, 2},
	{1, -1},
	{1, -2},
	{-1, -1},
	{-1, -2},
	{1000, 2},
	{-1000, 2},
	{10000, 300},
	{10000, -300},
	{32767, 3},
	{-32768, 3},
	{-32768, -1},
}

type divU16Vector struct {
	a, b uint16
}

var divU16Vals = []divU16Vector{
	{0, 1},
	{1, 1},
	{1, 2},
	{1000, 2},
	{10000, 300},
	{32767, 3},
	{65535, 3},
	{65535, 10000},
	{65535, 65535},
}

type divU32Vector struct {
	a, b uint32
}

var divU32Vals = []divU32Vector{
	{0, 1},
	{1, 1},
	{1, 2},
	{1000, 2},
	{10000, 300},
	{65535, 3},
	{123456789, 1000},
	{2147483648, 7},
	{4294967295, 1},
	{4294967295, 3},
	{4294967295, 65536},
	{4294967295, 4294967295},
}

type strVector struct {
	a, b []byte
}

var strctcmpVals = []strVector{
	{[]byte("abc"), []byte("abc")},
	{[]byte("abc"), []byte("abcdef")},
	{[]byte("abcdef"), []byte("abc")},
	{[]byte("abc"), []byte("abd")},
	{[]byte("xbc"), []byte("abc")},
	{[]byte(""), []byte("")},
	{[]byte(""), []byte("a")},
	{[]byte("a"), []byte("")},
	{[]byte("abc\x00def"), []byte("abc\x00xyz")},
	{[]byte("abc\x00"), []byte("abc")},
	{nil, []byte("abc")},
	{[]byte("abc"), nil},
	{nil, nil},
}
