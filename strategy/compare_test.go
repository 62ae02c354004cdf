package strategy

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/celestiaorg/go-bitops"
)

// outcome is everything one Set computes for one fuzz input.
type outcome struct {
	Bswap32      uint32
	PopCount     [3]uint8
	Ctz, Clz     [3]uint8
	Ffs          [3]uint8
	Left, Right  uint32
	Reflect      uint32
	DivS16       bitops.DivS16Result
	DivU16       bitops.DivU16Result
	DivU32       bitops.DivU32Result
	StrctcmpZero bool
}

func evaluate(s *Set, v uint32, k uint, y uint32, a, b []byte) outcome {
	v8, v16 := uint8(v), uint16(v)
	y16 := uint16(y)
	if y16 == 0 {
		y16 = 1
	}
	if y == 0 {
		y = 1
	}
	return outcome{
		Bswap32:      s.Bswap32(v),
		PopCount:     [3]uint8{s.W8.PopCount(v8), s.W16.PopCount(v16), s.W32.PopCount(v)},
		Ctz:          [3]uint8{s.W8.Ctz(v8), s.W16.Ctz(v16), s.W32.Ctz(v)},
		Clz:          [3]uint8{s.W8.Clz(v8), s.W16.Clz(v16), s.W32.Clz(v)},
		Ffs:          [3]uint8{s.W8.Ffs(v8), s.W16.Ffs(v16), s.W32.Ffs(v)},
		Left:         s.W32.RotateLeft(v, k),
		Right:        s.W32.RotateRight(v, k),
		Reflect:      s.W32.Reflect(v),
		DivS16:       s.DivS16(int16(v16), int16(y16)),
		DivU16:       s.DivU16(v16, y16),
		DivU32:       s.DivU32(v, y),
		StrctcmpZero: s.Strctcmp(a, b) == 0,
	}
}

// reference computes the same outcome with the bitops reference.
func reference(v uint32, k uint, y uint32, a, b []byte) outcome {
	ref := &Set{
		Bswap32:  bitops.Bswap32,
		W8:       referenceOps[uint8](),
		W16:      referenceOps[uint16](),
		W32:      referenceOps[uint32](),
		DivS16:   bitops.DivS16,
		DivU16:   bitops.DivU16,
		DivU32:   bitops.DivU32,
		Strctcmp: bitops.Strctcmp,
	}
	return evaluate(ref, v, k, y, a, b)
}

func referenceOps[T bitops.Unsigned]() Ops[T] {
	return Ops[T]{
		PopCount:    bitops.PopCount[T],
		Ctz:         bitops.Ctz[T],
		Clz:         bitops.Clz[T],
		Ffs:         bitops.Ffs[T],
		RotateLeft:  bitops.RotateLeft[T],
		RotateRight: bitops.RotateRight[T],
		Reflect:     bitops.Reflect[T],
	}
}

// FuzzCompareImplementations compares every preset with the reference.
func FuzzCompareImplementations(f *testing.F) {
	f.Add(uint32(0xAABBCCDD), uint(4), uint32(300), []byte("abc"), []byte("abd"))
	f.Add(uint32(0x80000000), uint(33), uint32(0xFFFFFFFF), []byte("abc"), []byte("abc"))
	f.Add(uint32(0), uint(0), uint32(0), []byte{}, []byte("a"))
	sets := All()
	f.Fuzz(func(t *testing.T, v uint32, k uint, y uint32, a, b []byte) {
		want := reference(v, k, y, a, b)
		for _, s := range sets {
			if diff := cmp.Diff(want, evaluate(s, v, k, y, a, b)); diff != "" {
				t.Fatalf("%s differs from the reference (-want +got):\n%s", s.Name, diff)
			}
		}
	})
}
