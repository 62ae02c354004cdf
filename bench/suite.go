package bench

import (
	"fmt"

	"github.com/celestiaorg/go-bitops"
	"github.com/celestiaorg/go-bitops/report"
	"github.com/celestiaorg/go-bitops/strategy"
)

// Case is one benchmarked call.
type Case struct {
	Name string
	Fn   func()
}

// Results land here so the calls are not optimised away.
var (
	sink8   uint8
	sink16  uint16
	sink32  uint32
	sinkS16 bitops.DivS16Result
	sinkU16 bitops.DivU16Result
	sinkU32 bitops.DivU32Result
)

// pair benchmarks the reference and then the variant of one operation.
func pair(op string, v strategy.Variant, ref, impl func()) []Case {
	return []Case{
		{Name: op + "_ref", Fn: ref},
		{Name: fmt.Sprintf("%s/%s", op, v), Fn: impl},
	}
}

// Suite lists the cases for set in report order. The reference of each
// operation comes right before the set's variant of it. Reflection is left
// out when skipReflect is set.
func Suite(set *strategy.Set, skipReflect bool) []Case {
	sel := set.Selection
	var cs []Case

	swap8, swap16, swap32 := uint8(0xAB), uint16(0xAABB), uint32(0xAABBCCDD)
	cs = append(cs, pair("swap", sel.Swap,
		func() { sink8 = bitops.Swap(swap8) },
		func() { sink8 = set.Swap(swap8) })...)
	cs = append(cs, pair("bswap_16", sel.Swap,
		func() { sink16 = bitops.Bswap16(swap16) },
		func() { sink16 = set.Bswap16(swap16) })...)
	cs = append(cs, pair("bswap_32", sel.Swap,
		func() { sink32 = bitops.Bswap32(swap32) },
		func() { sink32 = set.Bswap32(swap32) })...)

	cs = append(cs, popCountCases(set, uint8(0x55))...)
	cs = append(cs, popCountCases(set, uint16(0x5555))...)
	cs = append(cs, popCountCases(set, uint32(0x55555555))...)

	cs = append(cs, countCases(set, uint8(0x18))...)
	cs = append(cs, countCases(set, uint16(0x0180))...)
	cs = append(cs, countCases(set, uint32(0x00018000))...)

	cs = append(cs, rotateCases(set, uint8(0x55))...)
	cs = append(cs, rotateCases(set, uint16(0x5555))...)
	cs = append(cs, rotateCases(set, uint32(0x55555555))...)

	sa, sb := int16(-3000), int16(45)
	ua, ub := uint16(47832), uint16(900)
	la, lb := uint32(4000000000), uint32(12345)
	cs = append(cs, pair("div_s16", sel.Div,
		func() { sinkS16 = bitops.DivS16(sa, sb) },
		func() { sinkS16 = set.DivS16(sa, sb) })...)
	cs = append(cs, pair("div_u16", sel.Div,
		func() { sinkU16 = bitops.DivU16(ua, ub) },
		func() { sinkU16 = set.DivU16(ua, ub) })...)
	cs = append(cs, pair("div_u32", sel.Div,
		func() { sinkU32 = bitops.DivU32(la, lb) },
		func() { sinkU32 = set.DivU32(la, lb) })...)

	if !skipReflect {
		cs = append(cs, pair("reflect_32", sel.Reflect,
			func() { sink32 = bitops.Reflect(swap32) },
			func() { sink32 = set.W32.Reflect(swap32) })...)
	}
	return cs
}

func store[T bitops.Unsigned](v T) {
	switch v := any(v).(type) {
	case uint8:
		sink8 = v
	case uint16:
		sink16 = v
	case uint32:
		sink32 = v
	}
}

func popCountCases[T bitops.Unsigned](set *strategy.Set, v T) []Case {
	ops := strategy.OpsOf[T](set)
	return pair(fmt.Sprintf("pop_count_%d", bitops.Width[T]()), set.Selection.PopCount,
		func() { sink8 = bitops.PopCount(v) },
		func() { sink8 = ops.PopCount(v) })
}

func countCases[T bitops.Unsigned](set *strategy.Set, v T) []Case {
	ops := strategy.OpsOf[T](set)
	w := bitops.Width[T]()
	var cs []Case
	cs = append(cs, pair(fmt.Sprintf("ctz_%d", w), set.Selection.Ctz,
		func() { sink8 = bitops.Ctz(v) },
		func() { sink8 = ops.Ctz(v) })...)
	cs = append(cs, pair(fmt.Sprintf("clz_%d", w), set.Selection.Clz,
		func() { sink8 = bitops.Clz(v) },
		func() { sink8 = ops.Clz(v) })...)
	cs = append(cs, pair(fmt.Sprintf("ffs_%d", w), set.Selection.Ctz,
		func() { sink8 = bitops.Ffs(v) },
		func() { sink8 = ops.Ffs(v) })...)
	return cs
}

// rotateCases rotates by three quarters of the width.
func rotateCases[T bitops.Unsigned](set *strategy.Set, v T) []Case {
	ops := strategy.OpsOf[T](set)
	w := bitops.Width[T]()
	k := uint(w) / 4 * 3
	var cs []Case
	cs = append(cs, pair(fmt.Sprintf("rotate_left_%d", w), set.Selection.Rotate,
		func() { store(bitops.RotateLeft(v, k)) },
		func() { store(ops.RotateLeft(v, k)) })...)
	cs = append(cs, pair(fmt.Sprintf("rotate_right_%d", w), set.Selection.Rotate,
		func() { store(bitops.RotateRight(v, k)) },
		func() { store(ops.RotateRight(v, k)) })...)
	return cs
}

// LinearityCounts is the number of rotate counts Linearity sweeps.
const LinearityCounts = 35

// Linearity times a single 32-bit left rotate of value for every count from
// zero to a little past the width, the reference first. Each count is
// preceded by a line holding only the count. A constant time rotate shows
// the same cost at every count.
func Linearity(w *report.Writer, m Marker, set *strategy.Set, value uint32) {
	for k := uint(0); k < LinearityCounts; k++ {
		w.Linef("%d", k)
		timed(m, fmt.Sprintf("rotate_left_32_ref/%d", k), 1, func() {
			sink32 = bitops.RotateLeft(value, k)
		})
		timed(m, fmt.Sprintf("rotate_left_32/%s/%d", set.Selection.Rotate, k), 1, func() {
			sink32 = set.W32.RotateLeft(value, k)
		})
	}
}
