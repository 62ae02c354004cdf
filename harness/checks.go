package harness

import (
	"fmt"

	"github.com/celestiaorg/go-bitops"
	"github.com/celestiaorg/go-bitops/strategy"
)

// hexFormat is the zero-padded hex verb for a value of T, e.g. 0x%04X.
func hexFormat[T bitops.Unsigned]() string {
	return fmt.Sprintf("0x%%0%dX", bitops.Width[T]()/4)
}

// opName appends the width of T to op, e.g. ctz_16.
func opName[T bitops.Unsigned](op string) string {
	return fmt.Sprintf("%s_%d", op, bitops.Width[T]())
}

// checkUnary compares ref(v) with impl(v). outFormat formats both results.
func checkUnary[T bitops.Unsigned, R comparable](h *Harness, op string, v T, ref, impl func(T) R, outFormat string) {
	want, got := ref(v), impl(v)
	h.record(want == got, op, fmt.Sprintf(hexFormat[T](), v), fmt.Sprintf(
		"%s_ref = "+outFormat+", %s = "+outFormat, op, want, op, got,
	))
}

func checkCounts[T bitops.Unsigned](h *Harness, vals []T) {
	ops := strategy.OpsOf[T](h.set)
	for _, v := range vals {
		checkUnary(h, opName[T]("ctz"), v, bitops.Ctz[T], ops.Ctz, "%d")
		checkUnary(h, opName[T]("clz"), v, bitops.Clz[T], ops.Clz, "%d")
		checkUnary(h, opName[T]("ffs"), v, bitops.Ffs[T], ops.Ffs, "%d")
	}
}

func checkPopCount[T bitops.Unsigned](h *Harness, vals []T) {
	ops := strategy.OpsOf[T](h.set)
	for _, v := range vals {
		checkUnary(h, opName[T]("pop_count"), v, bitops.PopCount[T], ops.PopCount, "%d")
	}
}

func checkReflect[T bitops.Unsigned](h *Harness, vals []T) {
	ops := strategy.OpsOf[T](h.set)
	for _, v := range vals {
		checkUnary(h, opName[T]("reflect"), v, bitops.Reflect[T], ops.Reflect, hexFormat[T]())
	}
}

// checkRotate sweeps the count from zero to a little past the width for
// every value, left first, then right.
func checkRotate[T bitops.Unsigned](h *Harness, vals []T) {
	ops := strategy.OpsOf[T](h.set)
	counts := uint(bitops.Width[T]()) + rotateOvershoot
	sweep := func(op string, ref, impl func(T, uint) T) {
		for _, v := range vals {
			for k := uint(0); k < counts; k++ {
				want, got := ref(v, k), impl(v, k)
				h.record(want == got, op, fmt.Sprintf(hexFormat[T]()+", %d", v, k), fmt.Sprintf(
					"%s_ref = "+hexFormat[T]()+", %s = "+hexFormat[T](), op, want, op, got,
				))
			}
		}
	}
	sweep(opName[T]("rotate_left"), bitops.RotateLeft[T], ops.RotateLeft)
	sweep(opName[T]("rotate_right"), bitops.RotateRight[T], ops.RotateRight)
}
