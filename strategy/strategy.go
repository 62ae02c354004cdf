// Package strategy provides interchangeable implementations of the bitops
// primitives: shift loops, unrolled sequences, nibble and 7-bit lookup
// tables, byte transposes, shift-subtract division and the compiler
// intrinsics in math/bits. Every implementation gives the same result as the
// bitops reference for every input; they only trade code size against speed.
//
// A Set bundles one implementation of every primitive. Which implementation
// backs each operation is chosen once, when the Set is built.
package strategy

import (
	"errors"
	"fmt"
	"sort"

	"golang.org/x/sys/cpu"

	"github.com/celestiaorg/go-bitops"
)

// Variant identifies the algorithm behind an operation. It is used for
// reporting only.
type Variant string

const (
	Loop          Variant = "loop"
	Unrolled      Variant = "unrolled"
	SmallLUT      Variant = "lut-small"
	LargeLUT      Variant = "lut-large"
	Transpose     Variant = "transpose"
	Native        Variant = "native"
	ShiftSubtract Variant = "shift-subtract"
	ConstantTime  Variant = "constant-time"
)

var (
	ErrUnknownVariant = errors.New("unsupported variant")
	ErrUnknownPreset  = errors.New("unknown preset")
)

// Selection picks the variant for each operation. Ffs always follows Ctz and
// Strctcmp is always constant time.
type Selection struct {
	Swap     Variant `yaml:"swap"`
	PopCount Variant `yaml:"pop_count"`
	Ctz      Variant `yaml:"ctz"`
	Clz      Variant `yaml:"clz"`
	Rotate   Variant `yaml:"rotate"`
	Reflect  Variant `yaml:"reflect"`
	Div      Variant `yaml:"div"`
}

// Ops are the primitives of one width.
type Ops[T bitops.Unsigned] struct {
	PopCount    func(T) uint8
	Ctz         func(T) uint8
	Clz         func(T) uint8
	Ffs         func(T) uint8
	RotateLeft  func(T, uint) T
	RotateRight func(T, uint) T
	Reflect     func(T) T
}

// Set is one drop-in implementation of every primitive at every width.
type Set struct {
	Name      string
	Selection Selection

	Swap    func(uint8) uint8
	Bswap16 func(uint16) uint16
	Bswap32 func(uint32) uint32

	W8  Ops[uint8]
	W16 Ops[uint16]
	W32 Ops[uint32]

	DivS16 func(x, y int16) bitops.DivS16Result
	DivU16 func(x, y uint16) bitops.DivU16Result
	DivU32 func(x, y uint32) bitops.DivU32Result

	Strctcmp func(a, b []byte) int
}

// Label is the name reports use for s. Sets built from a custom selection
// have no name and are labelled "custom".
func (s *Set) Label() string {
	if s.Name == "" {
		return "custom"
	}
	return s.Name
}

// OpsOf returns the width-T primitives of s.
func OpsOf[T bitops.Unsigned](s *Set) Ops[T] {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return any(s.W8).(Ops[T])
	case uint16:
		return any(s.W16).(Ops[T])
	default:
		return any(s.W32).(Ops[T])
	}
}

var presets = map[string]Selection{
	"loop": {
		Swap: Transpose, PopCount: Loop, Ctz: Loop, Clz: Loop,
		Rotate: Loop, Reflect: Loop, Div: ShiftSubtract,
	},
	"unrolled": {
		Swap: Transpose, PopCount: Unrolled, Ctz: Unrolled, Clz: Unrolled,
		Rotate: Loop, Reflect: Unrolled, Div: ShiftSubtract,
	},
	"lut-small": {
		Swap: Transpose, PopCount: SmallLUT, Ctz: SmallLUT, Clz: SmallLUT,
		Rotate: Loop, Reflect: Transpose, Div: Native,
	},
	"lut-large": {
		Swap: Transpose, PopCount: LargeLUT, Ctz: LargeLUT, Clz: LargeLUT,
		Rotate: Loop, Reflect: Transpose, Div: Native,
	},
	"native": {
		Swap: Native, PopCount: Native, Ctz: Native, Clz: Native,
		Rotate: Native, Reflect: Native, Div: Native,
	},
}

// PresetNames returns the names of the built-in selections in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset builds the named built-in selection.
func Preset(name string) (*Set, error) {
	sel, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	s, err := Build(sel)
	if err != nil {
		return nil, err
	}
	s.Name = name
	return s, nil
}

// All builds every preset, in PresetNames order.
func All() []*Set {
	names := PresetNames()
	sets := make([]*Set, 0, len(names))
	for _, name := range names {
		s, err := Preset(name)
		if err != nil {
			panic(fmt.Sprintf("Unexpected error while building preset %s: %v", name, err))
		}
		sets = append(sets, s)
	}
	return sets
}

// HasHardwareBitScan reports whether the CPU has population count and bit
// scan instructions the compiler can emit for math/bits.
func HasHardwareBitScan() bool {
	return (cpu.X86.HasPOPCNT && cpu.X86.HasBMI1) || cpu.ARM64.HasASIMD
}

// DefaultPreset is the preset Default builds.
func DefaultPreset() string {
	if HasHardwareBitScan() {
		return "native"
	}
	return "lut-large"
}

// Default builds the preset best suited to the running CPU: the intrinsics
// when it has bit scan instructions, the 7-bit tables otherwise.
func Default() *Set {
	s, err := Preset(DefaultPreset())
	if err != nil {
		panic(fmt.Sprintf("Unexpected error while building default set %v", err))
	}
	return s
}

// Build assembles a Set from sel. The returned Set is unnamed; the caller
// may set Name for reporting.
func Build(sel Selection) (*Set, error) {
	s := &Set{Selection: sel, Strctcmp: Strctcmp}

	switch sel.Swap {
	case Transpose:
		s.Swap, s.Bswap16, s.Bswap32 = swapTranspose, bswap16Transpose, bswap32Transpose
	case Native:
		s.Swap, s.Bswap16, s.Bswap32 = swapNative, bits16ReverseBytes, bits32ReverseBytes
	default:
		return nil, unsupported("swap", sel.Swap)
	}

	var err error
	if s.W8, err = buildOps[uint8](sel); err != nil {
		return nil, err
	}
	if s.W16, err = buildOps[uint16](sel); err != nil {
		return nil, err
	}
	if s.W32, err = buildOps[uint32](sel); err != nil {
		return nil, err
	}

	switch sel.Div {
	case Native:
		s.DivU16, s.DivU32 = divU16Native, divU32Native
	case ShiftSubtract:
		s.DivU16, s.DivU32 = divU16ShiftSubtract, divU32ShiftSubtract
	default:
		return nil, unsupported("div", sel.Div)
	}
	s.DivS16 = signedDiv(s.DivU16)
	return s, nil
}

func unsupported(op string, v Variant) error {
	return fmt.Errorf("%s: %w %q", op, ErrUnknownVariant, v)
}

func buildOps[T bitops.Unsigned](sel Selection) (o Ops[T], err error) {
	if o.PopCount, err = popCounter[T](sel.PopCount); err != nil {
		return o, err
	}
	if o.Ctz, err = ctzCounter[T](sel.Ctz); err != nil {
		return o, err
	}
	if o.Clz, err = clzCounter[T](sel.Clz); err != nil {
		return o, err
	}
	o.Ffs = ffsFrom(o.Ctz)
	if o.RotateLeft, o.RotateRight, err = rotators[T](sel.Rotate); err != nil {
		return o, err
	}
	if o.Reflect, err = reflector[T](sel.Reflect); err != nil {
		return o, err
	}
	return o, nil
}

func popCounter[T bitops.Unsigned](v Variant) (func(T) uint8, error) {
	switch v {
	case Loop:
		return popCountLoop[T], nil
	case Unrolled:
		return pick[func(T) uint8](popCountUnrolled8, popCountUnrolled16, popCountUnrolled32), nil
	case SmallLUT:
		return popCountSmallLUT[T], nil
	case LargeLUT:
		return popCountLargeLUT[T], nil
	case Native:
		return popCountNative[T], nil
	}
	return nil, unsupported("pop_count", v)
}

func ctzCounter[T bitops.Unsigned](v Variant) (func(T) uint8, error) {
	switch v {
	case Loop:
		return ctzLoop[T], nil
	case Unrolled:
		return pick[func(T) uint8](ctzUnrolled8, ctzUnrolled16, ctzUnrolled32), nil
	case SmallLUT:
		return ctzSmallLUT[T], nil
	case LargeLUT:
		return ctzLargeLUT[T], nil
	case Native:
		return ctzNative[T], nil
	}
	return nil, unsupported("ctz", v)
}

func clzCounter[T bitops.Unsigned](v Variant) (func(T) uint8, error) {
	switch v {
	case Loop:
		return clzLoop[T], nil
	case Unrolled:
		return pick[func(T) uint8](clzUnrolled8, clzUnrolled16, clzUnrolled32), nil
	case SmallLUT:
		return clzSmallLUT[T], nil
	case LargeLUT:
		return clzLargeLUT[T], nil
	case Native:
		return clzNative[T], nil
	}
	return nil, unsupported("clz", v)
}

// ffsFrom derives find-first-set from a trailing zero count.
func ffsFrom[T bitops.Unsigned](ctz func(T) uint8) func(T) uint8 {
	return func(value T) uint8 {
		var idx uint8
		if value != 0 {
			idx = ctz(value) + 1
		}
		return idx
	}
}

func rotators[T bitops.Unsigned](v Variant) (left, right func(T, uint) T, err error) {
	switch v {
	case Loop:
		return rotateLeftLoop[T], rotateRightLoop[T], nil
	case Native:
		return rotateLeftNative[T], rotateRightNative[T], nil
	}
	return nil, nil, unsupported("rotate", v)
}

func reflector[T bitops.Unsigned](v Variant) (func(T) T, error) {
	switch v {
	case Loop:
		return reflectLoop[T], nil
	case Unrolled:
		return pick[func(T) T](reflectUnrolled8, reflectUnrolled16, reflectUnrolled32), nil
	case Transpose:
		return pick[func(T) T](reflectTranspose8, reflectTranspose16, reflectTranspose32), nil
	case Native:
		return reflectNative[T], nil
	}
	return nil, unsupported("reflect", v)
}

// pick returns the candidate whose type is F. Used to bind per-width
// functions inside generic code.
func pick[F any](candidates ...any) F {
	for _, c := range candidates {
		if f, ok := c.(F); ok {
			return f
		}
	}
	panic("strategy: no candidate for requested width")
}
