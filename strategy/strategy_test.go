package strategy

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celestiaorg/go-bitops"
)

func allSets(t testing.TB) []*Set {
	t.Helper()
	sets := All()
	require.Len(t, sets, len(PresetNames()))
	return sets
}

// checkWidth compares every width-T primitive of s with the reference for
// one value and every rotate count up to twice the width.
func checkWidth[T bitops.Unsigned](t *testing.T, s *Set, v T) {
	o := OpsOf[T](s)
	w := bitops.Width[T]()
	if got, want := o.PopCount(v), bitops.PopCount(v); got != want {
		t.Fatalf("%s: pop_count_%d(%#x) = %d, want %d", s.Name, w, v, got, want)
	}
	if got, want := o.Ctz(v), bitops.Ctz(v); got != want {
		t.Fatalf("%s: ctz_%d(%#x) = %d, want %d", s.Name, w, v, got, want)
	}
	if got, want := o.Clz(v), bitops.Clz(v); got != want {
		t.Fatalf("%s: clz_%d(%#x) = %d, want %d", s.Name, w, v, got, want)
	}
	if got, want := o.Ffs(v), bitops.Ffs(v); got != want {
		t.Fatalf("%s: ffs_%d(%#x) = %d, want %d", s.Name, w, v, got, want)
	}
	if got, want := o.Reflect(v), bitops.Reflect(v); got != want {
		t.Fatalf("%s: reflect_%d(%#x) = %#x, want %#x", s.Name, w, v, got, want)
	}
	if got, want := o.PopCount(o.Reflect(v)), o.PopCount(v); got != want {
		t.Fatalf("%s: pop_count_%d(reflect_%d(%#x)) = %d, want %d", s.Name, w, w, v, got, want)
	}
	for k := uint(0); k <= 2*uint(w); k++ {
		if got, want := o.RotateLeft(v, k), bitops.RotateLeft(v, k); got != want {
			t.Fatalf("%s: rotate_left_%d(%#x, %d) = %#x, want %#x", s.Name, w, v, k, got, want)
		}
		if got, want := o.RotateRight(v, k), bitops.RotateRight(v, k); got != want {
			t.Fatalf("%s: rotate_right_%d(%#x, %d) = %#x, want %#x", s.Name, w, v, k, got, want)
		}
	}
}

func TestExhaustive8(t *testing.T) {
	for _, s := range allSets(t) {
		t.Run(s.Name, func(t *testing.T) {
			for i := 0; i < 1<<8; i++ {
				v := uint8(i)
				checkWidth(t, s, v)
				require.Equal(t, bitops.Swap(v), s.Swap(v), "swap(%#x)", v)
			}
		})
	}
}

func TestExhaustive16(t *testing.T) {
	for _, s := range allSets(t) {
		t.Run(s.Name, func(t *testing.T) {
			for i := 0; i < 1<<16; i++ {
				v := uint16(i)
				checkWidth(t, s, v)
				if got, want := s.Bswap16(v), bitops.Bswap16(v); got != want {
					t.Fatalf("bswap_16(%#x) = %#x, want %#x", v, got, want)
				}
			}
		})
	}
}

// vectors32 is the 32-bit sweep: single bits, low and high masks, their
// complements and seeded random values.
func vectors32() []uint32 {
	vals := []uint32{0, 0xFFFFFFFF, 0xAABBCCDD, 0x55555555, 0xAAAAAAAA}
	for i := 0; i < 32; i++ {
		bit := uint32(1) << i
		vals = append(vals, bit, ^bit, bit-1, ^(bit - 1))
	}
	r := rand.New(rand.NewSource(0))
	for i := 0; i < 4096; i++ {
		vals = append(vals, r.Uint32())
	}
	return vals
}

func TestSweep32(t *testing.T) {
	vals := vectors32()
	for _, s := range allSets(t) {
		t.Run(s.Name, func(t *testing.T) {
			for _, v := range vals {
				checkWidth(t, s, v)
				if got, want := s.Bswap32(v), bitops.Bswap32(v); got != want {
					t.Fatalf("bswap_32(%#x) = %#x, want %#x", v, got, want)
				}
			}
		})
	}
}

func TestDivExhaustiveDividend16(t *testing.T) {
	divisors := []uint16{1, 2, 3, 7, 10, 255, 256, 300, 900, 10000, 32767, 32768, 65535}
	for _, s := range allSets(t) {
		t.Run(s.Name, func(t *testing.T) {
			for _, y := range divisors {
				for i := 0; i < 1<<16; i++ {
					x := uint16(i)
					if got, want := s.DivU16(x, y), bitops.DivU16(x, y); got != want {
						t.Fatalf("div_u16(%d, %d) = %+v, want %+v", x, y, got, want)
					}
					sx, sy := int16(x), int16(y)
					if got, want := s.DivS16(sx, sy), bitops.DivS16(sx, sy); got != want {
						t.Fatalf("div_s16(%d, %d) = %+v, want %+v", sx, sy, got, want)
					}
					if got, want := s.DivS16(sx, -sy), bitops.DivS16(sx, -sy); got != want {
						t.Fatalf("div_s16(%d, %d) = %+v, want %+v", sx, -sy, got, want)
					}
				}
			}
		})
	}
}

func TestDivU32(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	type args struct{ x, y uint32 }
	cases := []args{
		{0, 1}, {4294967295, 1}, {4294967295, 4294967295}, {2147483648, 2147483649},
		{4294967294, 4294967295}, {4000000000, 12345}, {65536, 65535},
	}
	for i := 0; i < 2048; i++ {
		y := r.Uint32() >> (r.Intn(32))
		if y == 0 {
			y = 1
		}
		cases = append(cases, args{r.Uint32(), y})
	}
	for _, s := range allSets(t) {
		t.Run(s.Name, func(t *testing.T) {
			for _, c := range cases {
				got := s.DivU32(c.x, c.y)
				assert.Equal(t, bitops.DivU32(c.x, c.y), got, "div_u32(%d, %d)", c.x, c.y)
				assert.True(t, got.Reconstructs(c.x, c.y))
			}
		})
	}
}

func TestDivS16Scenarios(t *testing.T) {
	tests := []struct {
		name string
		x, y int16
		want bitops.DivS16Result
	}{
		{"most negative by 3", -32768, 3, bitops.DivS16Result{Quot: -10922, Rem: -2}},
		{"most negative by -1 wraps", -32768, -1, bitops.DivS16Result{Quot: -32768, Rem: 0}},
		{"negative divisor", 10000, -300, bitops.DivS16Result{Quot: -33, Rem: 100}},
		{"both negative", -1, -2, bitops.DivS16Result{Quot: 0, Rem: -1}},
	}
	for _, s := range allSets(t) {
		for _, tt := range tests {
			t.Run(fmt.Sprintf("%s/%s", s.Name, tt.name), func(t *testing.T) {
				assert.Equal(t, tt.want, s.DivS16(tt.x, tt.y))
			})
		}
	}
}

func TestShiftSubtractZeroDivisor(t *testing.T) {
	// Undefined, but it must not hang or panic: the loop always runs the
	// width number of steps.
	assert.Equal(t, bitops.DivU16Result{Quot: 0xFFFF, Rem: 1234}, divU16ShiftSubtract(1234, 0))
	assert.Equal(t, bitops.DivU32Result{Quot: 0xFFFFFFFF, Rem: 7}, divU32ShiftSubtract(7, 0))
}

func TestPresets(t *testing.T) {
	assert.Equal(t, []string{"loop", "lut-large", "lut-small", "native", "unrolled"}, PresetNames())
	for _, name := range PresetNames() {
		s, err := Preset(name)
		require.NoError(t, err)
		assert.Equal(t, name, s.Name)
		assert.Equal(t, presets[name], s.Selection)
	}

	_, err := Preset("turbo")
	assert.ErrorIs(t, err, ErrUnknownPreset)
}

func TestLabel(t *testing.T) {
	s, err := Preset("loop")
	require.NoError(t, err)
	assert.Equal(t, "loop", s.Label())

	custom, err := Build(s.Selection)
	require.NoError(t, err)
	assert.Empty(t, custom.Name)
	assert.Equal(t, "custom", custom.Label())
}

func TestDefault(t *testing.T) {
	s := Default()
	assert.Equal(t, DefaultPreset(), s.Name)
	if HasHardwareBitScan() {
		assert.Equal(t, "native", s.Name)
	} else {
		assert.Equal(t, "lut-large", s.Name)
	}
}

func TestBuildRejectsUnsupported(t *testing.T) {
	native := presets["native"]
	tests := []struct {
		name   string
		mutate func(*Selection)
		op     string
	}{
		{"swap loop", func(s *Selection) { s.Swap = Loop }, "swap"},
		{"pop_count transpose", func(s *Selection) { s.PopCount = Transpose }, "pop_count"},
		{"ctz empty", func(s *Selection) { s.Ctz = "" }, "ctz"},
		{"clz shift-subtract", func(s *Selection) { s.Clz = ShiftSubtract }, "clz"},
		{"rotate lut", func(s *Selection) { s.Rotate = LargeLUT }, "rotate"},
		{"reflect lut-small", func(s *Selection) { s.Reflect = SmallLUT }, "reflect"},
		{"div loop", func(s *Selection) { s.Div = Loop }, "div"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := native
			tt.mutate(&sel)
			s, err := Build(sel)
			assert.Nil(t, s)
			require.ErrorIs(t, err, ErrUnknownVariant)
			assert.Contains(t, err.Error(), tt.op+":")
		})
	}
}

func TestBuildMixed(t *testing.T) {
	s, err := Build(Selection{
		Swap: Native, PopCount: LargeLUT, Ctz: SmallLUT, Clz: Unrolled,
		Rotate: Native, Reflect: Transpose, Div: ShiftSubtract,
	})
	require.NoError(t, err)
	assert.Empty(t, s.Name)
	for i := 0; i < 1<<8; i++ {
		checkWidth(t, s, uint8(i))
	}
	for _, v := range vectors32()[:256] {
		checkWidth(t, s, v)
	}
}

func TestLookupTables(t *testing.T) {
	for i := range reflectLUT {
		assert.Equal(t, bitops.Reflect(uint8(i))>>4, reflectLUT[i], "reflect nibble %d", i)
	}
	for i := range popCountLUTSmall {
		assert.Equal(t, bitops.PopCount(uint8(i)), popCountLUTSmall[i], "pop count nibble %d", i)
	}
	for i := range popCountLUTLarge {
		assert.Equal(t, bitops.PopCount(uint8(i)), popCountLUTLarge[i], "pop count 7-bit %d", i)
	}
	for i := range ctzLUTSmall {
		want := bitops.Ctz(uint8(i))
		if i == 0 {
			want = 4
		}
		assert.Equal(t, want, ctzLUTSmall[i], "ctz nibble %d", i)
	}
	for i := range ctzLUTLarge {
		assert.Equal(t, bitops.Ctz(uint8(i<<1)), ctzLUTLarge[i], "ctz even byte %#x", i<<1)
	}
	for i := range clzLUTSmall {
		assert.Equal(t, bitops.Clz(uint8(i))-4, clzLUTSmall[i], "clz nibble %d", i)
	}
	for i := range clzLUTLarge {
		assert.Equal(t, bitops.Clz(uint8(i)), clzLUTLarge[i], "clz byte %#x", i)
	}
}
