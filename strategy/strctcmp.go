package strategy

import "github.com/celestiaorg/go-bitops"

// Trace is the control flow taken by one StrctcmpTrace call.
type Trace struct {
	// Decisions is the number of conditional branches evaluated.
	Decisions int
	// Iterations is the number of passes through the comparison loop.
	Iterations int
	// Stalls is the number of iterations spent parked on the terminator of
	// the second string while the first one continues.
	Stalls int
}

// Strctcmp compares a and b as null-terminated strings in time that depends
// only on the length of a, never on where or whether the contents differ.
// It returns 0 when they are identical and non-zero otherwise. A nil slice
// is a null pointer and compares unequal without being read.
func Strctcmp(a, b []byte) int {
	if a == nil || b == nil {
		return 1
	}

	result := 0
	i, j := 0, 0
	for {
		ca, cb := bitops.CharAt(a, i), bitops.CharAt(b, j)
		result |= int(ca ^ cb)
		if ca == 0 {
			break
		}
		i++
		if cb != 0 {
			j++
		}
	}
	return result
}

// StrctcmpTrace is an instrumented copy of the Strctcmp loop that also
// reports the control flow it took. The two loops must stay in step.
func StrctcmpTrace(a, b []byte) (int, Trace) {
	var t Trace
	result := 1

	t.Decisions++
	if a == nil {
		return result, t
	}
	t.Decisions++
	if b == nil {
		return result, t
	}

	result = 0
	i, j := 0, 0
	for {
		t.Iterations++
		ca, cb := bitops.CharAt(a, i), bitops.CharAt(b, j)

		// Once there is a mismatch the result becomes non-zero and stays
		// that way for the rest of the string.
		result |= int(ca ^ cb)

		// Reaching the terminator of the first string ends the loop.
		t.Decisions++
		if ca == 0 {
			break
		}
		i++

		// Both arms do one increment so the branch costs the same whichever
		// way it goes.
		t.Decisions++
		if cb != 0 {
			j++
		} else {
			t.Stalls++
		}
	}
	return result, t
}
