package bitops

// Strctcmp compares a and b as null-terminated strings. The first zero byte,
// or the end of the slice, terminates a string. It returns 0 when both are
// identical up to and including the terminator and 1 otherwise. A nil slice
// stands for a null pointer and never compares equal.
//
// This is the reference result only; it returns early and is not constant
// time. See strategy.Strctcmp for the timing-safe version.
func Strctcmp(a, b []byte) int {
	if a == nil || b == nil {
		return 1
	}
	for i := 0; ; i++ {
		ca, cb := CharAt(a, i), CharAt(b, i)
		if ca != cb {
			return 1
		}
		if ca == 0 {
			return 0
		}
	}
}

// CharAt returns s[i], or the implicit terminator when i is past the end.
func CharAt(s []byte, i int) byte {
	if i < len(s) {
		return s[i]
	}
	return 0
}
