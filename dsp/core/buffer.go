package core

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
// The contents of a reused buffer are not cleared.
func EnsureLen[F Float](buf []F, n int) []F {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]F, n)
}

// Zero sets all values in buf to 0.
func Zero[F Float](buf []F) {
	for i := range buf {
		buf[i] = 0
	}
}

// Clone returns an independent copy of src. A nil or empty src yields an
// empty, non-nil slice.
func Clone[F Float](src []F) []F {
	out := make([]F, len(src))
	copy(out, src)
	return out
}

// Reversed returns a new slice holding src in reverse order.
func Reversed[F Float](src []F) []F {
	out := make([]F, len(src))
	for i, v := range src {
		out[len(src)-1-i] = v
	}
	return out
}

// Convert returns src converted element-wise to another sample type.
func Convert[To, From Float](src []From) []To {
	out := make([]To, len(src))
	for i, v := range src {
		out[i] = To(v)
	}
	return out
}
