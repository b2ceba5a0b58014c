package util

import "crypto/subtle"

// XOR returns the octet-wise XOR of the prefix of length min(len(a), len(b)).
// This min-length semantics is load-bearing for CFB/OFB/CTR/MGM final
// blocks, which truncate rather than pad.
func XOR(a, b []byte) []byte {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = a[i] ^ b[i]
	}
	return out
}

// XORInto XORs src into dst in place, over min(len(dst), len(src)) octets.
func XORInto(dst, src []byte) {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	for i := 0; i < n; i++ {
		dst[i] ^= src[i]
	}
}

// Concat concatenates its arguments into a single freshly allocated slice.
func Concat(parts ...[]byte) []byte {
	total := 0
	for _, p := range parts {
		total += len(p)
	}
	out := make([]byte, 0, total)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// ToBE emits n as exactly length big-endian octets, truncating any excess
// most-significant bytes. Used for half-block counters and bit-length
// fields, both of which fit in a uint64.
func ToBE(n uint64, length int) []byte {
	out := make([]byte, length)
	for i := length - 1; i >= 0; i-- {
		out[i] = byte(n)
		n >>= 8
	}
	return out
}

// FromBE treats b as an unsigned big-endian integer. b must be no longer
// than 8 octets.
func FromBE(b []byte) uint64 {
	var n uint64
	for _, v := range b {
		n = (n << 8) | uint64(v)
	}
	return n
}

// IncrementBE increments b, read as a big-endian unsigned integer, by one
// modulo 2^(8*len(b)), in place.
func IncrementBE(b []byte) {
	for i := len(b) - 1; i >= 0; i-- {
		b[i]++
		if b[i] != 0 {
			return
		}
	}
}

// ShiftLeft1 shifts the multi-octet big-endian value b left by one bit, in
// place, carrying across octet boundaries. The bit shifted out of the most
// significant octet is discarded; callers that need it should inspect
// b[0]&0x80 before calling.
func ShiftLeft1(b []byte) {
	carry := byte(0)
	for i := len(b) - 1; i >= 0; i-- {
		next := (b[i] & 0x80) >> 7
		b[i] = (b[i] << 1) | carry
		carry = next
	}
}

// ConstantTimeEqual reports whether a and b hold identical contents,
// without branching on the compared bytes themselves. Lengths may leak.
func ConstantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}

// Clone returns a fresh copy of b.
func Clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
