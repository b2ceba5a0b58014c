// Package paddings implements the three padding procedures of GOST R
// 34.13-2015: zero-extension (pad1), the ISO/IEC 7816-4 marker-byte scheme
// (pad2) and pad2-if-unaligned (pad3), plus pad2's inverse.
//
// Reference: GOST R 34.13-2015 §4; org.bouncycastle.crypto.paddings.
package paddings

import "errors"

// ErrMalformedPadding is returned by Unpad2 when the padding structure is
// violated: no 0x80 marker in the last block, or a non-zero octet after it.
var ErrMalformedPadding = errors.New("paddings: malformed pad2 padding")

// Pad1 zero-extends data to the next multiple of blockSize. A zero-length
// input is returned unchanged (zero-length) rather than padded to one
// block; pad1 is ambiguous and has no inverse, so callers needing a
// minimum-one-block output must special-case the empty input themselves.
func Pad1(data []byte, blockSize int) []byte {
	if len(data) == 0 {
		return []byte{}
	}
	rem := len(data) % blockSize
	if rem == 0 {
		return append([]byte(nil), data...)
	}
	out := make([]byte, len(data)+blockSize-rem)
	copy(out, data)
	return out
}

// Pad2 appends a single 0x80 marker octet and zero-pads to the next
// multiple of blockSize. It always adds at least one octet, even when data
// is already block-aligned.
func Pad2(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize
	out := make([]byte, len(data)+padLen)
	copy(out, data)
	out[len(data)] = 0x80
	return out
}

// Pad3 returns data unchanged when it is already a positive, or zero,
// multiple of blockSize; otherwise it applies Pad2.
func Pad3(data []byte, blockSize int) []byte {
	if len(data)%blockSize == 0 {
		return append([]byte(nil), data...)
	}
	return Pad2(data, blockSize)
}

// Unpad2 inverts Pad2: it scans the last block right-to-left for the first
// 0x80 octet and returns everything before it. It fails with
// ErrMalformedPadding when no 0x80 is found in the last block, or when any
// octet after the 0x80 is non-zero.
func Unpad2(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, ErrMalformedPadding
	}

	lastBlock := data[len(data)-blockSize:]
	pos := blockSize - 1
	for pos >= 0 && lastBlock[pos] == 0x00 {
		pos--
	}
	if pos < 0 || lastBlock[pos] != 0x80 {
		return nil, ErrMalformedPadding
	}

	markerOffset := len(data) - blockSize + pos
	return append([]byte(nil), data[:markerOffset]...), nil
}
