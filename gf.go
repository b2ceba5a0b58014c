package gost3413

import "github.com/gogost/gost3413/util"

// GFMul multiplies a and b as elements of GF(2^n), n = blockSize*8, modulo
// the irreducible polynomial whose low octet is r (the high bit of the
// reduction is implicit). Both operands and the result are blockSize-octet
// big-endian encodings.
//
// This is the bit-serial, non-constant-time algorithm: an accumulator z
// starts at zero and a shifting copy x of a is folded in once per set bit
// of b, from the least significant bit upward; x is then doubled in the
// field (shift left, reducing with r when the vacated top bit was set).
func GFMul(a, b []byte, blockSize int, r byte) []byte {
	z := make([]byte, blockSize)
	x := util.Clone(a)

	for i := blockSize - 1; i >= 0; i-- {
		for bit := 0; bit < 8; bit++ {
			if (b[i]>>uint(bit))&1 != 0 {
				util.XORInto(z, x)
			}
			topSet := x[0]&0x80 != 0
			util.ShiftLeft1(x)
			if topSet {
				x[len(x)-1] ^= r
			}
		}
	}
	return z
}
