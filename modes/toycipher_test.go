package modes

import "github.com/gogost/gost3413/util"

// newToyCipher returns a small invertible substitution-permutation pair
// (encrypt, decrypt) over blockSize-octet blocks, keyed by a single round
// constant. It stands in for Magma/Kuznyechik in tests — this module ships
// no real block-cipher implementation.
func newToyCipher(roundKey byte) (encrypt, decrypt util.BlockFunc) {
	encrypt = func(dst, src []byte) {
		n := len(src)
		tmp := make([]byte, n)
		for i := 0; i < n; i++ {
			tmp[i] = src[i] ^ roundKey ^ byte(i)
		}
		// Byte-rotate left by one to provide inter-position diffusion.
		for i := 0; i < n; i++ {
			dst[i] = tmp[(i+1)%n]
		}
	}
	decrypt = func(dst, src []byte) {
		n := len(src)
		tmp := make([]byte, n)
		for i := 0; i < n; i++ {
			tmp[(i+1)%n] = src[i]
		}
		for i := 0; i < n; i++ {
			dst[i] = tmp[i] ^ roundKey ^ byte(i)
		}
	}
	return encrypt, decrypt
}
