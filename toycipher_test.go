package gost3413

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

// toyCipherConstructor builds a util.CipherConstructor over newToyCipher,
// taking the KeySize-octet key's first octet as the round constant. It
// exists only so ACPKM re-keying has something concrete to rebuild on
// every section boundary.
func toyCipherConstructor() util.CipherConstructor {
	return func(key []byte) util.BlockFunc {
		encrypt, _ := newToyCipher(key[0])
		return encrypt
	}
}
