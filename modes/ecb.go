package modes

import "github.com/gogost/gost3413/util"

// ECBEncrypt encrypts data block by block, independently, with no
// chaining between blocks.
//
// ⚠ Identical plaintext blocks always produce identical ciphertext
// blocks under ECB; it is provided for interoperability with legacy
// encodings and test vectors, not as a mode to build new protocols on.
func ECBEncrypt(encryptFn util.BlockFunc, blockSize int, data []byte) ([]byte, error) {
	return ecbCrypt(encryptFn, blockSize, data)
}

// ECBDecrypt decrypts data block by block using the cipher's inverse
// permutation.
func ECBDecrypt(decryptFn util.BlockFunc, blockSize int, data []byte) ([]byte, error) {
	return ecbCrypt(decryptFn, blockSize, data)
}

func ecbCrypt(fn util.BlockFunc, blockSize int, data []byte) ([]byte, error) {
	if err := checkBlockSize(blockSize); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	if len(data)%blockSize != 0 {
		return nil, ErrNotBlockAligned
	}

	out := make([]byte, len(data))
	for off := 0; off < len(data); off += blockSize {
		fn(out[off:off+blockSize], data[off:off+blockSize])
	}
	return out, nil
}
