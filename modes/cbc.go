package modes

import "github.com/gogost/gost3413/util"

// CBCEncrypt encrypts data under Cipher Block Chaining. iv is a register
// of one or more blocks — any positive multiple of blockSize. The
// register is a FIFO: its oldest block is XORed into the next plaintext
// block before encryption, and the resulting ciphertext block is appended
// to the register.
func CBCEncrypt(encryptFn util.BlockFunc, blockSize int, iv, data []byte) ([]byte, error) {
	if err := checkCBCPreconditions(blockSize, iv, data); err != nil {
		return nil, err
	}

	register := util.Clone(iv)
	out := make([]byte, len(data))
	block := make([]byte, blockSize)

	for off := 0; off < len(data); off += blockSize {
		copy(block, register[:blockSize])
		util.XORInto(block, data[off:off+blockSize])
		encryptFn(out[off:off+blockSize], block)
		register = append(register[blockSize:], out[off:off+blockSize]...)
	}
	return out, nil
}

// CBCDecrypt decrypts data under CBC using the cipher's inverse
// permutation. The register is maintained identically to CBCEncrypt: the
// oldest block is XORed against the freshly decrypted block, and the
// ciphertext block just consumed is appended.
func CBCDecrypt(decryptFn util.BlockFunc, blockSize int, iv, data []byte) ([]byte, error) {
	if err := checkCBCPreconditions(blockSize, iv, data); err != nil {
		return nil, err
	}

	register := util.Clone(iv)
	out := make([]byte, len(data))
	block := make([]byte, blockSize)

	for off := 0; off < len(data); off += blockSize {
		ctBlock := data[off : off+blockSize]
		decryptFn(block, ctBlock)
		util.XORInto(block, register[:blockSize])
		copy(out[off:off+blockSize], block)
		register = append(register[blockSize:], util.Clone(ctBlock)...)
	}
	return out, nil
}

func checkCBCPreconditions(blockSize int, iv, data []byte) error {
	if err := checkBlockSize(blockSize); err != nil {
		return err
	}
	if len(data) == 0 || len(data)%blockSize != 0 {
		return ErrNotBlockAligned
	}
	if len(iv) == 0 || len(iv)%blockSize != 0 {
		return ErrInvalidIVLength
	}
	return nil
}
