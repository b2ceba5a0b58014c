package modes

import "github.com/gogost/gost3413/util"

// CFBEncrypt encrypts data under Cipher Feedback. iv is a one-or-more
// block register, handled identically to CBC's FIFO. Each step encrypts
// the register's oldest block with encryptFn to obtain a keystream block,
// XORs it against the plaintext (min-length XOR for a truncated final
// block) to produce ciphertext, and pushes that ciphertext into the
// register.
func CFBEncrypt(encryptFn util.BlockFunc, blockSize int, iv, data []byte) ([]byte, error) {
	register, err := newCFBOFBRegister(blockSize, iv)
	if err != nil {
		return nil, err
	}

	out := make([]byte, len(data))
	keystream := make([]byte, blockSize)

	for off := 0; off < len(data); off += blockSize {
		encryptFn(keystream, register[:blockSize])
		n := chunkLen(blockSize, off, len(data))
		copy(out[off:off+n], util.XOR(keystream, data[off:off+n]))

		feedback := make([]byte, blockSize)
		copy(feedback, out[off:off+n])
		register = append(register[blockSize:], feedback...)
	}
	return out, nil
}

// CFBDecrypt decrypts data under Cipher Feedback, feeding the ciphertext
// (not the recovered plaintext) back into the register.
func CFBDecrypt(encryptFn util.BlockFunc, blockSize int, iv, data []byte) ([]byte, error) {
	register, err := newCFBOFBRegister(blockSize, iv)
	if err != nil {
		return nil, err
	}

	out := make([]byte, len(data))
	keystream := make([]byte, blockSize)

	for off := 0; off < len(data); off += blockSize {
		encryptFn(keystream, register[:blockSize])
		n := chunkLen(blockSize, off, len(data))
		copy(out[off:off+n], util.XOR(keystream, data[off:off+n]))

		feedback := make([]byte, blockSize)
		copy(feedback, data[off:off+n])
		register = append(register[blockSize:], feedback...)
	}
	return out, nil
}

func newCFBOFBRegister(blockSize int, iv []byte) ([]byte, error) {
	if err := checkBlockSize(blockSize); err != nil {
		return nil, err
	}
	if len(iv) == 0 || len(iv)%blockSize != 0 {
		return nil, ErrInvalidIVLength
	}
	return util.Clone(iv), nil
}

func chunkLen(blockSize, off, total int) int {
	if off+blockSize > total {
		return total - off
	}
	return blockSize
}
