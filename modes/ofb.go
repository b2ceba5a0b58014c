package modes

import "github.com/gogost/gost3413/util"

// OFBCrypt runs Output Feedback mode. iv is a one-or-more block register,
// handled identically to CBC's and CFB's FIFO. Each step encrypts the
// register's oldest block to obtain a keystream block, pushes that
// keystream block (not the ciphertext) into the register, and XORs it
// against the input. Encryption and decryption are the same operation.
func OFBCrypt(encryptFn util.BlockFunc, blockSize int, iv, data []byte) ([]byte, error) {
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
		register = append(register[blockSize:], keystream...)
	}
	return out, nil
}
