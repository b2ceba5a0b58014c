package modes

import "github.com/gogost/gost3413/util"

// CTRCrypt runs Counter mode. iv is exactly half a block. Keystream block
// i (0-indexed) is the encryption of iv ‖ to_be(i, blockSize/2); it is
// XORed against data (min-length XOR for a truncated final block).
// Encryption and decryption are the same operation. Input longer than
// blockSize * 2^(blockSize*4) octets is rejected.
func CTRCrypt(encryptFn util.BlockFunc, blockSize int, iv, data []byte) ([]byte, error) {
	if err := checkBlockSize(blockSize); err != nil {
		return nil, err
	}
	if len(iv) != blockSize/2 {
		return nil, ErrInvalidIVLength
	}
	if len(data) == 0 {
		return []byte{}, nil
	}

	numBlocks := uint64((len(data) + blockSize - 1) / blockSize)
	if numBlocks > ctrMaxBlocks(blockSize) {
		return nil, ErrMessageTooLarge
	}

	out := make([]byte, len(data))
	keystream := make([]byte, blockSize)

	for off := 0; off < len(data); off += blockSize {
		index := uint64(off / blockSize)
		encryptFn(keystream, CTRCounterBlock(iv, blockSize, index))
		n := chunkLen(blockSize, off, len(data))
		copy(out[off:off+n], util.XOR(keystream, data[off:off+n]))
	}
	return out, nil
}
