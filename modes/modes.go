// Package modes implements the classical GOST R 34.13-2015 block-cipher
// modes of operation — ECB, CBC, CFB, OFB, CTR — and CMAC (OMAC1), each as
// a free function over a caller-supplied block function. None retain
// state across calls: the data model has no persistent mode objects, a
// deliberate departure from the stateful Init/ProcessBlock BlockCipher
// wrappers this package's internals are otherwise modeled on.
//
// Reference: GOST R 34.13-2015; org.bouncycastle.crypto.modes.
package modes

import (
	"errors"

	"github.com/gogost/gost3413/util"
)

var (
	// ErrInvalidBlockSize is returned when blockSize is not 8 or 16.
	ErrInvalidBlockSize = errors.New("modes: block size must be 8 or 16")
	// ErrNotBlockAligned is returned by ECB and CBC when data is not a
	// multiple of the block size, and by CBC also for empty data.
	ErrNotBlockAligned = errors.New("modes: input length must be a positive multiple of the block size")
	// ErrEmptyInput is returned by ECB for empty input.
	ErrEmptyInput = errors.New("modes: input must not be empty")
	// ErrInvalidIVLength is returned when an IV's length does not match
	// what the mode requires (any positive multiple of the block size for
	// the CBC/CFB/OFB register, exactly half a block for CTR).
	ErrInvalidIVLength = errors.New("modes: IV has the wrong length for this mode")
	// ErrMessageTooLarge is returned by CTR when the requested keystream
	// would exceed block_size * 2^(block_size*4) octets.
	ErrMessageTooLarge = errors.New("modes: input exceeds the maximum CTR keystream length")
)

func checkBlockSize(blockSize int) error {
	if blockSize != 8 && blockSize != 16 {
		return ErrInvalidBlockSize
	}
	return nil
}

// CTRCounterBlock builds the block_size-octet cipher input for CTR
// keystream block `index`: the half-block IV concatenated with index
// encoded as a big-endian half-block integer. Exported so the ACPKM
// family can share CTR's counter construction across key-rotation
// boundaries without re-deriving it.
func CTRCounterBlock(iv []byte, blockSize int, index uint64) []byte {
	half := blockSize / 2
	block := make([]byte, blockSize)
	copy(block[:half], iv)
	copy(block[half:], util.ToBE(index, half))
	return block
}

// ctrMaxBlocks returns 2^(blockSize*4), the number of distinct counter
// values CTR's half-block counter can address, saturating to the maximum
// uint64 for block_size 16 (where the true bound, 2^64, does not fit).
func ctrMaxBlocks(blockSize int) uint64 {
	if blockSize == 16 {
		return ^uint64(0)
	}
	return uint64(1) << uint(blockSize*4)
}
