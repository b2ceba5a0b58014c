package gost3413

import (
	"github.com/gogost/gost3413/modes"
	"github.com/gogost/gost3413/paddings"
	"github.com/gogost/gost3413/util"
)

// ACPKMDerive computes the next KeySize octets of key material from the
// current block function: for each of KeySize/blockSize "d" values
// starting at 0x80 and stepping by blockSize, it encrypts the block whose
// i-th octet is d+i and concatenates the results. It is a pure function of
// the current cipher; it does not consume or require the key bytes
// themselves.
func ACPKMDerive(blockFn util.BlockFunc, blockSize int) []byte {
	count := util.KeySize / blockSize
	out := make([]byte, 0, util.KeySize)
	block := make([]byte, blockSize)
	enc := make([]byte, blockSize)
	for k := 0; k < count; k++ {
		d := byte(0x80 + k*blockSize)
		for i := 0; i < blockSize; i++ {
			block[i] = d + byte(i)
		}
		blockFn(enc, block)
		out = append(out, enc...)
	}
	return out
}

func checkSectionSize(sectionSize, blockSize int) error {
	if sectionSize <= 0 || sectionSize%blockSize != 0 {
		return ErrInvalidSectionSize
	}
	return nil
}

// CTRACPKM runs Counter mode exactly like modes.CTRCrypt, except that
// after every sectionSize/blockSize keystream blocks the cipher is
// re-keyed: a new KeySize-octet key is derived from the current block
// function via ACPKMDerive and handed to cipherCtor to build the next
// block function. The first section uses initialBlockFn unchanged. The
// counter itself (iv ‖ block index) keeps advancing across section
// boundaries; only the key rotates.
func CTRACPKM(cipherCtor util.CipherConstructor, initialBlockFn util.BlockFunc, blockSize, sectionSize int, iv, data []byte) ([]byte, error) {
	if blockSize != 8 && blockSize != 16 {
		return nil, ErrInvalidBlockSize
	}
	if err := checkSectionSize(sectionSize, blockSize); err != nil {
		return nil, err
	}
	if len(iv) != blockSize/2 {
		return nil, ErrInvalidIVLength
	}
	if blockSize == 8 && uint64(len(data)) > uint64(blockSize)<<32 {
		return nil, modes.ErrMessageTooLarge
	}

	blocksPerSection := sectionSize / blockSize
	current := initialBlockFn

	out := make([]byte, len(data))
	keystream := make([]byte, blockSize)
	blockIndex := 0
	for off := 0; off < len(data); off += blockSize {
		if blockIndex > 0 && blockIndex%blocksPerSection == 0 {
			current = cipherCtor(ACPKMDerive(current, blockSize))
		}
		counterBlock := modes.CTRCounterBlock(iv, blockSize, uint64(blockIndex))
		current(keystream, counterBlock)
		n := chunkLen(blockSize, off, len(data))
		copy(out[off:off+n], util.XOR(keystream, data[off:off+n]))
		blockIndex++
	}
	return out, nil
}

// ACPKMMaster derives outputLen octets of key material by running
// CTR-ACPKM over an all-zero plaintext of that length, with section size
// keySectionSize and an IV of (blockSize/2) octets of 0xFF. Callers slice
// the result into (key, K1-candidate) tuples for OMACACPKM.
func ACPKMMaster(cipherCtor util.CipherConstructor, blockFn util.BlockFunc, blockSize, keySectionSize, outputLen int) ([]byte, error) {
	iv := make([]byte, blockSize/2)
	for i := range iv {
		iv[i] = 0xFF
	}
	return CTRACPKM(cipherCtor, blockFn, blockSize, keySectionSize, iv, make([]byte, outputLen))
}

// OMACACPKM computes a CMAC/OMAC1-shaped MAC whose key, and CMAC K1
// subkey, rotate every sectionSize octets of data. It pre-derives its
// entire keystream of (key ‖ K1-candidate) tuples via ACPKMMaster up
// front, so the only call into cipherCtor during the main loop is to
// rebuild the block function at a section boundary from an
// already-derived key.
func OMACACPKM(cipherCtor util.CipherConstructor, blockFn util.BlockFunc, blockSize, sectionSize, keySectionSize int, data []byte) ([]byte, error) {
	if blockSize != 8 && blockSize != 16 {
		return nil, ErrInvalidBlockSize
	}
	if err := checkSectionSize(sectionSize, blockSize); err != nil {
		return nil, err
	}

	sections := (len(data) + sectionSize - 1) / sectionSize
	if sections == 0 {
		sections = 1
	}
	tupleLen := util.KeySize + blockSize
	keystream, err := ACPKMMaster(cipherCtor, blockFn, blockSize, keySectionSize, tupleLen*sections)
	if err != nil {
		return nil, err
	}

	tupleKey := func(i int) []byte { return keystream[i*tupleLen : i*tupleLen+util.KeySize] }
	tupleK1 := func(i int) []byte { return keystream[i*tupleLen+util.KeySize : (i+1)*tupleLen] }

	// Section 0 uses the caller's original key and K1 unchanged, exactly
	// like CTR-ACPKM; tuples are consumed starting from index 0 only at
	// the first and subsequent section boundaries.
	current := blockFn
	currentK1, _ := modes.CMACSubkeys(blockFn, blockSize)
	nextTuple := 0

	blocksPerSection := sectionSize / blockSize
	aligned := len(data) > 0 && len(data)%blockSize == 0
	tailStart := len(data)
	if aligned {
		tailStart -= blockSize
	} else {
		tailStart -= len(data) % blockSize
	}

	chain := make([]byte, blockSize)
	blocksProcessed := 0
	for off := 0; off < tailStart; off += blockSize {
		if blocksProcessed > 0 && blocksProcessed%blocksPerSection == 0 {
			current = cipherCtor(tupleKey(nextTuple))
			currentK1 = tupleK1(nextTuple)
			nextTuple++
		}
		util.XORInto(chain, data[off:off+blockSize])
		current(chain, chain)
		blocksProcessed++
	}

	var tail, finalKey []byte
	if aligned {
		// The last full block always opens a fresh section for keying
		// purposes, even if it does not land on a blocksPerSection
		// boundary; the sections count above already reserves a tuple
		// for it.
		current = cipherCtor(tupleKey(nextTuple))
		currentK1 = tupleK1(nextTuple)
		tail = util.Clone(data[tailStart:])
		finalKey = currentK1
	} else {
		tail = paddings.Pad2(data[tailStart:], blockSize)
		finalKey = modes.SubkeyDouble(currentK1, blockSize)
	}

	util.XORInto(tail, chain)
	util.XORInto(tail, finalKey)

	mac := make([]byte, blockSize)
	current(mac, tail)
	return mac, nil
}
