package modes

import (
	"github.com/gogost/gost3413/paddings"
	"github.com/gogost/gost3413/util"
)

// rb returns the CMAC/OMAC1 subkey reduction constant for blockSize: 0x87
// for 128-bit blocks, 0x1B for 64-bit blocks.
func rb(blockSize int) byte {
	if blockSize == 16 {
		return 0x87
	}
	return 0x1B
}

// CMACSubkeys derives the pair of CMAC/OMAC1 subkeys (K1, K2) from the
// block function: L = Enc(0); K1 = L<<1, XORed with Rb if L's top bit was
// set; K2 is derived from K1 by the same rule.
func CMACSubkeys(encryptFn util.BlockFunc, blockSize int) (k1, k2 []byte) {
	l := make([]byte, blockSize)
	encryptFn(l, make([]byte, blockSize))
	k1 = SubkeyDouble(l, blockSize)
	k2 = SubkeyDouble(k1, blockSize)
	return k1, k2
}

// SubkeyDouble applies the CMAC/OMAC1 subkey doubling rule to in: left-shift
// by one bit, XORing in the Rb reduction constant when the shifted-out bit
// was set. Exported so the ACPKM family can derive a section's K2 from its
// rotated K1 without re-deriving it from an encrypted zero block.
func SubkeyDouble(in []byte, blockSize int) []byte {
	return shiftAndReduce(in, rb(blockSize))
}

func shiftAndReduce(in []byte, reduceWith byte) []byte {
	out := util.Clone(in)
	msbSet := out[0]&0x80 != 0
	util.ShiftLeft1(out)
	if msbSet {
		out[len(out)-1] ^= reduceWith
	}
	return out
}

// CMAC computes OMAC1/CMAC over data, returning a full block-size MAC;
// callers truncate as needed. All but the final block are processed via
// CBC-style chained encryption. The final, possibly partial, block is
// pad3-padded, XORed with the chain and with K1 (if data was already
// block-aligned and non-empty) or K2 (otherwise), then encrypted once
// more. An empty message is treated as unaligned, per the standard CMAC
// convention (NIST SP 800-38B): it still produces one pad2-padded block
// keyed with K2.
func CMAC(encryptFn util.BlockFunc, blockSize int, data []byte) ([]byte, error) {
	if err := checkBlockSize(blockSize); err != nil {
		return nil, err
	}

	k1, k2 := CMACSubkeys(encryptFn, blockSize)

	aligned := len(data) > 0 && len(data)%blockSize == 0
	tailStart := len(data)
	if aligned {
		tailStart -= blockSize
	} else {
		tailStart -= len(data) % blockSize
	}

	chain := make([]byte, blockSize)
	for off := 0; off < tailStart; off += blockSize {
		util.XORInto(chain, data[off:off+blockSize])
		encryptFn(chain, chain)
	}

	var tail []byte
	var key []byte
	if aligned {
		tail = util.Clone(data[tailStart:])
		key = k1
	} else {
		// paddings.Pad2 always adds at least one octet, including for a
		// zero-length tail — exactly the "empty message" CMAC case (NIST
		// SP 800-38B), which must be keyed with K2, not treated as the
		// zero-length-is-aligned case paddings.Pad3 would apply.
		tail = paddings.Pad2(data[tailStart:], blockSize)
		key = k2
	}

	util.XORInto(tail, chain)
	util.XORInto(tail, key)

	mac := make([]byte, blockSize)
	encryptFn(mac, tail)
	return mac, nil
}
