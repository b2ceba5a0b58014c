package gost3413

import (
	"github.com/gogost/gost3413/paddings"
	"github.com/gogost/gost3413/util"
)

// MGM is an immutable instance of the Multilinear Galois Mode authenticated
// encryption construction over a single block function. It holds no
// per-call state; Seal and Open may be invoked repeatedly (with distinct
// nonces) from the same instance.
//
// Reference: GOST R 34.13-2015 recommendations on MGM;
// org.bouncycastle.crypto.modes.GCMBlockCipher for the overall shape of a
// counter-driven AEAD with a field-multiplier authenticator.
type MGM struct {
	blockFn   util.BlockFunc
	blockSize int
	tagSize   int
	r         byte
	maxSize   uint64
}

// NewMGM constructs an MGM instance. blockSize must be 8 or 16; tagSize
// must be in [4, blockSize].
func NewMGM(blockFn util.BlockFunc, blockSize, tagSize int) (*MGM, error) {
	if blockSize != 8 && blockSize != 16 {
		return nil, ErrInvalidBlockSize
	}
	if tagSize < 4 || tagSize > blockSize {
		return nil, ErrInvalidTagSize
	}
	r := byte(0x1B)
	if blockSize == 16 {
		r = 0x87
	}
	return &MGM{
		blockFn:   blockFn,
		blockSize: blockSize,
		tagSize:   tagSize,
		r:         r,
		maxSize:   (uint64(1) << uint(blockSize*4)) - 1,
	}, nil
}

// BlockSize returns the instance's configured block size.
func (m *MGM) BlockSize() int { return m.blockSize }

// TagSize returns the instance's configured tag size.
func (m *MGM) TagSize() int { return m.tagSize }

// PrepareNonce clears the high bit of nonce's first octet, returning a
// fresh slice. Seal and Open do not themselves validate this bit (see the
// package's design notes on the disabled reference validator); callers
// that want a canonical nonce should run it through PrepareNonce first.
func PrepareNonce(nonce []byte) []byte {
	out := util.Clone(nonce)
	if len(out) > 0 {
		out[0] &^= 0x80
	}
	return out
}

// Seal encrypts plaintext and authenticates it together with associated
// data ad under nonce, returning ciphertext‖tag. At least one of plaintext
// and ad must be non-empty; their combined length must not exceed the
// instance's maximum payload size.
func (m *MGM) Seal(nonce, plaintext, ad []byte) ([]byte, error) {
	if len(nonce) != m.blockSize {
		return nil, ErrInvalidNonceLength
	}
	if err := m.checkSize(len(plaintext), len(ad)); err != nil {
		return nil, err
	}

	ciphertext := m.crypt(nonce, plaintext)
	tag := m.auth(nonce, ciphertext, ad)
	return util.Concat(ciphertext, tag), nil
}

// Open splits data into a ciphertext body and a trailing tag_size-octet
// tag, recomputes the tag from the body and ad, and compares it against
// the received tag in constant time. On mismatch it returns
// ErrAuthenticationFailed and no plaintext. On match it returns the
// decrypted body.
func (m *MGM) Open(nonce, data, ad []byte) ([]byte, error) {
	if len(nonce) != m.blockSize {
		return nil, ErrInvalidNonceLength
	}
	if len(data) < m.tagSize {
		return nil, ErrCiphertextTooShort
	}
	body := data[:len(data)-m.tagSize]
	receivedTag := data[len(data)-m.tagSize:]

	if err := m.checkSize(len(body), len(ad)); err != nil {
		return nil, err
	}

	expectedTag := m.auth(nonce, body, ad)
	if !util.ConstantTimeEqual(expectedTag, receivedTag) {
		return nil, ErrAuthenticationFailed
	}
	return m.crypt(nonce, body), nil
}

func (m *MGM) checkSize(plaintextLen, adLen int) error {
	if plaintextLen == 0 && adLen == 0 {
		return ErrSizePrecondition
	}
	if uint64(plaintextLen)+uint64(adLen) > m.maxSize {
		return ErrSizePrecondition
	}
	return nil
}

// crypt runs the MGM encryption counter over data, XORing the keystream
// against it. It is self-inverse and used for both Seal's encryption and
// Open's decryption. The nonce-derived initial register is encrypted once
// to seed E0; the register fed to the cipher for each subsequent
// keystream block is the *previous block's already-encrypted* register
// (incremented), never a re-encryption of the raw nonce-derived seed —
// this shape is load-bearing and must not be simplified away.
func (m *MGM) crypt(nonce, data []byte) []byte {
	half := m.blockSize / 2

	eInitial := util.Clone(nonce)
	eInitial[0] &^= 0x80
	register := make([]byte, m.blockSize)
	m.blockFn(register, eInitial)

	out := make([]byte, len(data))
	keystream := make([]byte, m.blockSize)
	for off := 0; off < len(data); off += m.blockSize {
		m.blockFn(keystream, register)
		n := chunkLen(m.blockSize, off, len(data))
		copy(out[off:off+n], util.XOR(keystream, data[off:off+n]))
		util.IncrementBE(register[half:])
	}
	return out
}

// auth computes the MGM authentication tag over ciphertext and ad under
// nonce, via the running GF(2^n)-multiplied sum described in the
// construction's authentication step.
func (m *MGM) auth(nonce, ciphertext, ad []byte) []byte {
	half := m.blockSize / 2

	aInitial := util.Clone(nonce)
	aInitial[0] |= 0x80
	register := make([]byte, m.blockSize)
	m.blockFn(register, aInitial)

	sum := make([]byte, m.blockSize)
	ks := make([]byte, m.blockSize)

	fold := func(data []byte) {
		for off := 0; off < len(data); off += m.blockSize {
			end := off + m.blockSize
			var block []byte
			if end > len(data) {
				block = paddings.Pad1(data[off:], m.blockSize)
			} else {
				block = data[off:end]
			}
			m.blockFn(ks, register)
			util.XORInto(sum, GFMul(ks, block, m.blockSize, m.r))
			util.IncrementBE(register[:half])
		}
	}
	fold(ad)
	fold(ciphertext)

	lenBlock := util.Concat(
		util.ToBE(uint64(len(ad))*8, half),
		util.ToBE(uint64(len(ciphertext))*8, half),
	)
	m.blockFn(ks, register)
	util.XORInto(sum, GFMul(ks, lenBlock, m.blockSize, m.r))

	tag := make([]byte, m.blockSize)
	m.blockFn(tag, sum)
	return tag[:m.tagSize]
}

func chunkLen(blockSize, off, total int) int {
	if off+blockSize > total {
		return total - off
	}
	return blockSize
}
