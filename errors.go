package gost3413

import "errors"

var (
	// ErrInvalidBlockSize is returned when constructing an MGM instance
	// with a block size other than 8 or 16.
	ErrInvalidBlockSize = errors.New("gost3413: block size must be 8 or 16")
	// ErrInvalidTagSize is returned when constructing an MGM instance with
	// a tag size outside [4, block_size].
	ErrInvalidTagSize = errors.New("gost3413: tag size must be between 4 and the block size")
	// ErrSizePrecondition is returned by Seal/Open when plaintext and
	// associated data are both empty, or their combined length exceeds
	// the instance's maximum payload size.
	ErrSizePrecondition = errors.New("gost3413: plaintext and associated data are both empty, or exceed the maximum combined size")
	// ErrAuthenticationFailed is returned by Open when the recomputed tag
	// does not match the received tag. No plaintext is returned.
	ErrAuthenticationFailed = errors.New("gost3413: authentication failed")
	// ErrInvalidSectionSize is returned by the ACPKM family when a section
	// size is not a positive multiple of the block size.
	ErrInvalidSectionSize = errors.New("gost3413: section size must be a positive multiple of the block size")
	// ErrCiphertextTooShort is returned by Open when the input is shorter
	// than the instance's tag size.
	ErrCiphertextTooShort = errors.New("gost3413: ciphertext shorter than the tag size")
	// ErrInvalidNonceLength is returned by Seal/Open when the nonce is not
	// exactly one block long.
	ErrInvalidNonceLength = errors.New("gost3413: nonce must be exactly one block long")
	// ErrInvalidIVLength is returned by the ACPKM family when an IV is not
	// exactly half a block long.
	ErrInvalidIVLength = errors.New("gost3413: IV must be exactly half a block long")
)
