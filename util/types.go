// Package util provides the byte-level primitives shared by the modes,
// paddings and ACPKM/MGM packages: big-endian integer conversion, XOR,
// concatenation, constant-time comparison and bit-serial shifting.
//
// This mirrors the role of Bouncy Castle's org.bouncycastle.util.Pack and
// org.bouncycastle.util.Arrays, generalised to the 8- or 16-octet blocks
// GOST R 34.13-2015 operates on rather than one fixed cipher's block size.
package util

// BlockFunc is the opaque block-encryption capability a caller supplies to
// every mode in this module: a pure, stateless mapping from a block-sized
// input to a block-sized output. dst and src must be the same length
// (the cipher's block size) and may alias.
type BlockFunc func(dst, src []byte)

// CipherConstructor builds a short-lived BlockFunc from a KeySize-octet key.
// ACPKM re-keying invokes it synchronously during a mode call; the returned
// BlockFunc's lifetime is bounded by that call. Implementations must not
// retain a reference to key past their own return.
type CipherConstructor func(key []byte) BlockFunc

// KeySize is the fixed key length, in octets, the ACPKM family derives
// and re-keys with.
const KeySize = 32
