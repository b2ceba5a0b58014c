// Package gost3413 implements the Multilinear Galois Mode (MGM)
// authenticated-encryption construction and the ACPKM (Advanced
// Cryptographic Prolongation of Key Material) re-keying family on top of
// the classical modes in the modes and paddings subpackages.
//
// The library is cipher-agnostic: every function takes a caller-supplied
// util.BlockFunc (and, for ACPKM, a util.CipherConstructor) and contains no
// block-cipher implementation of its own. Block size is always 8 or 16
// octets.
//
// Reference: GOST R 34.13-2015 recommendations on MGM and ACPKM re-keying;
// org.bouncycastle.crypto.modes.GCMBlockCipher for the shape of an AEAD
// construction layered over a field multiplier.
package gost3413
