package gost3413

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMGMRoundTrip(t *testing.T) {
	for _, bs := range []int{8, 16} {
		encrypt, _ := newToyCipher(0x9A)
		m, err := NewMGM(encrypt, bs, bs)
		require.NoError(t, err)

		nonce := make([]byte, bs)
		for i := range nonce {
			nonce[i] = byte(i + 1)
		}
		plaintext := []byte("gost3413 mgm round trip payload!!")
		ad := []byte("associated-data")

		sealed, err := m.Seal(nonce, plaintext, ad)
		require.NoError(t, err)
		require.Len(t, sealed, len(plaintext)+bs)

		opened, err := m.Open(nonce, sealed, ad)
		require.NoError(t, err)
		require.Equal(t, plaintext, opened)
	}
}

func TestMGMTagIntegrityCiphertextFlip(t *testing.T) {
	encrypt, _ := newToyCipher(0x41)
	m, err := NewMGM(encrypt, 16, 16)
	require.NoError(t, err)

	nonce := make([]byte, 16)
	sealed, err := m.Seal(nonce, []byte("the quick brown fox"), []byte("ad"))
	require.NoError(t, err)

	sealed[0] ^= 0x01
	_, err = m.Open(nonce, sealed, []byte("ad"))
	require.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestMGMTagIntegrityADFlip(t *testing.T) {
	encrypt, _ := newToyCipher(0x42)
	m, err := NewMGM(encrypt, 16, 16)
	require.NoError(t, err)

	nonce := make([]byte, 16)
	ad := []byte("authenticated but not encrypted")
	sealed, err := m.Seal(nonce, []byte("payload"), ad)
	require.NoError(t, err)

	badAD := append([]byte(nil), ad...)
	badAD[0] ^= 0x01
	_, err = m.Open(nonce, sealed, badAD)
	require.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestMGMTagIntegrityTagFlip(t *testing.T) {
	encrypt, _ := newToyCipher(0x43)
	m, err := NewMGM(encrypt, 16, 16)
	require.NoError(t, err)

	nonce := make([]byte, 16)
	sealed, err := m.Seal(nonce, []byte("payload"), []byte("ad"))
	require.NoError(t, err)

	sealed[len(sealed)-1] ^= 0x01
	_, err = m.Open(nonce, sealed, []byte("ad"))
	require.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestMGMADOnly(t *testing.T) {
	encrypt, _ := newToyCipher(0x44)
	m, err := NewMGM(encrypt, 16, 16)
	require.NoError(t, err)

	nonce := make([]byte, 16)
	ad := []byte("associated data only, no plaintext")

	sealed, err := m.Seal(nonce, nil, ad)
	require.NoError(t, err)
	require.Len(t, sealed, m.TagSize())

	opened, err := m.Open(nonce, sealed, ad)
	require.NoError(t, err)
	require.Empty(t, opened)

	sealed[0] ^= 0x01
	_, err = m.Open(nonce, sealed, ad)
	require.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestMGMTagTruncation(t *testing.T) {
	encrypt, _ := newToyCipher(0x45)
	full, err := NewMGM(encrypt, 16, 16)
	require.NoError(t, err)
	truncated, err := NewMGM(encrypt, 16, 4)
	require.NoError(t, err)

	nonce := make([]byte, 16)
	plaintext := []byte("some plaintext of meaningful length")
	ad := []byte("ad")

	sealedFull, err := full.Seal(nonce, plaintext, ad)
	require.NoError(t, err)
	sealedTruncated, err := truncated.Seal(nonce, plaintext, ad)
	require.NoError(t, err)

	fullTag := sealedFull[len(sealedFull)-16:]
	truncatedTag := sealedTruncated[len(sealedTruncated)-4:]
	require.Equal(t, fullTag[:4], truncatedTag)
}

func TestMGMRejectsBothEmpty(t *testing.T) {
	encrypt, _ := newToyCipher(1)
	m, err := NewMGM(encrypt, 16, 16)
	require.NoError(t, err)
	_, err = m.Seal(make([]byte, 16), nil, nil)
	require.ErrorIs(t, err, ErrSizePrecondition)
}

func TestMGMRejectsBadNonceLength(t *testing.T) {
	encrypt, _ := newToyCipher(1)
	m, err := NewMGM(encrypt, 16, 16)
	require.NoError(t, err)
	_, err = m.Seal(make([]byte, 8), []byte("x"), nil)
	require.ErrorIs(t, err, ErrInvalidNonceLength)
}

func TestMGMRejectsBadConstructionParams(t *testing.T) {
	encrypt, _ := newToyCipher(1)
	_, err := NewMGM(encrypt, 12, 12)
	require.ErrorIs(t, err, ErrInvalidBlockSize)

	_, err = NewMGM(encrypt, 16, 3)
	require.ErrorIs(t, err, ErrInvalidTagSize)

	_, err = NewMGM(encrypt, 16, 17)
	require.ErrorIs(t, err, ErrInvalidTagSize)
}

func TestPrepareNonceClearsHighBit(t *testing.T) {
	nonce := []byte{0xFF, 0x00, 0x00}
	prepared := PrepareNonce(nonce)
	require.Equal(t, byte(0x7F), prepared[0])
	// The original buffer is untouched.
	require.Equal(t, byte(0xFF), nonce[0])
}

func TestMGMOpenRejectsShortCiphertext(t *testing.T) {
	encrypt, _ := newToyCipher(1)
	m, err := NewMGM(encrypt, 16, 16)
	require.NoError(t, err)
	_, err = m.Open(make([]byte, 16), make([]byte, 4), []byte("ad"))
	require.ErrorIs(t, err, ErrCiphertextTooShort)
}
