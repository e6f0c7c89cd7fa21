// Package aead provides an implementation of Authenticated Encryption with Associated Data (AEAD) over a keyed
// Cyclist instance.
package aead

import (
	"crypto/cipher"
	"crypto/subtle"
	"errors"

	"github.com/codahale/cyclist"
)

// TagSize is the tag size appended by Seal.
const TagSize = 16

// ErrInvalidCiphertext is returned by Open when tag verification fails. The plaintext buffer is zeroised before
// return.
var ErrInvalidCiphertext = errors.New("cyclist/aead: authentication failed")

// New returns a new cipher.AEAD over the given permutation and key.
//
// Panics if nonceSize is less than 16 bytes. A minimum of 16 bytes is required to ensure sufficient uniqueness for the
// nonce values. Returns cyclist.ErrInvalidKey if the key does not fit in a single keyed absorb block.
func New(p cyclist.Permutation, key []byte, nonceSize int) (cipher.AEAD, error) {
	if nonceSize < 16 {
		panic("cyclist/aead: nonce size must be at least 16 bytes")
	}
	base, err := cyclist.NewKeyed(p, key, nil, nil)
	if err != nil {
		return nil, err
	}
	return &aead{
		base:      base,
		nonceSize: nonceSize,
	}, nil
}

type aead struct {
	base      *cyclist.State
	nonceSize int
}

func (a *aead) NonceSize() int {
	return a.nonceSize
}

func (a *aead) Overhead() int {
	return TagSize
}

// Seal encrypts and authenticates plaintext, authenticates the additional data and appends the result to dst,
// returning the updated slice.
//
// Panics if len(nonce) != a.NonceSize(). The cipher.AEAD interface requires exact nonce sizes to prevent misuse that
// could compromise security. Reusing a nonce with the same key is catastrophic and is not detected.
func (a *aead) Seal(dst, nonce, plaintext, additionalData []byte) []byte {
	if len(nonce) != a.nonceSize {
		panic("cyclist/aead: invalid nonce size")
	}

	s := a.base.Clone()
	s.Absorb(nonce)
	s.Absorb(additionalData)
	dst = s.Encrypt(dst, plaintext)
	dst = s.Squeeze(dst, TagSize)
	s.Clear()
	return dst
}

// Open decrypts and authenticates ciphertext, authenticates the additional data and, if successful, appends the
// resulting plaintext to dst, returning the updated slice.
//
// Panics if len(nonce) != a.NonceSize(). The cipher.AEAD interface requires exact nonce sizes to prevent misuse that
// could compromise security.
func (a *aead) Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error) {
	if len(nonce) != a.nonceSize {
		panic("cyclist/aead: invalid nonce size")
	}
	if len(ciphertext) < TagSize {
		return nil, ErrInvalidCiphertext
	}

	ct := ciphertext[:len(ciphertext)-TagSize]
	tag := ciphertext[len(ciphertext)-TagSize:]

	s := a.base.Clone()
	defer s.Clear()

	s.Absorb(nonce)
	s.Absorb(additionalData)

	off := len(dst)
	ret := s.Decrypt(dst, ct)

	var expected [TagSize]byte
	s.Squeeze(expected[:0], TagSize)

	if subtle.ConstantTimeCompare(expected[:], tag) != 1 {
		clear(ret[off:])
		return nil, ErrInvalidCiphertext
	}

	return ret, nil
}

var _ cipher.AEAD = (*aead)(nil)
