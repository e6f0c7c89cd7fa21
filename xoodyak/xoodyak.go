// Package xoodyak provides the Xoodyak instantiation of Cyclist over the Xoodoo[12] permutation.
package xoodyak

import (
	"crypto/cipher"
	"hash"

	"github.com/codahale/cyclist"
	"github.com/codahale/cyclist/hazmat/xoodoo"
	"github.com/codahale/cyclist/schemes/aead"
	"github.com/codahale/cyclist/schemes/digest"
)

const (
	// HashSize is the size, in bytes, of a Xoodyak digest.
	HashSize = 32

	// KeySize is the recommended key size, in bytes, for keyed Xoodyak.
	KeySize = 16

	// NonceSize is the AEAD nonce size in bytes.
	NonceSize = 16

	// TagSize is the AEAD tag size in bytes.
	TagSize = aead.TagSize
)

// Xoodoo is the Cyclist descriptor for Xoodoo[12] with the Xoodyak rates: a 16-byte rate in hash mode, a 44-byte
// absorb and 24-byte squeeze rate in keyed mode, and a 16-byte ratchet.
var Xoodoo = cyclist.Permutation{
	Name:  "Xoodoo[12]",
	Width: xoodoo.Width,
	Rates: cyclist.Rates{
		Absorb:       16,
		Squeeze:      16,
		KeyedAbsorb:  44,
		KeyedSqueeze: 24,
		Ratchet:      16,
	},
	Apply: func(state []byte) {
		xoodoo.Permute((*[xoodoo.Width]byte)(state))
	},
}

// NewHash returns a new Xoodyak hash.Hash producing [HashSize]-byte digests.
func NewHash() hash.Hash {
	return digest.New(Xoodoo, HashSize)
}

// Sum256 computes the Xoodyak digest of msg.
func Sum256(msg []byte) [HashSize]byte {
	var out [HashSize]byte
	copy(out[:], digest.Sum(Xoodoo, msg, HashSize))
	return out
}

// NewAEAD returns a new Xoodyak cipher.AEAD with [NonceSize]-byte nonces and [TagSize]-byte tags.
func NewAEAD(key []byte) (cipher.AEAD, error) {
	return aead.New(Xoodoo, key, NonceSize)
}
