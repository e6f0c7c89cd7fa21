// Package keccyak provides Cyclist instantiations over the reduced-round Keccak-p permutations.
//
// Four named variants cover the four Keccak-p widths: M14 (200 bits), S14 (400 bits), H14 (800 bits), and K12 (1600
// bits, the KangarooTwelve permutation). All variants share the Xoodyak structural contract and treat AEAD nonces as
// absorbed input.
package keccyak

import (
	"crypto/cipher"
	"hash"

	"github.com/codahale/cyclist"
	"github.com/codahale/cyclist/hazmat/keccakp"
	"github.com/codahale/cyclist/schemes/aead"
	"github.com/codahale/cyclist/schemes/digest"
)

const (
	// HashSize is the size, in bytes, of a Keccyak digest.
	HashSize = 32

	// NonceSize is the AEAD nonce size in bytes.
	NonceSize = 16
)

// M14 is the mini variant over Keccak-p[200, 14].
var M14 = cyclist.Permutation{
	Name:  "Keccak-p[200,14]",
	Width: 25,
	Rates: cyclist.Rates{
		Absorb:       16,
		Squeeze:      16,
		KeyedAbsorb:  24,
		KeyedSqueeze: 24,
		Ratchet:      16,
	},
	Apply: func(state []byte) {
		keccakp.P200((*[25]byte)(state), 14)
	},
}

// S14 is the small variant over Keccak-p[400, 14].
var S14 = cyclist.Permutation{
	Name:  "Keccak-p[400,14]",
	Width: 50,
	Rates: cyclist.Rates{
		Absorb:       32,
		Squeeze:      32,
		KeyedAbsorb:  48,
		KeyedSqueeze: 48,
		Ratchet:      32,
	},
	Apply: func(state []byte) {
		keccakp.P400((*[50]byte)(state), 14)
	},
}

// H14 is the half-width variant over Keccak-p[800, 14].
var H14 = cyclist.Permutation{
	Name:  "Keccak-p[800,14]",
	Width: 100,
	Rates: cyclist.Rates{
		Absorb:       68,
		Squeeze:      68,
		KeyedAbsorb:  96,
		KeyedSqueeze: 96,
		Ratchet:      64,
	},
	Apply: func(state []byte) {
		keccakp.P800((*[100]byte)(state), 14)
	},
}

// K12 is the full-width variant over Keccak-p[1600, 12].
var K12 = cyclist.Permutation{
	Name:  "Keccak-p[1600,12]",
	Width: 200,
	Rates: cyclist.Rates{
		Absorb:       168,
		Squeeze:      168,
		KeyedAbsorb:  168,
		KeyedSqueeze: 168,
		Ratchet:      128,
	},
	Apply: func(state []byte) {
		keccakp.P1600((*[200]byte)(state), 12)
	},
}

// Variants lists the named Keccyak variants.
var Variants = []cyclist.Permutation{M14, S14, H14, K12}

// NewHash returns a new hash.Hash over the given variant, producing [HashSize]-byte digests.
func NewHash(v cyclist.Permutation) hash.Hash {
	return digest.New(v, HashSize)
}

// NewAEAD returns a new cipher.AEAD over the given variant with [NonceSize]-byte nonces.
func NewAEAD(v cyclist.Permutation, key []byte) (cipher.AEAD, error) {
	return aead.New(v, key, NonceSize)
}
