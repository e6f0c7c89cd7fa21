// Package digest provides an implementation of a message digest (hash) over an unkeyed Cyclist instance.
package digest

import (
	"hash"

	"github.com/codahale/cyclist"
)

// New returns a new hash.Hash of the given size over the given permutation.
//
// Write accumulates the message; Sum absorbs the accumulated message into a fresh hash-mode instance and squeezes the
// digest, so interleaved Write and Sum calls behave per the hash.Hash contract.
func New(p cyclist.Permutation, size int) hash.Hash {
	return &digest{perm: p, size: size}
}

// Sum computes an n-byte digest of msg over the given permutation. Sum is the XOF form: any n is valid.
func Sum(p cyclist.Permutation, msg []byte, n int) []byte {
	s := cyclist.NewHash(p)
	s.Absorb(msg)
	return s.Squeeze(nil, n)
}

type digest struct {
	perm cyclist.Permutation
	size int
	buf  []byte
}

func (d *digest) Write(p []byte) (n int, err error) {
	d.buf = append(d.buf, p...)
	return len(p), nil
}

func (d *digest) Sum(b []byte) []byte {
	s := cyclist.NewHash(d.perm)
	s.Absorb(d.buf)
	return s.Squeeze(b, d.size)
}

func (d *digest) Reset() {
	d.buf = d.buf[:0]
}

func (d *digest) Size() int {
	return d.size
}

func (d *digest) BlockSize() int {
	return d.perm.Rates.Absorb
}

var _ hash.Hash = (*digest)(nil)
