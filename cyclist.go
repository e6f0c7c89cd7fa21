// Package cyclist implements the Cyclist mode of permutation-based cryptography.
//
// Cyclist is a full-state duplex construction: a single evolving state absorbs typed, domain-separated inputs and
// produces pseudorandom output, keystream, and authentication tags. It operates over any fixed-width permutation
// described by a [Permutation] value, in one of two modes: hash mode (unkeyed, for digests and XOF output) and keyed
// mode (for encryption, key derivation, and ratcheting).
//
// The named instantiations live in the xoodyak and keccyak packages; ready-made hash.Hash and cipher.AEAD façades live
// under schemes.
package cyclist

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"runtime"

	"github.com/codahale/cyclist/internal/mem"
)

// ErrInvalidKey is returned by [NewKeyed] when the key and key identifier do not fit in a single keyed absorb block.
var ErrInvalidKey = errors.New("cyclist: key and ID too long for keyed absorb rate")

// Rates bundles the five byte rates of a Cyclist instantiation. Absorb and Squeeze apply in hash mode; KeyedAbsorb,
// KeyedSqueeze, and Ratchet apply in keyed mode.
type Rates struct {
	Absorb       int
	Squeeze      int
	KeyedAbsorb  int
	KeyedSqueeze int
	Ratchet      int
}

// Permutation describes a fixed-width byte-oriented permutation and the rates bound to it. Apply must mutate exactly
// Width bytes in place, deterministically, with no other side effects.
type Permutation struct {
	Name  string
	Width int
	Rates Rates
	Apply func(state []byte)
}

func (p *Permutation) validate() {
	if p.Width <= 0 || p.Apply == nil {
		panic("cyclist: malformed permutation descriptor")
	}
	for _, r := range [...]int{p.Rates.Absorb, p.Rates.Squeeze, p.Rates.KeyedAbsorb, p.Rates.KeyedSqueeze, p.Rates.Ratchet} {
		if r < 1 || r > p.Width-1 {
			panic("cyclist: rate out of range for permutation width")
		}
	}
}

type phase uint8

const (
	phaseUp phase = iota
	phaseDown
)

// State is a Cyclist duplex instance. Instances are not safe for concurrent use.
type State struct {
	perm        Permutation
	buf         []byte
	absorbRate  int
	squeezeRate int
	phase       phase
	keyed       bool
}

// NewHash returns a new hash-mode instance over the given permutation.
func NewHash(p Permutation) *State {
	p.validate()
	return &State{
		perm:        p,
		buf:         make([]byte, p.Width),
		absorbRate:  p.Rates.Absorb,
		squeezeRate: p.Rates.Squeeze,
		phase:       phaseUp,
	}
}

// NewKeyed returns a new keyed-mode instance over the given permutation, initialized with the given key, optional key
// identifier, and optional counter.
//
// The key and identifier are absorbed as a single block; NewKeyed returns [ErrInvalidKey] if
// len(key)+len(id)+1 exceeds the keyed absorb rate. A non-empty counter is absorbed byte-by-byte, which is useful for
// nonces with low entropy.
func NewKeyed(p Permutation, key, id, counter []byte) (*State, error) {
	p.validate()
	if len(id) > 255 || len(key)+len(id)+1 > p.Rates.KeyedAbsorb {
		return nil, ErrInvalidKey
	}

	s := &State{
		perm:        p,
		buf:         make([]byte, p.Width),
		absorbRate:  p.Rates.KeyedAbsorb,
		squeezeRate: p.Rates.KeyedSqueeze,
		phase:       phaseUp,
		keyed:       true,
	}

	kb := make([]byte, 0, len(key)+len(id)+1)
	kb = append(kb, key...)
	kb = append(kb, id...)
	kb = append(kb, byte(len(id)))
	s.absorbAny(kb, s.absorbRate, cdKey)
	clear(kb[:cap(kb)])

	if len(counter) > 0 {
		s.absorbAny(counter, 1, 0x00)
	}

	return s, nil
}

// Equal compares the two instances in constant time, returning 1 if they are equal, 0 if not.
func (s *State) Equal(other *State) int {
	if len(s.buf) != len(other.buf) ||
		s.keyed != other.keyed ||
		s.phase != other.phase ||
		s.absorbRate != other.absorbRate ||
		s.squeezeRate != other.squeezeRate {
		return 0
	}
	return subtle.ConstantTimeCompare(s.buf, other.buf)
}

func (s *State) String() string {
	if s.keyed {
		return fmt.Sprintf("Cyclist(%s, keyed)", s.perm.Name)
	}
	return fmt.Sprintf("Cyclist(%s, hash)", s.perm.Name)
}

// Absorb mixes x into the state. Each Absorb call is a distinct domain-separated input: two consecutive calls are not
// equivalent to one call with the concatenation.
func (s *State) Absorb(x []byte) {
	s.absorbAny(x, s.absorbRate, cdAbsorb)
}

// Squeeze appends n bytes of pseudorandom output to dst and returns the extended slice. Each Squeeze call is a
// distinct extraction, not a continuation of the previous one.
func (s *State) Squeeze(dst []byte, n int) []byte {
	ret, out := mem.SliceForAppend(dst, n)
	s.squeezeAny(out, cuSqueeze)
	return ret
}

// SqueezeKey appends n bytes of derived key material to dst and returns the extended slice. The output is
// domain-separated from [State.Squeeze] output.
func (s *State) SqueezeKey(dst []byte, n int) []byte {
	ret, out := mem.SliceForAppend(dst, n)
	s.squeezeAny(out, cuSqueezeKey)
	return ret
}

// Encrypt appends the ciphertext of plaintext to dst and returns the extended slice. The ciphertext is the same length
// as the plaintext and is unauthenticated; squeeze a tag afterward to authenticate the exchange.
//
// Panics in hash mode.
func (s *State) Encrypt(dst, plaintext []byte) []byte {
	if !s.keyed {
		panic("cyclist: Encrypt requires a keyed state")
	}
	return s.crypt(dst, plaintext, false)
}

// Decrypt appends the plaintext of ciphertext to dst and returns the extended slice. Decrypt performs no
// authentication; squeeze a tag afterward and compare it in constant time.
//
// Panics in hash mode.
func (s *State) Decrypt(dst, ciphertext []byte) []byte {
	if !s.keyed {
		panic("cyclist: Decrypt requires a keyed state")
	}
	return s.crypt(dst, ciphertext, true)
}

// Ratchet irreversibly advances the state for forward secrecy: the pre-ratchet keystream cannot be rederived from the
// post-ratchet state. No output is produced.
//
// Panics in hash mode.
func (s *State) Ratchet() {
	if !s.keyed {
		panic("cyclist: Ratchet requires a keyed state")
	}

	var stack [128]byte
	var scratch []byte
	if n := s.perm.Rates.Ratchet; n <= len(stack) {
		scratch = stack[:n]
	} else {
		scratch = make([]byte, n)
	}

	s.squeezeAny(scratch, cuRatchet)
	s.absorbAny(scratch, s.perm.Rates.KeyedAbsorb, 0x00)
	clear(scratch)
}

// Clone returns an independent copy of the instance. The original and clone evolve independently.
func (s *State) Clone() *State {
	c := *s
	c.buf = append([]byte(nil), s.buf...)
	return &c
}

// Clear overwrites the state with zeros and invalidates the instance. After Clear, the instance must not be used.
func (s *State) Clear() {
	clear(s.buf)
	runtime.KeepAlive(s.buf)
	s.absorbRate, s.squeezeRate = 0, 0
	s.phase = phaseUp
	s.keyed = false
	s.perm = Permutation{}
}

// down transitions to the Down phase: XOR x into the head of the state, append the pad byte, and place the frame byte
// at the final byte. Hash mode masks the frame byte to its low bit.
func (s *State) down(x []byte, cd byte) {
	s.phase = phaseDown
	mem.XORInPlace(s.buf[:len(x)], x)
	s.buf[len(x)] ^= padByte
	if s.keyed {
		s.buf[len(s.buf)-1] ^= cd
	} else {
		s.buf[len(s.buf)-1] ^= cd & 0x01
	}
}

// up transitions to the Up phase: place the frame byte (keyed mode only), apply the permutation, and copy the head of
// the state to out.
func (s *State) up(out []byte, cu byte) {
	s.phase = phaseUp
	if s.keyed {
		s.buf[len(s.buf)-1] ^= cu
	}
	s.perm.Apply(s.buf)
	copy(out, s.buf)
}

// absorbAny mixes x into the state in blocks of at most r bytes, tagging the first block with cd. Empty input still
// absorbs one empty block. An Up call is interposed whenever the phase is Down, which makes every absorbAny call a
// distinct input regardless of blocking.
func (s *State) absorbAny(x []byte, r int, cd byte) {
	for first := true; first || len(x) > 0; first = false {
		if s.phase != phaseUp {
			s.up(nil, 0x00)
		}
		n := min(r, len(x))
		s.down(x[:n], cd)
		cd = 0x00
		x = x[n:]
	}
}

// squeezeAny fills out with pseudorandom output in blocks of at most the squeeze rate, tagging the first block with
// cu. A zero-length out still advances the state by one permutation call.
func (s *State) squeezeAny(out []byte, cu byte) {
	n := min(s.squeezeRate, len(out))
	s.up(out[:n], cu)
	out = out[n:]

	for len(out) > 0 {
		s.down(nil, 0x00)
		n = min(s.squeezeRate, len(out))
		s.up(out[:n], 0x00)
		out = out[n:]
	}
}

// crypt XORs in against successive keystream blocks and absorbs the plaintext back into the state, so that encrypting
// and decrypting peers stay synchronized. Empty input still processes one empty block.
func (s *State) crypt(dst, in []byte, decrypt bool) []byte {
	ret, out := mem.SliceForAppend(dst, len(in))
	r := s.perm.Rates.KeyedSqueeze

	cu := byte(cuCrypt)
	for first := true; first || len(in) > 0; first = false {
		s.up(nil, cu)
		cu = 0x00

		n := min(r, len(in))
		if decrypt {
			mem.XORAndReplace(out[:n], in[:n], s.buf[:n])
		} else {
			mem.XORAndCopy(out[:n], in[:n], s.buf[:n])
		}

		// The fused XOR above already absorbed the plaintext; finish the Down transition by hand.
		s.phase = phaseDown
		s.buf[n] ^= padByte

		in, out = in[n:], out[n:]
	}

	return ret
}

const (
	// padByte delimits every absorbed block.
	padByte = 0x01

	// Down frame bytes.
	cdKey    = 0x02
	cdAbsorb = 0x03

	// Up frame bytes.
	cuRatchet    = 0x10
	cuSqueezeKey = 0x20
	cuSqueeze    = 0x40
	cuCrypt      = 0x80
)
