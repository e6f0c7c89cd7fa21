// Package keccakp implements the reduced-round Keccak-p permutations at all four Cyclist widths: 200, 400, 800, and
// 1600 bits.
//
// Keccak-p[b, nr] is the last nr rounds of Keccak-f[b]. The round constants are the standard Keccak schedule truncated
// to the lane width.
package keccakp

import "encoding/binary"

// Maximum round counts (12 + 2*log2(laneBits)) per width.
const (
	MaxRounds200  = 18
	MaxRounds400  = 20
	MaxRounds800  = 22
	MaxRounds1600 = 24
)

// rc is the Keccak-f[1600] round constant schedule. Smaller lane widths use the same constants truncated to the lane.
var rc = [24]uint64{
	0x0000000000000001, 0x0000000000008082,
	0x800000000000808a, 0x8000000080008000,
	0x000000000000808b, 0x0000000080000001,
	0x8000000080008081, 0x8000000000008009,
	0x000000000000008a, 0x0000000000000088,
	0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b,
	0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080,
	0x000000000000800a, 0x800000008000000a,
	0x8000000080008081, 0x8000000000008080,
	0x0000000080000001, 0x8000000080008008,
}

// rotc and piLane drive the combined rho and pi steps, visiting the 24 non-origin lanes in pi order.
var rotc = [24]uint{
	1, 3, 6, 10, 15, 21, 28, 36,
	45, 55, 2, 14, 27, 41, 56, 8,
	25, 43, 62, 18, 39, 61, 20, 44,
}

var piLane = [24]int{
	10, 7, 11, 17, 18, 3, 5, 16,
	8, 21, 24, 4, 15, 23, 19, 13,
	12, 2, 20, 14, 22, 9, 6, 1,
}

type lane interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

func rotl[L lane](x L, n, laneBits uint) L {
	n %= laneBits
	return x<<n | x>>(laneBits-n)
}

// permute applies rounds rounds of Keccak-p to the 25-lane state. Lane (x, y) is a[5*y+x], least-significant byte
// first.
func permute[L lane](a *[25]L, laneBits uint, rounds, maxRounds int) {
	if rounds < 1 || rounds > maxRounds {
		panic("keccakp: round count out of range")
	}

	for ir := maxRounds - rounds; ir < maxRounds; ir++ {
		// Theta.
		var c [5]L
		for x := range 5 {
			c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
		}
		for x := range 5 {
			d := c[(x+4)%5] ^ rotl(c[(x+1)%5], 1, laneBits)
			a[x] ^= d
			a[x+5] ^= d
			a[x+10] ^= d
			a[x+15] ^= d
			a[x+20] ^= d
		}

		// Rho and pi.
		t := a[1]
		for i := range 24 {
			j := piLane[i]
			t, a[j] = a[j], rotl(t, rotc[i], laneBits)
		}

		// Chi.
		for y := 0; y < 25; y += 5 {
			c0, c1, c2, c3, c4 := a[y], a[y+1], a[y+2], a[y+3], a[y+4]
			a[y] = c0 ^ (^c1 & c2)
			a[y+1] = c1 ^ (^c2 & c3)
			a[y+2] = c2 ^ (^c3 & c4)
			a[y+3] = c3 ^ (^c4 & c0)
			a[y+4] = c4 ^ (^c0 & c1)
		}

		// Iota.
		a[0] ^= L(rc[ir])
	}
}

// P200 applies Keccak-p[200, rounds] to the state.
func P200(state *[25]byte, rounds int) {
	var a [25]uint8
	copy(a[:], state[:])
	permute(&a, 8, rounds, MaxRounds200)
	copy(state[:], a[:])
}

// P400 applies Keccak-p[400, rounds] to the state.
func P400(state *[50]byte, rounds int) {
	var a [25]uint16
	for i := range a {
		a[i] = binary.LittleEndian.Uint16(state[2*i:])
	}
	permute(&a, 16, rounds, MaxRounds400)
	for i, v := range a {
		binary.LittleEndian.PutUint16(state[2*i:], v)
	}
}

// P800 applies Keccak-p[800, rounds] to the state.
func P800(state *[100]byte, rounds int) {
	var a [25]uint32
	for i := range a {
		a[i] = binary.LittleEndian.Uint32(state[4*i:])
	}
	permute(&a, 32, rounds, MaxRounds800)
	for i, v := range a {
		binary.LittleEndian.PutUint32(state[4*i:], v)
	}
}

// P1600 applies Keccak-p[1600, rounds] to the state.
func P1600(state *[200]byte, rounds int) {
	var a [25]uint64
	for i := range a {
		a[i] = binary.LittleEndian.Uint64(state[8*i:])
	}
	permute(&a, 64, rounds, MaxRounds1600)
	for i, v := range a {
		binary.LittleEndian.PutUint64(state[8*i:], v)
	}
}
