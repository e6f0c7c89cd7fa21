// Package xoodoo implements the Xoodoo[12] permutation on a 48-byte state.
package xoodoo

import (
	"encoding/binary"
	"math/bits"
)

// Width is the Xoodoo state size in bytes.
const Width = 48

// rc is the Xoodoo[12] round constant schedule, applied to lane (0, 0).
var rc = [12]uint32{
	0x00000058, 0x00000038, 0x000003c0, 0x000000d0,
	0x00000120, 0x00000014, 0x00000060, 0x0000002c,
	0x00000380, 0x000000f0, 0x000001a0, 0x00000012,
}

// Permute applies the Xoodoo[12] permutation to the state.
func Permute(state *[Width]byte) {
	var a [12]uint32
	for i := range a {
		a[i] = binary.LittleEndian.Uint32(state[4*i:])
	}

	permute(&a)

	for i, v := range a {
		binary.LittleEndian.PutUint32(state[4*i:], v)
	}
}

// permute runs all twelve rounds over the three 4-lane planes. Lane (x, y) is a[4*y+x].
func permute(a *[12]uint32) {
	for _, c := range rc {
		// Theta: fold the column parities back into every plane.
		p0 := a[0] ^ a[4] ^ a[8]
		p1 := a[1] ^ a[5] ^ a[9]
		p2 := a[2] ^ a[6] ^ a[10]
		p3 := a[3] ^ a[7] ^ a[11]

		e0 := bits.RotateLeft32(p3, 5) ^ bits.RotateLeft32(p3, 14)
		e1 := bits.RotateLeft32(p0, 5) ^ bits.RotateLeft32(p0, 14)
		e2 := bits.RotateLeft32(p1, 5) ^ bits.RotateLeft32(p1, 14)
		e3 := bits.RotateLeft32(p2, 5) ^ bits.RotateLeft32(p2, 14)

		a[0] ^= e0
		a[4] ^= e0
		a[8] ^= e0
		a[1] ^= e1
		a[5] ^= e1
		a[9] ^= e1
		a[2] ^= e2
		a[6] ^= e2
		a[10] ^= e2
		a[3] ^= e3
		a[7] ^= e3
		a[11] ^= e3

		// Rho-west: plane 1 shifts one lane west, plane 2 rotates each lane by 11.
		a[4], a[5], a[6], a[7] = a[7], a[4], a[5], a[6]
		a[8] = bits.RotateLeft32(a[8], 11)
		a[9] = bits.RotateLeft32(a[9], 11)
		a[10] = bits.RotateLeft32(a[10], 11)
		a[11] = bits.RotateLeft32(a[11], 11)

		// Iota.
		a[0] ^= c

		// Chi: the nonlinear column map.
		for x := range 4 {
			b0 := a[x] ^ (^a[4+x] & a[8+x])
			b1 := a[4+x] ^ (^a[8+x] & a[x])
			b2 := a[8+x] ^ (^a[x] & a[4+x])
			a[x], a[4+x], a[8+x] = b0, b1, b2
		}

		// Rho-east: plane 1 rotates each lane by 1, plane 2 shifts two lanes and rotates by 8.
		a[4] = bits.RotateLeft32(a[4], 1)
		a[5] = bits.RotateLeft32(a[5], 1)
		a[6] = bits.RotateLeft32(a[6], 1)
		a[7] = bits.RotateLeft32(a[7], 1)
		a[8], a[9], a[10], a[11] =
			bits.RotateLeft32(a[10], 8),
			bits.RotateLeft32(a[11], 8),
			bits.RotateLeft32(a[8], 8),
			bits.RotateLeft32(a[9], 8)
	}
}
