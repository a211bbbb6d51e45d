// Package keccak implements the Keccak-f[1600] permutation and the
// SHA-3/SHAKE/cSHAKE/KMAC constructions built on it, including a 512-bit
// capacity cSHAKE/KMAC extension with no NIST definition that RHX-512 and
// HBA-RHX-512 require (spec §2 component D, §4.F, §4.H). Built directly on
// the permutation rather than golang.org/x/crypto/sha3 because that package
// only exposes the standard 128/256-bit security strengths; see DESIGN.md.
package keccak

// laneCount is the number of 64-bit lanes in the 1600-bit Keccak state.
const laneCount = 25

// rc holds the 24 round constants for Keccak-f[1600]'s iota step.
var rc = [24]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808a, 0x8000000080008000,
	0x000000000000808b, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008a, 0x0000000000000088, 0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800a, 0x800000008000000a,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// rotc holds the rho-step rotation offset for lane (x,y), indexed x+5*y.
var rotc = [laneCount]uint{
	0, 1, 62, 28, 27,
	36, 44, 6, 55, 20,
	3, 10, 43, 25, 39,
	41, 45, 15, 21, 8,
	18, 2, 61, 56, 14,
}

func rotl64(x uint64, n uint) uint64 {
	if n == 0 {
		return x
	}
	return x<<n | x>>(64-n)
}

// permute applies the 24-round Keccak-f[1600] permutation to a in place.
func permute(a *[laneCount]uint64) {
	for round := 0; round < 24; round++ {
		// theta
		var c [5]uint64
		for x := 0; x < 5; x++ {
			c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
		}
		var d [5]uint64
		for x := 0; x < 5; x++ {
			d[x] = c[(x+4)%5] ^ rotl64(c[(x+1)%5], 1)
		}
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				a[x+5*y] ^= d[x]
			}
		}

		// rho + pi
		var b [laneCount]uint64
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				nx := y
				ny := (2*x + 3*y) % 5
				b[nx+5*ny] = rotl64(a[x+5*y], rotc[x+5*y])
			}
		}

		// chi
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				a[x+5*y] = b[x+5*y] ^ ((^b[(x+1)%5+5*y]) & b[(x+2)%5+5*y])
			}
		}

		// iota
		a[0] ^= rc[round]
	}
}
