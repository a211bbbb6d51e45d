// Package zeroize overwrites sensitive byte buffers (keys, round schedules,
// intermediate state) with zeros before they are released, and defeats
// dead-store elimination so the compiler cannot optimize the overwrite away.
package zeroize

import "runtime"

// Bytes zeroes b in place.
func Bytes(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// Block16 zeroes a 16-byte block in place.
func Block16(b *[16]byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// RoundKeys zeroes a full round-key schedule in place.
func RoundKeys(rk [][16]byte) {
	for i := range rk {
		Block16(&rk[i])
	}
	runtime.KeepAlive(rk)
}
