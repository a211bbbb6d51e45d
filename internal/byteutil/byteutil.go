// Package byteutil holds the byte-order and constant-time helpers shared by
// the cipher, schedule, and AEAD packages. Nothing here is variant-specific.
package byteutil

import "crypto/subtle"

// BlockSize is the Rijndael/AES block size in bytes, shared by every
// variant this module supports.
const BlockSize = 16

// BE32 decodes a 4-byte big-endian word.
func BE32(b []byte) uint32 {
	_ = b[3]
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

// PutBE32 encodes w into b as a 4-byte big-endian word.
func PutBE32(b []byte, w uint32) {
	_ = b[3]
	b[0] = byte(w >> 24)
	b[1] = byte(w >> 16)
	b[2] = byte(w >> 8)
	b[3] = byte(w)
}

// BE64 decodes an 8-byte big-endian word.
func BE64(b []byte) uint64 {
	_ = b[7]
	return uint64(b[0])<<56 | uint64(b[1])<<48 | uint64(b[2])<<40 | uint64(b[3])<<32 |
		uint64(b[4])<<24 | uint64(b[5])<<16 | uint64(b[6])<<8 | uint64(b[7])
}

// PutBE64 encodes w into b as an 8-byte big-endian word.
func PutBE64(b []byte, w uint64) {
	_ = b[7]
	b[0] = byte(w >> 56)
	b[1] = byte(w >> 48)
	b[2] = byte(w >> 40)
	b[3] = byte(w >> 32)
	b[4] = byte(w >> 24)
	b[5] = byte(w >> 16)
	b[6] = byte(w >> 8)
	b[7] = byte(w)
}

// PutLE64 encodes w into b as an 8-byte little-endian word. HBA's MAC input
// framing (spec §4.H) uses little-endian 64-bit length fields even though
// the CTR counter block is big-endian — this helper keeps the two straight.
func PutLE64(b []byte, w uint64) {
	_ = b[7]
	b[0] = byte(w)
	b[1] = byte(w >> 8)
	b[2] = byte(w >> 16)
	b[3] = byte(w >> 24)
	b[4] = byte(w >> 32)
	b[5] = byte(w >> 40)
	b[6] = byte(w >> 48)
	b[7] = byte(w >> 56)
}

// ConstantTimeCompare reports whether a and b hold identical bytes, taking
// time independent of where they first differ. Used for HBA tag
// verification and nowhere else in this module needs it.
func ConstantTimeCompare(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}

// IncrementBE128 treats ctr as a 128-bit big-endian integer and increments
// it by one in place, wrapping modulo 2^128 on overflow (spec §4.G CTR,
// §4.H HBA nonce advance).
func IncrementBE128(ctr *[16]byte) {
	for i := 15; i >= 0; i-- {
		ctr[i]++
		if ctr[i] != 0 {
			return
		}
	}
}
