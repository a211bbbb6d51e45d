// Package kdf implements HMAC-SHA-2 (RFC 2104) and HKDF-Expand (RFC 5869),
// the key-derivation primitives RHX's HKDF-SHA2 schedule backend is
// specified in terms of (spec §2 component C). Built
// directly on internal/sha2 rather than crypto/hmac, for the same reason
// internal/sha2 is not crypto/sha256: spec §1/§2 treats this as a hard-core
// component, not a call-out to the platform's crypto provider.
package kdf

import "github.com/redeaux-corp/rhxcore/internal/sha2"

// hasher abstracts over the two digest widths this module needs (SHA-256 for
// RHX-256, SHA-512 for RHX-512).
type hasher interface {
	Write(p []byte) (int, error)
	Sum(b []byte) []byte
	Reset()
	Size() int
	BlockSize() int
}

func newSHA256() hasher { return sha2.New256() }
func newSHA512() hasher { return sha2.New512() }

// hmac computes the RFC 2104 HMAC of msg under key using the hash family
// selected by newH.
func hmac(newH func() hasher, key, msg []byte) []byte {
	h := newH()
	blockSize := h.BlockSize()

	if len(key) > blockSize {
		h.Write(key)
		key = h.Sum(nil)
		h.Reset()
	}
	padded := make([]byte, blockSize)
	copy(padded, key)

	ipad := make([]byte, blockSize)
	opad := make([]byte, blockSize)
	for i := 0; i < blockSize; i++ {
		ipad[i] = padded[i] ^ 0x36
		opad[i] = padded[i] ^ 0x5c
	}

	h.Reset()
	h.Write(ipad)
	h.Write(msg)
	inner := h.Sum(nil)

	h.Reset()
	h.Write(opad)
	h.Write(inner)
	return h.Sum(nil)
}

// HMACSHA256 computes HMAC-SHA-256(key, msg).
func HMACSHA256(key, msg []byte) []byte { return hmac(newSHA256, key, msg) }

// HMACSHA512 computes HMAC-SHA-512(key, msg).
func HMACSHA512(key, msg []byte) []byte { return hmac(newSHA512, key, msg) }
