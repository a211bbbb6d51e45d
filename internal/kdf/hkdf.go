package kdf

import "errors"

// ErrExpandLengthTooLarge is returned when the requested HKDF-Expand output
// exceeds RFC 5869's 255*HashLen ceiling.
var ErrExpandLengthTooLarge = errors.New("kdf: requested length exceeds 255 * hash length")

// expand implements RFC 5869 HKDF-Expand: T(0) = "", T(i) = HMAC(prk,
// T(i-1) || info || i), output = T(1) || T(2) || ... truncated to outLen.
// Spec §4.F.2 uses the RHX user key directly as the PRK (no Extract phase).
func expand(newH func() hasher, hashSize int, prk, info []byte, outLen int) ([]byte, error) {
	if outLen > 255*hashSize {
		return nil, ErrExpandLengthTooLarge
	}

	out := make([]byte, 0, outLen)
	var prev []byte
	for counter := byte(1); len(out) < outLen; counter++ {
		msg := make([]byte, 0, len(prev)+len(info)+1)
		msg = append(msg, prev...)
		msg = append(msg, info...)
		msg = append(msg, counter)
		prev = hmac(newH, prk, msg)
		out = append(out, prev...)
	}
	return out[:outLen], nil
}

// ExpandSHA256 performs HKDF-Expand with HMAC-SHA-256.
func ExpandSHA256(prk, info []byte, outLen int) ([]byte, error) {
	return expand(newSHA256, 32, prk, info, outLen)
}

// ExpandSHA512 performs HKDF-Expand with HMAC-SHA-512.
func ExpandSHA512(prk, info []byte, outLen int) ([]byte, error) {
	return expand(newSHA512, 64, prk, info, outLen)
}
